package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetValidator(t *testing.T) {
	require.Same(t, GetValidator(), GetValidator(), "validator is shared")
}

func TestCustomTags(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		tag   string
		value string
		valid bool
	}{
		{"panel_id", "", true},
		{"panel_id", "item-3", true},
		{"panel_id", "a_b", true},
		{"panel_id", "Upper", false},
		{"panel_id", "-lead", false},
		{"panel_id", "has space", false},

		{"policy", "", true},
		{"policy", "exclusive", true},
		{"policy", "accordion", true},
		{"policy", "multiple", true},
		{"policy", "sometimes", false},

		{"effect", "", true},
		{"effect", "halo", true},
		{"effect", "Shake", true},
		{"effect", "ripple", true},
		{"effect", "sparkle", false},

		{"size", "sm", true},
		{"size", "lg", true},
		{"size", "xxl", false},

		{"variant", "dashed", true},
		{"variant", "link", true},
		{"variant", "raised", false},

		{"semver", "1.0.0", true},
		{"semver", "1.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.value, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
