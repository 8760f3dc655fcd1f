package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("showcase.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "showcase.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "showcase.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("showcase.yaml", 0, stdErrors.New("boom"))
	require.Equal(t, "parse error: showcase.yaml: boom", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("collapses[0].mode", "must be accordion or multiple", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "collapses[0].mode", validationErr.Field)
	require.Contains(t, err.Error(), "must be accordion or multiple")
}

func TestConfigurationErrorWrapsSentinel(t *testing.T) {
	t.Parallel()

	sentinel := stdErrors.New("panel requires a group")
	err := NewConfigurationError("disclosure.Panel", "", sentinel)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "disclosure.Panel", cfgErr.Component)
	require.True(t, stdErrors.Is(err, sentinel))
	require.Equal(t, "configuration error: disclosure.Panel: panel requires a group", err.Error())
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var p *ParseError
	var v *ValidationError
	var c *ConfigurationError
	require.Empty(t, p.Error())
	require.Empty(t, v.Error())
	require.Empty(t, c.Error())
	require.Nil(t, c.Unwrap())
}
