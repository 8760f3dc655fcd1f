package components

import (
	"fmt"
	"strings"
)

// Size is the sm/md/lg token shared by buttons and collapses. The zero value
// means "not set" and lets a parent decide.
type Size int

const (
	SizeDefault Size = iota
	SizeSm
	SizeMd
	SizeLg
)

func (s Size) String() string {
	switch s {
	case SizeSm:
		return "sm"
	case SizeMd:
		return "md"
	case SizeLg:
		return "lg"
	default:
		return ""
	}
}

// Or returns s when it is set, fallback otherwise.
func (s Size) Or(fallback Size) Size {
	if s == SizeDefault {
		return fallback
	}
	return s
}

// ParseSize maps a size token onto a Size. The empty string is SizeDefault.
func ParseSize(value string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return SizeDefault, nil
	case "sm":
		return SizeSm, nil
	case "md":
		return SizeMd, nil
	case "lg":
		return SizeLg, nil
	default:
		return SizeDefault, fmt.Errorf("unknown size %q", value)
	}
}
