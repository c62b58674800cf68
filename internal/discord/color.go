package discord

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aleister1102/embedforge/internal/errorwrapper"
)

// hexColorPattern matches the #RRGGBB color notation used by the composer.
var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsHexColor reports whether the string is a #RRGGBB color.
func IsHexColor(color string) bool {
	return hexColorPattern.MatchString(color)
}

// ParseHexColor converts a #RRGGBB string to the 24-bit integer Discord expects.
func ParseHexColor(color string) (int, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(color), "#")
	value, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, errorwrapper.NewValidationError("color", color, "color must be a hex string like #007AFF")
	}
	if value > 0xFFFFFF {
		return 0, errorwrapper.NewValidationError("color", color, "color exceeds the 24-bit range")
	}
	return int(value), nil
}
