package color

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ParseHex parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa".
// The leading '#' and surrounding whitespace are optional.
func ParseHex(input string) (Color, error) {
	digits := strings.TrimSpace(input)
	digits = strings.TrimPrefix(digits, "#")
	digits = strings.TrimSpace(digits)

	switch len(digits) {
	case 3, 4:
		digits = expandNibbles(digits)
	case 6, 8:
	default:
		return Color{}, newError(MalformedHex, input, "",
			fmt.Sprintf("must have 3, 4, 6 or 8 digits, got %d", len(digits)), nil)
	}

	raw, err := hex.DecodeString(digits)
	if err != nil {
		return Color{}, newError(MalformedHex, input, "", "invalid hex digit", err)
	}

	c := RGB(raw[0], raw[1], raw[2])
	if len(raw) == 4 {
		c.A = raw[3]
	}
	return c, nil
}

// FormatHex returns "#rrggbbaa" in lowercase, always 8 digits.
func FormatHex(c Color) string {
	ch := c.Channels()
	return "#" + hex.EncodeToString(ch[:])
}

// expandNibbles duplicates every digit: "abc" becomes "aabbcc".
func expandNibbles(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		b.WriteByte(s[i])
	}
	return b.String()
}
