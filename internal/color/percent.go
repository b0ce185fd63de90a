package color

import (
	"fmt"
	"strings"
)

// ParsePercent parses "%R, G, B, A" where every field is a fraction in
// [0,1]. Unlike the other notations, alpha is mandatory.
func ParsePercent(input string) (Color, error) {
	body := strings.TrimSpace(input)
	if !strings.HasPrefix(body, "%") {
		return Color{}, newError(MalformedPercent, input, "", `missing "%" prefix`, nil)
	}
	body = strings.TrimSpace(strings.TrimPrefix(body, "%"))

	fields := strings.Split(body, ",")
	if len(fields) != 4 {
		return Color{}, newError(MalformedPercent, input, "",
			fmt.Sprintf("expected 4 fields, got %d", len(fields)), nil)
	}

	var ch [4]uint8
	for i := range ch {
		b, err := parseFraction(MalformedPercent, input, channelNames[i], strings.TrimSpace(fields[i]))
		if err != nil {
			return Color{}, err
		}
		ch[i] = b
	}
	return RGBA(ch[0], ch[1], ch[2], ch[3]), nil
}

// FormatPercent returns "% R, G, B, A" with every channel as a fraction.
func FormatPercent(c Color) string {
	ch := c.Channels()
	parts := make([]string, len(ch))
	for i, b := range ch {
		parts[i] = formatFraction(ByteToFraction(b))
	}
	return "% " + strings.Join(parts, ", ")
}
