package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var rgbaPrefix = regexp.MustCompile(`^rgba?\(`)

var channelNames = [4]string{"r", "g", "b", "a"}

// ParseRGBA parses "rgb(R, G, B)" or "rgba(R, G, B, A)".
// R, G and B are integers in [0,255]; A is a fraction in [0,1].
// Alpha defaults to opaque when absent.
func ParseRGBA(input string) (Color, error) {
	body := strings.TrimSpace(input)
	loc := rgbaPrefix.FindStringIndex(body)
	if loc == nil {
		return Color{}, newError(MalformedRgb, input, "", `missing "rgb(" or "rgba(" prefix`, nil)
	}
	body = body[loc[1]:]
	if !strings.HasSuffix(body, ")") {
		return Color{}, newError(MalformedRgb, input, "", `missing closing ")"`, nil)
	}
	body = strings.TrimSuffix(body, ")")

	fields := strings.Split(body, ",")
	if len(fields) < 3 || len(fields) > 4 {
		return Color{}, newError(MalformedRgb, input, "",
			fmt.Sprintf("expected 3 or 4 fields, got %d", len(fields)), nil)
	}

	var ch [3]uint8
	for i := range ch {
		b, err := parseByte(input, channelNames[i], strings.TrimSpace(fields[i]))
		if err != nil {
			return Color{}, err
		}
		ch[i] = b
	}

	c := RGB(ch[0], ch[1], ch[2])
	if len(fields) == 4 {
		a, err := parseFraction(MalformedRgb, input, "a", strings.TrimSpace(fields[3]))
		if err != nil {
			return Color{}, err
		}
		c.A = a
	}
	return c, nil
}

// FormatRGBA returns "rgba(R, G, B, A)" with A as a fraction.
func FormatRGBA(c Color) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatFraction(ByteToFraction(c.A)))
}

func parseByte(input, field, raw string) (uint8, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, newError(MalformedRgb, input, field, fmt.Sprintf("invalid integer %q", raw), err)
	}
	if n < 0 || n > 255 {
		return 0, newError(OutOfRange, input, field, fmt.Sprintf("%d not in [0,255]", n), nil)
	}
	return uint8(n), nil
}
