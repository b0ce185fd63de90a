package color

import (
	"fmt"
	"regexp"
	"strings"
)

// codec binds a notation to its structural shape, parser and serializer.
type codec struct {
	notation Notation
	title    string
	example  string
	shape    *regexp.Regexp
	parse    func(string) (Color, error)
	format   func(Color) string
}

// codecs is ordered by detection priority.
var codecs = []codec{
	{
		notation: NotationHex,
		title:    "Hexadecimal",
		example:  "#1e90ff",
		shape:    regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`),
		parse:    ParseHex,
		format:   FormatHex,
	},
	{
		notation: NotationRGBA,
		title:    "Functional RGBA",
		example:  "rgba(30, 144, 255, 0.5)",
		shape:    regexp.MustCompile(`^rgba?\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*(,\s*(1|0?\.?\d*))?\)$`),
		parse:    ParseRGBA,
		format:   FormatRGBA,
	},
	{
		notation: NotationPercent,
		title:    "Fractional percent",
		example:  "%0.118, 0.565, 1, 1",
		shape:    regexp.MustCompile(`^%\s?0?\.?\d+,\s?0?\.?\d+,\s?0?\.?\d+(,\s?0?\.?\d+)?$`),
		parse:    ParsePercent,
		format:   FormatPercent,
	},
}

func lookup(n Notation) (codec, bool) {
	for _, c := range codecs {
		if c.notation == n {
			return c, true
		}
	}
	return codec{}, false
}

// Detect classifies input by its shape alone. A shape match does not mean
// the input is valid; the parser for the notation still validates it.
func Detect(input string) (Notation, error) {
	s := strings.TrimSpace(input)
	for _, c := range codecs {
		if c.shape.MatchString(s) {
			return c.notation, nil
		}
	}
	return 0, newError(UnrecognizedFormat, input, "",
		"use #000000, rgb(0,0,0), rgba(0,0,0,1) or %0,0,0,1", nil)
}

// Parse detects the notation of input and parses it into a Color.
func Parse(input string) (Color, Notation, error) {
	n, err := Detect(input)
	if err != nil {
		return Color{}, 0, err
	}
	c, _ := lookup(n)
	col, err := c.parse(strings.TrimSpace(input))
	if err != nil {
		return Color{}, n, err
	}
	return col, n, nil
}

// Format serializes c in the target notation.
func Format(c Color, target Notation) (string, error) {
	cd, ok := lookup(target)
	if !ok {
		return "", newError(UnrecognizedFormat, "", "", fmt.Sprintf("unknown target notation %d", int(target)), nil)
	}
	return cd.format(c), nil
}

// Convert parses input in whatever notation it is written in and
// re-serializes it in target.
func Convert(input string, target Notation) (string, error) {
	c, _, err := Parse(input)
	if err != nil {
		return "", err
	}
	return Format(c, target)
}
