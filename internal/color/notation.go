package color

import (
	"fmt"
	"strings"
)

// Notation is one of the accepted textual color formats.
type Notation int

const (
	NotationHex Notation = iota + 1
	NotationRGBA
	NotationPercent
)

// String returns the canonical lowercase name used on the command line.
func (n Notation) String() string {
	switch n {
	case NotationHex:
		return "hex"
	case NotationRGBA:
		return "rgba"
	case NotationPercent:
		return "percent"
	default:
		return "unknown"
	}
}

// ParseNotation resolves a notation name. "rgb" is accepted as an alias of
// "rgba" and "%" as an alias of "percent"; matching is case-insensitive.
func ParseNotation(name string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hex", "#":
		return NotationHex, nil
	case "rgb", "rgba":
		return NotationRGBA, nil
	case "percent", "%":
		return NotationPercent, nil
	}
	return 0, fmt.Errorf("color: unknown notation %q (want hex, rgba or percent)", name)
}

// NotationInfo describes a notation for listings.
type NotationInfo struct {
	Notation Notation
	Title    string
	Example  string
}

// Notations returns all notations in detection priority order.
func Notations() []NotationInfo {
	result := make([]NotationInfo, 0, len(codecs))
	for _, c := range codecs {
		result = append(result, NotationInfo{
			Notation: c.notation,
			Title:    c.title,
			Example:  c.example,
		})
	}
	return result
}
