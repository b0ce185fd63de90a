package color

import (
	"fmt"
	"math"
	"strconv"
)

// fractionDecimals is the number of decimal places kept by ByteToFraction.
const fractionDecimals = 1000

// ByteToFraction maps a byte to [0,1] rounded to 3 decimal places.
// Rounding is half away from zero, which is half-up on this domain.
func ByteToFraction(b uint8) float64 {
	return math.Round(float64(b)/255*fractionDecimals) / fractionDecimals
}

// FractionToByte maps a fraction in [0,1] to a byte, rounding half up.
// Values outside [0,1] are rejected with an OutOfRange error, never clamped.
func FractionToByte(f float64) (uint8, error) {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return 0, newError(OutOfRange, "", "", fmt.Sprintf("fraction %v not in [0,1]", f), nil)
	}
	return uint8(math.Round(f * 255)), nil
}

// formatFraction renders an already rounded fraction with its shortest
// decimal representation ("1", "0.5", "0.502").
func formatFraction(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parseFraction parses a fraction field and converts it to a byte.
func parseFraction(kind ErrorKind, input, field, raw string) (uint8, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, newError(kind, input, field, fmt.Sprintf("invalid number %q", raw), err)
	}
	b, err := FractionToByte(f)
	if err != nil {
		return 0, newError(OutOfRange, input, field, fmt.Sprintf("fraction %v not in [0,1]", f), nil)
	}
	return b, nil
}
