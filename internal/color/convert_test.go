package color

import (
	"errors"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Notation
	}{
		{"hex six", "#000000", NotationHex},
		{"hex three", "#fff", NotationHex},
		{"hex bad length still hex shape", "#12345", NotationHex},
		{"rgb", "rgb(255, 0, 128)", NotationRGBA},
		{"rgba", "rgba(255,0,128,0.5)", NotationRGBA},
		{"rgba spaced", "rgba( 1 , 2 , 3 , 1)", NotationRGBA},
		{"percent four", "%1,0,0.5,1", NotationPercent},
		{"percent three", "%1,0,0.5", NotationPercent},
		{"percent spaced", "% 0.1, 0.2, 0.3, 0.4", NotationPercent},
		{"trimmed", "  #abc  ", NotationHex},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Detect(tc.input)
			if err != nil {
				t.Fatalf("Detect(%q) failed: %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("Detect(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestDetectUnrecognized(t *testing.T) {
	inputs := []string{
		"not a color",
		"",
		"#12",
		"#123456789",
		"rgb(1,2)",
		"hsl(0, 100%, 50%)",
		"%1",
		"RGB(1,2,3)",
	}

	for _, in := range inputs {
		_, err := Detect(in)
		if !errors.Is(err, ErrUnrecognizedFormat) {
			t.Errorf("Detect(%q) error = %v, expected ErrUnrecognizedFormat", in, err)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Color
		notation Notation
	}{
		{"#000000", RGB(0, 0, 0), NotationHex},
		{"#fff", RGB(255, 255, 255), NotationHex},
		{"rgb(255, 0, 128)", RGB(255, 0, 128), NotationRGBA},
		{"rgba(255,0,128,0.5)", RGBA(255, 0, 128, 128), NotationRGBA},
		{"%1,0,0.5,1", RGB(255, 0, 128), NotationPercent},
	}

	for _, tc := range tests {
		got, n, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.input, err)
		}
		if got != tc.expected || n != tc.notation {
			t.Errorf("Parse(%q) = %+v, %v; expected %+v, %v", tc.input, got, n, tc.expected, tc.notation)
		}
	}
}

func TestParseErrorKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{"not a color", UnrecognizedFormat},
		{"#12345", MalformedHex},
		{"#1234567", MalformedHex},
		{"%1,0,0.5", MalformedPercent},
		{"rgb(300, 0, 0)", OutOfRange},
		{"rgba(0, 0, 0,)", MalformedRgb},
		{"%2,0,0,1", OutOfRange},
	}

	for _, tc := range tests {
		_, _, err := Parse(tc.input)
		if KindOf(err) != tc.kind {
			t.Errorf("Parse(%q) error = %v, expected kind %v", tc.input, err, tc.kind)
		}
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		input    string
		target   Notation
		expected string
	}{
		{"#000000", NotationHex, "#000000ff"},
		{"#fff", NotationHex, "#ffffffff"},
		{"#fff", NotationRGBA, "rgba(255, 255, 255, 1)"},
		{"#fff8", NotationPercent, "% 1, 1, 1, 0.533"},
		{"rgb(255, 0, 128)", NotationHex, "#ff0080ff"},
		{"rgba(255,0,128,0.5)", NotationHex, "#ff008080"},
		{"rgba(255,0,128,0.5)", NotationRGBA, "rgba(255, 0, 128, 0.502)"},
		{"%1,0,0.5,1", NotationRGBA, "rgba(255, 0, 128, 1)"},
		{"%1,0,0.5,1", NotationPercent, "% 1, 0, 0.502, 1"},
		{"  #1e90ff  ", NotationRGBA, "rgba(30, 144, 255, 1)"},
	}

	for _, tc := range tests {
		got, err := Convert(tc.input, tc.target)
		if err != nil {
			t.Fatalf("Convert(%q, %v) failed: %v", tc.input, tc.target, err)
		}
		if got != tc.expected {
			t.Errorf("Convert(%q, %v) = %q, expected %q", tc.input, tc.target, got, tc.expected)
		}
	}
}

func TestConvertUnknownTarget(t *testing.T) {
	_, err := Convert("#fff", Notation(42))
	if !errors.Is(err, ErrUnrecognizedFormat) {
		t.Errorf("expected ErrUnrecognizedFormat, got %v", err)
	}
}

func TestParseNotation(t *testing.T) {
	tests := []struct {
		name     string
		expected Notation
	}{
		{"hex", NotationHex},
		{"HEX", NotationHex},
		{"rgb", NotationRGBA},
		{"rgba", NotationRGBA},
		{"percent", NotationPercent},
		{"%", NotationPercent},
	}

	for _, tc := range tests {
		got, err := ParseNotation(tc.name)
		if err != nil {
			t.Fatalf("ParseNotation(%q) failed: %v", tc.name, err)
		}
		if got != tc.expected {
			t.Errorf("ParseNotation(%q) = %v, expected %v", tc.name, got, tc.expected)
		}
	}

	if _, err := ParseNotation("hsl"); err == nil {
		t.Error("ParseNotation(\"hsl\") expected error")
	}
}

func TestConversionErrorMessage(t *testing.T) {
	_, err := ParseRGBA("rgb(1, x, 3)")
	if err == nil {
		t.Fatal("expected error")
	}
	expected := `color: malformed rgb color (field g): invalid integer "x" in "rgb(1, x, 3)"`
	if err.Error() != expected {
		t.Errorf("Error() = %q, expected %q", err.Error(), expected)
	}
}

func TestNotations(t *testing.T) {
	infos := Notations()
	if len(infos) != 3 {
		t.Fatalf("expected 3 notations, got %d", len(infos))
	}
	for _, info := range infos {
		n, err := Detect(info.Example)
		if err != nil {
			t.Errorf("example %q not detected: %v", info.Example, err)
			continue
		}
		if n != info.Notation {
			t.Errorf("example %q detected as %v, expected %v", info.Example, n, info.Notation)
		}
		if _, _, err := Parse(info.Example); err != nil {
			t.Errorf("example %q does not parse: %v", info.Example, err)
		}
	}
}
