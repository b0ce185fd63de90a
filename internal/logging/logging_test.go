package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWithWriterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "colorx", log.WarnLevel)

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info message written at warn level: %q", buf.String())
	}

	logger.Warn("conversion failed", "kind", "malformed_hex")
	out := buf.String()
	if !strings.Contains(out, "conversion failed") {
		t.Errorf("warn message missing: %q", out)
	}
	if !strings.Contains(out, "colorx") {
		t.Errorf("prefix missing: %q", out)
	}
	if !strings.Contains(out, "kind=malformed_hex") {
		t.Errorf("structured key missing: %q", out)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("dropped")
}
