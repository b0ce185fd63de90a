package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/colorx/internal/color"
	"github.com/vovakirdan/colorx/internal/converter"
)

// execute runs the root command with fresh flag values and a config that
// keeps history inside a temp directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flagConfig, flagDBPath, flagLogLevel = "", "", ""
	flagNoHistory, flagQuiet, flagSwatch = false, false, false
	flagOutput = ""
	flagHistoryLimit, flagHistoryClear, flagHistoryStats = 0, false, false

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "colorx.yaml")
	cfgData := "history:\n  db_path: " + filepath.Join(dir, "history.db") + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfgData), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestWriteResult(t *testing.T) {
	res := converter.Result{
		Input:  "#fff",
		Target: color.NotationRGBA,
		Output: "rgba(255, 255, 255, 1)",
	}

	var buf bytes.Buffer
	writeResult(&buf, res, false)
	expected := "Input: #fff\nTarget: rgba\nOutput: rgba(255, 255, 255, 1)\n"
	if buf.String() != expected {
		t.Errorf("writeResult() = %q, expected %q", buf.String(), expected)
	}

	buf.Reset()
	writeResult(&buf, res, true)
	if buf.String() != "rgba(255, 255, 255, 1)\n" {
		t.Errorf("quiet writeResult() = %q", buf.String())
	}
}

func TestRootConvert(t *testing.T) {
	out, err := execute(t, "-o", "rgb", "rgba(255,0,128,0.5)")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if !strings.Contains(out, "Output: rgba(255, 0, 128, 0.502)") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestConvertSubcommandQuiet(t *testing.T) {
	out, err := execute(t, "convert", "-q", "-o", "hex", "%1,0,0.5,1")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if out != "#ff0080ff\n" {
		t.Errorf("output = %q, expected %q", out, "#ff0080ff\n")
	}
}

func TestConvertDefaultsToHex(t *testing.T) {
	out, err := execute(t, "--no-history", "#000000")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if !strings.Contains(out, "Output: #000000ff") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestConvertReturnsTypedError(t *testing.T) {
	_, err := execute(t, "--no-history", "not a color")
	if !errors.Is(err, color.ErrUnrecognizedFormat) {
		t.Errorf("expected ErrUnrecognizedFormat, got %v", err)
	}

	_, err = execute(t, "--no-history", "#12345")
	if !errors.Is(err, color.ErrMalformedHex) {
		t.Errorf("expected ErrMalformedHex, got %v", err)
	}
}

func TestConvertUnknownOutput(t *testing.T) {
	if _, err := execute(t, "-o", "hsl", "#fff"); err == nil {
		t.Error("expected error for unknown output notation")
	}
}

func TestFormats(t *testing.T) {
	out, err := execute(t, "formats")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	for _, info := range color.Notations() {
		if !strings.Contains(out, info.Example) {
			t.Errorf("formats output missing example %q", info.Example)
		}
	}
}

func TestHistoryEmpty(t *testing.T) {
	out, err := execute(t, "history")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if !strings.Contains(out, "No conversions recorded yet.") {
		t.Errorf("unexpected output: %q", out)
	}
}
