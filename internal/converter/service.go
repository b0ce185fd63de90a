// Package converter wraps the color codec with history recording and
// logging. It is shared by the command line, the interactive UI and the
// SSH server.
package converter

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorx/internal/color"
	"github.com/vovakirdan/colorx/internal/logging"
)

// Recorder persists successful conversions.
// This allows the service to record history without depending on the storage package.
type Recorder interface {
	RecordConversion(rec Record) error
}

// Record is the persisted form of a successful conversion.
type Record struct {
	Input  string
	Source string
	Target string
	Output string
}

// Result is the outcome of one conversion.
type Result struct {
	Input  string
	Color  color.Color
	Source color.Notation
	Target color.Notation
	Output string
}

// Service converts colors and optionally records them.
type Service struct {
	recorder Recorder // Optional, can be nil
	logger   *log.Logger
}

// New creates a service. A nil logger discards log output.
func New(logger *log.Logger) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{logger: logger}
}

// SetRecorder sets the optional history recorder.
func (s *Service) SetRecorder(r Recorder) {
	s.recorder = r
}

// Convert converts input to target and records the result.
// Recording failures are logged, never returned.
func (s *Service) Convert(input string, target color.Notation) (Result, error) {
	res, err := s.convert(input, target)
	if err != nil {
		return Result{}, err
	}
	s.record(res)
	return res, nil
}

// Preview converts input to target without recording it.
func (s *Service) Preview(input string, target color.Notation) (Result, error) {
	return s.convert(input, target)
}

// PreviewAll parses input once and formats it in every notation, in
// detection priority order.
func (s *Service) PreviewAll(input string) ([]Result, error) {
	infos := color.Notations()
	results := make([]Result, 0, len(infos))
	for _, info := range infos {
		res, err := s.convert(input, info.Notation)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *Service) convert(input string, target color.Notation) (Result, error) {
	input = strings.TrimSpace(input)

	c, source, err := color.Parse(input)
	if err != nil {
		s.logger.Debug("conversion failed", "input", input, "kind", color.KindOf(err), "error", err)
		return Result{}, err
	}

	out, err := color.Format(c, target)
	if err != nil {
		s.logger.Debug("conversion failed", "input", input, "target", target, "error", err)
		return Result{}, err
	}

	s.logger.Debug("converted", "input", input, "source", source, "target", target, "output", out)
	return Result{
		Input:  input,
		Color:  c,
		Source: source,
		Target: target,
		Output: out,
	}, nil
}

func (s *Service) record(res Result) {
	if s.recorder == nil {
		return
	}
	err := s.recorder.RecordConversion(Record{
		Input:  res.Input,
		Source: res.Source.String(),
		Target: res.Target.String(),
		Output: res.Output,
	})
	if err != nil {
		s.logger.Warn("could not record conversion", "error", err)
	}
}
