package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Submission pairs a player's name with the score of the round it closes.
type Submission struct {
	RoundID     string
	Name        string
	Score       int
	SubmittedAt time.Time
}

// Record renders the submission as "name | score".
func (s Submission) Record() string {
	return fmt.Sprintf("%s | %d", s.Name, s.Score)
}

// RecordSink receives one submission per completed round.
type RecordSink interface {
	Record(sub Submission) error
}

// SinkFunc adapts a function to RecordSink.
type SinkFunc func(sub Submission) error

// Record calls f(sub).
func (f SinkFunc) Record(sub Submission) error {
	return f(sub)
}

// LogSink writes submissions to a structured logger.
type LogSink struct {
	Logger *log.Logger
}

// Record logs the submission at info level.
func (s LogSink) Record(sub Submission) error {
	s.Logger.Info("score submitted",
		"record", sub.Record(),
		"name", sub.Name,
		"score", sub.Score,
		"round", sub.RoundID,
	)
	return nil
}

// WriterSink prints submissions as "SAVED: name | score" lines.
type WriterSink struct {
	W io.Writer
}

// Record writes one line to the underlying writer.
func (s WriterSink) Record(sub Submission) error {
	if _, err := fmt.Fprintf(s.W, "SAVED: %s\n", sub.Record()); err != nil {
		return fmt.Errorf("game: write record: %w", err)
	}
	return nil
}

// MultiSink fans a submission out to every sink, attempting all of them
// even if some fail.
type MultiSink []RecordSink

// Record forwards sub to each sink and joins any errors.
func (m MultiSink) Record(sub Submission) error {
	var errs []error
	for _, s := range m {
		if err := s.Record(sub); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
