package histories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/reusee/taibf/taibf"
)

type Status string

const (
	StatusOK               Status = "ok"
	StatusMismatchedBraces Status = "mismatched_braces"
	StatusSegfault         Status = "segfault"
	StatusInputExhausted   Status = "input_exhausted"
	StatusStepLimit        Status = "step_limit"
	StatusCanceled         Status = "canceled"
	StatusError            Status = "error"
)

func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, taibf.ErrMismatchedBraces):
		return StatusMismatchedBraces
	case errors.Is(err, taibf.ErrSegfault):
		return StatusSegfault
	case errors.Is(err, taibf.ErrInputExhausted):
		return StatusInputExhausted
	case errors.Is(err, taibf.ErrStepLimit):
		return StatusStepLimit
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return StatusCanceled
	}
	return StatusError
}

// Run is one recorded program execution.
type Run struct {
	ID          int64
	Source      string
	Hash        string
	Status      Status
	Error       string
	Steps       int64
	Pointer     int
	Cells       int
	OutputBytes int64
	StartedAt   time.Time
	Duration    time.Duration
}

func NewRun(source string, text string, startedAt time.Time, state *taibf.State, stats taibf.Stats, err error) *Run {
	sum := sha256.Sum256([]byte(text))
	run := &Run{
		Source:      source,
		Hash:        hex.EncodeToString(sum[:]),
		Status:      StatusOf(err),
		Steps:       stats.Steps,
		OutputBytes: stats.OutputBytes,
		StartedAt:   startedAt,
		Duration:    stats.Duration,
	}
	if state != nil {
		run.Pointer = state.Pointer
		run.Cells = state.Tape.Len()
	}
	if err != nil {
		run.Error = err.Error()
	}
	return run
}
