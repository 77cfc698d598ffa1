package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/histories"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/sources"
	"github.com/reusee/taibf/taibf"
)

var (
	loadStatePath = cmds.Var[string]("-load-state", "start every program from this state snapshot")
	saveStatePath = cmds.Var[string]("-save-state", "write the final state snapshot here")
	tapFlag       = cmds.Switch("-tap", "open a starlark REPL over the final state")
)

var ErrCheckFailed = errors.New("check failed")

// RunProgram loads and executes one program, returning the record of the run.
type RunProgram func(ctx context.Context, ref string, stdin io.Reader, stdout io.Writer) (*histories.Run, error)

func (Module) RunProgram(
	load sources.Load,
	newVM taibf.NewVM,
	newSpan logs.NewSpan,
	getRecorder histories.GetRecorder,
	inspect debugs.Inspect,
	tap debugs.Tap,
	checks bfconfigs.Checks,
	trailingNewline bfconfigs.TrailingNewline,
	logger logs.Logger,
) RunProgram {
	return func(ctx context.Context, ref string, stdin io.Reader, stdout io.Writer) (_ *histories.Run, err error) {
		ctx, _ = newSpan(ctx, "", "program", ref)
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		source, err := load(ctx, ref)
		if err != nil {
			return nil, err
		}

		state := taibf.NewState()
		if *loadStatePath != "" {
			if err := readState(*loadStatePath, state); err != nil {
				return nil, err
			}
		}

		output, captured := captureOutput(stdout, len(checks) > 0 || *tapFlag)
		startedAt := time.Now()
		stats, runErr := newVM(stdin, output).Exec(ctx, source.Text, state)
		if trailingNewline && runErr == nil {
			if _, err := io.WriteString(stdout, "\n"); err != nil {
				return nil, err
			}
		}

		run := histories.NewRun(source.Name, source.Text, startedAt, state, stats, runErr)
		recorder, err := getRecorder(ctx)
		if err != nil {
			logger.WarnContext(ctx, "history unavailable", "error", err)
		} else if recorder != nil {
			if err := recorder.Record(ctx, run); err != nil {
				logger.WarnContext(ctx, "record history", "error", err)
			}
		}

		if *saveStatePath != "" {
			if err := writeState(*saveStatePath, state); err != nil {
				return run, err
			}
		}

		if runErr != nil {
			return run, runErr
		}

		globals := debugs.StateGlobals(state, captured.Bytes())
		for _, expr := range checks {
			ok, err := inspect(ctx, expr, globals)
			if err != nil {
				return run, err
			}
			if !ok {
				return run, fmt.Errorf("%w: %s", ErrCheckFailed, expr)
			}
		}

		if *tapFlag {
			tap(ctx, source.Name, globals)
		}

		return run, nil
	}
}

// captureOutput tees stdout into memory only when something will inspect the output.
func captureOutput(stdout io.Writer, capture bool) (io.Writer, *capturedOutput) {
	if !capture {
		return stdout, nil
	}
	captured := &capturedOutput{
		w: stdout,
	}
	return captured, captured
}

// capturedOutput keeps a copy of program output for checks.
type capturedOutput struct {
	w   io.Writer
	buf bytes.Buffer
}

func (c *capturedOutput) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.buf.Write(p[:n])
	return n, err
}

func (c *capturedOutput) Bytes() []byte {
	if c == nil {
		return nil
	}
	return c.buf.Bytes()
}

func (c *capturedOutput) Flush() error {
	if f, ok := c.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func readState(path string, state *taibf.State) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	defer f.Close()
	if err := state.Restore(f); err != nil {
		return fmt.Errorf("load state %s: %w", path, err)
	}
	return nil
}

func writeState(path string, state *taibf.State) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()
	if err := state.Snapshot(f); err != nil {
		return fmt.Errorf("save state %s: %w", path, err)
	}
	return nil
}
