package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/taibf"
)

func writeProgram(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func withPrograms(t *testing.T, refs ...string) {
	t.Helper()
	programs = refs
	t.Cleanup(func() {
		programs = nil
	})
}

func setFlag[T any](t *testing.T, p *T, v T) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() {
		*p = old
	})
}

func newTestScope(t *testing.T) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	)
}

func TestRunPrograms(t *testing.T) {
	withPrograms(t,
		writeProgram(t, "a.bf", "  ++++++++[>++++++++<-]>+.  \n"),
		writeProgram(t, "echo.bf", ",."),
	)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	code := run(t.Context(), newTestScope(t), strings.NewReader("z"), stdout, stderr)
	if code != 0 {
		t.Fatalf("got %d: %s", code, stderr.String())
	}
	if stdout.String() != "A\nz\n" {
		t.Fatalf("got %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Fatalf("got %q", stderr.String())
	}
}

func TestRunStopsAtFirstError(t *testing.T) {
	bad := writeProgram(t, "bad.bf", "+.\n>><<<")
	withPrograms(t,
		bad,
		writeProgram(t, "never.bf", "+++."),
	)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	code := run(t.Context(), newTestScope(t), strings.NewReader(""), stdout, stderr)
	if code != 1 {
		t.Fatalf("got %d", code)
	}
	if stdout.String() != "\x01" {
		t.Fatalf("got %q", stdout.String())
	}
	if !strings.HasPrefix(stderr.String(), "taibf: "+bad+": segfault at 2:5") {
		t.Fatalf("got %q", stderr.String())
	}
	if !strings.HasSuffix(stderr.String(), ">><<<\n    ^\n") {
		t.Fatalf("got %q", stderr.String())
	}
}

func TestRunMismatchedBraces(t *testing.T) {
	withPrograms(t, writeProgram(t, "open.bf", "+.[["))
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	code := run(t.Context(), newTestScope(t), nil, stdout, stderr)
	if code != 1 {
		t.Fatalf("got %d", code)
	}
	if stdout.Len() != 0 {
		t.Fatalf("got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "mismatched braces") {
		t.Fatalf("got %q", stderr.String())
	}
}

func TestRunProgramChecks(t *testing.T) {
	path := writeProgram(t, "mul.bf", "+++[>++<-]>.")
	newTestScope(t).Fork(
		func() bfconfigs.Checks {
			return bfconfigs.Checks{
				"tape == [0, 6]",
				"pointer == 1",
				"output == '\\x06'",
			}
		},
	).Call(func(
		runProgram RunProgram,
	) {
		stdout := new(bytes.Buffer)
		run, err := runProgram(t.Context(), path, nil, stdout)
		if err != nil {
			t.Fatal(err)
		}
		if run.Steps == 0 || run.OutputBytes != 1 {
			t.Fatalf("got %+v", run)
		}
	})

	newTestScope(t).Fork(
		func() bfconfigs.Checks {
			return bfconfigs.Checks{
				"cell(1) == 7",
			}
		},
	).Call(func(
		runProgram RunProgram,
	) {
		_, err := runProgram(t.Context(), path, nil, new(bytes.Buffer))
		if !errors.Is(err, ErrCheckFailed) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestRunProgramInputExhausted(t *testing.T) {
	path := writeProgram(t, "read.bf", ",,")
	newTestScope(t).Call(func(
		runProgram RunProgram,
	) {
		run, err := runProgram(t.Context(), path, strings.NewReader("x"), new(bytes.Buffer))
		if !errors.Is(err, taibf.ErrInputExhausted) {
			t.Fatalf("got %v", err)
		}
		if run.Status != "input_exhausted" {
			t.Fatalf("got %v", run.Status)
		}
	})
}

func TestStateSnapshots(t *testing.T) {
	snapshot := filepath.Join(t.TempDir(), "state.gob")
	setFlag(t, saveStatePath, snapshot)
	newTestScope(t).Call(func(
		runProgram RunProgram,
	) {
		if _, err := runProgram(t.Context(), writeProgram(t, "a.bf", "+++>++"), nil, new(bytes.Buffer)); err != nil {
			t.Fatal(err)
		}
	})

	setFlag(t, saveStatePath, "")
	setFlag(t, loadStatePath, snapshot)
	newTestScope(t).Call(func(
		runProgram RunProgram,
	) {
		stdout := new(bytes.Buffer)
		if _, err := runProgram(t.Context(), writeProgram(t, "b.bf", ".<."), nil, stdout); err != nil {
			t.Fatal(err)
		}
		if stdout.String() != "\x02\x03\n" {
			t.Fatalf("got %q", stdout.String())
		}
	})
}

func TestHistoryAndReport(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "history.db")
	scope := newTestScope(t).Fork(
		func() bfconfigs.HistoryDSN {
			return bfconfigs.HistoryDSN(dsn)
		},
	)
	withPrograms(t, writeProgram(t, "ok.bf", "+."))
	setFlag(t, reportFlag, true)
	stderr := new(bytes.Buffer)
	if code := run(t.Context(), scope, nil, new(bytes.Buffer), stderr); code != 0 {
		t.Fatalf("got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "status: ok") {
		t.Fatalf("got %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "output_bytes: 1") {
		t.Fatalf("got %q", stderr.String())
	}

	// a fresh scope reopens the database
	programs = nil
	setFlag(t, reportFlag, false)
	setFlag(t, historySize, 5)
	stdout := new(bytes.Buffer)
	scope = newTestScope(t).Fork(
		func() bfconfigs.HistoryDSN {
			return bfconfigs.HistoryDSN(dsn)
		},
	)
	if code := run(t.Context(), scope, nil, stdout, new(bytes.Buffer)); code != 0 {
		t.Fatalf("got %d", code)
	}
	if !strings.Contains(stdout.String(), "- id: 1") {
		t.Fatalf("got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "ok.bf") {
		t.Fatalf("got %q", stdout.String())
	}
}

func TestHistoryDisabled(t *testing.T) {
	setFlag(t, historySize, 1)
	stderr := new(bytes.Buffer)
	if code := run(t.Context(), newTestScope(t), nil, new(bytes.Buffer), stderr); code != 1 {
		t.Fatalf("got %d", code)
	}
	if !strings.Contains(stderr.String(), ErrHistoryDisabled.Error()) {
		t.Fatalf("got %q", stderr.String())
	}
}

func TestCaptureOutput(t *testing.T) {
	stdout := new(bytes.Buffer)
	w, captured := captureOutput(stdout, false)
	if captured != nil {
		t.Fatal("captured without inspection")
	}
	if w != io.Writer(stdout) {
		t.Fatal("stdout should pass through")
	}
	vm := &taibf.VM{
		Output:   w,
		MaxSteps: 3000,
	}
	if err := vm.Run(t.Context(), "+[.]", taibf.NewState()); !errors.Is(err, taibf.ErrStepLimit) {
		t.Fatalf("got %v", err)
	}
	if stdout.Len() != 1000 {
		t.Fatalf("got %d", stdout.Len())
	}
	if captured.Bytes() != nil {
		t.Fatal("nothing should be retained")
	}

	w, captured = captureOutput(stdout, true)
	if _, err := w.Write([]byte("ok")); err != nil {
		t.Fatal(err)
	}
	if string(captured.Bytes()) != "ok" {
		t.Fatalf("got %q", captured.Bytes())
	}
}

func TestRunProgramWithoutChecks(t *testing.T) {
	path := writeProgram(t, "loud.bf", "++++++[>++++++++<-]>[.-]")
	newTestScope(t).Call(func(
		runProgram RunProgram,
	) {
		stdout := new(bytes.Buffer)
		run, err := runProgram(t.Context(), path, nil, stdout)
		if err != nil {
			t.Fatal(err)
		}
		if run.OutputBytes != 48 || stdout.Len() != 49 {
			t.Fatalf("got %d %d", run.OutputBytes, stdout.Len())
		}
	})
}
