package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/histories"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/taibf"
)

var (
	programs    []string
	reportFlag  = cmds.Switch("-report", "print a YAML report of each run to stderr")
	historySize = cmds.Var[int]("-history", "list the latest recorded runs")
)

func init() {
	cmds.Fallback(cmds.Func(func(ref string) {
		programs = append(programs, ref)
	}).Desc("program file or http(s) URL, may repeat"))
}

func main() {
	cmds.Execute(os.Args[1:])
	if len(programs) == 0 && *historySize == 0 {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	code := run(ctx, scope, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, scope dscope.Scope, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	scope.Call(func(
		runProgram RunProgram,
		getRecorder histories.GetRecorder,
		rawInput bfconfigs.RawInput,
		logger logs.Logger,
	) {
		defer func() {
			recorder, err := getRecorder(ctx)
			if err == nil && recorder != nil {
				if err := recorder.Close(); err != nil {
					logger.WarnContext(ctx, "close history", "error", err)
				}
			}
		}()

		if *historySize > 0 {
			if err := listHistory(ctx, getRecorder, *historySize, stdout); err != nil {
				fmt.Fprintf(stderr, "taibf: %v\n", err)
				code = 1
				return
			}
		}

		if rawInput {
			var cancel context.CancelFunc
			ctx, cancel = context.WithCancel(ctx)
			defer cancel()
			var restore func()
			var err error
			stdin, restore, err = makeRawInput(stdin, cancel)
			if err != nil {
				fmt.Fprintf(stderr, "taibf: %v\n", err)
				code = 1
				return
			}
			defer restore()
		}

		for _, ref := range programs {
			result, err := runProgram(ctx, ref, stdin, stdout)
			if *reportFlag && result != nil {
				if err := writeReport(stderr, result); err != nil {
					logger.WarnContext(ctx, "write report", "error", err)
				}
			}
			if err != nil {
				reportError(stderr, ref, err)
				code = 1
				return
			}
		}
	})
	return
}

func reportError(w io.Writer, ref string, err error) {
	fmt.Fprintf(w, "taibf: %s: %v\n", ref, err)
	var posErr taibf.PosError
	if errors.As(err, &posErr) {
		fmt.Fprint(w, posErr.Caret())
	}
}
