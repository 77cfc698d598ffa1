package taibf

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/reusee/taibf/logs"
)

// VM executes programs against caller-owned states.
type VM struct {
	Input  io.Reader
	Output io.Writer
	Logger logs.Logger
	// MaxSteps bounds the number of dispatched instructions; zero means unbounded.
	MaxSteps int64
}

type Stats struct {
	Steps       int64
	OutputBytes int64
	Duration    time.Duration
}

// Run executes program against state using stdin and stdout.
func Run(program string, state *State) error {
	vm := &VM{
		Input:  os.Stdin,
		Output: os.Stdout,
	}
	return vm.Run(context.Background(), program, state)
}

func (v *VM) Run(ctx context.Context, program string, state *State) error {
	_, err := v.Exec(ctx, program, state)
	return err
}

func (v *VM) Exec(ctx context.Context, program string, state *State) (stats Stats, err error) {
	symbols := []rune(program)
	start := time.Now()
	defer func() {
		stats.Duration = time.Since(start)
		if v.Logger != nil {
			v.Logger.DebugContext(ctx, "run finished",
				"steps", stats.Steps,
				"output", stats.OutputBytes,
				"pointer", state.Pointer,
				"cells", state.Tape.Len(),
				"error", err,
			)
		}
	}()

	brackets, err := ParseBrackets(symbols)
	if err != nil {
		return stats, err
	}
	if v.Logger != nil {
		v.Logger.DebugContext(ctx, "brackets parsed",
			"length", len(symbols),
			"loops", len(brackets.pairs),
		)
	}

	err = v.dispatch(ctx, symbols, brackets, state, &stats)
	return stats, err
}
