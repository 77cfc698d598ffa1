package taibf

import (
	"context"
	"io"
)

func (v *VM) dispatch(ctx context.Context, symbols []rune, brackets *Brackets, state *State, stats *Stats) error {
	input := v.Input
	if input == nil {
		input = eofReader{}
	}
	output := v.Output
	if output == nil {
		output = io.Discard
	}

	pc := 0
	for pc < len(symbols) {
		if v.MaxSteps > 0 && stats.Steps >= v.MaxSteps {
			return withPos(ErrStepLimit, symbols, pc)
		}
		stats.Steps++

		switch symbols[pc] {

		case '+':
			state.Increment()

		case '-':
			state.Decrement()

		case '>':
			state.MoveRight()

		case '<':
			if err := state.MoveLeft(); err != nil {
				return withPos(err, symbols, pc)
			}

		case ',':
			if err := state.ReadInput(input); err != nil {
				return withPos(err, symbols, pc)
			}

		case '.':
			if err := state.WriteOutput(output); err != nil {
				return withPos(err, symbols, pc)
			}
			stats.OutputBytes++

		case '[':
			if state.Current() == 0 {
				pc = brackets.mustMatch(pc)
			}

		case ']':
			if err := ctx.Err(); err != nil {
				return withPos(err, symbols, pc)
			}
			// back onto the open bracket so it re-tests the cell
			pc = brackets.mustMatch(pc)
			continue

		}
		pc++
	}
	return nil
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) {
	return 0, io.EOF
}
