package debugs

import "github.com/reusee/taibf/taibf"

// StateGlobals exposes a final state to inspection scripts.
func StateGlobals(state *taibf.State, output []byte) map[string]any {
	cells := state.Tape.Cells()
	tape := make([]int, len(cells))
	for i, c := range cells {
		tape[i] = int(c)
	}
	return map[string]any{
		"tape":    tape,
		"pointer": state.Pointer,
		"output":  string(output),
		"cell": func(i int) int {
			if i < 0 {
				return 0
			}
			return int(state.Tape.Read(i))
		},
	}
}
