package bfconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
)

// RawInput puts a terminal stdin into raw mode so each key press reaches ',' at once.
type RawInput bool

var _ configs.Configurable = RawInput(false)

func (RawInput) ConfigExpr() string {
	return "raw_input"
}

var rawInputFlag = cmds.Switch("-raw", "read terminal input without line buffering, Ctrl-C then cancels at the next ','")

func (Module) RawInput(
	loader configs.Loader,
) RawInput {
	return RawInput(*rawInputFlag || configs.First[bool](loader, "raw_input"))
}
