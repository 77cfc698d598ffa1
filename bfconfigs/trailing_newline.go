package bfconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

// TrailingNewline prints a newline after each program's output.
type TrailingNewline bool

var _ configs.Configurable = TrailingNewline(false)

func (TrailingNewline) ConfigExpr() string {
	return "trailing_newline"
}

var trailingNewlineFlag = cmds.Var[string]("-newline", "print a newline after each program, yes or no")

func (Module) TrailingNewline(
	loader configs.Loader,
) TrailingNewline {
	if v, ok := vars.ParseBool(*trailingNewlineFlag); ok {
		return TrailingNewline(v)
	}
	if v, ok := configs.Lookup[bool](loader, "trailing_newline"); ok {
		return TrailingNewline(v)
	}
	return true
}
