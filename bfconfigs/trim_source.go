package bfconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

// TrimSource strips surrounding whitespace from program text before running.
type TrimSource bool

var _ configs.Configurable = TrimSource(false)

func (TrimSource) ConfigExpr() string {
	return "trim_source"
}

var trimSourceFlag = cmds.Var[string]("-trim", "trim program text, yes or no")

func (Module) TrimSource(
	loader configs.Loader,
) TrimSource {
	if v, ok := vars.ParseBool(*trimSourceFlag); ok {
		return TrimSource(v)
	}
	if v, ok := configs.Lookup[bool](loader, "trim_source"); ok {
		return TrimSource(v)
	}
	return true
}
