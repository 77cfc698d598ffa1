package taibf

import (
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/logs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs bfconfigs.Module
}

type NewVM func(input io.Reader, output io.Writer) *VM

func (Module) NewVM(
	logger logs.Logger,
	maxSteps bfconfigs.MaxSteps,
) NewVM {
	return func(input io.Reader, output io.Writer) *VM {
		return &VM{
			Input:    input,
			Output:   output,
			Logger:   logger,
			MaxSteps: int64(maxSteps),
		}
	}
}
