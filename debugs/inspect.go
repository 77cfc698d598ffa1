package debugs

import (
	"context"
	"fmt"

	"github.com/reusee/taibf/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Inspect evaluates a starlark expression against globals and reports its truth.
type Inspect func(ctx context.Context, expr string, globals map[string]any) (bool, error)

func (Module) Inspect(
	logger logs.Logger,
) Inspect {
	return func(ctx context.Context, expr string, globals map[string]any) (bool, error) {
		env := make(starlark.StringDict, len(globals))
		for name, value := range globals {
			env[name] = toStarlarkValue(value)
		}
		thread := &starlark.Thread{
			Name: "inspect",
		}
		value, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, "inspect", expr, env)
		if err != nil {
			return false, fmt.Errorf("inspect %q: %w", expr, err)
		}
		ok := bool(value.Truth())
		logger.DebugContext(ctx, "inspect",
			"expr", expr,
			"value", value.String(),
			"ok", ok,
		)
		return ok, nil
	}
}
