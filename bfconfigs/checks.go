package bfconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
)

// Checks are inspection expressions evaluated against the final state of every run.
type Checks []string

var checkFlags = cmds.Collect[string]("-check", "fail unless this starlark expression holds after the run, may repeat")

func (Module) Checks(
	loader configs.Loader,
) (ret Checks) {
	ret = append(ret, *checkFlags...)
	for checks := range configs.All[[]string](loader, "checks") {
		ret = append(ret, checks...)
	}
	return
}
