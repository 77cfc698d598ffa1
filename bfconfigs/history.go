package bfconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

type HistoryDriver string

var _ configs.Configurable = HistoryDriver("")

func (HistoryDriver) ConfigExpr() string {
	return "history.driver"
}

// HistoryDSN is the data source of the run history database. Empty disables history.
type HistoryDSN string

var _ configs.Configurable = HistoryDSN("")

func (HistoryDSN) ConfigExpr() string {
	return "history.dsn"
}

var (
	historyDriverFlag = cmds.Var[string]("-history-driver", "sqlite3, mysql or postgres")
	historyDSNFlag    = cmds.Var[string]("-history-dsn", "record runs into this database")
)

func (Module) HistoryDriver(
	loader configs.Loader,
) HistoryDriver {
	return HistoryDriver(vars.FirstNonZero(
		*historyDriverFlag,
		configs.First[string](loader, "history.driver"),
		"sqlite3",
	))
}

func (Module) HistoryDSN(
	loader configs.Loader,
) HistoryDSN {
	return HistoryDSN(vars.FirstNonZero(
		*historyDSNFlag,
		configs.First[string](loader, "history.dsn"),
	))
}
