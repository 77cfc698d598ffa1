package histories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/storages"
)

// Recorder stores runs in a SQL database.
type Recorder struct {
	db *storages.DB
}

var createTable = map[storages.Driver]string{
	storages.DriverSQLite: `create table if not exists taibf_runs (
		id integer primary key autoincrement,
		source text not null,
		hash text not null,
		status text not null,
		error text not null,
		steps integer not null,
		pointer integer not null,
		cells integer not null,
		output_bytes integer not null,
		started_at integer not null,
		duration integer not null
	)`,
	storages.DriverMySQL: `create table if not exists taibf_runs (
		id bigint auto_increment primary key,
		source text not null,
		hash varchar(64) not null,
		status varchar(32) not null,
		error text not null,
		steps bigint not null,
		pointer bigint not null,
		cells bigint not null,
		output_bytes bigint not null,
		started_at bigint not null,
		duration bigint not null
	)`,
	storages.DriverPostgres: `create table if not exists taibf_runs (
		id bigserial primary key,
		source text not null,
		hash text not null,
		status text not null,
		error text not null,
		steps bigint not null,
		pointer bigint not null,
		cells bigint not null,
		output_bytes bigint not null,
		started_at bigint not null,
		duration bigint not null
	)`,
}

func NewRecorder(ctx context.Context, db *storages.DB) (*Recorder, error) {
	ddl, ok := createTable[db.Driver]
	if !ok {
		return nil, fmt.Errorf("unsupported driver: %s", db.Driver)
	}
	if err := db.WithTx(ctx, func(tx storages.Tx) error {
		_, err := tx.Exec(ctx, ddl)
		return err
	}); err != nil {
		return nil, fmt.Errorf("create history table: %w", err)
	}
	return &Recorder{
		db: db,
	}, nil
}

func (r *Recorder) Record(ctx context.Context, run *Run) error {
	return r.db.WithTx(ctx, func(tx storages.Tx) error {
		_, err := tx.Exec(ctx, `insert into taibf_runs
			(source, hash, status, error, steps, pointer, cells, output_bytes, started_at, duration)
			values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.Source,
			run.Hash,
			string(run.Status),
			run.Error,
			run.Steps,
			run.Pointer,
			run.Cells,
			run.OutputBytes,
			run.StartedAt.UnixNano(),
			int64(run.Duration),
		)
		return err
	})
}

// Recent returns the latest n runs, newest first.
func (r *Recorder) Recent(ctx context.Context, n int) (ret []Run, err error) {
	err = r.db.WithTx(ctx, func(tx storages.Tx) error {
		rows, err := tx.Query(ctx, `select
			id, source, hash, status, error, steps, pointer, cells, output_bytes, started_at, duration
			from taibf_runs order by id desc limit ?`, n)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var run Run
			var status string
			var startedAt, duration int64
			if err := rows.Scan(
				&run.ID,
				&run.Source,
				&run.Hash,
				&status,
				&run.Error,
				&run.Steps,
				&run.Pointer,
				&run.Cells,
				&run.OutputBytes,
				&startedAt,
				&duration,
			); err != nil {
				return err
			}
			run.Status = Status(status)
			run.StartedAt = time.Unix(0, startedAt)
			run.Duration = time.Duration(duration)
			ret = append(ret, run)
		}
		return rows.Err()
	})
	return
}

func (r *Recorder) Close() error {
	return r.db.Close()
}

// GetRecorder opens the configured history database once. It returns nil when history is disabled.
type GetRecorder func(ctx context.Context) (*Recorder, error)

func (Module) GetRecorder(
	driver bfconfigs.HistoryDriver,
	dsn bfconfigs.HistoryDSN,
	logger logs.Logger,
) GetRecorder {
	var once sync.Once
	var recorder *Recorder
	var err error
	return func(ctx context.Context) (*Recorder, error) {
		once.Do(func() {
			if dsn == "" {
				return
			}
			var db *storages.DB
			db, err = storages.Open(ctx, storages.Driver(driver), string(dsn))
			if err != nil {
				return
			}
			recorder, err = NewRecorder(ctx, db)
			if err != nil {
				db.Close()
				return
			}
			logger.InfoContext(ctx, "history enabled", "driver", driver)
		})
		return recorder, err
	}
}
