package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/quietharbor/haven/internal/db"
)

// FailOnNthExecUoW injects an error on the Nth write inside a
// transaction, counting ExecContext calls from 1. Reads pass through
// untouched. Rollback tests use it to kill a multi-write operation
// partway, for example letting the outcome insert succeed and failing
// the profile bump that follows it.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	counted := &countingExec{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, counted); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type countingExec struct {
	db.DBTX
	n      atomic.Int32
	failOn int32
	err    error
}

func (c *countingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if c.n.Add(1) == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
