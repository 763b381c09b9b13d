// Package memstore is an in-process ledger store on go-memdb. It serves the
// same ports as the Postgres store for local runs and tests.
package memstore

import (
	"context"
	"log/slog"

	"perks-ledger/internal/infra"
	"perks-ledger/internal/pkg/errs"
	"perks-ledger/internal/usecase/shared"

	"github.com/hashicorp/go-memdb"
)

// Store holds a single writer at a time: memdb write transactions are
// exclusive, which gives every Within the isolation of a held row lock.
type Store struct {
	db     *memdb.MemDB
	logger *slog.Logger
}

func New(logger *slog.Logger) (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, errs.Wrap(err, "failed to create memory store")
	}
	return &Store{db: db, logger: logger}, nil
}

// UnitOfWork returns the store as a shared.UnitOfWork.
func (s *Store) UnitOfWork() shared.UnitOfWork {
	return s
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	txn := s.db.Txn(true)
	// Abort after Commit is a no-op; this releases the writer lock if fn panics.
	defer txn.Abort()

	tx := &memTx{txn: txn, logger: s.logger}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return s.Reads()
}

// Reads returns the read side of the store. Each call observes the latest
// committed state.
func (s *Store) Reads() *ReadStore {
	return &ReadStore{read: func() *memdb.Txn { return s.db.Txn(false) }, logger: s.logger}
}

type memTx struct {
	txn    *memdb.Txn
	logger *slog.Logger
}

func (t *memTx) Balances() shared.BalanceRepository   { return &balanceWriter{txn: t.txn, logger: t.logger} }
func (t *memTx) Activity() shared.ActivityRepository  { return &activityWriter{txn: t.txn, logger: t.logger} }
func (t *memTx) Customers() shared.CustomerRepository { return &customerWriter{txn: t.txn, logger: t.logger} }

// Reads inside a transaction see its own uncommitted writes.
func (t *memTx) Reads() shared.CommandReads {
	return &ReadStore{read: func() *memdb.Txn { return t.txn }, logger: t.logger}
}

func notFound(logger *slog.Logger, msg string) error {
	return infra.WrapRepoErr(logger, infra.KindNotFound, msg, nil)
}

func failure(logger *slog.Logger, msg string, err error) error {
	return infra.WrapRepoErr(logger, infra.KindDBFailure, msg, err)
}

func duplicate(logger *slog.Logger, constraint, msg string) error {
	return infra.WrapConstraintErr(logger, infra.KindDuplicateKey, constraint, msg, nil)
}
