package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"perks-ledger/internal/domain/customer"
	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/domain/reward"
	"perks-ledger/internal/infra/dbq"
	"perks-ledger/internal/infra/readstore"
	"perks-ledger/internal/infra/repository"
	"perks-ledger/internal/pkg/errs"
	"perks-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries  = 3
	backoffBase = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *dbq.Queries
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		q:      dbq.New(pool),
		logger: logger,
	}
}

// ReadCommitted is enough: every read-modify-write goes through a row lock.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.logger)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			q:      u.q.WithTx(pgxTx),
			logger: u.logger,
		}

		err = callInTx(ctx, pgxTx, tx, fn)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		// Rollback must run even if ctx is already cancelled.
		if rollbackErr := pgxTx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt) {
			if isRetryableError(err) {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, backoffBase)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

// callInTx rolls pgxTx back and re-panics if fn panics, so the connection
// returns to the pool.
func callInTx(ctx context.Context, pgxTx pgx.Tx, tx shared.Tx, fn func(ctx context.Context, tx shared.Tx) error) error {
	defer func() {
		if r := recover(); r != nil {
			_ = pgxTx.Rollback(context.WithoutCancel(ctx))
			panic(r)
		}
	}()
	return fn(ctx, tx)
}

func shouldRetry(err error, attempt int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	q      *dbq.Queries
	logger *slog.Logger

	// Lazy-initialized repositories
	balanceRepo  shared.BalanceRepository
	activityRepo shared.ActivityRepository
	customerRepo shared.CustomerRepository
	commandReads shared.CommandReads
}

func (t *pgTx) Balances() shared.BalanceRepository {
	if t.balanceRepo == nil {
		t.balanceRepo = repository.NewBalanceRepository(t.q, t.logger)
	}
	return t.balanceRepo
}

func (t *pgTx) Activity() shared.ActivityRepository {
	if t.activityRepo == nil {
		t.activityRepo = repository.NewActivityRepository(t.q, t.logger)
	}
	return t.activityRepo
}

func (t *pgTx) Customers() shared.CustomerRepository {
	if t.customerRepo == nil {
		t.customerRepo = repository.NewCustomerRepository(t.q, t.logger)
	}
	return t.customerRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.q, t.logger)
	}
	return t.commandReads
}

type commandReads struct {
	customers *readstore.CustomerReadStore
	rewards   *readstore.RewardReadStore
	balances  *readstore.BalanceReadStore
}

func newCommandReads(q *dbq.Queries, logger *slog.Logger) *commandReads {
	return &commandReads{
		customers: readstore.NewCustomerReadStore(q, logger),
		rewards:   readstore.NewRewardReadStore(q, logger),
		balances:  readstore.NewBalanceReadStore(q, logger),
	}
}

func (r *commandReads) CustomerByCode(ctx context.Context, code string) (*customer.Customer, error) {
	return r.customers.FindByCode(ctx, code)
}

func (r *commandReads) CustomerByAuthID(ctx context.Context, authProviderID string) (*customer.Customer, error) {
	return r.customers.FindByAuthID(ctx, authProviderID)
}

func (r *commandReads) CodeExists(ctx context.Context, code string) (bool, error) {
	return r.customers.CodeExists(ctx, code)
}

func (r *commandReads) RewardByID(ctx context.Context, id uuid.UUID) (*reward.Reward, error) {
	return r.rewards.FindByID(ctx, id)
}

func (r *commandReads) FindBalance(ctx context.Context, customerID, rewardID uuid.UUID) (*ledger.Balance, error) {
	return r.balances.Find(ctx, customerID, rewardID)
}

func (r *commandReads) LastScanAt(ctx context.Context, customerID, rewardID uuid.UUID) (*time.Time, error) {
	return r.balances.LastScanAt(ctx, customerID, rewardID)
}

func (r *commandReads) LastRedemptionAt(ctx context.Context, customerID, rewardID uuid.UUID) (*time.Time, error) {
	return r.balances.LastRedemptionAt(ctx, customerID, rewardID)
}
