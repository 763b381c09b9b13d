package memstore

import (
	"context"
	"log/slog"
	"time"

	"perks-ledger/internal/domain/customer"
	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/infra"
	"perks-ledger/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
)

type balanceWriter struct {
	txn    *memdb.Txn
	logger *slog.Logger
}

func (w *balanceWriter) Acquire(ctx context.Context, customerID, rewardID uuid.UUID, now time.Time) (*ledger.Balance, error) {
	if err := ctx.Err(); err != nil {
		return nil, failure(w.logger, "failed to lock balance", err)
	}
	raw, err := w.txn.First(tableBalances, "pair", customerID.String(), rewardID.String())
	if err != nil {
		return nil, failure(w.logger, "failed to lock balance", err)
	}
	if raw != nil {
		return balanceFromRow(raw.(*balanceRow)), nil
	}

	if err := w.requireRow(tableCustomers, customerID, "customer"); err != nil {
		return nil, err
	}
	if err := w.requireRow(tableRewards, rewardID, "reward"); err != nil {
		return nil, err
	}

	fresh := ledger.NewBalance(customerID, rewardID, now)
	if err := w.txn.Insert(tableBalances, balanceToRow(fresh)); err != nil {
		return nil, failure(w.logger, "failed to create balance", err)
	}
	return fresh, nil
}

func (w *balanceWriter) requireRow(table string, id uuid.UUID, what string) error {
	raw, err := w.txn.First(table, "id", id.String())
	if err != nil {
		return failure(w.logger, "failed to read "+table, err)
	}
	if raw == nil {
		return infra.WrapRepoErr(w.logger, infra.KindForeignKeyViolated, what+" does not exist", nil)
	}
	return nil
}

func (w *balanceWriter) Save(ctx context.Context, b *ledger.Balance) error {
	if b.Value() < 0 {
		return failure(w.logger, "failed to update balance", errs.Newf("negative balance %d", b.Value()))
	}
	raw, err := w.txn.First(tableBalances, "id", b.ID().String())
	if err != nil {
		return failure(w.logger, "failed to update balance", err)
	}
	if raw == nil {
		return notFound(w.logger, "balance not found")
	}
	if err := w.txn.Insert(tableBalances, balanceToRow(b)); err != nil {
		return failure(w.logger, "failed to update balance", err)
	}
	return nil
}

func (w *balanceWriter) ExpireIfUnchanged(ctx context.Context, id uuid.UUID, observed, now time.Time) (bool, error) {
	raw, err := w.txn.First(tableBalances, "id", id.String())
	if err != nil {
		return false, failure(w.logger, "failed to expire balance", err)
	}
	if raw == nil {
		return false, nil
	}
	cur := raw.(*balanceRow)
	if cur.Value == 0 || !cur.LastUpdated.Equal(observed) {
		return false, nil
	}
	next := *cur
	next.Value = 0
	next.LastUpdated = now
	if err := w.txn.Insert(tableBalances, &next); err != nil {
		return false, failure(w.logger, "failed to expire balance", err)
	}
	return true, nil
}

type activityWriter struct {
	txn    *memdb.Txn
	logger *slog.Logger
}

func (w *activityWriter) AppendScanEvent(ctx context.Context, e *ledger.ScanEvent) error {
	rawReward, err := w.txn.First(tableRewards, "id", e.RewardID().String())
	if err != nil {
		return failure(w.logger, "failed to append scan event", err)
	}
	if rawReward == nil {
		return infra.WrapRepoErr(w.logger, infra.KindForeignKeyViolated, "reward does not exist", nil)
	}
	row := &scanEventRow{
		ID:             e.ID().String(),
		CustomerID:     e.CustomerID().String(),
		RewardID:       e.RewardID().String(),
		BusinessID:     rawReward.(*rewardRow).BusinessID,
		BusinessUserID: optionalIDString(e.BusinessUserID()),
		Code:           e.Code(),
		PointsChange:   e.PointsChange(),
		ScannedAt:      e.ScannedAt(),
	}
	if err := w.txn.Insert(tableScanEvents, row); err != nil {
		return failure(w.logger, "failed to append scan event", err)
	}
	return nil
}

func (w *activityWriter) AppendRedemptions(ctx context.Context, rs []*ledger.Redemption) error {
	for _, r := range rs {
		row := &redemptionRow{
			ID:             r.ID().String(),
			CustomerID:     r.CustomerID().String(),
			RewardID:       r.RewardID().String(),
			BusinessUserID: optionalIDString(r.BusinessUserID()),
			RedeemedAt:     r.RedeemedAt(),
		}
		if err := w.txn.Insert(tableRedemptions, row); err != nil {
			return failure(w.logger, "failed to append redemptions", err)
		}
	}
	return nil
}

type customerWriter struct {
	txn    *memdb.Txn
	logger *slog.Logger
}

func (w *customerWriter) Create(ctx context.Context, c *customer.Customer) error {
	row := customerToRow(c)
	unique := []struct {
		index, value, constraint string
	}{
		{"auth", row.AuthProviderID, infra.ConstraintCustomerAuthID},
		{"email", row.Email, infra.ConstraintCustomerEmail},
		{"code", row.Code, infra.ConstraintCustomerCode},
	}
	for _, u := range unique {
		raw, err := w.txn.First(tableCustomers, u.index, u.value)
		if err != nil {
			return failure(w.logger, "failed to create customer", err)
		}
		if raw != nil {
			return duplicate(w.logger, u.constraint, "failed to create customer")
		}
	}
	if err := w.txn.Insert(tableCustomers, row); err != nil {
		return failure(w.logger, "failed to create customer", err)
	}
	return nil
}

func (w *customerWriter) UpdateName(ctx context.Context, c *customer.Customer) error {
	raw, err := w.txn.First(tableCustomers, "id", c.ID().String())
	if err != nil {
		return failure(w.logger, "failed to rename customer", err)
	}
	if raw == nil {
		return notFound(w.logger, "customer not found")
	}
	next := *raw.(*customerRow)
	next.Name = c.Name().Value()
	if err := w.txn.Insert(tableCustomers, &next); err != nil {
		return failure(w.logger, "failed to rename customer", err)
	}
	return nil
}

// Delete cascades like the Postgres foreign keys do.
func (w *customerWriter) Delete(ctx context.Context, id uuid.UUID) error {
	raw, err := w.txn.First(tableCustomers, "id", id.String())
	if err != nil {
		return failure(w.logger, "failed to delete customer", err)
	}
	if raw == nil {
		return notFound(w.logger, "customer not found")
	}
	for _, table := range []string{tableBalances, tableScanEvents, tableRedemptions} {
		if _, err := w.txn.DeleteAll(table, "customer", id.String()); err != nil {
			return failure(w.logger, "failed to delete customer ledger", err)
		}
	}
	if err := w.txn.Delete(tableCustomers, raw); err != nil {
		return failure(w.logger, "failed to delete customer", err)
	}
	return nil
}
