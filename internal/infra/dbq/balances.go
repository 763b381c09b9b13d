package dbq

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const balanceColumns = `id, customer_id, reward_id, value, last_updated`

func scanBalance(row interface{ Scan(...any) error }) (Balance, error) {
	var b Balance
	err := row.Scan(&b.ID, &b.CustomerID, &b.RewardID, &b.Value, &b.LastUpdated)
	return b, err
}

const getBalance = `SELECT ` + balanceColumns + ` FROM balances WHERE customer_id = $1 AND reward_id = $2`

func (q *Queries) GetBalance(ctx context.Context, customerID, rewardID pgtype.UUID) (Balance, error) {
	return scanBalance(q.db.QueryRow(ctx, getBalance, customerID, rewardID))
}

// Concurrent first accruals race on the unique pair; the loser inserts
// nothing and then waits on the winner's row lock.
const ensureBalance = `
INSERT INTO balances (id, customer_id, reward_id, value, last_updated)
VALUES ($1, $2, $3, 0, $4)
ON CONFLICT (customer_id, reward_id) DO NOTHING`

type EnsureBalanceParams struct {
	ID          pgtype.UUID
	CustomerID  pgtype.UUID
	RewardID    pgtype.UUID
	LastUpdated pgtype.Timestamptz
}

func (q *Queries) EnsureBalance(ctx context.Context, arg EnsureBalanceParams) error {
	_, err := q.db.Exec(ctx, ensureBalance, arg.ID, arg.CustomerID, arg.RewardID, arg.LastUpdated)
	return err
}

const lockBalance = `SELECT ` + balanceColumns + ` FROM balances WHERE customer_id = $1 AND reward_id = $2 FOR UPDATE`

func (q *Queries) LockBalance(ctx context.Context, customerID, rewardID pgtype.UUID) (Balance, error) {
	return scanBalance(q.db.QueryRow(ctx, lockBalance, customerID, rewardID))
}

const updateBalance = `UPDATE balances SET value = $2, last_updated = $3 WHERE id = $1`

type UpdateBalanceParams struct {
	ID          pgtype.UUID
	Value       int32
	LastUpdated pgtype.Timestamptz
}

func (q *Queries) UpdateBalance(ctx context.Context, arg UpdateBalanceParams) (int64, error) {
	tag, err := q.db.Exec(ctx, updateBalance, arg.ID, arg.Value, arg.LastUpdated)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const expireBalance = `
UPDATE balances
SET value = 0, last_updated = $3
WHERE id = $1 AND value <> 0 AND last_updated = $2`

type ExpireBalanceParams struct {
	ID       pgtype.UUID
	Observed pgtype.Timestamptz
	Now      pgtype.Timestamptz
}

func (q *Queries) ExpireBalance(ctx context.Context, arg ExpireBalanceParams) (int64, error) {
	tag, err := q.db.Exec(ctx, expireBalance, arg.ID, arg.Observed, arg.Now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listCustomerBalances = `
SELECT b.id, b.customer_id, b.reward_id, b.value, b.last_updated,
       r.id, r.business_id, r.name, r.cost_points, r.reward_type, r.expire_days, r.is_active, r.created_at,
       biz.name, c.name
FROM balances b
JOIN rewards r ON r.id = b.reward_id
JOIN businesses biz ON biz.id = r.business_id
LEFT JOIN business_categories c ON c.id = biz.category_id
WHERE b.customer_id = $1
ORDER BY b.last_updated DESC, b.id`

type ListCustomerBalancesRow struct {
	Balance      Balance
	Reward       Reward
	BusinessName string
	CategoryName pgtype.Text
}

func (q *Queries) ListCustomerBalances(ctx context.Context, customerID pgtype.UUID) ([]ListCustomerBalancesRow, error) {
	rows, err := q.db.Query(ctx, listCustomerBalances, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListCustomerBalancesRow
	for rows.Next() {
		var i ListCustomerBalancesRow
		if err := rows.Scan(
			&i.Balance.ID, &i.Balance.CustomerID, &i.Balance.RewardID, &i.Balance.Value, &i.Balance.LastUpdated,
			&i.Reward.ID, &i.Reward.BusinessID, &i.Reward.Name, &i.Reward.CostPoints, &i.Reward.RewardType,
			&i.Reward.ExpireDays, &i.Reward.IsActive, &i.Reward.CreatedAt,
			&i.BusinessName, &i.CategoryName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
