package dbq

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertScanEvent = `
INSERT INTO scan_events (id, customer_id, reward_id, business_user_id, code, points_change, scanned_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (q *Queries) InsertScanEvent(ctx context.Context, e ScanEvent) error {
	_, err := q.db.Exec(ctx, insertScanEvent,
		e.ID, e.CustomerID, e.RewardID, e.BusinessUserID, e.Code, e.PointsChange, e.ScannedAt)
	return err
}

// CopyRedemptions bulk-inserts claimed units with the COPY protocol.
func (q *Queries) CopyRedemptions(ctx context.Context, rs []Redemption) (int64, error) {
	return q.db.CopyFrom(ctx,
		pgx.Identifier{"redemptions"},
		[]string{"id", "customer_id", "reward_id", "business_user_id", "redeemed_at"},
		pgx.CopyFromSlice(len(rs), func(i int) ([]any, error) {
			r := rs[i]
			return []any{r.ID, r.CustomerID, r.RewardID, r.BusinessUserID, r.RedeemedAt}, nil
		}),
	)
}

const getScanEvent = `
SELECT id, customer_id, reward_id, business_user_id, code, points_change, scanned_at
FROM scan_events
WHERE id = $1 AND reward_id = $2`

func (q *Queries) GetScanEvent(ctx context.Context, id, rewardID pgtype.UUID) (ScanEvent, error) {
	var e ScanEvent
	err := q.db.QueryRow(ctx, getScanEvent, id, rewardID).Scan(
		&e.ID, &e.CustomerID, &e.RewardID, &e.BusinessUserID, &e.Code, &e.PointsChange, &e.ScannedAt)
	return e, err
}

const lastScanAt = `SELECT max(scanned_at) FROM scan_events WHERE customer_id = $1 AND reward_id = $2`

func (q *Queries) LastScanAt(ctx context.Context, customerID, rewardID pgtype.UUID) (pgtype.Timestamptz, error) {
	var t pgtype.Timestamptz
	err := q.db.QueryRow(ctx, lastScanAt, customerID, rewardID).Scan(&t)
	return t, err
}

const lastRedemptionAt = `SELECT max(redeemed_at) FROM redemptions WHERE customer_id = $1 AND reward_id = $2`

func (q *Queries) LastRedemptionAt(ctx context.Context, customerID, rewardID pgtype.UUID) (pgtype.Timestamptz, error) {
	var t pgtype.Timestamptz
	err := q.db.QueryRow(ctx, lastRedemptionAt, customerID, rewardID).Scan(&t)
	return t, err
}

const mostRecentScanAtBusiness = `
SELECT max(s.scanned_at)
FROM scan_events s
JOIN rewards r ON r.id = s.reward_id
WHERE s.customer_id = $1 AND r.business_id = $2`

func (q *Queries) MostRecentScanAtBusiness(ctx context.Context, customerID, businessID pgtype.UUID) (pgtype.Timestamptz, error) {
	var t pgtype.Timestamptz
	err := q.db.QueryRow(ctx, mostRecentScanAtBusiness, customerID, businessID).Scan(&t)
	return t, err
}

const activitySince = `
SELECT
    (SELECT COALESCE(SUM(points_change) FILTER (WHERE points_change > 0), 0)
       FROM scan_events WHERE customer_id = $1 AND scanned_at >= $2),
    (SELECT COUNT(*) FROM scan_events WHERE customer_id = $1 AND scanned_at >= $2),
    (SELECT COUNT(*) FROM redemptions WHERE customer_id = $1 AND redeemed_at >= $2)`

type ActivitySinceRow struct {
	PointsEarned int64
	Scans        int64
	Redemptions  int64
}

func (q *Queries) ActivitySince(ctx context.Context, customerID pgtype.UUID, since pgtype.Timestamptz) (ActivitySinceRow, error) {
	var i ActivitySinceRow
	err := q.db.QueryRow(ctx, activitySince, customerID, since).Scan(&i.PointsEarned, &i.Scans, &i.Redemptions)
	return i, err
}

const lifetimeTotals = `
SELECT
    (SELECT COUNT(*) FROM redemptions WHERE customer_id = $1),
    (SELECT COALESCE(SUM(points_change) FILTER (WHERE points_change > 0), 0)
       FROM scan_events WHERE customer_id = $1)`

type LifetimeTotalsRow struct {
	Redemptions  int64
	PointsEarned int64
}

func (q *Queries) LifetimeTotals(ctx context.Context, customerID pgtype.UUID) (LifetimeTotalsRow, error) {
	var i LifetimeTotalsRow
	err := q.db.QueryRow(ctx, lifetimeTotals, customerID).Scan(&i.Redemptions, &i.PointsEarned)
	return i, err
}
