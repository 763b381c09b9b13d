package dbq

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getRewardByID = `
SELECT id, business_id, name, cost_points, reward_type, expire_days, is_active, created_at
FROM rewards
WHERE id = $1`

func (q *Queries) GetRewardByID(ctx context.Context, id pgtype.UUID) (Reward, error) {
	var r Reward
	err := q.db.QueryRow(ctx, getRewardByID, id).Scan(
		&r.ID, &r.BusinessID, &r.Name, &r.CostPoints, &r.RewardType, &r.ExpireDays, &r.IsActive, &r.CreatedAt)
	return r, err
}
