package dbq

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Customer struct {
	ID             pgtype.UUID
	AuthProviderID string
	Email          string
	Name           string
	Code           string
	CreatedAt      pgtype.Timestamptz
}

type Reward struct {
	ID         pgtype.UUID
	BusinessID pgtype.UUID
	Name       string
	CostPoints int32
	RewardType string
	ExpireDays pgtype.Int4
	IsActive   bool
	CreatedAt  pgtype.Timestamptz
}

type Balance struct {
	ID          pgtype.UUID
	CustomerID  pgtype.UUID
	RewardID    pgtype.UUID
	Value       int32
	LastUpdated pgtype.Timestamptz
}

type ScanEvent struct {
	ID             pgtype.UUID
	CustomerID     pgtype.UUID
	RewardID       pgtype.UUID
	BusinessUserID pgtype.UUID
	Code           string
	PointsChange   int32
	ScannedAt      pgtype.Timestamptz
}

type Redemption struct {
	ID             pgtype.UUID
	CustomerID     pgtype.UUID
	RewardID       pgtype.UUID
	BusinessUserID pgtype.UUID
	RedeemedAt     pgtype.Timestamptz
}
