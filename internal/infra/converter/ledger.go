// Package converter maps between dbq rows and domain types.
package converter

import (
	"perks-ledger/internal/domain/customer"
	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/domain/reward"
	"perks-ledger/internal/infra/dbq"
	"perks-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDFromPgtype(pu pgtype.UUID) uuid.UUID {
	if !pu.Valid {
		return uuid.Nil
	}
	return uuid.UUID(pu.Bytes)
}

func CustomerFromRow(row dbq.Customer) *customer.Customer {
	return customer.Reconstruct(
		UUIDFromPgtype(row.ID),
		row.AuthProviderID,
		row.Email,
		row.Name,
		row.Code,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func CustomerToCreateParams(c *customer.Customer) dbq.CreateCustomerParams {
	return dbq.CreateCustomerParams{
		ID:             UUIDToPgtype(c.ID()),
		AuthProviderID: c.AuthProviderID(),
		Email:          c.Email().Value(),
		Name:           c.Name().Value(),
		Code:           c.Code().Value(),
		CreatedAt:      pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func RewardFromRow(row dbq.Reward) *reward.Reward {
	return reward.Reconstruct(
		UUIDFromPgtype(row.ID),
		UUIDFromPgtype(row.BusinessID),
		row.Name,
		int(row.CostPoints),
		reward.Type(row.RewardType),
		pgconv.IntPtrFromPgtype(row.ExpireDays),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func BalanceFromRow(row dbq.Balance) *ledger.Balance {
	return ledger.ReconstructBalance(
		UUIDFromPgtype(row.ID),
		UUIDFromPgtype(row.CustomerID),
		UUIDFromPgtype(row.RewardID),
		int(row.Value),
		pgconv.TimeFromPgtype(row.LastUpdated),
	)
}

func BalanceToUpdateParams(b *ledger.Balance) dbq.UpdateBalanceParams {
	return dbq.UpdateBalanceParams{
		ID: UUIDToPgtype(b.ID()),
		// #nosec G115 -- ledger.MaxBalance keeps values within int32
		Value:       int32(b.Value()),
		LastUpdated: pgconv.TimeToPgtype(b.LastUpdated()),
	}
}

func ScanEventFromRow(row dbq.ScanEvent) *ledger.ScanEvent {
	return ledger.ReconstructScanEvent(
		UUIDFromPgtype(row.ID),
		UUIDFromPgtype(row.CustomerID),
		UUIDFromPgtype(row.RewardID),
		pgconv.UUIDPtrFromPgtype(row.BusinessUserID),
		row.Code,
		int(row.PointsChange),
		pgconv.TimeFromPgtype(row.ScannedAt),
	)
}

func ScanEventToRow(e *ledger.ScanEvent) dbq.ScanEvent {
	return dbq.ScanEvent{
		ID:             UUIDToPgtype(e.ID()),
		CustomerID:     UUIDToPgtype(e.CustomerID()),
		RewardID:       UUIDToPgtype(e.RewardID()),
		BusinessUserID: pgconv.UUIDPtrToPgtype(e.BusinessUserID()),
		Code:           e.Code(),
		// #nosec G115 -- ledger.MaxPointsChange keeps deltas within int32
		PointsChange: int32(e.PointsChange()),
		ScannedAt:    pgconv.TimeToPgtype(e.ScannedAt()),
	}
}

func RedemptionsToRows(rs []*ledger.Redemption) []dbq.Redemption {
	rows := make([]dbq.Redemption, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, dbq.Redemption{
			ID:             UUIDToPgtype(r.ID()),
			CustomerID:     UUIDToPgtype(r.CustomerID()),
			RewardID:       UUIDToPgtype(r.RewardID()),
			BusinessUserID: pgconv.UUIDPtrToPgtype(r.BusinessUserID()),
			RedeemedAt:     pgconv.TimeToPgtype(r.RedeemedAt()),
		})
	}
	return rows
}
