package memstore

import (
	"perks-ledger/internal/domain/customer"
	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/domain/reward"

	"github.com/google/uuid"
)

func parseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func parseOptionalID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id := parseID(s)
	return &id
}

func optionalIDString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func customerFromRow(row *customerRow) *customer.Customer {
	return customer.Reconstruct(parseID(row.ID), row.AuthProviderID, row.Email, row.Name, row.Code, row.CreatedAt)
}

func customerToRow(c *customer.Customer) *customerRow {
	return &customerRow{
		ID:             c.ID().String(),
		AuthProviderID: c.AuthProviderID(),
		Email:          c.Email().Value(),
		Name:           c.Name().Value(),
		Code:           c.Code().Value(),
		CreatedAt:      c.CreatedAt(),
	}
}

func rewardFromRow(row *rewardRow) *reward.Reward {
	var expire *int
	if row.ExpireDays != nil {
		v := *row.ExpireDays
		expire = &v
	}
	return reward.Reconstruct(parseID(row.ID), parseID(row.BusinessID), row.Name, row.CostPoints,
		reward.Type(row.Type), expire, row.IsActive, row.CreatedAt)
}

func balanceFromRow(row *balanceRow) *ledger.Balance {
	return ledger.ReconstructBalance(parseID(row.ID), parseID(row.CustomerID), parseID(row.RewardID), row.Value, row.LastUpdated)
}

func balanceToRow(b *ledger.Balance) *balanceRow {
	return &balanceRow{
		ID:          b.ID().String(),
		CustomerID:  b.CustomerID().String(),
		RewardID:    b.RewardID().String(),
		Value:       b.Value(),
		LastUpdated: b.LastUpdated(),
	}
}
