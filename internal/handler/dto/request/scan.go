package request

import (
	"perks-ledger/internal/usecase/commands"

	"github.com/google/uuid"
)

type ProcessScanRequest struct {
	Code         string    `json:"code" binding:"required"`
	RewardID     uuid.UUID `json:"reward_id" binding:"required"`
	PointsChange int       `json:"points_change"`
	// ClaimUnits is range-checked by the ledger so the message stays uniform.
	ClaimUnits int `json:"claim_units"`
}

func (r *ProcessScanRequest) ToCommand(actorID uuid.UUID) commands.ScanRequest {
	return commands.ScanRequest{
		CustomerCode: r.Code,
		RewardID:     r.RewardID,
		PointsChange: r.PointsChange,
		ClaimUnits:   r.ClaimUnits,
		ActorID:      &actorID,
	}
}
