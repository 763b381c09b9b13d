package response

import (
	"time"

	"perks-ledger/internal/domain/ledger"
	"perks-ledger/internal/usecase/commands"
	"perks-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type ScanEventResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"`
	RewardID       string    `json:"reward_id"`
	BusinessUserID *string   `json:"business_user_id"`
	Code           string    `json:"code"`
	PointsChange   int       `json:"points_change"`
	ScannedAt      time.Time `json:"scanned_at"`
}

type AvailableRewardResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	RequiredPoints int    `json:"required_points"`
}

type ClaimedRewardsResponse struct {
	Count               int      `json:"count"`
	RewardName          string   `json:"reward_name"`
	TotalPointsDeducted int      `json:"total_points_deducted"`
	RedemptionIDs       []string `json:"redemption_ids"`
}

type ScanResponse struct {
	CustomerID      string                   `json:"customer_id"`
	CustomerName    string                   `json:"customer_name"`
	RewardID        string                   `json:"reward_id"`
	Balance         int                      `json:"balance"`
	IsClaimable     bool                     `json:"is_claimable"`
	AffordableUnits int                      `json:"affordable_units"`
	ScanEvent       ScanEventResponse        `json:"scan_event"`
	AvailableReward *AvailableRewardResponse `json:"available_reward,omitempty"`
	ClaimedRewards  *ClaimedRewardsResponse  `json:"claimed_rewards,omitempty"`
}

func FromScanResult(r *commands.ScanResult) *ScanResponse {
	res := &ScanResponse{
		CustomerID:      r.CustomerID.String(),
		CustomerName:    r.CustomerName,
		RewardID:        r.Balance.RewardID().String(),
		Balance:         r.Balance.Value(),
		IsClaimable:     r.IsClaimable,
		AffordableUnits: r.AffordableUnits,
		ScanEvent:       fromScanEvent(r.Event),
	}
	if a := r.AvailableReward; a != nil {
		res.AvailableReward = &AvailableRewardResponse{
			ID:             a.ID.String(),
			Name:           a.Name,
			Type:           a.Type.String(),
			RequiredPoints: a.RequiredPoints,
		}
	}
	if cl := r.Claimed; cl != nil {
		res.ClaimedRewards = &ClaimedRewardsResponse{
			Count:               cl.Count,
			RewardName:          cl.RewardName,
			TotalPointsDeducted: cl.TotalPointsDeducted,
			RedemptionIDs:       idStrings(cl.RedemptionIDs),
		}
	}
	return res
}

func fromScanEvent(e *ledger.ScanEvent) ScanEventResponse {
	return ScanEventResponse{
		ID:             e.ID().String(),
		CustomerID:     e.CustomerID().String(),
		RewardID:       e.RewardID().String(),
		BusinessUserID: optionalID(e.BusinessUserID()),
		Code:           e.Code(),
		PointsChange:   e.PointsChange(),
		ScannedAt:      e.ScannedAt(),
	}
}

func FromScanEventView(v *queries.ScanEventView) *ScanEventResponse {
	return &ScanEventResponse{
		ID:             v.ID.String(),
		CustomerID:     v.CustomerID.String(),
		RewardID:       v.RewardID.String(),
		BusinessUserID: optionalID(v.BusinessUserID),
		Code:           v.Code,
		PointsChange:   v.PointsChange,
		ScannedAt:      v.ScannedAt,
	}
}

type BalanceInfoResponse struct {
	CustomerName    string `json:"customer_name"`
	RewardID        string `json:"reward_id"`
	RewardName      string `json:"reward_name"`
	CostPoints      int    `json:"cost_points"`
	Balance         int    `json:"balance"`
	DaysUntilExpiry *int   `json:"days_until_expiry"`
	IsClaimable     bool   `json:"is_claimable"`
	AffordableUnits int    `json:"affordable_units"`
}

func FromBalanceInfo(b *queries.BalanceInfo) *BalanceInfoResponse {
	return &BalanceInfoResponse{
		CustomerName:    b.CustomerName,
		RewardID:        b.RewardID.String(),
		RewardName:      b.RewardName,
		CostPoints:      b.CostPoints,
		Balance:         b.Balance,
		DaysUntilExpiry: b.DaysUntilExpiry,
		IsClaimable:     b.IsClaimable,
		AffordableUnits: b.AffordableUnits,
	}
}

func optionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
