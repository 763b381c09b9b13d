package response

import (
	"time"

	"perks-ledger/internal/usecase/queries"
)

type ProgressResponse struct {
	CurrentTotalPoints int `json:"current_total_points"`
	RewardsAvailable   int `json:"rewards_available"`
}

type AchievementsResponse struct {
	TotalRewardsRedeemed int `json:"total_rewards_redeemed"`
	TotalPointsEarned    int `json:"total_points_earned"`
}

type BusinessActivityResponse struct {
	BusinessID      string     `json:"business_id"`
	BusinessName    string     `json:"business_name"`
	Category        *string    `json:"category"`
	RewardID        string     `json:"reward_id"`
	RewardName      string     `json:"reward_name"`
	Balance         int        `json:"balance"`
	CostPoints      int        `json:"cost_points"`
	AffordableUnits int        `json:"affordable_units"`
	LastScanAt      *time.Time `json:"last_scan_at"`
}

type RecentActivityResponse struct {
	Days         int `json:"days"`
	PointsEarned int `json:"points_earned"`
	Scans        int `json:"scans"`
	Redemptions  int `json:"redemptions"`
}

type ExpiringBalanceResponse struct {
	BusinessID      string `json:"business_id"`
	BusinessName    string `json:"business_name"`
	RewardID        string `json:"reward_id"`
	RewardName      string `json:"reward_name"`
	Balance         int    `json:"balance"`
	AffordableUnits int    `json:"affordable_units"`
	DaysUntilExpiry int    `json:"days_until_expiry"`
}

type DashboardResponse struct {
	Progress       ProgressResponse           `json:"progress"`
	Achievements   AchievementsResponse       `json:"achievements"`
	TopBusinesses  []BusinessActivityResponse `json:"top_businesses"`
	RecentActivity RecentActivityResponse     `json:"recent_activity"`
	ExpiringSoon   []ExpiringBalanceResponse  `json:"expiring_soon"`
}

func FromDashboard(d *queries.Dashboard) *DashboardResponse {
	res := &DashboardResponse{
		Progress: ProgressResponse{
			CurrentTotalPoints: d.Progress.CurrentTotalPoints,
			RewardsAvailable:   d.Progress.RewardsAvailable,
		},
		Achievements: AchievementsResponse{
			TotalRewardsRedeemed: d.Achievements.TotalRewardsRedeemed,
			TotalPointsEarned:    d.Achievements.TotalPointsEarned,
		},
		TopBusinesses: make([]BusinessActivityResponse, len(d.TopBusinesses)),
		RecentActivity: RecentActivityResponse{
			Days:         d.RecentActivity.Days,
			PointsEarned: d.RecentActivity.PointsEarned,
			Scans:        d.RecentActivity.Scans,
			Redemptions:  d.RecentActivity.Redemptions,
		},
		ExpiringSoon: make([]ExpiringBalanceResponse, len(d.ExpiringSoon)),
	}
	for i, b := range d.TopBusinesses {
		res.TopBusinesses[i] = BusinessActivityResponse{
			BusinessID:      b.BusinessID.String(),
			BusinessName:    b.BusinessName,
			Category:        b.Category,
			RewardID:        b.RewardID.String(),
			RewardName:      b.RewardName,
			Balance:         b.Balance,
			CostPoints:      b.CostPoints,
			AffordableUnits: b.AffordableUnits,
			LastScanAt:      b.LastScanAt,
		}
	}
	for i, e := range d.ExpiringSoon {
		res.ExpiringSoon[i] = ExpiringBalanceResponse{
			BusinessID:      e.BusinessID.String(),
			BusinessName:    e.BusinessName,
			RewardID:        e.RewardID.String(),
			RewardName:      e.RewardName,
			Balance:         e.Balance,
			AffordableUnits: e.AffordableUnits,
			DaysUntilExpiry: e.DaysUntilExpiry,
		}
	}
	return res
}
