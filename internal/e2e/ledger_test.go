//go:build e2e

package e2e

import (
	"net/http"
	"strings"
	"testing"
	"time"

	resdto "perks-ledger/internal/handler/dto/response"
	"perks-ledger/internal/pkg/ptr"
	"perks-ledger/internal/testutil/dbtest"
	"perks-ledger/internal/testutil/httptest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type LedgerSuite struct {
	SharedSuite
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}

func (s *LedgerSuite) TestCustomerLifecycle() {
	s.Run("register, read and rename", func() {
		w := s.seed(10, nil)
		s.True(strings.HasPrefix(w.customer.Code, "perk_"), w.customer.Code)

		res := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/customers/me", nil, w.customerToken)
		var me resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), res, http.StatusOK, &me)
		s.Equal(w.customer.ID, me.ID)

		res = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/customers/me",
			map[string]any{"name": "Aiko T."}, w.customerToken)
		httptest.AssertSuccessResponse(s.T(), res, http.StatusOK, &me)
		s.Equal("Aiko T.", me.Name)
		s.Equal(w.customer.Code, me.Code)
	})

	s.Run("second registration for the same subject conflicts", func() {
		w := s.seed(10, nil)
		res := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/customers", map[string]any{
			"email": "other@example.com",
			"name":  "Aiko",
		}, w.customerToken)
		httptest.AssertErrorResponse(s.T(), res, http.StatusConflict, "")
	})

	s.Run("delete cascades to ledger rows", func() {
		w := s.seed(5, nil)
		httptest.AssertSuccessResponse(s.T(), s.scan(w, 7, 0), http.StatusCreated, nil)
		httptest.AssertSuccessResponse(s.T(), s.scan(w, 0, 1), http.StatusCreated, nil)

		customerID := uuid.MustParse(w.customer.ID)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "balances", customerID))
		s.Equal(2, dbtest.CountRows(s.T(), s.DB, "scan_events", customerID))
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "redemptions", customerID))

		res := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/customers/me", nil, w.customerToken)
		s.Equal(http.StatusNoContent, res.Code)

		for _, table := range []string{"balances", "scan_events", "redemptions"} {
			s.Zero(dbtest.CountRows(s.T(), s.DB, table, customerID), table)
		}
		res = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/customers/me", nil, w.customerToken)
		httptest.AssertErrorResponse(s.T(), res, http.StatusNotFound, "")
	})
}

func (s *LedgerSuite) TestProcessScan() {
	s.Run("accrue then claim", func() {
		w := s.seed(10, nil)

		var res resdto.ScanResponse
		httptest.AssertSuccessResponse(s.T(), s.scan(w, 25, 0), http.StatusCreated, &res)
		s.Equal(25, res.Balance)
		s.True(res.IsClaimable)
		s.Equal(2, res.AffordableUnits)
		s.Require().NotNil(res.AvailableReward)
		s.Equal(10, res.AvailableReward.RequiredPoints)
		s.Nil(res.ClaimedRewards)
		s.NotNil(res.ScanEvent.BusinessUserID)

		httptest.AssertSuccessResponse(s.T(), s.scan(w, 0, 2), http.StatusCreated, &res)
		s.Equal(5, res.Balance)
		s.False(res.IsClaimable)
		s.Nil(res.AvailableReward)
		s.Require().NotNil(res.ClaimedRewards)
		s.Equal(2, res.ClaimedRewards.Count)
		s.Equal(20, res.ClaimedRewards.TotalPointsDeducted)
		s.Len(res.ClaimedRewards.RedemptionIDs, 2)
	})

	s.Run("claim beyond balance is rejected with figures", func() {
		w := s.seed(10, nil)
		httptest.AssertSuccessResponse(s.T(), s.scan(w, 15, 0), http.StatusCreated, nil)

		body := httptest.AssertErrorResponse(s.T(), s.scan(w, 0, 2), http.StatusUnprocessableEntity, "insufficient points")
		s.EqualValues(20, body.Detail["required"])
		s.EqualValues(15, body.Detail["available"])
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "scan_events", uuid.MustParse(w.customer.ID)))
	})

	s.Run("claim is checked before the same scan accrues", func() {
		w := s.seed(10, nil)
		body := httptest.AssertErrorResponse(s.T(), s.scan(w, 10, 1), http.StatusUnprocessableEntity, "insufficient points")
		s.EqualValues(0, body.Detail["available"])

		httptest.AssertSuccessResponse(s.T(), s.scan(w, 10, 0), http.StatusCreated, nil)
		var res resdto.ScanResponse
		httptest.AssertSuccessResponse(s.T(), s.scan(w, 1, 1), http.StatusCreated, &res)
		s.Equal(1, res.Balance)
		s.Equal(1, res.ClaimedRewards.Count)
	})

	s.Run("claim units out of range", func() {
		w := s.seed(10, nil)
		httptest.AssertErrorResponse(s.T(), s.scan(w, 1, 101), http.StatusBadRequest, "between 0 and 100")
	})

	s.Run("points change out of range", func() {
		w := s.seed(10, nil)
		httptest.AssertSuccessResponse(s.T(), s.scan(w, 10, 0), http.StatusCreated, nil)
		httptest.AssertErrorResponse(s.T(), s.scan(w, 1<<32, 0), http.StatusBadRequest, "points change must be between")

		customerID := uuid.MustParse(w.customer.ID)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "scan_events", customerID))
		s.Equal(10, s.storedBalance(w))
	})

	s.Run("balance cannot grow past the storage limit", func() {
		w := s.seed(10, nil)
		httptest.AssertSuccessResponse(s.T(), s.scan(w, 1, 0), http.StatusCreated, nil)
		dbtest.SetBalance(s.T(), s.DB, uuid.MustParse(w.customer.ID), w.rewardID, 2147483000)

		httptest.AssertErrorResponse(s.T(), s.scan(w, 1000, 0), http.StatusBadRequest, "balance cannot exceed")
		s.Equal(2147483000, s.storedBalance(w))
	})

	s.Run("unknown code", func() {
		w := s.seed(10, nil)
		w.customer.Code = "ZZZZZZZZ"
		httptest.AssertErrorResponse(s.T(), s.scan(w, 1, 0), http.StatusNotFound, "invalid code or reward")
	})

	s.Run("customers are not business users", func() {
		w := s.seed(10, nil)
		w.staffToken = w.customerToken
		httptest.AssertErrorResponse(s.T(), s.scan(w, 1, 0), http.StatusForbidden, "business user required")
	})

	s.Run("expired points are cleared before accrual", func() {
		w := s.seed(10, ptr.To(7))
		httptest.AssertSuccessResponse(s.T(), s.scan(w, 9, 0), http.StatusCreated, nil)
		dbtest.AgeBalance(s.T(), s.DB, uuid.MustParse(w.customer.ID), w.rewardID, 8*24*time.Hour)

		var res resdto.ScanResponse
		httptest.AssertSuccessResponse(s.T(), s.scan(w, 3, 0), http.StatusCreated, &res)
		s.Equal(3, res.Balance)
	})
}

func (s *LedgerSuite) TestBusinessReads() {
	s.Run("balance and scan event lookups", func() {
		w := s.seed(10, ptr.To(30))
		var scanned resdto.ScanResponse
		httptest.AssertSuccessResponse(s.T(), s.scan(w, 12, 0), http.StatusCreated, &scanned)

		path := "/api/business/scans/rewards/" + w.rewardID.String() + "/customers/" + w.customer.Code + "/balance"
		var info resdto.BalanceInfoResponse
		httptest.AssertSuccessResponse(s.T(), httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, w.staffToken),
			http.StatusOK, &info)

		want := resdto.BalanceInfoResponse{
			CustomerName:    "Aiko",
			RewardID:        w.rewardID.String(),
			RewardName:      "Free Coffee",
			CostPoints:      10,
			Balance:         12,
			DaysUntilExpiry: ptr.To(30),
			IsClaimable:     true,
			AffordableUnits: 1,
		}
		if diff := cmp.Diff(want, info); diff != "" {
			s.Failf("balance mismatch", "(-want +got):\n%s", diff)
		}

		path = "/api/business/scans/rewards/" + w.rewardID.String() + "/events/" + scanned.ScanEvent.ID
		var event resdto.ScanEventResponse
		httptest.AssertSuccessResponse(s.T(), httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, w.staffToken),
			http.StatusOK, &event)
		if diff := cmp.Diff(scanned.ScanEvent, event, cmpopts.EquateApproxTime(time.Millisecond)); diff != "" {
			s.Failf("scan event mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("scan event under another reward is not found", func() {
		w := s.seed(10, nil)
		var scanned resdto.ScanResponse
		httptest.AssertSuccessResponse(s.T(), s.scan(w, 1, 0), http.StatusCreated, &scanned)

		other := dbtest.CreateReward(s.T(), s.DB, w.businessID, "Free Muffin", 5, nil)
		path := "/api/business/scans/rewards/" + other.String() + "/events/" + scanned.ScanEvent.ID
		res := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, w.staffToken)
		httptest.AssertErrorResponse(s.T(), res, http.StatusNotFound, "")
	})

	s.Run("expired balance reads as zero", func() {
		w := s.seed(10, ptr.To(7))
		httptest.AssertSuccessResponse(s.T(), s.scan(w, 15, 0), http.StatusCreated, nil)
		dbtest.AgeBalance(s.T(), s.DB, uuid.MustParse(w.customer.ID), w.rewardID, 8*24*time.Hour)

		path := "/api/business/scans/rewards/" + w.rewardID.String() + "/customers/" + w.customer.Code + "/balance"
		var info resdto.BalanceInfoResponse
		httptest.AssertSuccessResponse(s.T(), httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, w.staffToken),
			http.StatusOK, &info)
		s.Zero(info.Balance)
		s.False(info.IsClaimable)
	})
}

func (s *LedgerSuite) TestDashboard() {
	s.Run("aggregates balances and activity", func() {
		w := s.seed(10, ptr.To(20))
		httptest.AssertSuccessResponse(s.T(), s.scan(w, 25, 0), http.StatusCreated, nil)
		httptest.AssertSuccessResponse(s.T(), s.scan(w, 0, 1), http.StatusCreated, nil)

		res := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/customers/me/dashboard", nil, w.customerToken)
		var got resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), res, http.StatusOK, &got)

		want := resdto.DashboardResponse{
			Progress:     resdto.ProgressResponse{CurrentTotalPoints: 15, RewardsAvailable: 1},
			Achievements: resdto.AchievementsResponse{TotalRewardsRedeemed: 1, TotalPointsEarned: 25},
			TopBusinesses: []resdto.BusinessActivityResponse{{
				BusinessID:      w.businessID.String(),
				BusinessName:    "Bean There",
				Category:        ptr.To("cafe"),
				RewardID:        w.rewardID.String(),
				RewardName:      "Free Coffee",
				Balance:         15,
				CostPoints:      10,
				AffordableUnits: 1,
			}},
			RecentActivity: resdto.RecentActivityResponse{Days: 30, PointsEarned: 25, Scans: 2, Redemptions: 1},
			ExpiringSoon: []resdto.ExpiringBalanceResponse{{
				BusinessID:      w.businessID.String(),
				BusinessName:    "Bean There",
				RewardID:        w.rewardID.String(),
				RewardName:      "Free Coffee",
				Balance:         15,
				AffordableUnits: 1,
				DaysUntilExpiry: 20,
			}},
		}
		if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(resdto.BusinessActivityResponse{}, "LastScanAt")); diff != "" {
			s.Failf("dashboard mismatch", "(-want +got):\n%s", diff)
		}
		s.Require().NotNil(got.TopBusinesses[0].LastScanAt)
	})

	s.Run("empty ledger", func() {
		w := s.seed(10, nil)
		res := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/customers/me/dashboard", nil, w.customerToken)
		var got resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), res, http.StatusOK, &got)
		s.Empty(got.TopBusinesses)
		s.Empty(got.ExpiringSoon)
		s.Zero(got.Progress.CurrentTotalPoints)
	})
}
