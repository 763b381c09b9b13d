//go:build e2e

package e2e

import (
	"context"
	"net/http"
	nethttptest "net/http/httptest"

	resdto "perks-ledger/internal/handler/dto/response"
	"perks-ledger/internal/pkg/ptr"
	"perks-ledger/internal/testutil/dbtest"
	"perks-ledger/internal/testutil/httptest"

	"github.com/google/uuid"
)

type ledgerWorld struct {
	customerToken string
	staffToken    string
	customer      resdto.CustomerResponse
	businessID    uuid.UUID
	rewardID      uuid.UUID
}

// seed registers a customer through the API and a business with one staff
// member and one reward directly in the database.
func (s *SharedSuite) seed(cost int, expireDays *int) ledgerWorld {
	staffSubject := "staff|" + uuid.NewString()
	w := ledgerWorld{
		customerToken: s.Token("customer|" + uuid.NewString()),
		staffToken:    s.Token(staffSubject),
	}

	res := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/customers", map[string]any{
		"email": uuid.NewString()[:8] + "@example.com",
		"name":  "Aiko",
	}, w.customerToken)
	httptest.AssertSuccessResponse(s.T(), res, http.StatusCreated, &w.customer)

	w.businessID = dbtest.CreateBusiness(s.T(), s.DB, "Bean There", ptr.To("cafe"))
	dbtest.CreateBusinessUser(s.T(), s.DB, w.businessID, staffSubject)
	w.rewardID = dbtest.CreateReward(s.T(), s.DB, w.businessID, "Free Coffee", cost, expireDays)
	return w
}

func (s *SharedSuite) scan(w ledgerWorld, points, claim int) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/business/scans", map[string]any{
		"code":          w.customer.Code,
		"reward_id":     w.rewardID,
		"points_change": points,
		"claim_units":   claim,
	}, w.staffToken)
}

func (s *SharedSuite) storedBalance(w ledgerWorld) int {
	var value int
	err := s.DB.QueryRow(context.Background(),
		"SELECT value FROM balances WHERE customer_id = $1 AND reward_id = $2",
		uuid.MustParse(w.customer.ID), w.rewardID).Scan(&value)
	s.Require().NoError(err)
	return value
}
