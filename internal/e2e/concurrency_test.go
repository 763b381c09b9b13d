//go:build e2e

package e2e

import (
	"net/http"
	"sync"
	"testing"

	resdto "perks-ledger/internal/handler/dto/response"
	"perks-ledger/internal/testutil/dbtest"
	"perks-ledger/internal/testutil/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ConcurrencySuite struct {
	SharedSuite
}

func TestConcurrencySuite(t *testing.T) {
	suite.Run(t, new(ConcurrencySuite))
}

func (s *ConcurrencySuite) TestConcurrentClaims() {
	s.Run("only affordable claims succeed", func() {
		const (
			cost    = 10
			balance = 35
			workers = 8
		)
		w := s.seed(cost, nil)
		httptest.AssertSuccessResponse(s.T(), s.scan(w, balance, 0), http.StatusCreated, nil)

		statuses := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				statuses[i] = s.scan(w, 0, 1).Code
			}()
		}
		wg.Wait()

		var ok, rejected int
		for _, code := range statuses {
			switch code {
			case http.StatusCreated:
				ok++
			case http.StatusUnprocessableEntity:
				rejected++
			}
		}
		s.Equal(balance/cost, ok)
		s.Equal(workers-balance/cost, rejected)

		customerID := uuid.MustParse(w.customer.ID)
		s.Equal(balance/cost, dbtest.CountRows(s.T(), s.DB, "redemptions", customerID))

		path := "/api/business/scans/rewards/" + w.rewardID.String() + "/customers/" + w.customer.Code + "/balance"
		var info resdto.BalanceInfoResponse
		httptest.AssertSuccessResponse(s.T(), httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, w.staffToken),
			http.StatusOK, &info)
		s.Equal(balance%cost, info.Balance)
	})

	s.Run("concurrent accruals are not lost", func() {
		const workers = 10
		w := s.seed(100, nil)

		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.scan(w, 3, 0)
			}()
		}
		wg.Wait()

		path := "/api/business/scans/rewards/" + w.rewardID.String() + "/customers/" + w.customer.Code + "/balance"
		var info resdto.BalanceInfoResponse
		httptest.AssertSuccessResponse(s.T(), httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, w.staffToken),
			http.StatusOK, &info)
		s.Equal(3*workers, info.Balance)
		s.Equal(workers, dbtest.CountRows(s.T(), s.DB, "scan_events", uuid.MustParse(w.customer.ID)))
	})
}
