package queries

import (
	"context"
	"time"

	"perks-ledger/internal/domain/customer"
	"perks-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerView struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Code      string
	CreatedAt time.Time
}

func NewCustomerView(c *customer.Customer) *CustomerView {
	return &CustomerView{
		ID:        c.ID(),
		Email:     c.Email().Value(),
		Name:      c.Name().Value(),
		Code:      c.Code().Value(),
		CreatedAt: c.CreatedAt(),
	}
}

type CustomerQueries interface {
	GetBySubject(ctx context.Context, subject string) (*CustomerView, error)
}

type customerQueriesImpl struct {
	reads shared.CustomerReader
}

func NewCustomerQueries(reads shared.CustomerReader) CustomerQueries {
	return &customerQueriesImpl{reads: reads}
}

func (q *customerQueriesImpl) GetBySubject(ctx context.Context, subject string) (*CustomerView, error) {
	c, err := q.reads.CustomerByAuthID(ctx, subject)
	if err != nil {
		return nil, shared.TranslateNotFound(err, customer.ErrNotFound)
	}
	return NewCustomerView(c), nil
}
