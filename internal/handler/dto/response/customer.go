package response

import (
	"time"

	"perks-ledger/internal/domain/customer"
	"perks-ledger/internal/usecase/queries"
)

type CustomerResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCustomerView(v *queries.CustomerView) *CustomerResponse {
	return &CustomerResponse{
		ID:        v.ID.String(),
		Email:     v.Email,
		Name:      v.Name,
		Code:      v.Code,
		CreatedAt: v.CreatedAt,
	}
}

func FromCustomer(c *customer.Customer) *CustomerResponse {
	return FromCustomerView(queries.NewCustomerView(c))
}
