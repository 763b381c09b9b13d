package request

import (
	"perks-ledger/internal/usecase/commands"
)

type CreateCustomerRequest struct {
	Email string `json:"email" binding:"required,max=320"`
	Name  string `json:"name" binding:"required"`
}

func (r *CreateCustomerRequest) ToCommand(subject string) commands.CreateCustomerRequest {
	return commands.CreateCustomerRequest{
		AuthProviderID: subject,
		Email:          r.Email,
		Name:           r.Name,
	}
}

type RenameCustomerRequest struct {
	Name string `json:"name" binding:"required"`
}
