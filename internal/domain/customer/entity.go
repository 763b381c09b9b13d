package customer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	id             uuid.UUID
	authProviderID string
	email          Email
	name           Name
	code           Code
	createdAt      time.Time
}

// Registration is the validated input of a new customer.
type Registration struct {
	AuthProviderID string
	Email          Email
	Name           Name
}

func NewRegistration(authProviderID, email, name string) (Registration, error) {
	authProviderID = strings.TrimSpace(authProviderID)
	if authProviderID == "" {
		return Registration{}, ErrMissingSubject
	}
	em, err := NewEmail(email)
	if err != nil {
		return Registration{}, err
	}
	nm, err := NewName(name)
	if err != nil {
		return Registration{}, err
	}
	return Registration{AuthProviderID: authProviderID, Email: em, Name: nm}, nil
}

func NewCustomer(reg Registration, code Code, now time.Time) (*Customer, error) {
	if code.Value() == "" {
		return nil, ErrInvalidCode
	}
	return &Customer{
		id:             uuid.New(),
		authProviderID: reg.AuthProviderID,
		email:          reg.Email,
		name:           reg.Name,
		code:           code,
		createdAt:      now,
	}, nil
}

func Reconstruct(id uuid.UUID, authProviderID, email, name, code string, createdAt time.Time) *Customer {
	return &Customer{
		id:             id,
		authProviderID: authProviderID,
		email:          Email{value: email},
		name:           Name{value: name},
		code:           Code{value: code},
		createdAt:      createdAt,
	}
}

// Rename is the only mutation a customer supports.
func (c *Customer) Rename(name string) error {
	nm, err := NewName(name)
	if err != nil {
		return err
	}
	c.name = nm
	return nil
}

func (c *Customer) ID() uuid.UUID          { return c.id }
func (c *Customer) AuthProviderID() string { return c.authProviderID }
func (c *Customer) Email() Email           { return c.email }
func (c *Customer) Name() Name             { return c.name }
func (c *Customer) Code() Code             { return c.code }
func (c *Customer) CreatedAt() time.Time   { return c.createdAt }
