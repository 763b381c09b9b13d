//go:build unit

package customer_test

import (
	"strings"
	"testing"
	"time"

	"perks-ledger/internal/domain/customer"
	"perks-ledger/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	code, err := customer.GenerateCode()
	require.NoError(t, err)
	now := time.Now()

	tests := []struct {
		name    string
		subject string
		email   string
		display string
		errIs   error
	}{
		{name: "valid", subject: "auth0|abc", email: "Alice@Example.com ", display: " Alice "},
		{name: "missing subject", subject: " ", email: "alice@example.com", display: "Alice", errIs: customer.ErrMissingSubject},
		{name: "email without at", subject: "auth0|abc", email: "alice.example.com", display: "Alice", errIs: customer.ErrInvalidEmail},
		{name: "email without dot", subject: "auth0|abc", email: "alice@example", display: "Alice", errIs: customer.ErrInvalidEmail},
		{name: "blank name", subject: "auth0|abc", email: "alice@example.com", display: "   ", errIs: customer.ErrInvalidName},
		{name: "name too long", subject: "auth0|abc", email: "alice@example.com", display: strings.Repeat("a", customer.MaxNameLength+1), errIs: customer.ErrInvalidName},
		{name: "name at limit", subject: "auth0|abc", email: "alice@example.com", display: strings.Repeat("a", customer.MaxNameLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := customer.NewRegistration(tt.subject, tt.email, tt.display)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
				return
			}
			require.NoError(t, err)

			c, err := customer.NewCustomer(reg, code, now)
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, c.ID())
			assert.Equal(t, strings.TrimSpace(tt.display), c.Name().Value())
			assert.Equal(t, strings.ToLower(strings.TrimSpace(tt.email)), c.Email().Value())
			assert.Equal(t, code, c.Code())
		})
	}
}

func TestNewCustomer_RequiresCode(t *testing.T) {
	reg, err := customer.NewRegistration("auth0|abc", "alice@example.com", "Alice")
	require.NoError(t, err)

	_, err = customer.NewCustomer(reg, customer.Code{}, time.Now())
	assert.ErrorIs(t, err, customer.ErrInvalidCode)
}

func TestRename(t *testing.T) {
	c := customer.Reconstruct(uuid.New(), "auth0|abc", "alice@example.com", "Alice", "perk_x", time.Now())

	require.NoError(t, c.Rename("  Alicia "))
	assert.Equal(t, "Alicia", c.Name().Value())

	err := c.Rename("")
	assert.ErrorIs(t, err, customer.ErrInvalidName)
	assert.Equal(t, "Alicia", c.Name().Value())
}

func TestCodes(t *testing.T) {
	a, err := customer.GenerateCode()
	require.NoError(t, err)
	b, err := customer.GenerateCode()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a.Value(), customer.CodePrefix+"_"))

	parsed, err := customer.ParseCode("  legacy-qr-0001 ")
	require.NoError(t, err)
	assert.Equal(t, "legacy-qr-0001", parsed.Value())

	_, err = customer.ParseCode("")
	assert.ErrorIs(t, err, customer.ErrInvalidCode)
	_, err = customer.ParseCode(strings.Repeat("x", customer.MaxCodeLength+1))
	assert.ErrorIs(t, err, customer.ErrInvalidCode)
}
