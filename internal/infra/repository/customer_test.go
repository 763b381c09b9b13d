//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"perks-ledger/internal/domain/customer"
	"perks-ledger/internal/infra"
	"perks-ledger/internal/infra/converter"
	"perks-ledger/internal/infra/dbq"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCustomerWriteQueries struct {
	mock.Mock
}

func (m *MockCustomerWriteQueries) CreateCustomer(ctx context.Context, arg dbq.CreateCustomerParams) error {
	args := m.Called(ctx, arg)
	return args.Error(0)
}

func (m *MockCustomerWriteQueries) UpdateCustomerName(ctx context.Context, id pgtype.UUID, name string) (int64, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerWriteQueries) DeleteCustomer(ctx context.Context, id pgtype.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestCustomerRepository_Create(t *testing.T) {
	c := customer.Reconstruct(uuid.New(), "auth0|a", "a@example.com", "A", "perk_a", time.Now().UTC())

	tests := []struct {
		name           string
		err            error
		wantKind       infra.RepositoryErrorKind
		wantConstraint string
	}{
		{name: "success"},
		{
			name:           "duplicate email",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintCustomerEmail},
			wantKind:       infra.KindDuplicateKey,
			wantConstraint: infra.ConstraintCustomerEmail,
		},
		{
			name:           "duplicate code",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintCustomerCode},
			wantKind:       infra.KindDuplicateKey,
			wantConstraint: infra.ConstraintCustomerCode,
		},
		{name: "connection lost", err: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockCustomerWriteQueries)
			q.On("CreateCustomer", mock.Anything, converter.CustomerToCreateParams(c)).Return(tt.err)

			err := NewCustomerRepository(q, testLogger).Create(context.Background(), c)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Equal(t, tt.wantConstraint, infra.ViolatedConstraint(err))
			}
			q.AssertExpectations(t)
		})
	}
}

func TestCustomerRepository_UpdateAndDelete(t *testing.T) {
	c := customer.Reconstruct(uuid.New(), "auth0|a", "a@example.com", "Renamed", "perk_a", time.Now().UTC())
	id := converter.UUIDToPgtype(c.ID())

	q := new(MockCustomerWriteQueries)
	q.On("UpdateCustomerName", mock.Anything, id, "Renamed").Return(int64(1), nil).Once()
	q.On("DeleteCustomer", mock.Anything, id).Return(int64(0), nil).Once()
	repo := NewCustomerRepository(q, testLogger)

	assert.NoError(t, repo.UpdateName(context.Background(), c))
	assert.True(t, infra.IsKind(repo.Delete(context.Background(), c.ID()), infra.KindNotFound))
	q.AssertExpectations(t)
}
