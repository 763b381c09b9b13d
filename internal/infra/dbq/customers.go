package dbq

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const customerColumns = `id, auth_provider_id, email, name, code, created_at`

func scanCustomer(row interface{ Scan(...any) error }) (Customer, error) {
	var c Customer
	err := row.Scan(&c.ID, &c.AuthProviderID, &c.Email, &c.Name, &c.Code, &c.CreatedAt)
	return c, err
}

const getCustomerByCode = `SELECT ` + customerColumns + ` FROM customers WHERE code = $1`

func (q *Queries) GetCustomerByCode(ctx context.Context, code string) (Customer, error) {
	return scanCustomer(q.db.QueryRow(ctx, getCustomerByCode, code))
}

const getCustomerByAuthID = `SELECT ` + customerColumns + ` FROM customers WHERE auth_provider_id = $1`

func (q *Queries) GetCustomerByAuthID(ctx context.Context, authProviderID string) (Customer, error) {
	return scanCustomer(q.db.QueryRow(ctx, getCustomerByAuthID, authProviderID))
}

const customerCodeExists = `SELECT EXISTS (SELECT 1 FROM customers WHERE code = $1)`

func (q *Queries) CustomerCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, customerCodeExists, code).Scan(&exists)
	return exists, err
}

const createCustomer = `
INSERT INTO customers (id, auth_provider_id, email, name, code, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

type CreateCustomerParams struct {
	ID             pgtype.UUID
	AuthProviderID string
	Email          string
	Name           string
	Code           string
	CreatedAt      pgtype.Timestamptz
}

func (q *Queries) CreateCustomer(ctx context.Context, arg CreateCustomerParams) error {
	_, err := q.db.Exec(ctx, createCustomer,
		arg.ID, arg.AuthProviderID, arg.Email, arg.Name, arg.Code, arg.CreatedAt)
	return err
}

const updateCustomerName = `UPDATE customers SET name = $2 WHERE id = $1`

func (q *Queries) UpdateCustomerName(ctx context.Context, id pgtype.UUID, name string) (int64, error) {
	tag, err := q.db.Exec(ctx, updateCustomerName, id, name)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Balances, scan events and redemptions go with the row via ON DELETE CASCADE.
const deleteCustomer = `DELETE FROM customers WHERE id = $1`

func (q *Queries) DeleteCustomer(ctx context.Context, id pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteCustomer, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getBusinessUserIDByAuthID = `SELECT id FROM business_users WHERE auth_provider_id = $1`

func (q *Queries) GetBusinessUserIDByAuthID(ctx context.Context, authProviderID string) (pgtype.UUID, error) {
	var id pgtype.UUID
	err := q.db.QueryRow(ctx, getBusinessUserIDByAuthID, authProviderID).Scan(&id)
	return id, err
}
