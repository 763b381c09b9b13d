package memstore

import (
	"time"

	"github.com/hashicorp/go-memdb"
)

const (
	tableCategories    = "business_categories"
	tableBusinesses    = "businesses"
	tableBusinessUsers = "business_users"
	tableRewards       = "rewards"
	tableCustomers     = "customers"
	tableBalances      = "balances"
	tableScanEvents    = "scan_events"
	tableRedemptions   = "redemptions"
)

// Rows are stored by value and never mutated after insert; updates insert a
// fresh copy.
type categoryRow struct {
	ID   string
	Name string
}

type businessRow struct {
	ID          string
	Name        string
	CategoryID  string
	Description string
	CreatedAt   time.Time
}

type businessUserRow struct {
	ID             string
	BusinessID     string
	AuthProviderID string
	Email          string
	Name           string
}

type rewardRow struct {
	ID         string
	BusinessID string
	Name       string
	CostPoints int
	Type       string
	ExpireDays *int
	IsActive   bool
	CreatedAt  time.Time
}

type customerRow struct {
	ID             string
	AuthProviderID string
	Email          string
	Name           string
	Code           string
	CreatedAt      time.Time
}

type balanceRow struct {
	ID          string
	CustomerID  string
	RewardID    string
	Value       int
	LastUpdated time.Time
}

type scanEventRow struct {
	ID             string
	CustomerID     string
	RewardID       string
	BusinessID     string
	BusinessUserID string
	Code           string
	PointsChange   int
	ScannedAt      time.Time
}

type redemptionRow struct {
	ID             string
	CustomerID     string
	RewardID       string
	BusinessUserID string
	RedeemedAt     time.Time
}

func idIndex() *memdb.IndexSchema {
	return &memdb.IndexSchema{Name: "id", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "ID"}}
}

func fieldIndex(name, field string, unique bool) *memdb.IndexSchema {
	return &memdb.IndexSchema{Name: name, Unique: unique, Indexer: &memdb.StringFieldIndex{Field: field}}
}

func pairIndex(unique bool) *memdb.IndexSchema {
	return &memdb.IndexSchema{
		Name:   "pair",
		Unique: unique,
		Indexer: &memdb.CompoundIndex{Indexes: []memdb.Indexer{
			&memdb.StringFieldIndex{Field: "CustomerID"},
			&memdb.StringFieldIndex{Field: "RewardID"},
		}},
	}
}

// memdb does not enforce uniqueness of secondary indexes on insert; the
// writers check before inserting.
func schema() *memdb.DBSchema {
	return &memdb.DBSchema{Tables: map[string]*memdb.TableSchema{
		tableCategories: {Name: tableCategories, Indexes: map[string]*memdb.IndexSchema{
			"id":   idIndex(),
			"name": fieldIndex("name", "Name", true),
		}},
		tableBusinesses: {Name: tableBusinesses, Indexes: map[string]*memdb.IndexSchema{
			"id": idIndex(),
		}},
		tableBusinessUsers: {Name: tableBusinessUsers, Indexes: map[string]*memdb.IndexSchema{
			"id":   idIndex(),
			"auth": fieldIndex("auth", "AuthProviderID", true),
		}},
		tableRewards: {Name: tableRewards, Indexes: map[string]*memdb.IndexSchema{
			"id":       idIndex(),
			"business": fieldIndex("business", "BusinessID", false),
		}},
		tableCustomers: {Name: tableCustomers, Indexes: map[string]*memdb.IndexSchema{
			"id":    idIndex(),
			"auth":  fieldIndex("auth", "AuthProviderID", true),
			"email": fieldIndex("email", "Email", true),
			"code":  fieldIndex("code", "Code", true),
		}},
		tableBalances: {Name: tableBalances, Indexes: map[string]*memdb.IndexSchema{
			"id":       idIndex(),
			"pair":     pairIndex(true),
			"customer": fieldIndex("customer", "CustomerID", false),
		}},
		tableScanEvents: {Name: tableScanEvents, Indexes: map[string]*memdb.IndexSchema{
			"id":       idIndex(),
			"pair":     pairIndex(false),
			"customer": fieldIndex("customer", "CustomerID", false),
		}},
		tableRedemptions: {Name: tableRedemptions, Indexes: map[string]*memdb.IndexSchema{
			"id":       idIndex(),
			"pair":     pairIndex(false),
			"customer": fieldIndex("customer", "CustomerID", false),
		}},
	}}
}
