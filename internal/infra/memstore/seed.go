package memstore

import (
	"os"
	"time"

	"perks-ledger/internal/domain/reward"
	"perks-ledger/internal/pkg/errs"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Fixtures describe the businesses, staff and rewards a memory store starts
// with. The ledger core never writes these.
type Fixtures struct {
	Businesses []BusinessFixture `yaml:"businesses"`
}

type BusinessFixture struct {
	ID          string                `yaml:"id"`
	Name        string                `yaml:"name"`
	Category    string                `yaml:"category"`
	Description string                `yaml:"description"`
	Users       []BusinessUserFixture `yaml:"users"`
	Rewards     []RewardFixture       `yaml:"rewards"`
}

type BusinessUserFixture struct {
	ID             string `yaml:"id"`
	AuthProviderID string `yaml:"auth_provider_id"`
	Email          string `yaml:"email"`
	Name           string `yaml:"name"`
}

type RewardFixture struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	CostPoints int    `yaml:"cost_points"`
	Type       string `yaml:"type"`
	ExpireDays *int   `yaml:"expire_days"`
	Inactive   bool   `yaml:"inactive"`
}

func LoadFixtures(path string) (Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, errs.Wrapf(err, "reading fixtures %s", path)
	}
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixtures{}, errs.Wrap(err, "parsing fixtures")
	}
	return f, nil
}

// Seed inserts fixtures in one transaction. Missing ids are generated.
func (s *Store) Seed(f Fixtures, now time.Time) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	categories := map[string]string{}
	for _, b := range f.Businesses {
		bizID, err := fixtureID(b.ID)
		if err != nil {
			return errs.Wrapf(err, "business %q", b.Name)
		}

		var categoryID string
		if b.Category != "" {
			if categoryID = categories[b.Category]; categoryID == "" {
				categoryID = uuid.NewString()
				categories[b.Category] = categoryID
				if err := txn.Insert(tableCategories, &categoryRow{ID: categoryID, Name: b.Category}); err != nil {
					return errs.Wrap(err, "insert category")
				}
			}
		}
		if err := txn.Insert(tableBusinesses, &businessRow{
			ID: bizID.String(), Name: b.Name, CategoryID: categoryID, Description: b.Description, CreatedAt: now,
		}); err != nil {
			return errs.Wrap(err, "insert business")
		}

		for _, u := range b.Users {
			userID, err := fixtureID(u.ID)
			if err != nil {
				return errs.Wrapf(err, "business user %q", u.AuthProviderID)
			}
			if u.AuthProviderID == "" {
				return errs.Newf("business user of %q needs an auth_provider_id", b.Name)
			}
			if err := txn.Insert(tableBusinessUsers, &businessUserRow{
				ID: userID.String(), BusinessID: bizID.String(), AuthProviderID: u.AuthProviderID, Email: u.Email, Name: u.Name,
			}); err != nil {
				return errs.Wrap(err, "insert business user")
			}
		}

		for _, rf := range b.Rewards {
			row, err := rewardFixtureRow(bizID, rf, now)
			if err != nil {
				return errs.Wrapf(err, "reward %q", rf.Name)
			}
			if err := txn.Insert(tableRewards, row); err != nil {
				return errs.Wrap(err, "insert reward")
			}
		}
	}

	txn.Commit()
	return nil
}

func rewardFixtureRow(businessID uuid.UUID, rf RewardFixture, now time.Time) (*rewardRow, error) {
	typ := rf.Type
	if typ == "" {
		typ = reward.TypeIncrementalPoints.String()
	}
	r, err := reward.NewReward(businessID, rf.Name, rf.CostPoints, reward.Type(typ), rf.ExpireDays, now)
	if err != nil {
		return nil, err
	}
	id := r.ID()
	if rf.ID != "" {
		if id, err = uuid.Parse(rf.ID); err != nil {
			return nil, errs.Wrap(err, "invalid reward id")
		}
	}
	return &rewardRow{
		ID:         id.String(),
		BusinessID: businessID.String(),
		Name:       r.Name(),
		CostPoints: r.CostPoints(),
		Type:       r.Type().String(),
		ExpireDays: r.ExpireDays(),
		IsActive:   !rf.Inactive,
		CreatedAt:  now,
	}, nil
}

func fixtureID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.New(), nil
	}
	return uuid.Parse(s)
}
