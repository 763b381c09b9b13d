package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, ledger windows, etc.)
// -----------------------------------------------------------------------------

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	Auth   AuthConfig
	Ledger LedgerConfig
}

type ServerConfig struct {
	Port        string `envconfig:"PORT" required:"true"`
	StoreDriver string `envconfig:"STORE_DRIVER" default:"postgres"`
	// SeedFile is a YAML fixture file loaded into the memory store at boot.
	SeedFile string `envconfig:"STORE_SEED_FILE"`
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER"`
	Password        string        `envconfig:"DB_PASSWORD"`
	DBName          string        `envconfig:"DB_NAME"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// AuthConfig describes the upstream identity provider whose tokens are accepted.
type AuthConfig struct {
	Secret   string        `envconfig:"AUTH_JWT_SECRET" required:"true"`
	Issuer   string        `envconfig:"AUTH_ISSUER"`
	Audience string        `envconfig:"AUTH_AUDIENCE"`
	Leeway   time.Duration `envconfig:"AUTH_LEEWAY" default:"30s"`
}

type LedgerConfig struct {
	TimeZone           string `envconfig:"LEDGER_TIMEZONE" default:"UTC"`
	RecentActivityDays int    `envconfig:"LEDGER_RECENT_ACTIVITY_DAYS" default:"30"`
	ExpiringSoonDays   int    `envconfig:"LEDGER_EXPIRING_SOON_DAYS" default:"30"`
	TopBusinesses      int    `envconfig:"LEDGER_TOP_BUSINESSES" default:"3"`
	CodeAttempts       int    `envconfig:"LEDGER_CODE_ATTEMPTS" default:"10"`
}

// Location resolves the calendar used for expiry day arithmetic.
func (c LedgerConfig) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid LEDGER_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Server.StoreDriver {
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required for STORE_DRIVER=%s", StoreDriverPostgres)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Server.StoreDriver)
	}
	if c.Ledger.RecentActivityDays <= 0 || c.Ledger.ExpiringSoonDays < 0 || c.Ledger.TopBusinesses <= 0 {
		return fmt.Errorf("ledger windows must be positive")
	}
	if c.Ledger.CodeAttempts <= 0 {
		return fmt.Errorf("LEDGER_CODE_ATTEMPTS must be positive")
	}
	if _, err := c.Ledger.Location(); err != nil {
		return err
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:        "8889", // Test port
			StoreDriver: StoreDriverPostgres,
		},
		DB: DBConfig{
			Host:            "localhost",
			Port:            "15433", // Test DB port
			User:            "test",
			Password:        "test",
			DBName:          "test_db",
			SSLMode:         "disable",
			TimeZone:        "UTC",
			MaxConns:        10,
			MinConns:        1,
			MaxConnLifetime: time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Auth: AuthConfig{
			Secret: "test-secret",
			Leeway: 30 * time.Second,
		},
		Ledger: LedgerConfig{
			TimeZone:           "UTC",
			RecentActivityDays: 30,
			ExpiringSoonDays:   30,
			TopBusinesses:      3,
			CodeAttempts:       10,
		},
	}
}
