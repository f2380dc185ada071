package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	FeatureFlags FeatureFlagsConfig
	RateLimit    RateLimitConfig
	Pricing      PricingConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Pricing.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"PRINTHUB_APP_ENV" required:"true"`
	Port         string   `envconfig:"PRINTHUB_APP_PORT" required:"true"`
	LogLevel     string   `envconfig:"PRINTHUB_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"PRINTHUB_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"PRINTHUB_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"PRINTHUB_DB_DSN"`
	Driver string `envconfig:"PRINTHUB_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"PRINTHUB_DB_HOST"`
	LegacyPort     int    `envconfig:"PRINTHUB_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"PRINTHUB_DB_USER"`
	LegacyPassword string `envconfig:"PRINTHUB_DB_PASSWORD"`
	LegacyName     string `envconfig:"PRINTHUB_DB_NAME"`
	LegacySSLMode  string `envconfig:"PRINTHUB_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PRINTHUB_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PRINTHUB_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PRINTHUB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PRINTHUB_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PRINTHUB_REDIS_URL"`
	Address      string        `envconfig:"PRINTHUB_REDIS_ADDR"`
	Password     string        `envconfig:"PRINTHUB_REDIS_PASSWORD"`
	DB           int           `envconfig:"PRINTHUB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PRINTHUB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PRINTHUB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PRINTHUB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PRINTHUB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PRINTHUB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"PRINTHUB_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"PRINTHUB_AUTO_MIGRATE" default:"false"`
}

// RateLimitConfig throttles the public calculation endpoints per client IP.
type RateLimitConfig struct {
	QuoteWindow  time.Duration `envconfig:"PRINTHUB_RATE_LIMIT_QUOTE_WINDOW" default:"1m"`
	QuoteIPLimit int           `envconfig:"PRINTHUB_RATE_LIMIT_QUOTE_IP_LIMIT" default:"60"`
}

// PricingConfig sets the quote currency and how many decimals money is rendered
// with. Breakdowns are settled at 2 places, so fewer display places would let the
// rendered components drift from the rendered totals.
type PricingConfig struct {
	Currency      string `envconfig:"PRINTHUB_PRICING_CURRENCY" default:"KES"`
	DisplayPlaces int32  `envconfig:"PRINTHUB_PRICING_DISPLAY_PLACES" default:"2"`
}

const (
	minDisplayPlaces = 2
	maxDisplayPlaces = 4
)

func (p PricingConfig) validate() error {
	if len(strings.TrimSpace(p.Currency)) != 3 {
		return fmt.Errorf("%s must be a 3-letter currency code", EnvPricingCurrency)
	}
	if p.DisplayPlaces < minDisplayPlaces || p.DisplayPlaces > maxDisplayPlaces {
		return fmt.Errorf("%s must be between %d and %d", EnvPricingDisplayPlaces, minDisplayPlaces, maxDisplayPlaces)
	}
	return nil
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
