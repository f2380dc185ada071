package config

const EnvPrefix = "PRINTHUB"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv               = "PRINTHUB_APP_ENV"
	EnvPort                 = "PRINTHUB_APP_PORT"
	EnvDBDSN                = "PRINTHUB_DB_DSN"
	EnvDBHost               = "PRINTHUB_DB_HOST"
	EnvDBUser               = "PRINTHUB_DB_USER"
	EnvDBName               = "PRINTHUB_DB_NAME"
	EnvDBPassword           = "PRINTHUB_DB_PASSWORD"
	EnvRedisURL             = "PRINTHUB_REDIS_URL"
	EnvPricingCurrency      = "PRINTHUB_PRICING_CURRENCY"
	EnvPricingDisplayPlaces = "PRINTHUB_PRICING_DISPLAY_PLACES"
	EnvQuoteWindow          = "PRINTHUB_RATE_LIMIT_QUOTE_WINDOW"
	EnvQuoteIPLimit         = "PRINTHUB_RATE_LIMIT_QUOTE_IP_LIMIT"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
