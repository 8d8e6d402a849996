package config

// EnvPrefix is passed to envconfig; individual tags spell the full names so the
// prefix only matters for variables without explicit tags.
const EnvPrefix = "EMOORM"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv   = "EMOORM_APP_ENV"
	EnvPort     = "EMOORM_APP_PORT"
	EnvRedisURL = "EMOORM_REDIS_URL"

	EnvDBDSN  = "EMOORM_DB_DSN"
	EnvDBHost = "EMOORM_DB_HOST"
	EnvDBUser = "EMOORM_DB_USER"
	EnvDBName = "EMOORM_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
