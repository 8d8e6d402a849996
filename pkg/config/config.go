package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Catalog CatalogConfig
	HTTP    HTTPConfig
	Flags   FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Flags.UseSQLite {
		cfg.DB.Driver = "sqlite"
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"EMOORM_APP_ENV" required:"true"`
	Port         string `envconfig:"EMOORM_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"EMOORM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"EMOORM_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"EMOORM_DB_DSN"`
	Driver string `envconfig:"EMOORM_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"EMOORM_DB_HOST"`
	LegacyPort     int    `envconfig:"EMOORM_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"EMOORM_DB_USER"`
	LegacyPassword string `envconfig:"EMOORM_DB_PASSWORD"`
	LegacyName     string `envconfig:"EMOORM_DB_NAME"`
	LegacySSLMode  string `envconfig:"EMOORM_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"EMOORM_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"EMOORM_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"EMOORM_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"EMOORM_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"EMOORM_REDIS_URL" required:"true"`
	Address      string        `envconfig:"EMOORM_REDIS_ADDR"`
	Password     string        `envconfig:"EMOORM_REDIS_PASSWORD"`
	DB           int           `envconfig:"EMOORM_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"EMOORM_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"EMOORM_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"EMOORM_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"EMOORM_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"EMOORM_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CatalogConfig tunes the merged-catalog cache.
type CatalogConfig struct {
	LoadTimeout time.Duration `envconfig:"EMOORM_CATALOG_LOAD_TIMEOUT" default:"10s"`
	UseSeed     bool          `envconfig:"EMOORM_CATALOG_USE_SEED" default:"true"`
}

type HTTPConfig struct {
	AllowedOrigins []string `envconfig:"EMOORM_HTTP_ALLOWED_ORIGINS" default:"*"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"EMOORM_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"EMOORM_AUTO_MIGRATE" default:"false"`
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
