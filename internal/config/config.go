package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported storage backends.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

// Config holds application level configuration.
type Config struct {
	ServerPort  string
	Environment string
	LogLevel    string

	DBDriver      string
	DatabaseDSN   string
	MongoURI      string
	MongoDatabase string
	ResetDB       bool

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	UploadDir string
	NATSURL   string

	CORSAllowOrigins []string
	PublicRateLimit  float64
	ShareCacheTTL    time.Duration

	SwaggerHost string
}

var defaults = map[string]interface{}{
	"SERVER_PORT":        "8080",
	"ENVIRONMENT":        "development",
	"LOG_LEVEL":          "info",
	"DB_DRIVER":          DriverMySQL,
	"DATABASE_DSN":       "user:password@tcp(localhost:3306)/brainvault?charset=utf8mb4&parseTime=True&loc=Local",
	"MONGO_URI":          "mongodb://localhost:27017",
	"MONGO_DATABASE":     "brainvault",
	"RESET_DB":           false,
	"REDIS_ADDR":         "",
	"REDIS_DB":           0,
	"REDIS_PASSWORD":     "",
	"JWT_SECRET":         "change-me",
	"ACCESS_TOKEN_TTL":   "24h",
	"REFRESH_TOKEN_TTL":  "168h",
	"UPLOAD_DIR":         "uploads",
	"NATS_URL":           "",
	"CORS_ALLOW_ORIGINS": "*",
	"PUBLIC_RATE_LIMIT":  5.0,
	"SHARE_CACHE_TTL":    "10m",
	"SWAGGER_HOST":       "",
}

// Load builds Config from, in increasing priority, defaults, an optional
// config.yaml, an optional .env file and the process environment.
func Load() (*Config, error) {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	v.AutomaticEnv()

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		ServerPort:       v.GetString("SERVER_PORT"),
		Environment:      strings.ToLower(v.GetString("ENVIRONMENT")),
		LogLevel:         v.GetString("LOG_LEVEL"),
		DBDriver:         strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		MongoURI:         v.GetString("MONGO_URI"),
		MongoDatabase:    v.GetString("MONGO_DATABASE"),
		ResetDB:          v.GetBool("RESET_DB"),
		RedisAddr:        v.GetString("REDIS_ADDR"),
		RedisDB:          v.GetInt("REDIS_DB"),
		RedisPass:        v.GetString("REDIS_PASSWORD"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		AccessTokenTTL:   v.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL:  v.GetDuration("REFRESH_TOKEN_TTL"),
		UploadDir:        v.GetString("UPLOAD_DIR"),
		NATSURL:          v.GetString("NATS_URL"),
		CORSAllowOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		PublicRateLimit:  v.GetFloat64("PUBLIC_RATE_LIMIT"),
		ShareCacheTTL:    v.GetDuration("SHARE_CACHE_TTL"),
		SwaggerHost:      v.GetString("SWAGGER_HOST"),
	}
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate checks settings that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite, DriverMongo:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.IsProduction() && c.JWTSecret == defaults["JWT_SECRET"] {
		return errors.New("JWT_SECRET must be changed in production")
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return errors.New("token TTLs must be positive")
	}
	if c.UploadDir == "" {
		return errors.New("UPLOAD_DIR must be set")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
