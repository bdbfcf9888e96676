package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	httpapi "github.com/jekabolt/grbpwr-tickets/internal/api/http"
	"github.com/jekabolt/grbpwr-tickets/internal/auth/jwt"
	"github.com/jekabolt/grbpwr-tickets/internal/bucket"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
	"github.com/jekabolt/grbpwr-tickets/internal/livesync"
	"github.com/jekabolt/grbpwr-tickets/internal/orphansweep"
	"github.com/jekabolt/grbpwr-tickets/internal/ratelimit"
	"github.com/jekabolt/grbpwr-tickets/internal/store"
	"github.com/jekabolt/grbpwr-tickets/internal/ticketform"
	"github.com/jekabolt/grbpwr-tickets/log"
	"github.com/spf13/viper"
)

// SessionConfig is the identity the terminal commands act as.
type SessionConfig struct {
	UserId      string `mapstructure:"user_id"`
	DisplayName string `mapstructure:"display_name"`
	Role        string `mapstructure:"role"`
}

func (c SessionConfig) Session() entity.Session {
	role := entity.RoleUser
	if entity.Role(c.Role) == entity.RoleAdmin {
		role = entity.RoleAdmin
	}
	return entity.Session{
		UserId:      c.UserId,
		DisplayName: c.DisplayName,
		Role:        role,
	}
}

// Config represents the global configuration for the service.
type Config struct {
	DB          store.Config       `mapstructure:"db"`
	Logger      log.Config         `mapstructure:"logger"`
	HTTP        httpapi.Config     `mapstructure:"http"`
	Auth        jwt.Config         `mapstructure:"auth"`
	Bucket      bucket.Config      `mapstructure:"bucket"`
	Live        livesync.Config    `mapstructure:"live"`
	OrphanSweep orphansweep.Config `mapstructure:"orphan_sweep"`
	Session     SessionConfig      `mapstructure:"session"`
	Form        ticketform.Config  `mapstructure:"form"`
	RateLimit   ratelimit.Config   `mapstructure:"ratelimit"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g., DB__DSN for db.dsn,
// and the common ones also have flat names, e.g., DB_DSN.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults()
	bindEnvVars()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/grbpwr-tickets")
		viper.AddConfigPath("/etc/grbpwr-tickets")
		// Try to read config, but don't fail if it doesn't exist
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("db.driver", store.DriverSQLite)
	viper.SetDefault("db.dsn", "tickets.db")
	viper.SetDefault("db.automigrate", true)
	viper.SetDefault("db.max_open_connections", 10)
	viper.SetDefault("db.max_idle_connections", 5)

	viper.SetDefault("logger.level", 0)
	viper.SetDefault("logger.format", log.FormatJSON)

	viper.SetDefault("http.address", "")
	viper.SetDefault("http.port", "8081")

	viper.SetDefault("auth.jwt_ttl", "24h")

	viper.SetDefault("bucket.base_folder", "grbpwr-tickets")

	viper.SetDefault("orphan_sweep.enabled", false)
	viper.SetDefault("orphan_sweep.worker_interval", time.Hour)

	viper.SetDefault("session.role", string(entity.RoleUser))

	viper.SetDefault("form.back_delay", 1500*time.Millisecond)
	viper.SetDefault("form.image_folder", "tickets")

	viper.SetDefault("ratelimit.tickets_per_hour", 20)
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (DB__DSN) and flat keys (DB_DSN)
func bindEnvVars() {
	// DB
	viper.BindEnv("db.driver", "DB_DRIVER")
	viper.BindEnv("db.dsn", "DB_DSN")
	viper.BindEnv("db.automigrate", "DB_AUTOMIGRATE")
	viper.BindEnv("db.max_open_connections", "DB_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("db.max_idle_connections", "DB_MAX_IDLE_CONNECTIONS")
	viper.BindEnv("db.tls_ca_path", "DB_TLS_CA_PATH")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")
	viper.BindEnv("logger.format", "LOG_FORMAT")

	// HTTP
	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	viper.BindEnv("http.requests_per_minute", "HTTP_REQUESTS_PER_MINUTE")
	viper.BindEnv("http.max_upload_bytes", "HTTP_MAX_UPLOAD_BYTES")
	viper.BindEnv("http.heartbeat_interval", "HTTP_HEARTBEAT_INTERVAL")

	// Auth
	viper.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	viper.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")

	// Bucket
	viper.BindEnv("bucket.s3_access_key", "BUCKET_S3_ACCESS_KEY")
	viper.BindEnv("bucket.s3_secret_access_key", "BUCKET_S3_SECRET_ACCESS_KEY")
	viper.BindEnv("bucket.s3_endpoint", "BUCKET_S3_ENDPOINT")
	viper.BindEnv("bucket.s3_bucket_name", "BUCKET_S3_BUCKET_NAME")
	viper.BindEnv("bucket.s3_bucket_location", "BUCKET_S3_BUCKET_LOCATION")
	viper.BindEnv("bucket.base_folder", "BUCKET_BASE_FOLDER")
	viper.BindEnv("bucket.subdomain_endpoint", "BUCKET_SUBDOMAIN_ENDPOINT")
	viper.BindEnv("bucket.use_ssl", "BUCKET_USE_SSL")

	// Live subscriptions
	viper.BindEnv("live.poll_interval", "LIVE_POLL_INTERVAL")

	// Orphaned comment sweep
	viper.BindEnv("orphan_sweep.enabled", "ORPHAN_SWEEP_ENABLED")
	viper.BindEnv("orphan_sweep.worker_interval", "ORPHAN_SWEEP_WORKER_INTERVAL")

	// Terminal session
	viper.BindEnv("session.user_id", "SESSION_USER_ID")
	viper.BindEnv("session.display_name", "SESSION_DISPLAY_NAME")
	viper.BindEnv("session.role", "SESSION_ROLE")

	// Creation form
	viper.BindEnv("form.back_delay", "FORM_BACK_DELAY")
	viper.BindEnv("form.image_folder", "FORM_IMAGE_FOLDER")

	// Rate limit
	viper.BindEnv("ratelimit.tickets_per_hour", "RATELIMIT_TICKETS_PER_HOUR")
}
