package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	Bootstrap BootstrapConfig
	Export    ExportConfig
	Logging   LoggingConfig
	Server    ServerConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

// DatabaseConfig selects between a local sqlite file and a networked MySQL
// instance. Driver is "sqlite" or "mysql".
type DatabaseConfig struct {
	Driver          string
	Path            string // sqlite file path
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
}

// StorageConfig configures blob storage for observation photos and reports.
// Object storage is used only when the bucket and both keys are set;
// otherwise everything lives on local disk under LocalPath.
type StorageConfig struct {
	LocalPath    string
	PublicPrefix string
	Bucket       string
	Region       string
	AccessKey    string
	SecretKey    string
	Endpoint     string
	KeyPrefix    string
	UseSSL       bool
}

// ObjectStorageEnabled reports whether S3 credentials are fully configured
func (s *StorageConfig) ObjectStorageEnabled() bool {
	return s.Bucket != "" && s.AccessKey != "" && s.SecretKey != ""
}

// BootstrapConfig holds the two fixed accounts created on first run
type BootstrapConfig struct {
	AdminUsername  string
	SafetyUsername string
	Password       string
}

// ExportConfig controls the CSV export surface
type ExportConfig struct {
	// IncludeComplianceReport adds the Compliance Report column to the export
	IncludeComplianceReport bool
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	ReadTimeout  int
	WriteTimeout int
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// RateLimitConfig holds IP rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
	WhitelistPaths    []string
}

// DSN builds the gorm connection target for the configured driver
func (d *DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.Path
	}
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User, d.Password, d.Host, d.Port, d.Name,
	)
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// ReadTimeoutDuration returns read timeout as duration
func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns write timeout as duration
func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// Load loads configuration from file and environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	// Read from config file
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// MySQL connection settings keep their historical env names
	if host := v.GetString("MYSQL_HOST"); host != "" {
		cfg.Database.Driver = "mysql"
		cfg.Database.Host = host
	}
	if port := v.GetInt("MYSQL_PORT"); port != 0 {
		cfg.Database.Port = port
	}
	if user := v.GetString("MYSQL_USER"); user != "" {
		cfg.Database.User = user
	}
	if password := v.GetString("MYSQL_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}
	if name := v.GetString("MYSQL_DATABASE"); name != "" {
		cfg.Database.Name = name
	}
	if path := v.GetString("DATABASE_PATH"); path != "" {
		cfg.Database.Path = path
	}

	// S3 settings keep their historical env names as well
	if bucket := v.GetString("S3_BUCKET_NAME"); bucket != "" {
		cfg.Storage.Bucket = bucket
	}
	if region := v.GetString("S3_REGION"); region != "" {
		cfg.Storage.Region = region
	}
	if key := v.GetString("S3_ACCESS_KEY"); key != "" {
		cfg.Storage.AccessKey = key
	}
	if secret := v.GetString("S3_SECRET_KEY"); secret != "" {
		cfg.Storage.SecretKey = secret
	}
	if endpoint := v.GetString("S3_ENDPOINT_URL"); endpoint != "" {
		cfg.Storage.Endpoint = endpoint
	}
	if prefix := v.GetString("S3_FOLDER_PREFIX"); prefix != "" {
		cfg.Storage.KeyPrefix = prefix
	}
	if folder := v.GetString("UPLOAD_FOLDER"); folder != "" {
		cfg.Storage.LocalPath = folder
	}
	cfg.Storage.KeyPrefix = strings.Trim(strings.TrimSpace(cfg.Storage.KeyPrefix), "/")
	if cfg.Storage.KeyPrefix == "" {
		cfg.Storage.KeyPrefix = "uploads"
	}

	if password := v.GetString("BOOTSTRAP_PASSWORD"); password != "" {
		cfg.Bootstrap.Password = password
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "Safety Observation API")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)

	// Database defaults: local sqlite file unless MySQL is configured
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./safety_app.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.name", "safety")
	v.SetDefault("database.user", "safety_user")
	v.SetDefault("database.password", "")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 300)

	// Storage defaults
	v.SetDefault("storage.localPath", "./uploads")
	v.SetDefault("storage.publicPrefix", "/uploads")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.keyPrefix", "uploads")
	v.SetDefault("storage.useSSL", true)

	// Bootstrap accounts
	v.SetDefault("bootstrap.adminUsername", "admin@simonindia.ai")
	v.SetDefault("bootstrap.safetyUsername", "safety@simonindia.ai")
	v.SetDefault("bootstrap.password", "changeme")

	// Export defaults
	v.SetDefault("export.includeComplianceReport", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Server defaults
	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 30)

	// CORS defaults
	v.SetDefault("cors.allowedOrigins", []string{})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"})
	v.SetDefault("cors.allowCredentials", true)
	v.SetDefault("cors.maxAge", 300)

	// Rate limiting defaults
	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerMinute", 120)
	v.SetDefault("rateLimit.whitelistPaths", []string{"/health"})
}
