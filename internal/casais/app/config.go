package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/casais/internal/casais/media"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DatabaseURL string        // Required: postgres://..., sqlite://path or a file: DSN
	Secret      string        // Required: HS256 signing secret
	Issuer      string        // Optional: iss claim (default: casais-api)
	TokenTTL    time.Duration // Optional: session lifetime (default: 24h)

	PepperFile     string   // Optional: path to the password pepper (default: ./pepper)
	MaxUploadBytes int64    // Optional: multipart body cap (default: 10 MiB)
	CORSOrigins    []string // Optional: allowed origins, empty means any

	Media media.S3Config // Optional: uploads are disabled without a bucket

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 2000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// configFile mirrors the YAML read from CONFIG_FILE. Environment variables
// override anything set here.
type configFile struct {
	Server struct {
		Port                int      `yaml:"port"`
		ShutdownGracePeriod string   `yaml:"shutdown_grace_period"`
		MaxUploadBytes      int64    `yaml:"max_upload_bytes"`
		CORSOrigins         []string `yaml:"cors_origins"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		Secret     string `yaml:"secret"`
		Issuer     string `yaml:"issuer"`
		TokenTTL   string `yaml:"token_ttl"`
		PepperFile string `yaml:"pepper_file"`
	} `yaml:"auth"`
	Media struct {
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
		Endpoint  string `yaml:"endpoint"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		PublicURL string `yaml:"public_url"`
		Folder    string `yaml:"folder"`
	} `yaml:"media"`
	Log struct {
		Env    string `yaml:"env"`
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// LoadConfig resolves configuration as defaults, then the optional
// CONFIG_FILE, then the environment.
func LoadConfig() (Config, error) {
	cfg := Config{
		Issuer:              "casais-api",
		TokenTTL:            24 * time.Hour,
		PepperFile:          "pepper",
		MaxUploadBytes:      10 << 20,
		Media:               media.S3Config{Folder: media.DefaultFolder, Region: "us-east-1"},
		Env:                 "dev",
		LogLevel:            "info",
		LogFormat:           "json",
		Port:                2000,
		ShutdownGracePeriod: 10 * time.Second,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	cfg.DatabaseURL = getEnvOrDefault("DB_URL", cfg.DatabaseURL)
	cfg.Secret = getEnvOrDefault("SECRET", cfg.Secret)
	cfg.Issuer = getEnvOrDefault("TOKEN_ISSUER", cfg.Issuer)
	cfg.TokenTTL = getEnvDurationOrDefault("TOKEN_TTL", cfg.TokenTTL)
	cfg.PepperFile = getEnvOrDefault("PEPPER_FILE", cfg.PepperFile)
	cfg.MaxUploadBytes = int64(getEnvIntOrDefault("MAX_UPLOAD_BYTES", int(cfg.MaxUploadBytes)))
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}

	cfg.Media.Bucket = getEnvOrDefault("MEDIA_BUCKET", cfg.Media.Bucket)
	cfg.Media.Region = getEnvOrDefault("MEDIA_REGION", cfg.Media.Region)
	cfg.Media.Endpoint = getEnvOrDefault("MEDIA_ENDPOINT", cfg.Media.Endpoint)
	cfg.Media.AccessKey = getEnvOrDefault("MEDIA_ACCESS_KEY", cfg.Media.AccessKey)
	cfg.Media.SecretKey = getEnvOrDefault("MEDIA_SECRET_KEY", cfg.Media.SecretKey)
	cfg.Media.PublicURL = getEnvOrDefault("MEDIA_PUBLIC_URL", cfg.Media.PublicURL)
	cfg.Media.Folder = getEnvOrDefault("MEDIA_FOLDER", cfg.Media.Folder)

	cfg.Env = getEnvOrDefault("ENV", cfg.Env)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.Port = getEnvIntOrDefault("PORT", cfg.Port)
	cfg.ShutdownGracePeriod = getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", cfg.ShutdownGracePeriod)

	return cfg, nil
}

// Validate reports every missing required key at once.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.DatabaseURL) == "" {
		missing = append(missing, "DB_URL")
	}
	if c.Secret == "" {
		missing = append(missing, "SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	return nil
}

func applyFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var f configFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	setString(&cfg.DatabaseURL, f.Database.URL)
	setString(&cfg.Secret, f.Auth.Secret)
	setString(&cfg.Issuer, f.Auth.Issuer)
	setString(&cfg.PepperFile, f.Auth.PepperFile)
	if err := setDuration(&cfg.TokenTTL, f.Auth.TokenTTL); err != nil {
		return fmt.Errorf("auth.token_ttl: %w", err)
	}

	if f.Server.Port > 0 {
		cfg.Port = f.Server.Port
	}
	if f.Server.MaxUploadBytes > 0 {
		cfg.MaxUploadBytes = f.Server.MaxUploadBytes
	}
	if len(f.Server.CORSOrigins) > 0 {
		cfg.CORSOrigins = f.Server.CORSOrigins
	}
	if err := setDuration(&cfg.ShutdownGracePeriod, f.Server.ShutdownGracePeriod); err != nil {
		return fmt.Errorf("server.shutdown_grace_period: %w", err)
	}

	setString(&cfg.Media.Bucket, f.Media.Bucket)
	setString(&cfg.Media.Region, f.Media.Region)
	setString(&cfg.Media.Endpoint, f.Media.Endpoint)
	setString(&cfg.Media.AccessKey, f.Media.AccessKey)
	setString(&cfg.Media.SecretKey, f.Media.SecretKey)
	setString(&cfg.Media.PublicURL, f.Media.PublicURL)
	setString(&cfg.Media.Folder, f.Media.Folder)

	setString(&cfg.Env, f.Log.Env)
	setString(&cfg.LogLevel, f.Log.Level)
	setString(&cfg.LogFormat, f.Log.Format)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v string) error {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "24h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
