package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host    string `mapstructure:"SERVER_HOST"`
	Port    int    `mapstructure:"SERVER_PORT"`
	Env     string `mapstructure:"SERVER_ENV"`
	BaseURL string `mapstructure:"SERVER_BASE_URL"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"DB_HOST"`
	Port     int    `mapstructure:"DB_PORT"`
	User     string `mapstructure:"DB_USER"`
	Password string `mapstructure:"DB_PASSWORD"`
	DBName   string `mapstructure:"DB_NAME"`
}

type RedisConfig struct {
	Host     string `mapstructure:"REDIS_HOST"`
	Port     int    `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type JWTConfig struct {
	Secret        string `mapstructure:"JWT_SECRET"`
	AccessTTLMins int    `mapstructure:"JWT_ACCESS_TTL_MINUTES"`
}

type StorageConfig struct {
	Endpoint      string `mapstructure:"STORAGE_ENDPOINT"`
	Region        string `mapstructure:"STORAGE_REGION"`
	Bucket        string `mapstructure:"STORAGE_BUCKET"`
	AccessKey     string `mapstructure:"STORAGE_ACCESS_KEY"`
	SecretKey     string `mapstructure:"STORAGE_SECRET_KEY"`
	PublicBaseURL string `mapstructure:"STORAGE_PUBLIC_BASE_URL"`
}

type SuggestionConfig struct {
	ServiceURL     string `mapstructure:"SUGGESTION_SERVICE_URL"`
	APIKey         string `mapstructure:"SUGGESTION_API_KEY"`
	TimeoutSeconds int    `mapstructure:"SUGGESTION_TIMEOUT_SECONDS"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"SMTP_HOST"`
	Port     int    `mapstructure:"SMTP_PORT"`
	Username string `mapstructure:"SMTP_USERNAME"`
	Password string `mapstructure:"SMTP_PASSWORD"`
	From     string `mapstructure:"SMTP_FROM"`
}

type GoogleAPIConfig struct {
	ClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	ClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	RedirectURI  string `mapstructure:"GOOGLE_REDIRECT_URI"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:",squash"`
	Database   DatabaseConfig   `mapstructure:",squash"`
	Redis      RedisConfig      `mapstructure:",squash"`
	JWT        JWTConfig        `mapstructure:",squash"`
	Storage    StorageConfig    `mapstructure:",squash"`
	Suggestion SuggestionConfig `mapstructure:",squash"`
	SMTP       SMTPConfig       `mapstructure:",squash"`
	GoogleAPI  GoogleAPIConfig  `mapstructure:",squash"`
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads .env (if present) and environment variables into the global config.
func Load() error {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// AutomaticEnv alone does not populate Unmarshal; bind each known key
	for _, key := range v.AllKeys() {
		_ = v.BindEnv(key)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("SERVER_BASE_URL", "http://localhost:7070")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "volunteerhub")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ACCESS_TTL_MINUTES", 1440)

	v.SetDefault("STORAGE_ENDPOINT", "")
	v.SetDefault("STORAGE_REGION", "ap-southeast-1")
	v.SetDefault("STORAGE_BUCKET", "volunteerhub-uploads")
	v.SetDefault("STORAGE_ACCESS_KEY", "")
	v.SetDefault("STORAGE_SECRET_KEY", "")
	v.SetDefault("STORAGE_PUBLIC_BASE_URL", "")

	v.SetDefault("SUGGESTION_SERVICE_URL", "")
	v.SetDefault("SUGGESTION_API_KEY", "")
	v.SetDefault("SUGGESTION_TIMEOUT_SECONDS", 15)

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "no-reply@volunteerhub.org")

	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URI", "")
}

// Get returns the loaded config. Panics if Load was never called.
func Get() Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("config: Get called before Load")
	}
	return *instance
}

// GetSafe returns the loaded config and whether it has been initialized.
func GetSafe() (Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		return Config{}, false
	}
	return *instance, true
}

// RedisAddr returns host:port for Redis clients and asynq.
func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
