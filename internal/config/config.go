package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // billing timezone must resolve on minimal images

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// Gemini exposes an OpenAI-compatible surface under this base URL.
const DefaultAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	AI      AIConfig      `mapstructure:"ai"`
	S3      S3Config      `mapstructure:"s3"`
	Billing BillingConfig `mapstructure:"billing"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	Mode            string        `mapstructure:"mode"` // gin mode: debug, release, test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
	File  string `mapstructure:"file"`
}

// AIConfig configures the OpenAI-compatible text generation endpoint.
// An empty API key disables the AI features.
type AIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float32 `mapstructure:"temperature"`
}

// S3Config points at the bucket holding exercise images. An empty bucket
// name disables presigning.
type S3Config struct {
	Endpoint        string        `mapstructure:"endpoint"`
	Region          string        `mapstructure:"region"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	BucketName      string        `mapstructure:"bucket_name"`
	PresignExpiry   time.Duration `mapstructure:"presign_expiry"`
}

type BillingConfig struct {
	CardBrands        []string `mapstructure:"card_brands"`
	DefaultPaymentDay int      `mapstructure:"default_payment_day"`
	DefaultWeight     float64  `mapstructure:"default_weight"` // kg, used when a client has no progress log
	Timezone          string   `mapstructure:"timezone"`
}

// Location resolves the billing timezone. Call after Validate.
func (b BillingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LoadConfig reads configuration from a .env file, config.yaml in path and
// environment variables, in increasing order of precedence.
func LoadConfig(path string) (config Config, err error) {
	if err = godotenv.Load(filepath.Join(path, ".env")); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, fmt.Errorf("load .env: %w", err)
		}
		err = nil
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	err = v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decode config: %w", err)
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "60s") // AI calls are slow
	v.SetDefault("server.shutdown_timeout", "5s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.json", true)
	v.SetDefault("logging.file", "")

	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.base_url", DefaultAIBaseURL)
	v.SetDefault("ai.model", "gemini-2.5-flash")
	v.SetDefault("ai.max_tokens", 2048)
	v.SetDefault("ai.temperature", 0.7)

	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.presign_expiry", "15m")

	v.SetDefault("billing.card_brands", []string{"Mastercard", "Visa", "Elo", "Amex"})
	v.SetDefault("billing.default_payment_day", 10)
	v.SetDefault("billing.default_weight", 70)
	v.SetDefault("billing.timezone", "America/Sao_Paulo")
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var err error
	if c.Server.Address == "" {
		err = multierr.Append(err, errors.New("server.address is required"))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		err = multierr.Append(err, fmt.Errorf("server.mode %q must be debug, release or test", c.Server.Mode))
	}
	if c.Server.ShutdownTimeout <= 0 {
		err = multierr.Append(err, errors.New("server.shutdown_timeout must be positive"))
	}
	if c.AI.APIKey != "" && c.AI.Model == "" {
		err = multierr.Append(err, errors.New("ai.model is required when ai.api_key is set"))
	}
	if c.AI.MaxTokens < 0 {
		err = multierr.Append(err, errors.New("ai.max_tokens must not be negative"))
	}
	if c.S3.BucketName != "" && (c.S3.AccessKeyID == "" || c.S3.SecretAccessKey == "") {
		err = multierr.Append(err, errors.New("s3 credentials are required when s3.bucket_name is set"))
	}
	if d := c.Billing.DefaultPaymentDay; d < 1 || d > 31 {
		err = multierr.Append(err, fmt.Errorf("billing.default_payment_day %d must be within 1-31", d))
	}
	if c.Billing.DefaultWeight <= 0 {
		err = multierr.Append(err, errors.New("billing.default_weight must be positive"))
	}
	if len(c.Billing.CardBrands) == 0 {
		err = multierr.Append(err, errors.New("billing.card_brands must not be empty"))
	}
	if _, lerr := time.LoadLocation(c.Billing.Timezone); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("billing.timezone: %w", lerr))
	}
	return err
}
