package client

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config groups all client tunables. Values are taken from environment
// variables with the prefix "INKWELL_". Example:
// INKWELL_BASE_URL=https://blog.example.com/api INKWELL_MAX_ATTEMPTS=5 .
type Config struct {
	BaseURL        string        `envconfig:"BASE_URL" required:"true"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"120s"`
	UploadTimeout  time.Duration `envconfig:"UPLOAD_TIMEOUT" default:"180s"`
	ProbeTimeout   time.Duration `envconfig:"PROBE_TIMEOUT" default:"10s"`
	MaxAttempts    int           `envconfig:"MAX_ATTEMPTS" default:"3"`
	RetryBaseDelay time.Duration `envconfig:"RETRY_BASE_DELAY" default:"5s"`
	TokenFile      string        `envconfig:"TOKEN_FILE" default:""`
}

// LoadConfig populates Config from environment variables (prefix
// INKWELL_), loading a .env file first when one is present.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var c Config
	return c, envconfig.Process("INKWELL", &c)
}

// NewFromEnv constructs a Client from environment configuration.
func NewFromEnv() (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	opts := []Option{
		WithRequestTimeout(cfg.RequestTimeout),
		WithUploadTimeout(cfg.UploadTimeout),
		WithProbeTimeout(cfg.ProbeTimeout),
		WithRetryPolicy(cfg.MaxAttempts, cfg.RetryBaseDelay),
	}
	if cfg.TokenFile != "" {
		opts = append(opts, WithTokenFile(cfg.TokenFile))
	}
	return New(cfg.BaseURL, opts...), nil
}
