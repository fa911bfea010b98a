package baas

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	apierrors "github.com/Angies2/baas-sdk-go/errors"
)

// Environment variables read by LoadConfigFromEnv.
const (
	EnvAccessID           = "BAAS_ACCESS_ID"
	EnvAccessKey          = "BAAS_ACCESS_KEY"
	EnvBaseURL            = "BAAS_BASE_URL"
	EnvCAFile             = "BAAS_CA_FILE"
	EnvInsecureSkipVerify = "BAAS_INSECURE_SKIP_VERIFY"
	EnvDebug              = "BAAS_DEBUG"
)

var ErrInvalidConfig = errors.New("invalid client config")

var validate = validator.New()

// Config holds the credentials and the endpoint of a client. It is copied
// into the client and never modified afterwards.
type Config struct {
	AccessID  string `validate:"required"`
	AccessKey string `validate:"required"`

	// BaseURL is prepended to operation paths as is. Empty means
	// DefaultBaseURL.
	BaseURL string `validate:"required,url"`

	// CA is a PEM bundle of trust anchors for https endpoints. Empty means
	// the system pool.
	CA []byte

	// InsecureSkipVerify disables verification of the server certificate.
	InsecureSkipVerify bool

	// Debug turns on tracing to a development logger when no logger was
	// given with WithLogger.
	Debug bool
}

func (c *Config) withDefaults() Config {
	cfg := *c
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return cfg
}

// Validate checks that the credentials are present and BaseURL is a URL.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return apierrors.InvalidArgument("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// MarshalLogObject logs the non-secret part of the config.
func (c *Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("accessId", c.AccessID)
	enc.AddString("baseUrl", c.BaseURL)
	enc.AddBool("customCA", len(c.CA) != 0)
	enc.AddBool("insecureSkipVerify", c.InsecureSkipVerify)
	enc.AddBool("debug", c.Debug)
	return nil
}

// LoadConfigFromEnv loads the given .env files (".env" if none given) and
// builds a Config from the BAAS_* variables. Files that do not exist are
// skipped and variables already set in the environment win.
func LoadConfigFromEnv(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := &Config{
		AccessID:  os.Getenv(EnvAccessID),
		AccessKey: os.Getenv(EnvAccessKey),
		BaseURL:   os.Getenv(EnvBaseURL),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if caFile := os.Getenv(EnvCAFile); caFile != "" {
		ca, err := os.ReadFile(caFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA file: %w", err)
		}
		cfg.CA = ca
	}
	var err error
	if cfg.InsecureSkipVerify, err = envBool(EnvInsecureSkipVerify); err != nil {
		return nil, err
	}
	if cfg.Debug, err = envBool(EnvDebug); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envBool(name string) (bool, error) {
	value := os.Getenv(name)
	if value == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, apierrors.InvalidArgument("%w: %s=%q is not a boolean", ErrInvalidConfig, name, value)
	}
	return b, nil
}
