package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/utils"
)

type Config struct {
	OrganizationName string `ignored:"true"`
	AppName          string `ignored:"true"`

	// Required in every deployable unit.
	APIURL  string `envconfig:"API_URL" required:"true"`
	NodeEnv string `envconfig:"NODE_ENV" required:"true"`

	AppPort    string        `envconfig:"APP_PORT" default:"8080"`
	AppUrl     string        `envconfig:"APP_URL"`
	APITimeout time.Duration `envconfig:"API_TIMEOUT" default:"30s"`
	APIRetry   int           `envconfig:"API_RETRY" default:"0"`
	DotEnvFile string        `envconfig:"DOTENV_FILE" default:".env"`
}

const (
	OrganizationName = utils.OrganizationName
	DefaultAppName   = "client-service"
)

// build-time overrides, set with -ldflags
var (
	AppName string
	// EnvPrefix namespaces every variable, e.g. "NEXT_PUBLIC" reads
	// NEXT_PUBLIC_API_URL and NEXT_PUBLIC_NODE_ENV.
	EnvPrefix string
)

// LoadConfig reads the optional dotenv file, then the process environment.
// Missing required values are reported together in one error.
func LoadConfig(prefix string) (*Config, error) {
	name := AppName
	if name == "" {
		name = DefaultAppName
	}
	utils.Logger.Info("Loading config for app: ", name)

	dotenv := os.Getenv(envKey(prefix, "DOTENV_FILE"))
	if dotenv == "" {
		dotenv = ".env"
	}
	if err := godotenv.Load(dotenv); err != nil {
		// The file is optional; the environment alone may be complete.
		utils.Logger.WithError(err).Debugf("No dotenv file loaded from %s", dotenv)
	}

	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMissingConfig, err)
	}
	if err := cfg.Validate(prefix); err != nil {
		return nil, err
	}

	cfg.OrganizationName = OrganizationName
	cfg.AppName = name
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	utils.Logger.Infof("Loaded config for %s (%s)", cfg.AppName, cfg.NodeEnv)
	return &cfg, nil
}

// Validate rejects values envconfig accepts but the client cannot work with.
func (c *Config) Validate(prefix string) error {
	var errs []error
	if strings.TrimSpace(c.APIURL) == "" {
		errs = append(errs, fmt.Errorf("%w: %s must be set in env file", utils.ErrMissingConfig, envKey(prefix, "API_URL")))
	}
	if strings.TrimSpace(c.NodeEnv) == "" {
		errs = append(errs, fmt.Errorf("%w: %s must be set in env file", utils.ErrMissingConfig, envKey(prefix, "NODE_ENV")))
	}
	if c.APITimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %s", envKey(prefix, "API_TIMEOUT"), c.APITimeout))
	}
	if c.APIRetry < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative, got %d", envKey(prefix, "API_RETRY"), c.APIRetry))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether the runtime mode flag is "production".
func (c *Config) IsProduction() bool {
	return c.NodeEnv == utils.RuntimeModeProduction
}

func envKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return strings.ToUpper(prefix) + "_" + key
}
