// Package config resolves runtime settings from flags, MINATBAKAT_* env
// vars, an optional minatbakat.yaml and a .env file, in that priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/minatbakat/internal/scoring"
)

// EnvPrefix is the environment variable prefix for every key.
const EnvPrefix = "MINATBAKAT"

// Keys.
const (
	KeyContent          = "content"
	KeyRIASECCodeLength = "riasec_code_length"
	KeyWebhookURL       = "webhook_url"
	KeyWebhookTimeout   = "webhook_timeout"
	KeyListen           = "listen"
	KeyLogFile          = "log_file"
	KeyVerbose          = "verbose"
	KeyAdvisor          = "advisor"
	KeyCORSOrigins      = "cors_origins"
)

// Config is the resolved runtime configuration.
type Config struct {
	Content          string
	RIASECCodeLength scoring.CodeLength
	WebhookURL       string
	WebhookTimeout   time.Duration
	Listen           string
	LogFile          string
	Verbose          bool
	Advisor          bool
	CORSOrigins      []string
}

// New returns a viper instance with defaults and env binding in place.
// Callers bind their cobra flags onto it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyContent, "embedded")
	v.SetDefault(KeyRIASECCodeLength, int(scoring.DefaultCodeLength))
	v.SetDefault(KeyWebhookURL, "")
	v.SetDefault(KeyWebhookTimeout, 10*time.Second)
	v.SetDefault(KeyListen, ":8080")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyAdvisor, true)
	v.SetDefault(KeyCORSOrigins, []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads .env (if present), then the config file, and decodes v.
// An empty file means minatbakat.yaml in the working directory or
// $XDG_CONFIG_HOME/minatbakat, and is optional.
func Load(v *viper.Viper, file string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("minatbakat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := configHome(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "minatbakat"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Content:          v.GetString(KeyContent),
		RIASECCodeLength: scoring.CodeLength(v.GetInt(KeyRIASECCodeLength)),
		WebhookURL:       v.GetString(KeyWebhookURL),
		WebhookTimeout:   v.GetDuration(KeyWebhookTimeout),
		Listen:           v.GetString(KeyListen),
		LogFile:          v.GetString(KeyLogFile),
		Verbose:          v.GetBool(KeyVerbose),
		Advisor:          v.GetBool(KeyAdvisor),
		CORSOrigins:      v.GetStringSlice(KeyCORSOrigins),
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if err := c.RIASECCodeLength.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.WebhookTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyWebhookTimeout))
	}
	if c.WebhookURL != "" && !strings.HasPrefix(c.WebhookURL, "http://") && !strings.HasPrefix(c.WebhookURL, "https://") {
		errs = append(errs, fmt.Errorf("%s must be an http(s) URL", KeyWebhookURL))
	}
	return errors.Join(errs...)
}

// DefaultLogPath is $XDG_STATE_HOME/minatbakat/minatbakat.log, falling
// back to ~/.local/state. The parent directory is created.
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, "minatbakat", "minatbakat.log")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func configHome() (string, error) {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}
