package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderStub       = "stub"
)

// EnvPrefix prefixes the explicit LLM environment variables.
const EnvPrefix = "MINATBAKAT_LLM_"

// vendorKeys are the conventional API key variables, in discovery order.
var vendorKeys = []struct{ provider, env string }{
	{ProviderGemini, "GEMINI_API_KEY"},
	{ProviderOpenAI, "OPENAI_API_KEY"},
	{ProviderAnthropic, "ANTHROPIC_API_KEY"},
	{ProviderOpenRouter, "OPENROUTER_API_KEY"},
}

var defaultModels = map[string]string{
	ProviderAnthropic:  "claude-haiku",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderGemini:     "gemini-flash",
	ProviderOpenRouter: "google/gemini-2.0-flash-001",
	ProviderStub:       "stub",
}

// aliases are short model names accepted in MINATBAKAT_LLM_MODEL.
var aliases = map[string]string{
	"claude-haiku": "claude-haiku-4-5-20251001",
	"gemini-flash": "gemini-2.0-flash",
}

// ResolveModel expands an alias to a model ID; other names pass through.
func ResolveModel(name string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}

// Config selects and tunes one provider.
type Config struct {
	Provider string
	Model    string
	APIKey   string
	// BaseURL overrides the vendor endpoint; any OpenAI-compatible API
	// works with the openai provider.
	BaseURL string
	Backoff Backoff
	// Timeout bounds one advice request, retries included.
	Timeout time.Duration
}

// Defaults fills the model, backoff and timeout for provider. They are
// sized for a participant waiting on the result screen.
func Defaults(provider string) Config {
	return Config{
		Provider: provider,
		Model:    defaultModels[provider],
		Backoff:  Backoff{Attempts: 2, Base: 500 * time.Millisecond, Max: 4 * time.Second},
		Timeout:  20 * time.Second,
	}
}

// Resolve reads the environment through getenv (os.Getenv when nil). An
// explicit MINATBAKAT_LLM_PROVIDER wins; otherwise the first vendor key
// found picks the provider. ok is false when neither is set.
func Resolve(getenv func(string) string) (cfg Config, ok bool) {
	if getenv == nil {
		getenv = os.Getenv
	}

	if p := getenv(EnvPrefix + "PROVIDER"); p != "" {
		cfg = Defaults(p)
		cfg.APIKey = getenv(EnvPrefix + "API_KEY")
		if cfg.APIKey == "" {
			for _, vk := range vendorKeys {
				if vk.provider == p {
					cfg.APIKey = getenv(vk.env)
				}
			}
		}
	} else {
		for _, vk := range vendorKeys {
			if key := getenv(vk.env); key != "" {
				cfg = Defaults(vk.provider)
				cfg.APIKey = key
				break
			}
		}
		if cfg.Provider == "" {
			return Config{}, false
		}
	}

	if v := getenv(EnvPrefix + "MODEL"); v != "" {
		cfg.Model = v
	}
	cfg.BaseURL = getenv(EnvPrefix + "BASE_URL")
	if d, err := time.ParseDuration(getenv(EnvPrefix + "TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg, true
}

// Validate checks the provider name and that a key is present.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderStub:
		return nil
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter:
	default:
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%sAPI_KEY is required for the %s provider", EnvPrefix, c.Provider)
	}
	if c.Model == "" {
		return fmt.Errorf("no model set for the %s provider", c.Provider)
	}
	return nil
}
