package advisor

// Config holds counselor-note generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns defaults for counselor notes.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   600,
		Temperature: 0.6,
	}
}
