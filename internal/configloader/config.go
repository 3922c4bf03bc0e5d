package configloader

// Config holds tree-view defaults loaded from .rowan.yaml.
type Config struct {
	// MaxDepth limits tree rendering depth; 0 means unlimited.
	MaxDepth int `yaml:"max_depth"`

	// MaxPreview bounds the printed token text length in bytes.
	MaxPreview int `yaml:"max_preview"`

	// Color controls colored output: "auto", "always", or "never".
	Color string `yaml:"color"`

	// HideTokens prints interior nodes only.
	HideTokens bool `yaml:"hide_tokens"`

	// LogLevel sets the logger verbosity: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		MaxDepth:   0,
		MaxPreview: 40,
		Color:      "auto",
		HideTokens: false,
		LogLevel:   "info",
	}
}
