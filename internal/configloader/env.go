package configloader

import (
	"fmt"
	"os"
	"strconv"
)

// envVarPrefix is the prefix for all rowan environment variables.
const envVarPrefix = "ROWAN_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with ROWAN_ (e.g., ROWAN_MAX_DEPTH).
func LoadFromEnv(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	if value := os.Getenv(envVarPrefix + "MAX_DEPTH"); value != "" {
		depth, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %sMAX_DEPTH: %q", envVarPrefix, value)
		}
		cfg.MaxDepth = depth
	}

	if value := os.Getenv(envVarPrefix + "MAX_PREVIEW"); value != "" {
		preview, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %sMAX_PREVIEW: %q", envVarPrefix, value)
		}
		cfg.MaxPreview = preview
	}

	if value := os.Getenv(envVarPrefix + "COLOR"); value != "" {
		cfg.Color = value
	}

	if value := os.Getenv(envVarPrefix + "HIDE_TOKENS"); value != "" {
		hide, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sHIDE_TOKENS: %q (expected true/false/1/0)", envVarPrefix, value)
		}
		cfg.HideTokens = hide
	}

	if value := os.Getenv(envVarPrefix + "LOG_LEVEL"); value != "" {
		cfg.LogLevel = value
	}

	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"ROWAN_MAX_DEPTH":   "Maximum tree rendering depth (0 = unlimited)",
		"ROWAN_MAX_PREVIEW": "Maximum token text preview length in bytes",
		"ROWAN_COLOR":       "Color mode: auto, always, or never",
		"ROWAN_HIDE_TOKENS": "Print interior nodes only: true or false",
		"ROWAN_LOG_LEVEL":   "Logger verbosity: debug, info, warn, or error",
	}
}
