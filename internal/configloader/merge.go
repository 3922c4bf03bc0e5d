package configloader

// merge combines two configurations, with override taking precedence over base.
// Scalar values in override replace base when non-zero; nil configs pass
// through unchanged. HideTokens can only be switched on by an override, not
// back off, which matches how the flag is used.
func merge(base, override *Config) *Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.MaxPreview != 0 {
		result.MaxPreview = override.MaxPreview
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.HideTokens {
		result.HideTokens = override.HideTokens
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*Config) *Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
