package config

import "fmt"

// GenerationProviderBuiltin is the offline generation provider shipped with
// the server. It runs without credentials.
const GenerationProviderBuiltin = "builtin"

// Validate performs runtime validations on the loaded configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.ServerAddress == "" {
		return fmt.Errorf("server address must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL must not be empty")
	}
	if p := cfg.Generation.Provider; p != "" && p != GenerationProviderBuiltin {
		if cfg.Generation.APIKey == "" {
			return fmt.Errorf("generation API key must be specified when a hosted generation provider is configured")
		}
		if cfg.Generation.Model == "" {
			return fmt.Errorf("generation model must be specified when a hosted generation provider is configured")
		}
	}
	return nil
}
