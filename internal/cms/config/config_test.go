package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults should not fail: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Fatalf("default server address should be :8080, got %q", cfg.ServerAddress)
	}
	if !cfg.SeedBuiltins {
		t.Fatal("builtin seeding should default to enabled")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SITEFORGE_SERVER_ADDRESS", ":9999")
	t.Setenv("SITEFORGE_CDN_PROVIDER", "cloudflare")
	t.Setenv("SITEFORGE_CDN_ZONE_ID", "zone-1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ServerAddress != ":9999" {
		t.Fatalf("server address should be :9999, got %q", cfg.ServerAddress)
	}
	if cfg.CDN.Provider != "cloudflare" || cfg.CDN.ZoneID != "zone-1" {
		t.Fatalf("CDN config not picked up from env: %+v", cfg.CDN)
	}
}

func TestValidate_GenerationRequiresKeyAndModel(t *testing.T) {
	cfg := &Config{ServerAddress: ":8080", DatabaseURL: "postgres://x"}
	cfg.Generation.Provider = "openai"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error when generation provider set without API key")
	}
	cfg.Generation.APIKey = "k"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error when generation provider set without model")
	}
	cfg.Generation.Model = "m"
	if err := Validate(cfg); err != nil {
		t.Fatalf("complete generation config should validate: %v", err)
	}
}

func TestValidate_BuiltinProviderNeedsNoCredentials(t *testing.T) {
	cfg := &Config{ServerAddress: ":8080", DatabaseURL: "postgres://x"}
	cfg.Generation.Provider = GenerationProviderBuiltin
	if err := Validate(cfg); err != nil {
		t.Fatalf("builtin provider should validate without credentials: %v", err)
	}
}
