package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Ai.Sector != "general" {
		t.Errorf("sector = %q", cfg.Ai.Sector)
	}
	if cfg.Ai.MaxNewTokens != 512 {
		t.Errorf("max new tokens = %d", cfg.Ai.MaxNewTokens)
	}
	if cfg.Ai.Temperature != 0.7 || cfg.Ai.TopP != 0.9 {
		t.Errorf("generation params = %f / %f", cfg.Ai.Temperature, cfg.Ai.TopP)
	}
	if cfg.Ai.SimilarityThreshold != 0.7 {
		t.Errorf("similarity threshold = %f", cfg.Ai.SimilarityThreshold)
	}
	if cfg.Ai.MaxContextEntries != 3 {
		t.Errorf("max context entries = %d", cfg.Ai.MaxContextEntries)
	}
	if !cfg.Ai.EnableCache || cfg.Ai.CacheTTL != 3600 {
		t.Errorf("cache = %v / %d", cfg.Ai.EnableCache, cfg.Ai.CacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AI_VECTOR_SIMILARITY_THRESHOLD", "0.85")
	t.Setenv("AI_MAX_CONTEXT_ENTRIES", "5")
	t.Setenv("AI_ENABLE_CACHE", "false")
	t.Setenv("AI_SECTOR", "telecom")

	cfg := Load()

	if cfg.Ai.SimilarityThreshold != 0.85 {
		t.Errorf("similarity threshold = %f", cfg.Ai.SimilarityThreshold)
	}
	if cfg.Ai.MaxContextEntries != 5 {
		t.Errorf("max context entries = %d", cfg.Ai.MaxContextEntries)
	}
	if cfg.Ai.EnableCache {
		t.Error("expected cache disabled")
	}
	if cfg.Ai.Sector != "telecom" {
		t.Errorf("sector = %q", cfg.Ai.Sector)
	}
}

func TestEnvHelpersIgnoreMalformedValues(t *testing.T) {
	t.Setenv("AI_TEMPERATURE", "warm")
	t.Setenv("AI_MAX_NEW_TOKENS", "lots")

	cfg := Load()

	if cfg.Ai.Temperature != 0.7 {
		t.Errorf("temperature fallback = %f", cfg.Ai.Temperature)
	}
	if cfg.Ai.MaxNewTokens != 512 {
		t.Errorf("max new tokens fallback = %d", cfg.Ai.MaxNewTokens)
	}
}
