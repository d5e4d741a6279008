package config

import "testing"

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{Supabase: SupabaseConfig{
			URL:     "https://project.supabase.co",
			AnonKey: "anon",
		}}
	}

	t.Run("valid without service role key", func(t *testing.T) {
		if err := base().Validate(); err != nil {
			t.Errorf("Validate: %v", err)
		}
	})

	t.Run("missing url", func(t *testing.T) {
		cfg := base()
		cfg.Supabase.URL = ""
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing supabase.url")
		}
	})

	t.Run("missing anon key", func(t *testing.T) {
		cfg := base()
		cfg.Supabase.AnonKey = ""
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing supabase.anon_key")
		}
	})
}
