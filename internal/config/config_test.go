package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port == "" {
		t.Fatalf("port must default")
	}
	if cfg.DBPath == "" {
		t.Fatalf("db path must default")
	}
	if cfg.AuthSecret == "" {
		t.Fatalf("auth secret must fall back to the built-in default")
	}
	if !cfg.UsesDefaultSecret() {
		t.Fatalf("default secret must be reported as such")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BRAINLY_PORT", "9000")
	t.Setenv("BRAINLY_AUTH_SECRET", "prod-secret")
	t.Setenv("BRAINLY_DB_PATH", "/tmp/test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("port: got %q", cfg.Port)
	}
	if cfg.AuthSecret != "prod-secret" {
		t.Fatalf("auth secret: got %q", cfg.AuthSecret)
	}
	if cfg.UsesDefaultSecret() {
		t.Fatalf("overridden secret must not count as default")
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Fatalf("db path: got %q", cfg.DBPath)
	}
}
