package config

import "testing"

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	env := LoadEnv()
	if env.AppAddr != ":8080" {
		t.Fatalf("default addr wrong: %q", env.AppAddr)
	}
	if env.DBHost != "127.0.0.1:3306" || env.DBUser != "root" || env.DBName != "travel_agency" {
		t.Fatalf("db defaults wrong: %+v", env)
	}
	if len(env.CORSOrigins) != 0 {
		t.Fatalf("expected no origins, got %v", env.CORSOrigins)
	}
}

func TestLoadEnvParsesOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	env := LoadEnv()
	if len(env.CORSOrigins) != 2 || env.CORSOrigins[1] != "https://b.example.com" {
		t.Fatalf("origins parsed wrong: %v", env.CORSOrigins)
	}
}
