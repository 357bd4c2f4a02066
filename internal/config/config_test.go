package config

import (
	"strings"
	"testing"
)

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Driver:    DriverSurreal,
			Host:      "localhost",
			Port:      "8000",
			Namespace: "catalog",
			Database:  "main",
		},
		RateLimit: RateLimitConfig{Enabled: true, RPS: 10, Burst: 20},
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidServerEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "invalid"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid SERVER_ENV")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected error to mention SERVER_ENV, got: %v", err)
	}
}

func TestConfig_Validate_MissingPort(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing SERVER_PORT")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("expected error to mention SERVER_PORT, got: %v", err)
	}
}

func TestConfig_Validate_EmptyAllowedOrigins(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.AllowedOrigins = nil

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for empty CORS_ALLOWED_ORIGINS")
	}
	if !strings.Contains(err.Error(), "CORS_ALLOWED_ORIGINS") {
		t.Errorf("expected error to mention CORS_ALLOWED_ORIGINS, got: %v", err)
	}
}

func TestConfig_Validate_UnknownDriver(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database.Driver = "mongo"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown DB_DRIVER")
	}
	if !strings.Contains(err.Error(), "DB_DRIVER") {
		t.Errorf("expected error to mention DB_DRIVER, got: %v", err)
	}
}

func TestConfig_Validate_SurrealMissingFields(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database.Host = ""
	cfg.Database.Namespace = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing surreal fields")
	}
	msg := err.Error()
	if !strings.Contains(msg, "DB_HOST") || !strings.Contains(msg, "DB_NAMESPACE") {
		t.Errorf("expected error to list DB_HOST and DB_NAMESPACE, got: %v", err)
	}
}

func TestConfig_Validate_PostgresRequiresDSN(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database.Driver = DriverPostgres
	cfg.Database.PostgresDSN = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing DB_DSN")
	}
	if !strings.Contains(err.Error(), "DB_DSN") {
		t.Errorf("expected error to mention DB_DSN, got: %v", err)
	}
}

func TestConfig_Validate_PostgresIgnoresSurrealFields(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database = DatabaseConfig{
		Driver:      DriverPostgres,
		PostgresDSN: "postgres://localhost:5432/catalog",
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_RateLimit(t *testing.T) {
	cfg := validBaseConfig()
	cfg.RateLimit.RPS = 0

	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "RATE_LIMIT_RPS") {
		t.Errorf("expected RATE_LIMIT_RPS error, got: %v", err)
	}

	cfg.RateLimit.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled rate limit should not be validated, got: %v", err)
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""
	cfg.Server.Env = "staging"
	cfg.Database.Driver = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}

	msg := err.Error()
	for _, want := range []string{"SERVER_PORT", "SERVER_ENV", "DB_DRIVER"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error to mention %s, got: %v", want, msg)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Driver != DriverSurreal {
		t.Errorf("expected default driver %q, got %q", DriverSurreal, cfg.Database.Driver)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Catalog.SeedFile != "" {
		t.Errorf("expected no default seed file, got %q", cfg.Catalog.SeedFile)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_DSN", "postgres://u:p@db:5432/x")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a,http://b")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("expected postgres driver, got %q", cfg.Database.Driver)
	}
	if cfg.Database.PostgresDSN != "postgres://u:p@db:5432/x" {
		t.Errorf("unexpected DSN %q", cfg.Database.PostgresDSN)
	}
	if cfg.RateLimit.RPS != 2.5 {
		t.Errorf("expected RPS 2.5, got %v", cfg.RateLimit.RPS)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("expected 2 origins, got %v", cfg.Server.AllowedOrigins)
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := validBaseConfig()
	if !cfg.IsDevelopment() {
		t.Error("expected development")
	}
	cfg.Server.Env = "production"
	if cfg.IsDevelopment() {
		t.Error("expected not development")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := validBaseConfig()
	if cfg.IsProduction() {
		t.Error("expected not production")
	}
	cfg.Server.Env = "production"
	if !cfg.IsProduction() {
		t.Error("expected production")
	}
}

func validBaseConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Driver:    DriverSurreal,
			Host:      "localhost",
			Port:      "8000",
			Namespace: "catalog",
			Database:  "main",
		},
		RateLimit: RateLimitConfig{Enabled: true, RPS: 10, Burst: 20},
	}
}
