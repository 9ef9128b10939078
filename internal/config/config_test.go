package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, expected 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Driver = %q, expected sqlite", cfg.Database.Driver)
	}
	if cfg.JWT.ExpireHour != 24 {
		t.Errorf("ExpireHour = %d, expected 24", cfg.JWT.ExpireHour)
	}
	if cfg.Log.RetentionDays != 30 {
		t.Errorf("RetentionDays = %d, expected 30", cfg.Log.RetentionDays)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  host: 127.0.0.1
  port: "9090"
  mode: release
database:
  driver: postgres
  dsn: host=localhost dbname=borantia
jwt:
  secret: file-secret
  expire_hour: 12
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, expected 9090", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Driver = %q, expected postgres", cfg.Database.Driver)
	}
	if cfg.JWT.Secret != "file-secret" {
		t.Errorf("Secret = %q", cfg.JWT.Secret)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "3001")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("LOG_RETENTION_DAYS", "7")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "3001" {
		t.Errorf("Port = %q, expected env override 3001", cfg.Server.Port)
	}
	if cfg.Database.Driver != "mysql" {
		t.Errorf("Driver = %q, expected env override mysql", cfg.Database.Driver)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("Secret = %q, expected env override", cfg.JWT.Secret)
	}
	if cfg.Log.RetentionDays != 7 {
		t.Errorf("RetentionDays = %d, expected 7", cfg.Log.RetentionDays)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved", "config.yaml")

	cfg := DefaultConfig()
	cfg.Server.Port = "4000"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if reloaded.Server.Port != "4000" {
		t.Errorf("Port = %q, expected 4000", reloaded.Server.Port)
	}
}
