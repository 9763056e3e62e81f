package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load should tolerate a missing file: %v", err)
	}
	if cfg.Server.Port != "8000" {
		t.Errorf("Expected default port 8000, got %s", cfg.Server.Port)
	}
	if cfg.Server.BasePath != "/api/tasks" {
		t.Errorf("Expected default base path /api/tasks, got %s", cfg.Server.BasePath)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected 10s shutdown timeout, got %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Workflow.QueueSize != 256 || cfg.Workflow.Workers != 2 {
		t.Errorf("Unexpected workflow defaults: %+v", cfg.Workflow)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9100"
  mode: release
  base_path: /api/boards
database:
  host: db.internal
  name: boards
workflow:
  queue_size: 512
  workers: 8
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "9100" {
		t.Errorf("Expected port 9100, got %s", cfg.Server.Port)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("Expected mode release, got %s", cfg.Server.Mode)
	}
	if cfg.Server.BasePath != "/api/boards" {
		t.Errorf("Expected base path /api/boards, got %s", cfg.Server.BasePath)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Name != "boards" {
		t.Errorf("Unexpected database config: %+v", cfg.Database)
	}
	// Fields absent from the file keep their defaults
	if cfg.Database.Port != "5432" {
		t.Errorf("Expected default database port, got %s", cfg.Database.Port)
	}
	if cfg.Workflow.QueueSize != 512 || cfg.Workflow.Workers != 8 {
		t.Errorf("Unexpected workflow config: %+v", cfg.Workflow)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9100"
jwt:
  secret: from-file
`)
	t.Setenv("SERVER_PORT", "9200")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "9200" {
		t.Errorf("Expected env port 9200, got %s", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "from-env" {
		t.Errorf("Expected env secret, got %s", cfg.JWT.Secret)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[0] != "https://app.example.com" {
		t.Errorf("Unexpected allowed origins: %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Error("Expected an error for malformed YAML")
	}
}

func TestGetDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "secret",
		Name:     "task_board",
		SSLMode:  "disable",
	}
	want := "host=localhost port=5432 user=postgres password=secret dbname=task_board sslmode=disable"
	if got := d.GetDSN(); got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}
