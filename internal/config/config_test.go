package config

import (
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FORMBIND_RENDERER", "")
	t.Setenv("FORMBIND_LOG_LEVEL", "")
	t.Setenv("FORMBIND_LOG_FILE", "")
	t.Setenv("FORMBIND_NAME_MAX_LENGTH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{Renderer: "text", LogLevel: "warn", NameMaxLength: 30}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Level() != slog.LevelWarn {
		t.Fatalf("expected warn level, got %v", cfg.Level())
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("FORMBIND_RENDERER", "json")
	t.Setenv("FORMBIND_LOG_LEVEL", "debug")
	t.Setenv("FORMBIND_LOG_FILE", "/tmp/formbind.log")
	t.Setenv("FORMBIND_NAME_MAX_LENGTH", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{Renderer: "json", LogLevel: "debug", LogFile: "/tmp/formbind.log", NameMaxLength: 10}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.Level())
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("FORMBIND_NAME_MAX_LENGTH", "-1")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative length")
	}

	t.Setenv("FORMBIND_NAME_MAX_LENGTH", "many")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-numeric length")
	}
}

func TestLevel_Unknown(t *testing.T) {
	if got := (Config{LogLevel: "loud"}).Level(); got != slog.LevelWarn {
		t.Fatalf("expected fallback to warn, got %v", got)
	}
}
