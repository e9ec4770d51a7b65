package main

import (
	"reflect"
	"testing"
)

func TestLoadConfig_RequiresDBURL(t *testing.T) {
	t.Setenv("DB_URL", "")
	if _, err := loadConfig(); err == nil {
		t.Error("expected an error without DB_URL")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/coach")
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("SNAPSHOT_SCHEDULE", "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	want := config{
		DBURL:            "postgres://localhost/coach",
		Port:             "3000",
		Env:              "development",
		CORSOrigins:      []string{"*"},
		SnapshotSchedule: "@daily",
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("loadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://db/coach")
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, http://localhost:5173,")
	t.Setenv("SNAPSHOT_SCHEDULE", "0 0 4 * * *")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != "production" || cfg.SnapshotSchedule != "0 0 4 * * *" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if want := []string{"https://app.example.com", "http://localhost:5173"}; !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.CORSOrigins, want)
	}
}
