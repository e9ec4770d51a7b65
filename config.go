package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// config is the server's environment-driven configuration.
type config struct {
	DBURL            string
	Port             string
	Env              string
	CORSOrigins      []string
	SnapshotSchedule string
}

// loadConfig reads .env (if present) and then the process environment.
// A missing .env is fine in deployed environments where variables are set directly.
func loadConfig() (config, error) {
	_ = godotenv.Load()

	cfg := config{
		DBURL:            os.Getenv("DB_URL"),
		Port:             getEnv("PORT", "3000"),
		Env:              getEnv("ENV", "development"),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "*")),
		SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", "@daily"),
	}
	if cfg.DBURL == "" {
		return cfg, fmt.Errorf("DB_URL is required")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
