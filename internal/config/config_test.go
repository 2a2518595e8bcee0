package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore; the variable itself must be absent
	// for envDefault to kick in.
	for _, key := range []string{"DATABASE_URL", "JWT_SECRET", "SERVER_PORT", "REDIS_URL", "S3_BUCKET", "S3_REGION"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBUrl == "" {
		t.Fatalf("DBUrl default missing")
	}
	if cfg.ServerPort != "8080" {
		t.Fatalf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.S3Region != "us-east-1" {
		t.Fatalf("S3Region = %q, want us-east-1", cfg.S3Region)
	}
	if cfg.RedisURL != "" {
		t.Fatalf("RedisURL must default to empty, got %q", cfg.RedisURL)
	}
	if cfg.S3Bucket != "" {
		t.Fatalf("S3Bucket must default to empty, got %q", cfg.S3Bucket)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/booking?sslmode=disable")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_URL", "redis://cache:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBUrl != "postgres://u:p@db:5432/booking?sslmode=disable" {
		t.Fatalf("DBUrl = %q", cfg.DBUrl)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Fatalf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.RedisURL != "redis://cache:6379/0" {
		t.Fatalf("RedisURL = %q", cfg.RedisURL)
	}
	if got := cfg.Addr(); got != ":9090" {
		t.Fatalf("Addr() = %q, want :9090", got)
	}
}
