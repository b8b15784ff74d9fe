package config

import (
	"errors"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort          = "3000"
	DefaultMaxImageBytes = 32 * 1024 * 1024
	UserAgent            = "Mozilla/5.0"
)

type Config struct {
	Port            string
	ListenAddr      string
	Workers         int
	FetchTimeoutSec int
	MaxImageBytes   int64
	UserAgent       string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:            getEnv("PORT", DefaultPort),
		Workers:         getEnvInt("WORKERS", 0),
		FetchTimeoutSec: getEnvInt("FETCH_TIMEOUT_SEC", 0),
		MaxImageBytes:   getEnvInt64("MAX_IMAGE_BYTES", DefaultMaxImageBytes),
		UserAgent:       UserAgent,
	}
	cfg.ListenAddr = net.JoinHostPort("0.0.0.0", cfg.Port)

	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, errors.New("port must be a number in 1..65535")
	}
	if cfg.Workers < 0 {
		return Config{}, errors.New("workers must be >= 0")
	}
	if cfg.FetchTimeoutSec < 0 {
		return Config{}, errors.New("fetch timeout sec must be >= 0")
	}
	if cfg.MaxImageBytes <= 0 {
		return Config{}, errors.New("max image bytes must be > 0")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
