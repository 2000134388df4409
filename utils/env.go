package utils

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func EnvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

// EnvBool accepts the strconv.ParseBool spellings; anything else is def.
func EnvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

// EnvDuration reads a Go duration ("24h", "90m").
func EnvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
