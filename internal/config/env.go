// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package config

import (
	"os"
	"strconv"
	"strings"
)

var lookupEnv = os.LookupEnv

// FromEnv overlays KSUID_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	cfg.Source = getenvString("KSUID_SOURCE", cfg.Source)
	cfg.Format = getenvString("KSUID_FORMAT", cfg.Format)
	cfg.Count = getenvInt("KSUID_COUNT", cfg.Count)
	cfg.Log.Level = getenvString("KSUID_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Encoding = getenvString("KSUID_LOG_ENCODING", cfg.Log.Encoding)
}

func getenvString(key, fallback string) string {
	value, ok := lookupEnvTrimmed(key)
	if !ok {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value, ok := lookupEnvTrimmed(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func lookupEnvTrimmed(key string) (string, bool) {
	raw, ok := lookupEnv(key)
	if !ok {
		return "", false
	}
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", false
	}
	return value, true
}
