package config

import (
	"errors"
	"fmt"
)

func (m *Manager) validate(cfg *Config) error {
	// app
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if cfg.App.LogLevel != "" && !validLevels[cfg.App.LogLevel] {
		return fmt.Errorf("app.log_level must be one of trace, debug, info, warn, error; got %s", cfg.App.LogLevel)
	}

	// dictionary
	if cfg.Dictionary.Path == "" && cfg.Dictionary.DB == "" {
		return errors.New("dictionary.path or dictionary.db is required")
	}
	if cfg.Dictionary.DB != "" && cfg.Dictionary.Name == "" {
		return errors.New("dictionary.name is required with dictionary.db")
	}

	// build
	if cfg.Build.Parallelism < 0 {
		return fmt.Errorf("build.parallelism must be >= 0; got %d", cfg.Build.Parallelism)
	}

	// server
	validModes := map[string]bool{"": true, "debug": true, "release": true, "test": true}
	if !validModes[cfg.Server.GinMode] {
		return fmt.Errorf("server.gin_mode must be one of debug, release, test; got %s", cfg.Server.GinMode)
	}
	if cfg.Server.MaxLetters <= 0 {
		return fmt.Errorf("server.max_letters must be positive; got %d", cfg.Server.MaxLetters)
	}
	if (cfg.Server.Limiter.Requests != 0 && cfg.Server.Limiter.Per == 0) || (cfg.Server.Limiter.Requests == 0 && cfg.Server.Limiter.Per != 0) {
		return errors.New("server.limiter.requests and server.limiter.per must both be set or both be zero")
	}
	if cfg.Server.Limiter.Requests < 0 || cfg.Server.Limiter.Per < 0 {
		return errors.New("server.limiter values must not be negative")
	}

	// cache
	if cfg.Cache.Size < 0 {
		return fmt.Errorf("cache.size must be >= 0; got %d", cfg.Cache.Size)
	}
	if cfg.Cache.Size > 0 && cfg.Cache.TTL <= 0 {
		return errors.New("cache.ttl must be positive when the cache is enabled")
	}

	return nil
}
