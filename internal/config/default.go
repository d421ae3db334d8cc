package config

import (
	"runtime"
	"time"
)

func (m *Manager) GetDefault() *Config {
	return &Config{
		App: App{
			LogLevel: "info",
		},
		Dictionary: Dictionary{
			Path: "words_eng.txt",
			Name: "default",
		},
		Build: Build{
			Parallelism: runtime.GOMAXPROCS(0),
		},
		Server: Server{
			Addr:       ":8080",
			GinMode:    "release",
			MaxLetters: 64,
			Limiter: Limiter{
				Requests: 50,
				Per:      Duration(time.Second),
			},
		},
		Cache: Cache{
			Size: 10_000,
			TTL:  Duration(10 * time.Minute),
		},
	}
}
