package config

import (
	"github.com/rs/zerolog"
)

type (
	Buckets struct {
		// Count is the number of buckets a dynamic bucket list is initialized with. It stays
		// the same for the whole map lifetime, as the bucket list is never resized. Chaining
		// buckets are unbounded, so it's only about the average chain length.
		Count int
		// Prealloc is the initial capacity of every growable chaining bucket. Doesn't affect
		// small-inline buckets, as their first entries are stored inline anyway.
		Prealloc int
	}

	Log struct {
		// Logger receives map events: tuning and capacity exhaustion. Defaults to a no-op
		// logger.
		Logger zerolog.Logger `test:"nullable"`
	}
)

// Config holds settings used by the presets, mainly pre-allocations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because zero values are either replaced by defaults or result in a panic
// on construction.
type Config struct {
	Buckets Buckets
	Log     Log
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Buckets: Buckets{
			Count: 64,
			// most buckets never see a collision with a sane load factor
			Prealloc: 1,
		},
		Log: Log{
			Logger: zerolog.Nop(),
		},
	}
}
