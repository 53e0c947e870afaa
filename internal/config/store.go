package config

import (
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Store is the single publish point for the live configuration.
// Consumers read binding tables between input events, so a reload
// builds a complete aggregate off to the side and swaps the pointer
// atomically; a partially-built aggregate is never visible.
type Store struct {
	customPath string
	current    atomic.Pointer[Config]
}

// NewStore creates a store. customPath, usually from the -c flag, is
// probed first on every load.
func NewStore(customPath string) *Store {
	return &Store{customPath: customPath}
}

// Load performs the initial configuration load and publishes the
// result. Returns the parse code (see Load).
func (s *Store) Load() int {
	cfg, code := Load(s.customPath)
	s.current.Store(cfg)
	return code
}

// Current returns the live aggregate. It is nil only before the first
// Load.
func (s *Store) Current() *Config {
	return s.current.Load()
}

// Reload rebuilds the configuration and swaps it in. When resolution
// fails outright and a previous aggregate exists, the previous one
// stays live; a reload never downgrades a working configuration to
// hardcoded defaults.
func (s *Store) Reload() int {
	cfg, code := Load(s.customPath)

	if code == LoadedNone && s.current.Load() != nil {
		log.Warn("reload found no loadable config, keeping previous configuration")
		return code
	}

	s.current.Store(cfg)
	log.Info("configuration reloaded", "source", cfg.Source, "failures", max(code, 0))
	return code
}
