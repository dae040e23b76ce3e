package env

import (
	"log"
)

func NewBootstrapManager(lookup LookupFunc) *BootstrapManager {
	return &BootstrapManager{lookup: lookup}
}

type BootstrapManager struct {
	lookup LookupFunc
}

// Setup loads the configuration. An incomplete upstream configuration is
// logged but not fatal: every gateway call then fails with the generic error.
func (m *BootstrapManager) Setup() (*Config, error) {
	cfg, err := LoadConfig(m.lookup)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		log.Printf("[!] upstream configuration incomplete, all relays will fail: %v", err)
	} else {
		log.Printf("[*] upstream configured: %s", cfg)
	}
	return cfg, nil
}
