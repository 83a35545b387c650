package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_DEBUG_JSON dumps every frame exchanged with the fake server
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_TIMEOUT bounds every Eventually assertion
	Timeout time.Duration `envconfig:"E2E_TIMEOUT" default:"5s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
