package config

import (
	"os"

	env "github.com/caarlos0/env/v11"
)

const DefaultPort = 3000

type Config struct {
	Port int `env:"PORT" envDefault:"3000"`
}

// Load reads the process environment.
func Load() Config {
	return FromEnvironment(env.ToMap(os.Environ()))
}

// FromEnvironment parses environ and falls back to DefaultPort when PORT is
// missing, not a number, or outside 1..65535.
func FromEnvironment(environ map[string]string) Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{Port: DefaultPort}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		cfg.Port = DefaultPort
	}
	return cfg
}
