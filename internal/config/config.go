package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/samber/oops"
)

// Config holds process settings read from the environment.
type Config struct {
	WorldFile   string `env:"DIGGER_WORLD_FILE" envDefault:"data/world.ini"`
	Seed        int64  `env:"DIGGER_SEED"       envDefault:"-1"`
	LogLevel    string `env:"DIGGER_LOG_LEVEL"  envDefault:"info"`
	LogFormat   string `env:"DIGGER_LOG_FORMAT" envDefault:"text"`
	Environment string `env:"DIGGER_ENV"        envDefault:"dev"`
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	// Real environment variables still work without a .env file.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, oops.Wrapf(err, "parse env")
	}
	return &cfg, nil
}

// HasSeed reports whether a fixed seed was configured. Negative means pick one.
func (c *Config) HasSeed() bool {
	return c.Seed >= 0
}
