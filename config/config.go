package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	DBDriver       string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DBDSN          string        `env:"DB_DSN" envDefault:"file:jpashop.db?cache=shared"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBSlowQuery    time.Duration `env:"DB_SLOW_QUERY" envDefault:"200ms"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	SeedData bool   `env:"SEED_DATA" envDefault:"true"`
	TimeZone string `env:"TIME_ZONE" envDefault:"Asia/Seoul"`

	CORSAllowOrigin string  `env:"CORS_ALLOW_ORIGIN" envDefault:"*"`
	RateLimitRPS    float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst  int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration with every field at its default,
// ignoring the process environment.
func Default() Config {
	var cfg Config
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return cfg
}
