package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the server configuration. Values come from the environment,
// optionally seeded from a YAML file pointed at by CONFIG_PATH.
type Config struct {
	Env  string `yaml:"env" env:"CAPESHOP_ENV" env-default:"local"`
	Host string `yaml:"host" env:"CAPESHOP_HOST" env-default:""`
	Port int    `yaml:"port" env:"CAPESHOP_PORT" env-default:"8080"`

	StorageType string `yaml:"storage_type" env:"STORAGE_TYPE" env-default:"memory"`
	RedisURL    string `yaml:"redis_url" env:"REDIS_URL" env-default:"redis://localhost:6379"`

	CatalogPath string        `yaml:"catalog_path" env:"CATALOG_PATH" env-default:"data/capes.json"`
	StaticDir   string        `yaml:"static_dir" env:"STATIC_DIR" env-default:"internal/web/static"`
	SessionTTL  time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"24h"`

	// DiscordAPIKey belongs to the Shadows Crew bot that grants currency
	// out of band. The shop only ever displays whether it is configured.
	DiscordAPIKey string `yaml:"discord_api_key" env:"DISCORD_API_KEY"`
}

// Load reads configuration from CONFIG_PATH (if set) and the environment
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
