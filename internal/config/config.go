package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment
// variables. MONGODB_URI and JWT_SECRET have no defaults on purpose.
type Config struct {
	ServerPort  string `env:"PORT" envDefault:"5000"`
	MongoURI    string `env:"MONGODB_URI,required"`
	MongoDB     string `env:"MONGODB_DATABASE" envDefault:"userhub"`
	JWTSecret   string `env:"JWT_SECRET,required"`
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB     int    `env:"REDIS_DB" envDefault:"0"`
	RedisPass   string `env:"REDIS_PASSWORD"`
	SwaggerHost string `env:"SWAGGER_HOST"`
}

// Load builds Config from the environment, reading a .env file first when one
// is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
