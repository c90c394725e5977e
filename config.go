package main

import (
	"github.com/caarlos0/env/v10"
)

// Config is parsed from the environment after godotenv has loaded .env.
type Config struct {
	Port           string `env:"PORT" envDefault:"5200"`
	DatabaseURL    string `env:"DATABASE_URL,required"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`

	JWTSecret           string `env:"JWT_SECRET,required"`
	DiscordClientID     string `env:"DISCORD_CLIENT_ID,required"`
	DiscordClientSecret string `env:"DISCORD_CLIENT_SECRET,required"`
	DiscordRedirectURI  string `env:"DISCORD_REDIRECT_URI"`

	// 0 disables the retention sweeper.
	RetentionDays int `env:"TOURNAMENT_RETENTION_DAYS" envDefault:"0"`
}

func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
