package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/example/wordomikuji/internal/database"
)

// Config holds all runtime configuration, read from the environment with an
// optional .env file on top
type Config struct {
	Env    string `env:"APP_ENV" env-default:"dev"`
	Client Client
	Server Server
	Bot    Bot
}

// Client configures the local quiz client (CLI and bot)
type Client struct {
	DBPath     string `env:"CLIENT_DB_PATH" env-default:"data/omikuji.db"`
	Language   string `env:"QUIZ_LANGUAGE" env-default:"ja"`
	APIBaseURL string `env:"API_BASE_URL" env-default:"http://localhost:8787"`
}

// Server configures the backend API
type Server struct {
	Addr        string `env:"SERVER_ADDR" env-default:":8787"`
	DatabaseURL string `env:"DATABASE_URL"`
	DBPath      string `env:"SERVER_DB_PATH" env-default:"data/omikuji-server.db"`
	CORSOrigin  string `env:"CORS_ORIGIN" env-default:"http://localhost:5173"`
}

// Bot configures the Telegram front-end
type Bot struct {
	Token            string `env:"TELEGRAM_BOT_TOKEN"`
	SchedulerEnabled bool   `env:"ENABLE_SCHEDULER" env-default:"true"`
}

// Load reads the configuration. A missing .env file is fine; the
// environment always wins.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return &cfg, nil
}

// ClientDatabase returns the connection target for the local store
func (c *Config) ClientDatabase() database.Config {
	return database.Config{Driver: database.DriverSQLite, DSN: c.Client.DBPath}
}

// ServerDatabase returns the connection target for the backend store:
// PostgreSQL when DATABASE_URL is set, a local SQLite file otherwise
func (c *Config) ServerDatabase() database.Config {
	if c.Server.DatabaseURL != "" {
		return database.Config{Driver: database.DriverPostgres, DSN: c.Server.DatabaseURL}
	}
	return database.Config{Driver: database.DriverSQLite, DSN: c.Server.DBPath}
}
