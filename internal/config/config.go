package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const EnvProduction = "production"

type Config struct {
	Env    string `env:"APP_ENV" envDefault:"production"`
	Log    LogConfig
	Server ServerConfig
	OpenAI OpenAIConfig
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type ServerConfig struct {
	Port              string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadHeaderTimeout time.Duration `env:"SERVER_READ_HEADER_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout   time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// OpenAIConfig is read once at startup. An empty APIKey is allowed here
// and only rejected when a completion is requested.
type OpenAIConfig struct {
	APIKey      string  `env:"OPENAI_API_KEY"`
	BaseURL     string  `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model       string  `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	Temperature float64 `env:"OPENAI_TEMPERATURE" envDefault:"0.9"`
	MaxTokens   int64   `env:"OPENAI_MAX_TOKENS" envDefault:"1500"`
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Load reads .env.local and .env when present, then the process environment.
// Variables already set in the environment win over the files.
func Load() (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
