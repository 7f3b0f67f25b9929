// internal/config/config.go
package config

import (
    "fmt"

    "github.com/caarlos0/env/v11"
)

// Config holds everything the service reads from the environment.
// cmd/server loads .env first (via godotenv), then Parse fills this in.
type Config struct {
    Port string `env:"PORT" envDefault:"8080"`

    DBUser     string `env:"DB_USER,required"`
    DBPassword string `env:"DB_PASSWORD,required"`
    DBHost     string `env:"DB_HOST" envDefault:"localhost"`
    DBPort     string `env:"DB_PORT" envDefault:"5432"`
    DBName     string `env:"DB_NAME,required"`
    DBSSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`

    OpenAIAPIKey string `env:"OPENAI_API_KEY,required"`
    OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

    PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN,required"`
    PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN,required"`
    SenderEmail          string `env:"SENDER_EMAIL,required"`
    ReplyToEmail         string `env:"REPLY_TO_EMAIL"`
    EmailSubject         string `env:"EMAIL_SUBJECT" envDefault:"Thanks for reaching out!"`
}

func Load() (*Config, error) {
    cfg := &Config{}
    if err := env.Parse(cfg); err != nil {
        return nil, fmt.Errorf("failed to parse environment: %w", err)
    }
    return cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
    return fmt.Sprintf(
        "postgres://%s:%s@%s:%s/%s?sslmode=%s",
        c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
    )
}
