package infra

import (
	"log"

	"github.com/caarlos0/env/v11"
)

// Config carries everything read from the process environment. Loaded once
// in main after godotenv has populated os.Environ from .env.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	PostgresURL string `env:"POSTGRES_URL"`

	OpenAIKey   string `env:"OPENAI_API_KEY"`
	GeminiKey   string `env:"GEMINI_API_KEY"`
	GeminiModel string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`

	OverpassURL string `env:"OVERPASS_URL" envDefault:"https://overpass-api.de/api/interpreter"`

	N8NWebhookURL string `env:"N8N_WEBHOOK_URL"`

	JWTSecret string `env:"JWT_SECRET"`
}

func LoadConfig() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse environment config: %v", err)
	}
	return cfg
}
