package config

import (
	"log"
	"os"
)

type Config struct {
	Port string

	DatabaseURL string
	DataDir     string

	GeminiAPIKey string
	GeminiModel  string

	// TelegramBotToken is optional; empty disables the bot surface.
	TelegramBotToken string

	DefaultLanguage string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),

		DatabaseURL: mustEnv("DATABASE_URL"),
		DataDir:     getEnv("DATA_DIR", "data"),

		GeminiAPIKey: mustEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),

		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "zh"),
	}
}
