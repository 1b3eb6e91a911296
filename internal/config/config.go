package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Notion NotionConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

// NotionConfig carries the access credential and the four collection ids.
// All of them are required; startup is fatal without them.
type NotionConfig struct {
	Token          string
	ReflectionDBId string
	ThemeDBId      string
	ActionItemDBId string
	ReadingDBId    string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Notion: NotionConfig{
			Token:          mustGetEnv("NOTION_TOKEN"),
			ReflectionDBId: mustGetEnv("NOTION_REFLECTION_DB_ID"),
			ThemeDBId:      mustGetEnv("NOTION_THEME_DB_ID"),
			ActionItemDBId: mustGetEnv("NOTION_ACTION_ITEM_DB_ID"),
			ReadingDBId:    mustGetEnv("NOTION_READING_DB_ID"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return value
}
