package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken       string
	OperatorChatID int64 // 0 disables operator notifications
	OperatorPhone  string
	DBUser         string
	DBPassword     string
	DBName         string
	DBHost         string
	DBPort         string
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Printf("config.Load: no .env file found - using env variables")
	}

	cfg := &Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		OperatorPhone: os.Getenv("OPERATOR_PHONE"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("config.Load: BOT_TOKEN is required")
	}

	if cfg.DBUser == "" || cfg.DBPassword == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("config.Load: DB_USER, DB_PASSWORD, DB_NAME are required")
	}

	// Operator chat is optional: without it orders are only persisted.
	if raw := os.Getenv("OPERATOR_CHAT_ID"); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config.Load: OPERATOR_CHAT_ID must be an integer: %w", err)
		}
		cfg.OperatorChatID = chatID
	}

	if cfg.OperatorPhone == "" {
		cfg.OperatorPhone = "+998901234567"
	}

	if cfg.DBHost == "" {
		cfg.DBHost = "localhost"
	}

	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}

	return cfg, nil
}
