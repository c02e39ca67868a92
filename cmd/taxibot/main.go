package main

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/husan7006/davon-taxi-bot/internal/bot"
	"github.com/husan7006/davon-taxi-bot/internal/config"
	"github.com/husan7006/davon-taxi-bot/internal/db"
	"github.com/husan7006/davon-taxi-bot/internal/flow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	database, err := db.New(cfg)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	defer database.Close()

	if err := db.RunMigrations(database.Conn, "db_scripts/init.sql"); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatal("telegram bot init failed", zap.Error(err))
	}

	ordersRepo := db.NewOrdersRepository(database.Conn)
	usersRepo := db.NewUsersRepository(database.Conn)
	store := db.NewStore(ordersRepo, usersRepo)

	notifier := bot.NewOperatorNotifier(botAPI, cfg.OperatorChatID)
	machine := flow.NewMachine(store, notifier, cfg.OperatorPhone, logger)

	botService := bot.New(botAPI, machine, usersRepo, logger)

	logger.Info("bot started", zap.String("username", botAPI.Self.UserName))

	botService.Start()
}
