package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/tunegram/tunegram/bot"
	"github.com/tunegram/tunegram/config"
	"github.com/tunegram/tunegram/db"
	"github.com/tunegram/tunegram/service/saavn"
	"github.com/tunegram/tunegram/session"
	"github.com/tunegram/tunegram/telegram"
)

type application struct {
	logger     *slog.Logger
	botService *bot.Service
}

func main() {
	config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	database, err := db.New(viper.GetString("stats.db_path"))
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := database.Initialize(); err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	sessions, err := session.NewStore(viper.GetInt("session.capacity"))
	if err != nil {
		log.Fatalf("Error creating session store: %v", err)
	}

	searchService := saavn.NewService(
		viper.GetString("saavn.api_url"),
		viper.GetInt("saavn.limit"),
		logger,
	)

	telegramAPI := telegram.NewAPI(
		viper.GetString("telegram.base_url"),
		viper.GetString("telegram.bot_token"),
		logger,
	)

	botService := bot.NewService(searchService, telegramAPI, sessions, database, bot.Config{
		AdminChatID:       viper.GetInt64("admin.chat_id"),
		SelectMovesCursor: viper.GetBool("session.select_moves_cursor"),
	}, logger)

	// Self-register the webhook when a public URL is configured.
	if webhookURL := viper.GetString("telegram.webhook_url"); webhookURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := telegramAPI.SetWebhook(ctx, webhookURL); err != nil {
			logger.Error("failed to register webhook", "url", webhookURL, "error", err)
		} else {
			logger.Info("webhook registered", "url", webhookURL)
		}
		cancel()
	}

	app := &application{
		logger:     logger,
		botService: botService,
	}

	serverAddr := fmt.Sprintf("%s:%s", viper.GetString("server.host"), viper.GetString("server.port"))
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      app.routes(),
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Info("starting server", "addr", serverAddr)
	log.Fatal(server.ListenAndServe())
}
