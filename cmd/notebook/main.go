package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/joho/godotenv"

	"wrong-notebook/internal/classify"
	"wrong-notebook/internal/config"
	"wrong-notebook/internal/handle"
	"wrong-notebook/internal/httpserver"
	"wrong-notebook/internal/i18n"
	"wrong-notebook/internal/kv"
	"wrong-notebook/internal/photo"
	"wrong-notebook/internal/review"
	"wrong-notebook/internal/store"
	"wrong-notebook/internal/tags"
	"wrong-notebook/internal/telegram"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// --- Postgres ---
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("sql.Open: %v", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(1 * time.Hour)

	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db.Ping: %v", err)
		}
		log.Printf("db connected")
	}

	entries := store.NewEntryRepo(db)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := entries.EnsureSchema(ctx); err != nil {
			log.Fatalf("schema: %v", err)
		}
	}

	// --- client-local tag store ---
	tagStore := tags.NewStore(kv.NewFile(cfg.DataDir))

	// --- classifier + review sessions ---
	engine := classify.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel)
	sessions := review.NewManager(photo.Normalize, engine, entries)

	// --- HTTP API ---
	h := handle.New(sessions, tagStore, entries)
	h.PingDB = db.PingContext
	mux := http.NewServeMux()
	h.Register(mux)

	// --- optional Telegram surface ---
	if cfg.TelegramBotToken != "" {
		bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
		if err != nil {
			log.Fatalf("telegram: %v", err)
		}
		bot.Debug = false
		r := &telegram.Router{
			Bot:           bot,
			Sessions:      sessions,
			Entries:       entries,
			DefaultLocale: i18n.Parse(cfg.DefaultLanguage),
		}
		go r.Run()
		log.Printf("telegram bot @%s started", bot.Self.UserName)
	}

	addr := "0.0.0.0:" + cfg.Port
	if err := httpserver.Start(addr, mux); err != nil {
		log.Fatal(err)
	}
}
