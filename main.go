package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/vocablearner/internal/database"
	"github.com/example/vocablearner/internal/dictionary"
	"github.com/example/vocablearner/internal/notify"
	"github.com/example/vocablearner/internal/scheduler"
	"github.com/example/vocablearner/internal/session"
	"github.com/example/vocablearner/internal/vocabulary"
	"github.com/example/vocablearner/pkg/models"
)

// Default settings, overridable via environment variables
const (
	DefaultWordsPerDay      = 10
	DefaultFrequencyMinutes = 60
	DefaultQuietStart       = "22:00"
	DefaultQuietEnd         = "08:00"
	DefaultTargetLanguage   = "de"
)

func main() {
	// Load .env if present; real environment wins
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	entries, err := loadDeck()
	if err != nil {
		log.Fatalf("Failed to load vocabulary: %v", err)
	}
	if len(entries) == 0 {
		log.Println("Warning: vocabulary deck is empty, nothing to review")
	}

	quietStart, err := models.ParseClock(getEnv("QUIET_HOURS_START", DefaultQuietStart))
	if err != nil {
		log.Fatalf("Invalid QUIET_HOURS_START: %v", err)
	}
	quietEnd, err := models.ParseClock(getEnv("QUIET_HOURS_END", DefaultQuietEnd))
	if err != nil {
		log.Fatalf("Invalid QUIET_HOURS_END: %v", err)
	}

	store := database.NewSnapshotRepository()
	controller := session.New(entries, session.Config{
		WordsPerDay:      getEnvInt("WORDS_PER_DAY", DefaultWordsPerDay),
		QuietHours:       models.QuietHours{Start: quietStart, End: quietEnd},
		FrequencyMinutes: getEnvInt("NOTIFICATION_FREQUENCY", DefaultFrequencyMinutes),
		Store:            store,
	})

	snap, err := store.LoadSnapshot()
	if err != nil {
		log.Fatalf("Failed to load snapshot: %v", err)
	}
	for _, invalid := range controller.Restore(snap) {
		log.Printf("Discarded record: %v", invalid)
	}

	notifier, err := buildNotifier()
	if err != nil {
		log.Fatalf("Failed to create notifier: %v", err)
	}

	s := scheduler.New(controller, notifier)
	s.Start()
	defer s.Stop()

	stats := controller.CurrentStats()
	log.Printf("Vocabulary learner started: %d words, %d known, streak %d days. Press Ctrl+C to stop.",
		stats.TotalWords, stats.KnownWords, stats.StreakDays)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("Received signal: %v, shutting down", sig)
}

// loadDeck returns the vocabulary, preferring the copy already in the
// database and falling back to the configured deck file. Bare words without
// a translation are enriched through the dictionary services when enabled.
func loadDeck() ([]models.WordEntry, error) {
	wordRepo := database.NewWordRepository()

	entries, err := wordRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		return entries, nil
	}

	vocabFile := os.Getenv("VOCAB_FILE")
	if vocabFile == "" {
		return nil, nil
	}

	if strings.EqualFold(filepath.Ext(vocabFile), ".xlsx") {
		entries, err = vocabulary.ImportXLSX(vocabFile, vocabulary.DefaultImportConfig())
	} else {
		entries, err = vocabulary.ParseFile(vocabFile)
	}
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d words from %s", len(entries), vocabFile)

	entries = enrichEntries(entries)

	if err := wordRepo.ReplaceAll(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// enrichEntries fills missing translations via the dictionary collaborator.
// Lookup failures leave the entry as-is; the deck still loads.
func enrichEntries(entries []models.WordEntry) []models.WordEntry {
	if getEnv("ENABLE_API", "true") != "true" {
		return entries
	}

	var client *dictionary.Client
	for i, entry := range entries {
		if entry.Translation != "" {
			continue
		}
		if client == nil {
			client = dictionary.NewClient(
				getEnv("TARGET_LANGUAGE", DefaultTargetLanguage),
				os.Getenv("LIBRETRANSLATE_API_KEY"),
			)
		}
		enriched, err := client.LookupWord(entry.Word)
		if err != nil || enriched == nil {
			log.Printf("No dictionary data for %q, keeping bare entry", entry.Word)
			continue
		}
		entries[i] = *enriched
	}
	return entries
}

// buildNotifier returns the Telegram notifier when configured, a log-only
// notifier otherwise
func buildNotifier() (scheduler.Notifier, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := getEnvInt64("TELEGRAM_CHAT_ID", 0)
	if token == "" || chatID == 0 {
		log.Println("TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID not set, reminders will be logged only")
		return logNotifier{}, nil
	}
	return notify.NewTelegramNotifier(token, chatID)
}

type logNotifier struct{}

func (logNotifier) Deliver(entry models.WordEntry) error {
	log.Printf("Reminder: %s", notify.FormatWordCard(entry))
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid value for %s, using %d", key, fallback)
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
		log.Printf("Invalid value for %s, using %d", key, fallback)
	}
	return fallback
}
