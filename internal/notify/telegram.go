package notify

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/vocablearner/pkg/models"
)

// TelegramNotifier delivers review reminders to a single chat
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier creates a notifier for the given bot token and chat
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %v", err)
	}
	return &TelegramNotifier{api: api, chatID: chatID}, nil
}

// Deliver sends a word card to the configured chat
func (n *TelegramNotifier) Deliver(entry models.WordEntry) error {
	msg := tgbotapi.NewMessage(n.chatID, FormatWordCard(entry))
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send notification: %v", err)
	}
	return nil
}

// FormatWordCard renders the reminder text for a vocabulary entry
func FormatWordCard(entry models.WordEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📚 %s", entry.Word)
	if entry.Translation != "" {
		fmt.Fprintf(&b, "\n%s", entry.Translation)
	}
	if entry.Example != "" {
		fmt.Fprintf(&b, "\n\nExample: %s", entry.Example)
	}
	if len(entry.Synonyms) > 0 {
		fmt.Fprintf(&b, "\nSynonyms: %s", strings.Join(entry.Synonyms, ", "))
	}
	return b.String()
}
