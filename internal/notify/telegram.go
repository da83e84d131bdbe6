// Package notify surfaces alert-created events outside the web UI.
// The Telegram notifier forwards every alert event to a configured
// counselor group chat.
package notify

import (
	"encoding/json"
	"fmt"
	"log"

	"manmitra/backend/internal/models"
	"manmitra/backend/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier sends a message to the counselor chat for each
// alert event on the feed channel.
type TelegramNotifier struct {
	BotAPI  *tgbotapi.BotAPI
	Storage *storage.Service
	ChatID  int64
}

// NewTelegramNotifier creates a notifier for the given bot token and
// counselor chat.
func NewTelegramNotifier(token string, chatID int64, s *storage.Service) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("✅ Authorized on account %s", bot.Self.UserName)

	return &TelegramNotifier{
		BotAPI:  bot,
		Storage: s,
		ChatID:  chatID,
	}, nil
}

// Run consumes alert events and forwards them to the counselor chat.
// Delivery is best-effort; failures are logged and the loop goes on.
func (n *TelegramNotifier) Run() {
	log.Println("Telegram alert notifier started.")

	pubsub := n.Storage.SubscribeAlertEvents()
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var event models.AlertEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("ERROR: Failed to unmarshal alert event: %v", err)
			continue
		}

		text := fmt.Sprintf(
			"🚨 New crisis alert (%s severity)\nAlert: %s\nSubmission: %s\nCreated: %s",
			event.Severity,
			event.AlertID,
			event.SubmissionID,
			event.CreatedAt.Format("2006-01-02 15:04:05"),
		)
		if _, err := n.BotAPI.Send(tgbotapi.NewMessage(n.ChatID, text)); err != nil {
			log.Printf("ERROR: Failed to send alert notification to chat %d: %v", n.ChatID, err)
		}
	}
}
