package gateway

import (
	"context"
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/miaomiao/deepsearch/internal/agent"
)

// Telegram listens for direct messages and answers through the brain.
type Telegram struct {
	bot   *tgbotapi.BotAPI
	brain agent.Brain
}

func NewTelegram(token string, brain agent.Brain) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("telegram: authorized as %s", bot.Self.UserName)

	return &Telegram{bot: bot, brain: brain}, nil
}

func (t *Telegram) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	for update := range t.bot.GetUpdatesChan(u) {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}

		chatID := strconv.FormatInt(update.Message.Chat.ID, 10)
		log.Printf("telegram: [%s] %s", update.Message.From.UserName, update.Message.Text)

		typing := tgbotapi.NewChatAction(update.Message.Chat.ID, tgbotapi.ChatTyping)
		_, _ = t.bot.Request(typing)

		response, err := t.brain.Think(context.Background(), chatID, update.Message.Text)
		if err != nil {
			log.Printf("telegram: brain error: %v", err)
			response = "I ran into a problem answering that. Please try again."
		}

		msg := tgbotapi.NewMessage(update.Message.Chat.ID, response)
		if _, err := t.bot.Send(msg); err != nil {
			log.Printf("telegram: send failed: %v", err)
		}
	}
	return nil
}

func (t *Telegram) Send(chatID string, text string) error {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat ID: %s", chatID)
	}

	msg := tgbotapi.NewMessage(id, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err = t.bot.Send(msg)
	return err
}

func (t *Telegram) Stop() error {
	t.bot.StopReceivingUpdates()
	return nil
}
