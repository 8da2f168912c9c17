// Package telegram relays user inbox messages to subscribed chats. The bot
// is optional; the game runs the same without it.
package telegram

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/kofikwar/gridiron/internal/domain"
)

type Bot struct {
	bot   *tgbotapi.BotAPI
	chats mapset.Set[int64]
	log   *logrus.Entry

	// cancel func to stop the bot
	cancel func()
}

func New(token string, log *logrus.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot api: %w", err)
	}
	_, err = bot.GetMe()
	if err != nil {
		return nil, err
	}
	return &Bot{
		bot:   bot,
		chats: mapset.NewSet[int64](),
		log:   log.WithField("name", "telegram"),
	}, nil
}

// Run consumes bot commands until Stop. /start subscribes the chat to inbox
// relaying, /stop drops it.
func (b *Bot) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			chatID := update.Message.Chat.ID
			switch update.Message.Command() {
			case "start":
				b.chats.Add(chatID)
				b.reply(chatID, "Subscribed. Team news will show up here.")
			case "stop":
				b.chats.Remove(chatID)
				b.reply(chatID, "Unsubscribed.")
			default:
				b.reply(chatID, "Commands: /start, /stop")
			}
		}
	}
}

func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
	b.bot.StopReceivingUpdates()
}

// Notify implements the service notifier. Sending is best effort per chat.
func (b *Bot) Notify(msg domain.InboxMessage) {
	text := msg.Subject + "\n" + msg.Body
	for chatID := range b.chats.Iter() {
		if _, err := b.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			b.log.WithError(err).WithField("chat", chatID).Error("relay failed")
		}
	}
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.log.WithError(err).Error("reply failed")
	}
}
