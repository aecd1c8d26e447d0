// Package service contains thin application services that adapt the external
// clients to the poll loop's needs.
package service

import (
	"context"
	"fmt"

	"github.com/homework-hub/homework-status-bot/internal/domain/homework"
	"github.com/homework-hub/homework-status-bot/internal/infrastructure/external/telegram"
	"github.com/homework-hub/homework-status-bot/pkg/logger"
)

// MessageSender is the messaging collaborator's send primitive.
type MessageSender interface {
	SendText(ctx context.Context, chatID int64, text string) (*telegram.Message, error)
}

// Notifier delivers notifications to the operator chat. Any collaborator
// failure comes back as homework.ErrNotify so the poll loop can tell delivery
// problems apart from API problems.
type Notifier struct {
	sender MessageSender
	chatID int64
	logger *logger.Logger
}

// NewNotifier creates a Notifier bound to a single chat.
func NewNotifier(sender MessageSender, chatID int64, log *logger.Logger) *Notifier {
	if log == nil {
		log = logger.Default()
	}
	return &Notifier{
		sender: sender,
		chatID: chatID,
		logger: log.With(logger.Component("notifier"), logger.ChatID(chatID)),
	}
}

// Notify sends one message to the operator chat. Exactly one outbound message
// per call; no batching, no deduplication.
func (n *Notifier) Notify(ctx context.Context, text string) error {
	n.logger.Debug("sending message", logger.String("text", text))

	if _, err := n.sender.SendText(ctx, n.chatID, text); err != nil {
		return homework.WrapError("Notify", homework.ErrNotify,
			fmt.Sprintf("send message %q to chat %d", text, n.chatID), err)
	}

	n.logger.Info("message sent", logger.String("text", text))
	return nil
}
