package app

import (
	"context"
	"strings"

	"github.com/mmynk/roomiesync/internal/models"
)

// SendMessage posts a text message from the current user.
func (c *Controller) SendMessage(ctx context.Context, s State, text string) (State, error) {
	if err := c.requireLogin(s); err != nil {
		return s, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return s, ErrEmptyMessage
	}
	return c.appendMessage(ctx, s.clone(), models.ChatMessage{
		ID:        c.newID(),
		SenderID:  s.CurrentUser.ID,
		Content:   text,
		Timestamp: c.now(),
		Type:      models.MessageText,
	})
}
