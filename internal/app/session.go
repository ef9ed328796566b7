package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/roomiesync/internal/models"
	"github.com/mmynk/roomiesync/internal/storage"
)

// Login makes roommateID the current user. When the backend needs a credential
// the session token is requested first.
func (c *Controller) Login(ctx context.Context, s State, roommateID string) (State, error) {
	user, ok := s.Roommate(roommateID)
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrUnknownRoommate, roommateID)
	}

	session := models.Session{User: user}
	if authn, ok := c.store.(storage.Authenticator); ok {
		token, err := authn.Authenticate(ctx, user.ID)
		if err != nil {
			return s, err
		}
		session.Token = token
	}
	if err := c.sessions.SaveSession(ctx, session); err != nil {
		return s, fmt.Errorf("failed to save session: %w", err)
	}

	next := s.clone()
	next.CurrentUser = &user
	c.log.Info("Logged in", "roommate_id", user.ID, "role", user.Role)
	return next, nil
}

// Logout clears the current user.
func (c *Controller) Logout(ctx context.Context, s State) (State, error) {
	if err := c.sessions.ClearSession(ctx); err != nil {
		return s, fmt.Errorf("failed to clear session: %w", err)
	}
	next := s.clone()
	next.CurrentUser = nil
	return next, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
