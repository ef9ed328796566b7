package app

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/mmynk/roomiesync/internal/models"
)

// NewRoommate is the input of AddRoommate.
type NewRoommate struct {
	Name         string
	Email        string
	Role         models.Role
	IsVegetarian bool

	// AgreedContribution defaults to models.DefaultContribution when zero.
	AgreedContribution float64
}

// AddRoommate creates a profile. Admin only.
func (c *Controller) AddRoommate(ctx context.Context, s State, in NewRoommate) (State, error) {
	if err := c.requireAdmin(s); err != nil {
		return s, err
	}

	r := models.Roommate{
		ID:                 c.newID(),
		Name:               strings.TrimSpace(in.Name),
		Email:              strings.TrimSpace(in.Email),
		Role:               in.Role,
		IsVegetarian:       in.IsVegetarian,
		AgreedContribution: in.AgreedContribution,
	}
	if r.Role == "" {
		r.Role = models.RoleMember
	}
	if r.AgreedContribution == 0 {
		r.AgreedContribution = models.DefaultContribution
	}
	r.AvatarURL = avatarURL(r.Name)
	if err := validate.Struct(r); err != nil {
		return s, validationError(err)
	}

	roommates := append(slices.Clone(s.Roommates), r)
	if err := c.store.SaveRoommates(ctx, roommates); err != nil {
		return s, fmt.Errorf("failed to save roommates: %w", err)
	}

	next := s.clone()
	next.Roommates = roommates
	c.log.Info("Roommate added", "roommate_id", r.ID, "name", r.Name, "role", r.Role)
	return next, nil
}

// DeleteRoommate removes a profile. Admin only; an admin cannot delete themself.
// Expenses and tasks that reference the roommate are kept.
func (c *Controller) DeleteRoommate(ctx context.Context, s State, roommateID string) (State, error) {
	if err := c.requireAdmin(s); err != nil {
		return s, err
	}
	if roommateID == s.CurrentUser.ID {
		return s, ErrCannotDeleteSelf
	}
	if _, ok := s.Roommate(roommateID); !ok {
		return s, fmt.Errorf("%w: %s", ErrUnknownRoommate, roommateID)
	}

	roommates := slices.DeleteFunc(slices.Clone(s.Roommates), func(r models.Roommate) bool {
		return r.ID == roommateID
	})
	if err := c.store.SaveRoommates(ctx, roommates); err != nil {
		return s, fmt.Errorf("failed to save roommates: %w", err)
	}

	next := s.clone()
	next.Roommates = roommates
	c.log.Info("Roommate deleted", "roommate_id", roommateID)
	return next, nil
}

func avatarURL(name string) string {
	seed := strings.Join(strings.Fields(name), "")
	return "https://picsum.photos/seed/" + url.PathEscape(seed) + "/200/200"
}
