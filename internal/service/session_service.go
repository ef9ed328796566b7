package service

import (
	"log/slog"
	"net/http"

	"github.com/mmynk/roomiesync/internal/auth"
	"github.com/mmynk/roomiesync/internal/storage"
)

// SessionService issues bearer tokens for existing roommates.
type SessionService struct {
	repo       storage.Repository
	jwtManager *auth.JWTManager
}

// NewSessionService creates a SessionService. A nil jwtManager disables tokens.
func NewSessionService(repo storage.Repository, jwtManager *auth.JWTManager) *SessionService {
	return &SessionService{repo: repo, jwtManager: jwtManager}
}

// SessionRequest is the body of POST /api/session.
type SessionRequest struct {
	RoommateID string `json:"roommateId" validate:"required"`
}

// SessionResponse carries the issued token; it is empty when auth is disabled.
type SessionResponse struct {
	Token string `json:"token"`
}

// Create handles POST /api/session.
func (s *SessionService) Create(w http.ResponseWriter, r *http.Request) error {
	req, err := DecodeValid[SessionRequest](r)
	if err != nil {
		return err
	}
	roommate, err := s.repo.GetRoommate(r.Context(), req.RoommateID)
	if err != nil {
		return err
	}

	var resp SessionResponse
	if s.jwtManager != nil {
		resp.Token, err = s.jwtManager.Generate(*roommate)
		if err != nil {
			return err
		}
	}
	slog.Info("Session created", "roommate_id", roommate.ID, "role", roommate.Role)
	WriteJSON(w, resp, http.StatusOK)
	return nil
}
