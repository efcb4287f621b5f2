package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndelacroix/chatline-be/internal/models"
)

// ModerationServiceProvider defines the interface for moderation services.
type ModerationServiceProvider interface {
	BanUser(callerID, targetID string) error
}

// ModerationService provides the admin-only ban operation.
type ModerationService struct {
	db       *sql.DB
	userSvc  UserServiceProvider
	eventSvc EventServiceProvider
}

// NewModerationService creates a new ModerationService.
func NewModerationService(db *sql.DB, userSvc UserServiceProvider, eventSvc EventServiceProvider) *ModerationService {
	return &ModerationService{db: db, userSvc: userSvc, eventSvc: eventSvc}
}

// BanUser marks the target as banned. Admin callers only, self-ban is
// rejected. There is no unban operation; the flag is one-way. Past messages
// of the target stay readable.
func (s *ModerationService) BanUser(callerID, targetID string) error {
	if callerID == "" {
		return fmt.Errorf("only admins may ban: %w", ErrForbidden)
	}
	caller, err := s.userSvc.GetUserByID(callerID)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			// An unresolvable caller is by definition not an admin.
			return fmt.Errorf("only admins may ban: %w", ErrForbidden)
		}
		return err
	}
	if caller.Role != models.RoleAdmin || caller.Banned {
		return fmt.Errorf("only admins may ban: %w", ErrForbidden)
	}
	if targetID == callerID {
		return fmt.Errorf("cannot ban yourself: %w", ErrBadRequest)
	}

	if _, err := s.db.Exec("UPDATE users SET banned = 1 WHERE id = ?", targetID); err != nil {
		return err
	}

	if s.eventSvc != nil {
		if err := s.eventSvc.CreateEvent("user.ban", "warn", fmt.Sprintf("user %s banned by %s", targetID, caller.DisplayName), &caller.ID); err != nil {
			return err
		}
	}
	return nil
}
