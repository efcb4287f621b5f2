package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ndelacroix/chatline-be/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Login(displayName, existingID string) (models.Identity, bool, error)
	GetUserByID(id string) (models.User, error)
	TouchPresence(id string) error
}

// UserService provides the login protocol and caller resolution.
type UserService struct {
	db       *sql.DB
	eventSvc EventServiceProvider
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB, eventSvc EventServiceProvider) *UserService {
	return &UserService{db: db, eventSvc: eventSvc}
}

// Login validates a returning identity or registers a new one. The boolean
// result reports whether a user was created.
//
// With an existing id, the stored display name must match the supplied one:
// a client cannot silently rename. Re-login never mutates the user.
func (s *UserService) Login(displayName, existingID string) (models.Identity, bool, error) {
	if existingID != "" {
		user, err := s.GetUserByID(existingID)
		if err != nil {
			if errors.Is(err, ErrUnauthorized) {
				return models.Identity{}, false, ErrUnauthorized
			}
			return models.Identity{}, false, err
		}
		if user.DisplayName != displayName {
			return models.Identity{}, false, fmt.Errorf("display name does not match registration: %w", ErrForbidden)
		}
		return user.Identity(), false, nil
	}

	var taken string
	err := s.db.QueryRow("SELECT id FROM users WHERE display_name = ?", displayName).Scan(&taken)
	if err == nil {
		return models.Identity{}, false, ErrConflict
	}
	if err != sql.ErrNoRows {
		return models.Identity{}, false, err
	}

	now := time.Now().UTC()
	user := models.User{
		ID:          uuid.New().String(),
		DisplayName: displayName,
		Role:        models.RoleMember,
		LastSeenAt:  now,
		CreatedAt:   now,
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, display_name, role, banned, last_seen, created_at) VALUES(?, ?, ?, 0, ?, ?)")
	if err != nil {
		return models.Identity{}, false, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(user.ID, user.DisplayName, user.Role, user.LastSeenAt, user.CreatedAt); err != nil {
		return models.Identity{}, false, err
	}

	if s.eventSvc != nil {
		if err := s.eventSvc.CreateEvent("user.register", "info", fmt.Sprintf("user %s registered", user.DisplayName), &user.ID); err != nil {
			return models.Identity{}, false, err
		}
	}

	return user.Identity(), true, nil
}

// GetUserByID resolves a caller id to its user. Returns ErrUnauthorized if
// no user carries that id.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, display_name, role, banned, last_seen, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.DisplayName, &user.Role, &user.Banned, &user.LastSeenAt, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("user %s: %w", id, ErrUnauthorized)
		}
		return models.User{}, err
	}
	return user, nil
}

// TouchPresence updates last_seen for the given caller id. Unknown or empty
// ids are a no-op, not an error: presence touching is best-effort.
func (s *UserService) TouchPresence(id string) error {
	if id == "" {
		return nil
	}
	_, err := s.db.Exec("UPDATE users SET last_seen = ? WHERE id = ?", time.Now().UTC(), id)
	return err
}
