package services

import (
	"database/sql"
	"time"

	"github.com/ndelacroix/chatline-be/internal/models"
)

// PresenceServiceProvider defines the interface for presence services.
type PresenceServiceProvider interface {
	GetOnlineUsers() ([]models.OnlineUser, error)
	GetStats() (models.Stats, error)
}

// PresenceService derives online status from the recency of last_seen.
// A user is online iff seen within the window and not banned.
type PresenceService struct {
	db     *sql.DB
	window time.Duration
}

// NewPresenceService creates a new PresenceService.
func NewPresenceService(db *sql.DB, window time.Duration) *PresenceService {
	return &PresenceService{db: db, window: window}
}

// GetOnlineUsers lists every user currently considered online.
func (s *PresenceService) GetOnlineUsers() ([]models.OnlineUser, error) {
	rows, err := s.db.Query("SELECT id, display_name FROM users WHERE last_seen >= ? AND banned = 0 ORDER BY display_name ASC", s.cutoff())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.OnlineUser{}
	for rows.Next() {
		var u models.OnlineUser
		if err := rows.Scan(&u.ID, &u.DisplayName); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetStats returns the total and online user counts. Total counts every
// registered user, banned included; only the online count filters.
func (s *PresenceService) GetStats() (models.Stats, error) {
	var stats models.Stats
	if err := s.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&stats.Total); err != nil {
		return models.Stats{}, err
	}
	if err := s.db.QueryRow("SELECT COUNT(*) FROM users WHERE last_seen >= ? AND banned = 0", s.cutoff()).Scan(&stats.Online); err != nil {
		return models.Stats{}, err
	}
	return stats, nil
}

func (s *PresenceService) cutoff() time.Time {
	return time.Now().UTC().Add(-s.window)
}
