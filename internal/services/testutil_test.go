package services

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ndelacroix/chatline-be/internal/database"
	"github.com/ndelacroix/chatline-be/internal/models"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "chat.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

// seedUser inserts a user directly. Role assignment beyond the default has
// no endpoint; tests perform it the way an operator would, in SQL.
func seedUser(t *testing.T, db *sql.DB, displayName string, role models.Role) string {
	t.Helper()
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := db.Exec(
		"INSERT INTO users(id, display_name, role, banned, last_seen, created_at) VALUES(?, ?, ?, 0, ?, ?)",
		id, displayName, role, now, now,
	)
	require.NoError(t, err)
	return id
}

func setLastSeen(t *testing.T, db *sql.DB, userID string, at time.Time) {
	t.Helper()
	_, err := db.Exec("UPDATE users SET last_seen = ? WHERE id = ?", at.UTC(), userID)
	require.NoError(t, err)
}
