package services

import (
	"testing"
	"time"

	"github.com/ndelacroix/chatline-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWindow = 2 * time.Minute

func TestStaleUserDropsOutOfOnline(t *testing.T) {
	db := newTestDB(t)
	svc := NewPresenceService(db, testWindow)

	freshID := seedUser(t, db, "fresh", models.RoleMember)
	staleID := seedUser(t, db, "stale", models.RoleMember)
	setLastSeen(t, db, staleID, time.Now().Add(-10*time.Minute))

	online, err := svc.GetOnlineUsers()
	require.NoError(t, err)
	require.Len(t, online, 1)
	assert.Equal(t, freshID, online[0].ID)

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Online)
}

func TestBannedUserHiddenButCounted(t *testing.T) {
	db := newTestDB(t)
	svc := NewPresenceService(db, testWindow)

	seedUser(t, db, "regular", models.RoleMember)
	bannedID := seedUser(t, db, "banned", models.RoleMember)
	_, err := db.Exec("UPDATE users SET banned = 1 WHERE id = ?", bannedID)
	require.NoError(t, err)

	// Recently active, yet banned: invisible online, still in the total.
	online, err := svc.GetOnlineUsers()
	require.NoError(t, err)
	require.Len(t, online, 1)
	assert.Equal(t, "regular", online[0].DisplayName)

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Online)
}

func TestBoundaryOfRecencyWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewPresenceService(db, testWindow)

	id := seedUser(t, db, "edge", models.RoleMember)
	// Comfortably inside the window.
	setLastSeen(t, db, id, time.Now().Add(-testWindow+10*time.Second))

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Online)

	// Just outside.
	setLastSeen(t, db, id, time.Now().Add(-testWindow-10*time.Second))

	stats, err = svc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Online)
}

func TestEmptyDatabaseStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewPresenceService(db, testWindow)

	online, err := svc.GetOnlineUsers()
	require.NoError(t, err)
	assert.Empty(t, online)

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, models.Stats{Total: 0, Online: 0}, stats)
}
