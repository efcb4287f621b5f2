package services

import (
	"testing"

	"github.com/ndelacroix/chatline-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRegistersNewUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, NewEventService(db))

	identity, created, err := svc.Login("alice", "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, identity.ID)
	assert.Equal(t, "alice", identity.DisplayName)
	assert.Equal(t, models.RoleMember, identity.Role)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestLoginRejectsTakenDisplayName(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, nil)

	_, _, err := svc.Login("alice", "")
	require.NoError(t, err)

	_, _, err = svc.Login("alice", "")
	assert.ErrorIs(t, err, ErrConflict)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestReloginReturnsStoredIdentity(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, nil)

	id := seedUser(t, db, "bob", models.RolePremium)

	identity, created, err := svc.Login("bob", id)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, id, identity.ID)
	assert.Equal(t, "bob", identity.DisplayName)
	assert.Equal(t, models.RolePremium, identity.Role)
}

func TestReloginRejectsMismatchedName(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, nil)

	id := seedUser(t, db, "bob", models.RoleMember)

	_, _, err := svc.Login("not-bob", id)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestReloginRejectsUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, nil)

	_, _, err := svc.Login("ghost", "no-such-id")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetUserByIDUnknown(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, nil)

	_, err := svc.GetUserByID("missing")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTouchPresenceUpdatesLastSeen(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, nil)

	id := seedUser(t, db, "carol", models.RoleMember)
	before, err := svc.GetUserByID(id)
	require.NoError(t, err)

	require.NoError(t, svc.TouchPresence(id))

	after, err := svc.GetUserByID(id)
	require.NoError(t, err)
	assert.False(t, after.LastSeenAt.Before(before.LastSeenAt))
}

func TestTouchPresenceIgnoresUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, nil)

	assert.NoError(t, svc.TouchPresence(""))
	assert.NoError(t, svc.TouchPresence("no-such-id"))
}
