package monitoring

import (
	"testing"

	"github.com/ndelacroix/chatline-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPresence struct {
	stats models.Stats
}

func (s *stubPresence) GetOnlineUsers() ([]models.OnlineUser, error) { return nil, nil }
func (s *stubPresence) GetStats() (models.Stats, error)              { return s.stats, nil }

type recordingEvents struct {
	types []string
}

func (r *recordingEvents) CreateEvent(eventType, level, message string, actorID *string) error {
	r.types = append(r.types, eventType)
	return nil
}

func (r *recordingEvents) GetRecentEvents(limit int) ([]models.Event, error) { return nil, nil }

func TestSnapshotRecordsEvent(t *testing.T) {
	events := &recordingEvents{}
	s := NewStatsSnapshotter(&stubPresence{stats: models.Stats{Total: 3, Online: 1}}, events, "@hourly")

	s.snapshot()

	require.Len(t, events.types, 1)
	assert.Equal(t, "stats.snapshot", events.types[0])
}

func TestRunRejectsInvalidSchedule(t *testing.T) {
	s := NewStatsSnapshotter(&stubPresence{}, &recordingEvents{}, "not a cron expression")
	assert.Error(t, s.Run())
}

func TestRunAndStop(t *testing.T) {
	s := NewStatsSnapshotter(&stubPresence{}, &recordingEvents{}, "@hourly")
	require.NoError(t, s.Run())
	s.Stop()
}
