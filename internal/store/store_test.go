package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pomo/internal/stage"
	"github.com/ayoisaiah/pomo/internal/timeutil"
)

func newTestClient(t *testing.T) (*Client, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", "pomo.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = c.Close() })

	return c, path
}

func record(k stage.Kind, end time.Time, planned, elapsed int) *Record {
	return &Record{
		ID:             uuid.New(),
		RunID:          uuid.New(),
		Stage:          k,
		StartedAt:      end.Add(-time.Duration(elapsed) * time.Second),
		EndedAt:        end,
		PlannedSeconds: planned,
		ElapsedSeconds: elapsed,
		Skipped:        elapsed < planned,
	}
}

func TestPutAndReadRecords(t *testing.T) {
	c, _ := newTestClient(t)

	base := time.Date(2026, time.May, 4, 9, 0, 0, 0, time.UTC)

	focus := record(stage.Focus, base.Add(25*time.Minute), 1500, 1500)
	short := record(stage.ShortBreak, base.Add(30*time.Minute), 300, 300)
	skipped := record(stage.Focus, base.Add(30*time.Minute+500*time.Millisecond), 1500, 0)

	// insertion order does not matter
	for _, r := range []*Record{skipped, focus, short} {
		require.NoError(t, c.PutRecord(r))
	}

	got, err := c.Records(base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, focus.ID, got[0].ID)
	assert.Equal(t, short.ID, got[1].ID)
	assert.Equal(t, skipped.ID, got[2].ID)

	assert.True(t, got[0].EndedAt.Equal(focus.EndedAt))
	assert.Equal(t, stage.Focus, got[0].Stage)
	assert.True(t, got[0].Completed())
	assert.False(t, got[2].Completed())
	assert.Equal(t, 25*time.Minute, got[0].Elapsed())
}

func TestRecordsWithinBounds(t *testing.T) {
	c, _ := newTestClient(t)

	base := time.Date(2026, time.May, 4, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		end := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, c.PutRecord(record(stage.Focus, end, 60, 60)))
	}

	got, err := c.Records(base.Add(time.Hour), base.Add(3*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.True(t, got[0].EndedAt.Equal(base.Add(time.Hour)))
	assert.True(t, got[2].EndedAt.Equal(base.Add(3*time.Hour)))

	// bounds in another zone select the same instants
	lagos := time.FixedZone("WAT", 3600)

	got, err = c.Records(base.Add(time.Hour).In(lagos), base.Add(3*time.Hour).In(lagos))
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = c.Records(base.Add(10*time.Hour), base.Add(11*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPutRecordWithoutEndTime(t *testing.T) {
	c, _ := newTestClient(t)

	err := c.PutRecord(&Record{ID: uuid.New(), Stage: stage.Focus})

	assert.ErrorIs(t, err, errMissingEndTime)
}

func TestDeleteRecords(t *testing.T) {
	c, _ := newTestClient(t)

	base := time.Date(2026, time.May, 4, 9, 0, 0, 0, time.UTC)

	a := record(stage.Focus, base, 60, 60)
	b := record(stage.LongBreak, base.Add(time.Minute), 60, 60)

	require.NoError(t, c.PutRecord(a))
	require.NoError(t, c.PutRecord(b))

	require.NoError(t, c.DeleteRecords([]Record{*a}))

	got, err := c.Records(base.Add(-time.Hour), base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)
}

func TestCorruptRecord(t *testing.T) {
	c, _ := newTestClient(t)

	end := time.Date(2026, time.May, 4, 9, 0, 0, 0, time.UTC)

	require.NoError(t, c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stageBucket)).Put(timeutil.ToKey(end), []byte("{"))
	}))

	_, err := c.Records(end.Add(-time.Minute), end.Add(time.Minute))

	assert.ErrorIs(t, err, errCorruptRecord)
}

func TestSecondInstanceIsLockedOut(t *testing.T) {
	_, path := newTestClient(t)

	_, err := NewClient(path)

	assert.ErrorIs(t, err, errPomoRunning)
}
