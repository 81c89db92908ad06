package history

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/engine"
	"github.com/ayoisaiah/pomo/internal/stage"
	"github.com/ayoisaiah/pomo/internal/store"
	"github.com/ayoisaiah/pomo/internal/testutil"
)

// fakeClock advances by step every time it is read.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)

	return t
}

var t0 = time.Date(2026, time.May, 4, 9, 0, 0, 0, time.UTC)

func TestRecorderWritesTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := NewMockDB(ctrl)

	clock := &fakeClock{now: t0, step: 25 * time.Minute}

	var got []*store.Record

	db.EXPECT().PutRecord(gomock.Any()).DoAndReturn(func(r *store.Record) error {
		got = append(got, r)
		return nil
	}).Times(2)

	r := NewRecorder(db, WithClock(clock.Now))

	require.NoError(t, r.Record(engine.Transition{
		From:                stage.Focus,
		To:                  stage.ShortBreak,
		Reason:              engine.ReasonCompleted,
		CompletedFocusCount: 1,
		Planned:             1500,
		Elapsed:             1500,
	}))

	require.NoError(t, r.Record(engine.Transition{
		From:    stage.ShortBreak,
		To:      stage.Focus,
		Reason:  engine.ReasonSkipped,
		Planned: 300,
		Elapsed: 12,
	}))

	require.Len(t, got, 2)

	assert.Equal(t, stage.Focus, got[0].Stage)
	assert.Equal(t, t0, got[0].StartedAt)
	assert.Equal(t, t0.Add(25*time.Minute), got[0].EndedAt)
	assert.Equal(t, 1500, got[0].PlannedSeconds)
	assert.False(t, got[0].Skipped)

	// the next stage starts when the previous one ends
	assert.Equal(t, got[0].EndedAt, got[1].StartedAt)
	assert.Equal(t, stage.ShortBreak, got[1].Stage)
	assert.True(t, got[1].Skipped)
	assert.Equal(t, 12, got[1].ElapsedSeconds)

	assert.Equal(t, r.RunID(), got[0].RunID)
	assert.Equal(t, r.RunID(), got[1].RunID)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestRecorderRestart(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := NewMockDB(ctrl)

	clock := &fakeClock{now: t0, step: time.Minute}

	db.EXPECT().PutRecord(gomock.Any()).DoAndReturn(func(r *store.Record) error {
		assert.Equal(t, t0.Add(time.Minute), r.StartedAt)
		return nil
	})

	r := NewRecorder(db, WithClock(clock.Now))
	r.Restart()

	require.NoError(t, r.Record(engine.Transition{From: stage.LongBreak, To: stage.Focus}))
}

func TestObserveLogsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := NewMockDB(ctrl)

	db.EXPECT().PutRecord(gomock.Any()).Return(errors.New("disk full"))

	var buf bytes.Buffer

	r := NewRecorder(db, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	r.Observe(engine.Transition{From: stage.Focus, To: stage.ShortBreak})

	assert.Contains(t, buf.String(), "saving stage record failed")
	assert.Contains(t, buf.String(), "disk full")
}

func TestRecorderAsEngineObserver(t *testing.T) {
	db, err := store.NewClient(filepath.Join(t.TempDir(), "pomo.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	clock := &fakeClock{now: t0, step: time.Second}
	r := NewRecorder(db, WithClock(clock.Now))

	e := engine.New(engine.WithObserver(r.Observe))
	require.NoError(t, e.SetDuration(stage.Focus, "1"))

	e.ToggleRunning()

	for i := 0; i < 60; i++ {
		e.Tick()
	}

	e.Skip()

	records, err := db.Records(t0, t0.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, stage.Focus, records[0].Stage)
	assert.False(t, records[0].Skipped)
	assert.Equal(t, 60, records[0].ElapsedSeconds)
	assert.Equal(t, stage.ShortBreak, records[1].Stage)
	assert.True(t, records[1].Skipped)

	s := Summarize(records)

	assert.Equal(t, 1, s.CompletedFocus)
	assert.Equal(t, time.Minute, s.FocusTime)
	assert.Equal(t, 1, s.Breaks)
}

func sampleRecords() []store.Record {
	run := uuid.MustParse("6f1b1f8e-6a47-4c55-9b2c-0d1c9b0e5a11")

	return []store.Record{
		{
			ID:             uuid.MustParse("0b6a4d4e-2f57-4c1a-8d8e-3b8c1d2e4f50"),
			RunID:          run,
			Stage:          stage.Focus,
			StartedAt:      t0,
			EndedAt:        t0.Add(25 * time.Minute),
			PlannedSeconds: 1500,
			ElapsedSeconds: 1500,
		},
		{
			ID:             uuid.MustParse("1c7b5e5f-3068-4d2b-9e9f-4c9d2e3f5061"),
			RunID:          run,
			Stage:          stage.ShortBreak,
			StartedAt:      t0.Add(25 * time.Minute),
			EndedAt:        t0.Add(30 * time.Minute),
			PlannedSeconds: 300,
			ElapsedSeconds: 300,
		},
		{
			ID:             uuid.MustParse("2d8c6f60-4179-4e3c-8fa0-5d0e3f406172"),
			RunID:          run,
			Stage:          stage.Focus,
			StartedAt:      t0.Add(30 * time.Minute),
			EndedAt:        t0.Add(40 * time.Minute),
			PlannedSeconds: 1500,
			ElapsedSeconds: 600,
			Skipped:        true,
		},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords())

	assert.Equal(t, Summary{
		FocusTime:      35 * time.Minute,
		BreakTime:      5 * time.Minute,
		CompletedFocus: 1,
		SkippedFocus:   1,
		Breaks:         1,
	}, s)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestFormatDuration(t *testing.T) {
	table := []struct {
		in   time.Duration
		want string
	}{
		{0, "0 seconds"},
		{45 * time.Second, "45 seconds"},
		{25 * time.Minute, "25 minutes"},
		{90*time.Minute + 20*time.Second, "1 hour 30 minutes"},
		{26 * time.Hour, "26 hours"},
	}

	for _, v := range table {
		if got := FormatDuration(v.in); got != v.want {
			t.Errorf("FormatDuration(%v): expected %q, but got %q", v.in, v.want, got)
		}
	}
}

type exportTest struct {
	name   string
	format Format
}

func (e exportTest) Output() ([]byte, string) {
	var buf bytes.Buffer

	if err := Write(&buf, sampleRecords(), e.format); err != nil {
		return []byte(err.Error()), e.name
	}

	return buf.Bytes(), e.name
}

func TestWriteJSON(t *testing.T) {
	testutil.CompareGoldenFile(t, exportTest{name: "export_json", format: FormatJSON})
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, sampleRecords(), FormatYAML))

	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "records:\n"))
	assert.Contains(t, out, "id: 0b6a4d4e-2f57-4c1a-8d8e-3b8c1d2e4f50")
	assert.Contains(t, out, "stage: short_break")
	assert.Contains(t, out, "skipped: true")
	assert.Contains(t, out, "completed_focus: 1")
}

func TestWriteEmptyAndUnknown(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, nil, FormatJSON))
	assert.Contains(t, buf.String(), `"records": []`)

	assert.Error(t, Write(&buf, nil, Format("csv")))
}
