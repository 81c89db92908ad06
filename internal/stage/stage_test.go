package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	d := DefaultDurations()

	assert.Equal(t, 25, d.Get(Focus))
	assert.Equal(t, 5, d.Get(ShortBreak))
	assert.Equal(t, 15, d.Get(LongBreak))
	assert.Equal(t, 1500, d.Seconds(Focus))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Focus", Focus.Label())
	assert.Equal(t, "Short break", ShortBreak.Label())
	assert.Equal(t, "Long break", LongBreak.Label())
	assert.Equal(t, "", Kind("nap").Label())
}

func TestSetClamps(t *testing.T) {
	d := DefaultDurations()

	d.Set(Focus, 150)
	d.Set(ShortBreak, 0)
	d.Set(LongBreak, 45)
	d.Set(Kind("nap"), 10)

	assert.Equal(t, Durations{Focus: 90, ShortBreak: 1, LongBreak: 45}, d)
	assert.Equal(t, 0, d.Get(Kind("nap")))
}

func TestNormalize(t *testing.T) {
	d := Durations{Focus: 0, ShortBreak: 300, LongBreak: 20}

	assert.Equal(t, Durations{Focus: 1, ShortBreak: 90, LongBreak: 20}, d.Normalize())
}

func TestParse(t *testing.T) {
	table := []struct {
		in   string
		want Kind
	}{
		{"focus", Focus},
		{"Focus", Focus},
		{"1", Focus},
		{"short_break", ShortBreak},
		{"short-break", ShortBreak},
		{"Short break", ShortBreak},
		{"2", ShortBreak},
		{" long_break ", LongBreak},
		{"3", LongBreak},
	}

	for _, v := range table {
		got, err := Parse(v.in)
		require.NoError(t, err, v.in)
		assert.Equal(t, v.want, got, v.in)
	}

	_, err := Parse("nap")
	assert.ErrorIs(t, err, ErrUnknownStage)

	_, err = Parse("4")
	assert.ErrorIs(t, err, ErrUnknownStage)
}
