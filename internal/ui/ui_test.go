package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/stage"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	pterm.DisableStyling()

	m.Run()
}

func TestStageWithoutColor(t *testing.T) {
	for _, k := range stage.Kinds {
		assert.Equal(t, k.Label(), Stage(k, k.Label()))
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer

	err := PrintTable([][]string{
		{"Stage", "Elapsed"},
		{"Focus", "25:00"},
		{"Short break", "05:00"},
	}, &buf)
	require.NoError(t, err)

	out := buf.String()

	assert.Contains(t, out, "Stage")
	assert.Contains(t, out, "Short break")
	assert.Contains(t, out, "25:00")
}
