package timer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/stage"
)

const (
	padding  = 2
	maxWidth = 80
)

// Style holds the lipgloss styles of the timer view.
type Style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Stage     map[stage.Kind]lipgloss.Style
}

func newStyle(cfg *config.Config) Style {
	secondary := lipgloss.Color("#5C5C5C")
	hint := lipgloss.Color("#8A8A8A")

	if cfg.Display.DarkTheme {
		secondary = lipgloss.Color("#C4C4C4")
		hint = lipgloss.Color("#7C7C7C")
	}

	s := Style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Hint:      lipgloss.NewStyle().Foreground(hint).PaddingLeft(1),
		Stage:     make(map[stage.Kind]lipgloss.Style, len(stage.Kinds)),
	}

	for _, k := range stage.Kinds {
		s.Stage[k] = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			MarginRight(1).
			Foreground(lipgloss.Color("#1B1B1B")).
			Background(lipgloss.Color(cfg.Stage(k).Color)).
			SetString(strings.ToUpper(k.Label()))
	}

	return s
}
