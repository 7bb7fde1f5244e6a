// Package setup is the pre-game screen where the learner picks difficulty,
// stimulus speed and set length for the chosen training stage.
package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearo/internal/gamecfg"
	"github.com/abhisek/hearo/internal/router"
	"github.com/abhisek/hearo/internal/screen"
	"github.com/abhisek/hearo/internal/screens/shared"
	"github.com/abhisek/hearo/internal/screens/training"
	"github.com/abhisek/hearo/internal/ui/components"
	"github.com/abhisek/hearo/internal/ui/layout"
	"github.com/abhisek/hearo/internal/ui/theme"
)

const (
	rowDifficulty = iota
	rowSpeed
	rowQuestions
	rowStart
	rowCount
)

var (
	difficulties = []gamecfg.Difficulty{gamecfg.DifficultyEasy, gamecfg.DifficultyNormal, gamecfg.DifficultyHard}
	speeds       = []gamecfg.Speed{gamecfg.SpeedVerySlow, gamecfg.SpeedSlow, gamecfg.SpeedNormal, gamecfg.SpeedFast, gamecfg.SpeedVeryFast}
)

// SetupScreen configures one training run before it starts.
type SetupScreen struct {
	deps shared.Deps
	mode gamecfg.Mode

	row        int
	difficulty int
	speed      int
	questions  int
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen for the mode, seeded from the configured
// defaults.
func New(deps shared.Deps, mode gamecfg.Mode) *SetupScreen {
	s := &SetupScreen{deps: deps, mode: mode, row: rowStart}
	s.difficulty = indexOf(difficulties, deps.Defaults.Difficulty)
	s.speed = indexOf(speeds, deps.Defaults.Speed)
	s.questions = indexOf(gamecfg.QuestionCounts, deps.Defaults.QuestionCount)
	return s
}

func indexOf[T comparable](opts []T, v T) int {
	for i, o := range opts {
		if o == v {
			return i
		}
	}
	return 0
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return modeTitle(s.mode)
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Row"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

// Config returns the run configuration the current selections describe.
func (s *SetupScreen) Config() gamecfg.Config {
	return gamecfg.Config{
		Mode:          s.mode,
		Difficulty:    difficulties[s.difficulty],
		Speed:         speeds[s.speed],
		QuestionCount: gamecfg.QuestionCounts[s.questions],
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.row > 0 {
			s.row--
		}
	case "down", "j":
		if s.row < rowCount-1 {
			s.row++
		}
	case "left", "h":
		s.cycle(-1)
	case "right", "l":
		s.cycle(1)
	case "enter", "space", " ":
		cfg := s.Config()
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: training.New(s.deps, cfg)}
		}
	}
	return s, nil
}

func (s *SetupScreen) cycle(dir int) {
	switch s.row {
	case rowDifficulty:
		s.difficulty = wrap(s.difficulty+dir, len(difficulties))
	case rowSpeed:
		s.speed = wrap(s.speed+dir, len(speeds))
	case rowQuestions:
		s.questions = wrap(s.questions+dir, len(gamecfg.QuestionCounts))
	}
}

func wrap(i, n int) int {
	if i < 0 {
		return n - 1
	}
	if i >= n {
		return 0
	}
	return i
}

func (s *SetupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := theme.Title.Width(cw).Render(modeTitle(s.mode))
	subtitle := theme.Subtitle.Width(cw).Render(modeBlurb(s.mode))

	rows := []string{
		s.renderRow(rowDifficulty, "Difficulty", string(difficulties[s.difficulty])),
		s.renderRow(rowSpeed, "Speed", string(speeds[s.speed])),
		s.renderRow(rowQuestions, "Questions", fmt.Sprintf("%d", gamecfg.QuestionCounts[s.questions])),
	}

	start := theme.ButtonInactive.Render("START")
	if s.row == rowStart {
		start = theme.ButtonActive.Render("START")
	}
	rows = append(rows, "", lipgloss.PlaceHorizontal(cw-6, lipgloss.Center, start))

	card := components.Card(strings.Join(rows, "\n"), cw)
	content := title + "\n" + subtitle + "\n\n" + card
	return components.GameFrame(content, width, height)
}

func (s *SetupScreen) renderRow(row int, label, value string) string {
	labelStyle := theme.Unselected
	valueStyle := theme.Body
	marker := "  "
	if s.row == row {
		labelStyle = theme.Selected
		valueStyle = theme.Selected
		marker = "> "
	}
	return fmt.Sprintf("%s%s  %s",
		marker,
		labelStyle.Render(fmt.Sprintf("%-12s", label)),
		valueStyle.Render(fmt.Sprintf("◂ %s ▸", value)))
}

func modeTitle(mode gamecfg.Mode) string {
	switch mode {
	case gamecfg.ModeDiscrimination:
		return "Same or Different"
	case gamecfg.ModeIdentification:
		return "Name That Word"
	default:
		return "Catch the Sound"
	}
}

func modeBlurb(mode gamecfg.Mode) string {
	switch mode {
	case gamecfg.ModeDiscrimination:
		return "Two sounds play. Are they the same?"
	case gamecfg.ModeIdentification:
		return "Hear a word, type it back"
	default:
		return "Tap the moment you hear the sound"
	}
}
