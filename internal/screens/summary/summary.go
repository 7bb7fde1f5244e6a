// Package summary shows the result of one finished set and offers the next
// set while the run has sets left.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearo/internal/game"
	"github.com/abhisek/hearo/internal/gamecfg"
	"github.com/abhisek/hearo/internal/router"
	"github.com/abhisek/hearo/internal/screen"
	"github.com/abhisek/hearo/internal/ui/components"
	"github.com/abhisek/hearo/internal/ui/layout"
	"github.com/abhisek/hearo/internal/ui/theme"
)

// SummaryScreen displays the set summary.
type SummaryScreen struct {
	cfg       gamecfg.Config
	fin       game.SetFinished
	setNumber int

	// nextSet resumes the run's engine for the following set. Nil when the
	// run is over or was stopped.
	nextSet func() (screen.Screen, error)

	errMsg string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a finished set.
func New(cfg gamecfg.Config, fin game.SetFinished, setNumber int, nextSet func() (screen.Screen, error)) *SummaryScreen {
	return &SummaryScreen{
		cfg:       cfg,
		fin:       fin,
		setNumber: setNumber,
		nextSet:   nextSet,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Set Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.nextSet != nil {
		hints = append(hints, layout.KeyHint{Key: "N", Description: "Next set"})
	}
	hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Done"})
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "n", "N":
		if s.nextSet == nil {
			return s, nil
		}
		next, err := s.nextSet()
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	res := s.fin.Result

	var b strings.Builder

	title := "Set complete!"
	if s.fin.Stopped {
		title = "Set ended early"
	}
	b.WriteString(theme.Title.Width(cw).Render(title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render(
		fmt.Sprintf("Set %d of %d", s.setNumber, gamecfg.MaxSets)))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("Perfect %d    Good %d    Miss %d", res.Perfects, res.Goods, res.Misses),
		fmt.Sprintf("Score %d    Max combo x%d    Accuracy %.0f%%",
			res.TotalScore, res.MaxCombo, res.Accuracy*100),
	}
	if s.cfg.Mode == gamecfg.ModeCatch && res.AverageReactionTimeMs > 0 {
		rows = append(rows, fmt.Sprintf("Average reaction %d ms", res.AverageReactionTimeMs))
	}
	card := components.Card(strings.Join(centered(rows, cw-6), "\n"), cw)
	b.WriteString(card)

	for _, line := range s.awardLines() {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, line))
	}

	if s.fin.PersistErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			theme.Incorrect.Render("Could not save progress; totals may reset next launch")))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			theme.Incorrect.Render(s.errMsg)))
	}

	return components.GameFrame(b.String(), width, height)
}

func (s *SummaryScreen) awardLines() []string {
	var lines []string
	gold := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	if lu := s.fin.LevelUp; lu != nil {
		lines = append(lines, gold.Render(fmt.Sprintf("⬆ LEVEL UP!  %s Lv.%d %s",
			lu.To.Badge, lu.To.Level, lu.To.Name)))
	}
	if n := s.fin.PiecesEarned; n > 0 {
		lines = append(lines, theme.Correct.Render(fmt.Sprintf("🏺 %d artifact pieces found", n)))
	}
	if s.fin.ArtifactComplete {
		lines = append(lines, gold.Render("🏺 Artifact complete! The vault grows"))
	}
	if s.cfg.Mode == gamecfg.ModeIdentification && !s.fin.Stopped {
		lines = append(lines, theme.Hint.Render(
			fmt.Sprintf("Word tree stage: %s", s.fin.Stage)))
	}
	return lines
}

func centered(rows []string, w int) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = lipgloss.PlaceHorizontal(w, lipgloss.Center, theme.Body.Render(r))
	}
	return out
}
