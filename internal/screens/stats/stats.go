// Package stats renders the progression ledger: level, streak, rank,
// artifact, word tree and recent sets.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearo/internal/levels"
	"github.com/abhisek/hearo/internal/rewards"
	"github.com/abhisek/hearo/internal/screen"
	"github.com/abhisek/hearo/internal/screens/shared"
	"github.com/abhisek/hearo/internal/store"
	"github.com/abhisek/hearo/internal/ui/components"
	"github.com/abhisek/hearo/internal/ui/layout"
	"github.com/abhisek/hearo/internal/ui/theme"
)

const recentLimit = 8

type recentLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Err      error
}

// StatsScreen displays the learner's cumulative progress.
type StatsScreen struct {
	deps    shared.Deps
	recent  []store.SessionSummaryRecord
	loaded  bool
	loadErr string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(deps shared.Deps) *StatsScreen {
	return &StatsScreen{deps: deps}
}

func (s *StatsScreen) Init() tea.Cmd {
	repo := s.deps.EventRepo
	if repo == nil {
		return func() tea.Msg { return recentLoadedMsg{} }
	}
	return func() tea.Msg {
		sessions, err := repo.QuerySessionSummaries(context.Background(), store.QueryOpts{Limit: recentLimit})
		return recentLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "My Progress"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(recentLoadedMsg); ok {
		if msg.Err != nil {
			s.loadErr = msg.Err.Error()
		}
		s.recent = msg.Sessions
		s.loaded = true
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, s.renderLevelCard(cw))
	sections = append(sections, s.renderLedgerLine(cw))
	if s.deps.Rewards != nil {
		sections = append(sections, s.renderRewardsLine(cw))
	}
	if s.deps.Mastery != nil {
		sections = append(sections, s.renderWordTreeLine(cw))
	}
	sections = append(sections, s.renderRecent(cw))

	content := strings.Join(sections, "\n\n")
	return components.GameFrame(content, width, height)
}

func (s *StatsScreen) renderLevelCard(cw int) string {
	level := levels.Table[0]
	perfects := 0
	frac := 0.0
	if s.deps.Progress != nil {
		level = s.deps.Progress.Level()
		perfects = s.deps.Progress.TotalPerfects()
		frac = levels.Progress(perfects)
	}

	head := theme.Title.Render(fmt.Sprintf("%s Lv.%d %s", level.Badge, level.Level, level.Name))

	var progressLine string
	if next, ok := levels.Next(level.Level); ok {
		bar := components.NewProgressBar("", frac, false, cw-20)
		progressLine = fmt.Sprintf("%s  %d/%d perfects to %s",
			bar.View(), perfects, next.RequiredPerfects, next.Name)
	} else {
		progressLine = theme.Hint.Render("Top of the ladder!")
	}

	inner := lipgloss.PlaceHorizontal(cw-6, lipgloss.Center, head) + "\n\n" +
		lipgloss.PlaceHorizontal(cw-6, lipgloss.Center, theme.Body.Render(progressLine))
	return components.Card(inner, cw)
}

func (s *StatsScreen) renderLedgerLine(cw int) string {
	if s.deps.Progress == nil {
		return ""
	}
	p := s.deps.Progress
	line := fmt.Sprintf("Perfects %d   Sessions %d   Streak %d days   Avg accuracy %.0f%%",
		p.TotalPerfects(), p.TotalTrainingSessions(), p.ConsecutiveDays(), p.AverageAccuracy())
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, theme.Body.Render(line))
}

func (s *StatsScreen) renderRewardsLine(cw int) string {
	r := s.deps.Rewards
	rank := r.Rank()
	line := fmt.Sprintf("Rank %s   %d pts", rank.Name, r.Points())
	if next := rewards.NextRank(rank); next != nil {
		line += fmt.Sprintf("   (%d to %s)", next.RequiredPoints-r.Points(), next.Name)
	}
	line += fmt.Sprintf("   Artifact %d/%d pieces", r.ArtifactPieces(), rewards.ArtifactPiecesNeeded)
	if r.ArtifactsCompleted() > 0 {
		line += fmt.Sprintf("   ♬ ×%d complete", r.ArtifactsCompleted())
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Accent).Render(line))
}

func (s *StatsScreen) renderWordTreeLine(cw int) string {
	m := s.deps.Mastery
	line := fmt.Sprintf("Word tree: %s   %d words mastered", m.Stage(), m.Count())
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(line))
}

func (s *StatsScreen) renderRecent(cw int) string {
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		theme.Subtitle.Render("Recent sets")))
	b.WriteString("\n")

	switch {
	case s.loadErr != "":
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			theme.Incorrect.Render(s.loadErr)))
	case !s.loaded:
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			theme.Hint.Render("Loading...")))
	case len(s.recent) == 0:
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			theme.Hint.Render("No sets yet. Go train!")))
	default:
		for _, rec := range s.recent {
			line := fmt.Sprintf("%s  %-14s  %d pts  %.0f%%",
				rec.Timestamp.Format("Jan 02"), rec.Mode, rec.TotalScore, rec.Accuracy*100)
			b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
				theme.Body.Render(line)))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
