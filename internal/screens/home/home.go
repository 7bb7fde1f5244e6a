package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearo/internal/gamecfg"
	"github.com/abhisek/hearo/internal/levels"
	"github.com/abhisek/hearo/internal/router"
	"github.com/abhisek/hearo/internal/screen"
	"github.com/abhisek/hearo/internal/screens/setup"
	"github.com/abhisek/hearo/internal/screens/shared"
	"github.com/abhisek/hearo/internal/screens/stats"
	"github.com/abhisek/hearo/internal/ui/components"
	"github.com/abhisek/hearo/internal/ui/theme"
)

// HomeScreen is the main menu: one entry per training stage plus progress.
type HomeScreen struct {
	deps shared.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps shared.Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "CATCH THE SOUND", Action: func() tea.Cmd {
			return pushSetup(deps, gamecfg.ModeCatch)
		}},
		{Label: "SAME OR DIFFERENT", Action: func() tea.Cmd {
			return pushSetup(deps, gamecfg.ModeDiscrimination)
		}},
		{Label: "NAME THAT WORD", Action: func() tea.Cmd {
			return pushSetup(deps, gamecfg.ModeIdentification)
		}},
		{Label: "MY PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(deps)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func pushSetup(deps shared.Deps, mode gamecfg.Mode) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: setup.New(deps, mode)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	title := theme.Title.Width(cw).Render("♪ HEARO ♪")
	subtitle := theme.Subtitle.Width(cw).Render("Hearing training, one sound at a time")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, h.renderStatsBar(cw))
	sections = append(sections, components.Card(h.menu.View(), cw))

	content := strings.Join(sections, "\n\n")
	return components.GameFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderStatsBar shows the learner's level, streak and mastered words.
func (h *HomeScreen) renderStatsBar(cw int) string {
	level := levels.Table[0]
	streak := 0
	if h.deps.Progress != nil {
		level = h.deps.Progress.Level()
		streak = h.deps.Progress.ConsecutiveDays()
	}
	words := 0
	if h.deps.Mastery != nil {
		words = h.deps.Mastery.Count()
	}

	line := fmt.Sprintf("%s Lv.%d %s   ★ %d day streak   ✎ %d words",
		level.Badge, level.Level, level.Name, streak, words)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
}
