package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearo/internal/ui/theme"
)

// Choice is a horizontal two-or-more option selector, used for the
// same/different answer in discrimination sets.
type Choice struct {
	Options   []string
	Selected  int
	Submitted bool
}

// NewChoice creates a selector over the options.
func NewChoice(options ...string) Choice {
	return Choice{Options: options}
}

// Update handles left/right navigation and enter to submit.
func (c Choice) Update(msg tea.Msg) (Choice, bool) {
	if c.Submitted {
		return c, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	switch kmsg.String() {
	case "left", "h":
		if c.Selected > 0 {
			c.Selected--
		}
	case "right", "l":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
		return c, true
	}
	return c, false
}

// Value returns the currently selected option.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// Reset clears the submission so the selector can be reused.
func (c *Choice) Reset() {
	c.Submitted = false
	c.Selected = 0
}

// View renders the options side by side.
func (c Choice) View() string {
	parts := make([]string, 0, len(c.Options))
	for i, opt := range c.Options {
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text).
			Padding(0, 2)
		if i == c.Selected {
			style = style.
				BorderForeground(theme.Primary).
				Foreground(theme.Primary).
				Bold(true)
		}
		parts = append(parts, style.Render(opt))
	}
	return strings.Join(parts, "  ")
}
