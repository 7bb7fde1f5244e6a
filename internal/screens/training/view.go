package training

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearo/internal/gamecfg"
	"github.com/abhisek/hearo/internal/judge"
	"github.com/abhisek/hearo/internal/ui/components"
	"github.com/abhisek/hearo/internal/ui/theme"
)

func (t *TrainingScreen) View(width, height int) string {
	if t.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s\n\nPress any key to go back", t.errMsg))
	}
	if t.quitConfirm {
		return t.renderQuitConfirm(width, height)
	}

	cw := components.ContentWidth(width)

	sections := []string{
		t.renderStatusBar(cw),
		"",
		t.renderPrompt(cw),
	}

	if fb := t.renderFeedback(cw); fb != "" {
		sections = append(sections, "", fb)
	}

	content := strings.Join(sections, "\n")
	return components.GameFrame(content, width, height)
}

func (t *TrainingScreen) renderQuitConfirm(width, height int) string {
	box := components.Card(
		theme.Body.Render("End this set?\n\n")+
			theme.Hint.Render("Progress so far will not be counted."),
		components.ContentWidth(width))
	return components.GameFrame(box, width, height)
}

func (t *TrainingScreen) renderStatusBar(cw int) string {
	line := fmt.Sprintf("Set %d/%d   Question %d/%d   Score %d",
		t.setNumber, gamecfg.MaxSets, t.question+1, t.cfg.QuestionCount, t.score)
	if t.combo > 1 {
		line += lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("   Combo x%d", t.combo))
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		theme.Subtitle.Render(line))
}

func (t *TrainingScreen) renderPrompt(cw int) string {
	switch t.cfg.Mode {
	case gamecfg.ModeDiscrimination:
		return t.renderPairPrompt(cw)
	case gamecfg.ModeIdentification:
		return t.renderWordPrompt(cw)
	default:
		return t.renderCatchPrompt(cw)
	}
}

func (t *TrainingScreen) renderCatchPrompt(cw int) string {
	if t.symbol != "" {
		big := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Padding(1, 4).
			Render(t.symbol + " !")
		return lipgloss.PlaceHorizontal(cw, lipgloss.Center, components.Card(big, 16))
	}
	if t.missed {
		return lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			theme.Hint.Render("Too slow... get ready for the next one"))
	}
	if t.judged != nil {
		return ""
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		theme.Hint.Render("♪ Listen closely..."))
}

func (t *TrainingScreen) renderPairPrompt(cw int) string {
	if t.pairFirst == "" {
		return lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			theme.Hint.Render("♪ Two sounds are coming..."))
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		theme.Body.Render(fmt.Sprintf("Sound 1:  %s", t.pairFirst))))
	b.WriteString("\n")
	second := "..."
	if t.pairSecond != "" {
		second = t.pairSecond
	}
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		theme.Body.Render(fmt.Sprintf("Sound 2:  %s", second))))

	if t.awaiting {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, t.choice.View()))
	}
	return b.String()
}

func (t *TrainingScreen) renderWordPrompt(cw int) string {
	if t.word == nil {
		return lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			theme.Hint.Render("♪ A word is coming..."))
	}

	var b strings.Builder
	sound := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Padding(0, 2).
		Render(fmt.Sprintf("🔊 %s", t.word.Pronunciation))
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, components.Card(sound, 30)))

	if t.awaiting {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, t.input.View()))
	}
	return b.String()
}

func (t *TrainingScreen) renderFeedback(cw int) string {
	if t.judged == nil {
		return ""
	}
	out := t.judged.Outcome

	var line string
	var style lipgloss.Style
	switch out.Tier {
	case judge.TierPerfect:
		line = fmt.Sprintf("PERFECT!  +%d", out.Points)
		style = theme.Correct
	case judge.TierGood:
		line = fmt.Sprintf("Good  +%d", out.Points)
		style = lipgloss.NewStyle().Foreground(theme.Secondary)
	case judge.TierMiss:
		line = "Miss"
		style = theme.Incorrect
	default:
		line = "Too late... the question repeats"
		style = theme.Hint
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, style.Render(line)))

	if out.Bonus > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render(fmt.Sprintf("★ Combo x%d bonus +%d", out.Combo, out.Bonus))))
	}

	if t.judged.Piece != nil {
		b.WriteString("\n")
		msg := "🏺 Artifact piece found!"
		if t.judged.Piece.ArtifactComplete {
			msg = "🏺 Artifact complete!"
		}
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(msg)))
	}

	if t.judged.Award != nil && t.judged.Award.RankUp != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render(fmt.Sprintf("⬆ Rank up: %s", t.judged.Award.RankUp.Name))))
	}

	if t.judged.NewWord && t.word != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			theme.Correct.Render(fmt.Sprintf("✎ New word mastered: %s", t.word.Word))))
	}

	// A wrong identification answer reveals the word and its hint.
	if t.cfg.Mode == gamecfg.ModeIdentification && out.Tier != judge.TierPerfect && t.word != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			theme.Hint.Render(fmt.Sprintf("It was %q — %s", t.word.Word, t.word.Hint))))
	}

	return b.String()
}
