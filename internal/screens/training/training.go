// Package training is the in-game screen. It owns a running game engine and
// renders its events; learner input is forwarded back as responses.
package training

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hearo/internal/game"
	"github.com/abhisek/hearo/internal/gamecfg"
	"github.com/abhisek/hearo/internal/judge"
	"github.com/abhisek/hearo/internal/router"
	"github.com/abhisek/hearo/internal/screen"
	"github.com/abhisek/hearo/internal/screens/shared"
	"github.com/abhisek/hearo/internal/screens/summary"
	"github.com/abhisek/hearo/internal/stimuli"
	"github.com/abhisek/hearo/internal/ui/components"
	"github.com/abhisek/hearo/internal/ui/layout"
)

// eventBuffer bounds the engine event channel. The UI drains continuously;
// the buffer only absorbs the burst around a judged response.
const eventBuffer = 64

// TrainingScreen drives one training run.
type TrainingScreen struct {
	deps shared.Deps
	cfg  gamecfg.Config

	engine  *game.Engine
	events  chan game.Event
	started bool

	errMsg      string
	quitConfirm bool

	setNumber int
	question  int
	score     int
	combo     int

	symbol     string
	missed     bool
	pairFirst  string
	pairSecond string
	word       *stimuli.WordChallenge
	awaiting   bool
	judged     *game.Judged

	choice components.Choice
	input  components.TextInput
}

var _ screen.Screen = (*TrainingScreen)(nil)
var _ screen.KeyHintProvider = (*TrainingScreen)(nil)
var _ screen.EscInterceptor = (*TrainingScreen)(nil)

// New creates a TrainingScreen and a fresh engine for the configuration.
func New(deps shared.Deps, cfg gamecfg.Config) *TrainingScreen {
	t := newScreen(deps, cfg)
	t.events = make(chan game.Event, eventBuffer)
	ch := t.events

	eng, err := game.New(game.Options{
		Config:   cfg,
		Emit:     func(ev game.Event) { ch <- ev },
		Picker:   deps.Picker,
		Events:   deps.EventRepo,
		Progress: deps.Progress,
		Rewards:  deps.Rewards,
		Mastery:  deps.Mastery,
	})
	if err != nil {
		t.errMsg = err.Error()
		return t
	}
	t.engine = eng
	return t
}

// Continue resumes an engine that already has its next set started, reusing
// the run's event channel.
func Continue(deps shared.Deps, cfg gamecfg.Config, engine *game.Engine, events chan game.Event) *TrainingScreen {
	t := newScreen(deps, cfg)
	t.engine = engine
	t.events = events
	t.started = true
	return t
}

func newScreen(deps shared.Deps, cfg gamecfg.Config) *TrainingScreen {
	return &TrainingScreen{
		deps:   deps,
		cfg:    cfg,
		choice: components.NewChoice("Same", "Different"),
		input:  components.NewTextInput("Type the word...", 20),
	}
}

func (t *TrainingScreen) Init() tea.Cmd {
	if t.engine == nil {
		return nil
	}
	cmds := []tea.Cmd{t.waitEvent(), t.input.Init()}
	if !t.started {
		t.started = true
		eng := t.engine
		cmds = append(cmds, func() tea.Msg {
			if err := eng.Start(); err != nil {
				return engineStartFailedMsg{Err: err}
			}
			return nil
		})
	}
	return tea.Batch(cmds...)
}

func (t *TrainingScreen) Title() string {
	switch t.cfg.Mode {
	case gamecfg.ModeDiscrimination:
		return "Same or Different"
	case gamecfg.ModeIdentification:
		return "Name That Word"
	default:
		return "Catch the Sound"
	}
}

// InterceptEsc keeps Esc for the quit confirm while the game is live.
func (t *TrainingScreen) InterceptEsc() bool {
	return t.errMsg == ""
}

func (t *TrainingScreen) KeyHints() []layout.KeyHint {
	if t.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End set"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch t.cfg.Mode {
	case gamecfg.ModeDiscrimination:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	case gamecfg.ModeIdentification:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Space", Description: "Tap!"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

// waitEvent blocks on the engine's event channel.
func (t *TrainingScreen) waitEvent() tea.Cmd {
	ch := t.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return engineEventMsg{Event: ev}
	}
}

func (t *TrainingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case engineEventMsg:
		return t.handleEvent(msg.Event)

	case engineStartFailedMsg:
		t.errMsg = msg.Err.Error()
		return t, nil

	case tea.KeyMsg:
		return t.handleKey(msg)
	}

	if t.cfg.Mode == gamecfg.ModeIdentification && t.awaiting {
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return t, cmd
	}
	return t, nil
}

func (t *TrainingScreen) handleEvent(ev game.Event) (screen.Screen, tea.Cmd) {
	switch ev := ev.(type) {
	case game.SetStarted:
		t.setNumber = ev.SetNumber
		t.question = 0
		t.score = 0
		t.combo = 0
		t.resetPrompt()

	case game.StimulusShown:
		t.judged = nil
		t.missed = false
		t.awaiting = true
		t.question = ev.Question
		switch ev.Stimulus.Kind {
		case stimuli.KindSound:
			t.symbol = ev.Stimulus.Symbol
		case stimuli.KindPair:
			t.choice.Reset()
		case stimuli.KindWord:
			t.word = ev.Stimulus.Word
			t.input.Reset()
		}

	case game.PairSound:
		if ev.Position == 1 {
			t.judged = nil
			t.missed = false
			t.pairFirst = ev.Symbol
			t.pairSecond = ""
		} else {
			t.pairSecond = ev.Symbol
		}

	case game.StimulusCleared:
		t.awaiting = false
		t.symbol = ""
		t.missed = true

	case game.Judged:
		j := ev
		t.judged = &j
		t.awaiting = false
		t.score += j.Outcome.Points
		t.combo = j.Outcome.Combo
		t.symbol = ""

	case game.SetFinished:
		// Hand the run over to the summary screen. The closure lets it
		// resume this engine for the next set without owning it.
		var nextSet func() (screen.Screen, error)
		if !ev.Stopped && t.setNumber < gamecfg.MaxSets {
			deps, cfg, eng, ch := t.deps, t.cfg, t.engine, t.events
			nextSet = func() (screen.Screen, error) {
				if err := eng.StartNextSet(); err != nil {
					return nil, err
				}
				return Continue(deps, cfg, eng, ch), nil
			}
		}
		fin := ev
		setNumber := t.setNumber
		return t, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.New(t.cfg, fin, setNumber, nextSet),
			}
		}
	}

	return t, t.waitEvent()
}

func (t *TrainingScreen) resetPrompt() {
	t.symbol = ""
	t.missed = false
	t.pairFirst = ""
	t.pairSecond = ""
	t.word = nil
	t.awaiting = false
	t.judged = nil
}

func (t *TrainingScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if t.errMsg != "" {
		return t, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if t.quitConfirm {
		switch key {
		case "y", "Y":
			t.quitConfirm = false
			t.engine.Stop()
		case "n", "N", "esc":
			t.quitConfirm = false
		}
		return t, nil
	}

	if key == "esc" {
		t.quitConfirm = true
		return t, nil
	}

	switch t.cfg.Mode {
	case gamecfg.ModeCatch:
		if key == "space" || key == " " || key == "enter" {
			t.engine.Respond("")
		}
		return t, nil

	case gamecfg.ModeDiscrimination:
		if !t.awaiting {
			return t, nil
		}
		var submitted bool
		t.choice, submitted = t.choice.Update(msg)
		if submitted {
			answer := judge.AnswerSame
			if t.choice.Selected == 1 {
				answer = judge.AnswerDifferent
			}
			t.engine.Respond(answer)
		}
		return t, nil

	case gamecfg.ModeIdentification:
		if !t.awaiting {
			return t, nil
		}
		if key == "enter" {
			v := strings.TrimSpace(t.input.Value())
			if v == "" {
				return t, nil
			}
			t.engine.Respond(v)
			return t, nil
		}
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return t, cmd
	}

	return t, nil
}
