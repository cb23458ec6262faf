// Package tui runs a game in the terminal with bubbletea.
package tui

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brensch/constrictor/audio"
	"github.com/brensch/constrictor/input"
	"github.com/brensch/constrictor/rules"
)

type Options struct {
	Width, Height int
	Tick          time.Duration
	Rand          *rand.Rand
	Logger        *slog.Logger
	Audio         audio.Player
}

// Model is the bubbletea model for one play session. A session spans every
// game started with restart.
type Model struct {
	opts  Options
	sim   *rules.Simulation
	queue *input.Queue
	games int
}

func New(opts Options) (Model, error) {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	m := Model{opts: opts, queue: &input.Queue{}}
	if err := m.newGame(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Simulation exposes the running game for inspection.
func (m Model) Simulation() *rules.Simulation { return m.sim }

func (m *Model) newGame() error {
	sim, err := rules.NewClassic(m.opts.Width, m.opts.Height, m.opts.Rand)
	if err != nil {
		return err
	}
	m.sim = sim
	m.queue.Drain()
	m.games++
	m.opts.Logger.Info("game started",
		"game", m.games,
		"width", m.opts.Width,
		"height", m.opts.Height,
		"food", sim.FoodPosition(),
		"head", sim.Snake().Head(),
	)
	return nil
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.step()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.sim.Done() {
		switch msg.String() {
		case "r":
			if err := m.newGame(); err != nil {
				m.opts.Logger.Error("restart failed", "error", err)
				return m, tea.Quit
			}
			return m, tickCmd(m.opts.Tick)
		case "q", "esc":
			return m, tea.Quit
		}
		return m, nil
	}

	if cmd, ok := input.FromKey(msg); ok {
		m.queue.Push(cmd)
	}
	return m, nil
}

// step applies queued commands and advances once. The tick is only re-armed
// while the game is running.
func (m Model) step() (tea.Model, tea.Cmd) {
	if m.sim.Done() {
		return m, nil
	}

	for _, cmd := range m.queue.Drain() {
		m.opts.Logger.Debug("command", "game", m.games, "cmd", cmd)
		input.Apply(m.sim, cmd)
	}

	before := m.sim.Snake().Len()
	res, done := m.sim.Advance()
	// The winning tick also grows the snake; it only gets the Win cue.
	if m.sim.Snake().Len() > before && !(done && res.Kind == rules.Won) {
		m.opts.Audio.Play(audio.Eat)
		m.opts.Logger.Debug("food eaten",
			"game", m.games,
			"tick", m.sim.Ticks(),
			"length", m.sim.Snake().Len(),
			"food", m.sim.FoodPosition(),
		)
	}
	if !done {
		return m, tickCmd(m.opts.Tick)
	}

	m.opts.Logger.Info("game over",
		"game", m.games,
		"result", res,
		"ticks", m.sim.Ticks(),
		"score", m.sim.Score(),
	)
	switch res.Kind {
	case rules.Died:
		m.opts.Audio.Play(audio.Die)
	case rules.Won:
		m.opts.Audio.Play(audio.Win)
	case rules.ManuallyTerminated:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) status() string {
	s := fmt.Sprintf("Length: %d  Score: %d  Tick: %d", m.sim.Snake().Len(), m.sim.Score(), m.sim.Ticks())
	if res, ok := m.sim.Result(); ok {
		s += fmt.Sprintf("\n%s  (r: new game, q: quit)", res)
	}
	return s
}
