// Package input turns terminal key presses into game commands and buffers
// them between ticks.
package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brensch/constrictor/game"
)

// CommandKind identifies what a Command asks the simulation to do.
type CommandKind uint8

const (
	ChangeDirection CommandKind = iota + 1
	Quit
)

// Command is a decoded player instruction. Direction is only meaningful for
// ChangeDirection.
type Command struct {
	Kind      CommandKind
	Direction game.Direction
}

func Turn(d game.Direction) Command {
	return Command{Kind: ChangeDirection, Direction: d}
}

func (c Command) String() string {
	switch c.Kind {
	case ChangeDirection:
		return "ChangeDirection(" + c.Direction.String() + ")"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// FromKey decodes a key press. ok is false for keys that are not game
// commands so the caller can handle them itself.
func FromKey(msg tea.KeyMsg) (cmd Command, ok bool) {
	switch msg.String() {
	case "w", "up":
		return Turn(game.Up), true
	case "a", "left":
		return Turn(game.Left), true
	case "s", "down":
		return Turn(game.Down), true
	case "d", "right":
		return Turn(game.Right), true
	case "q", "esc":
		return Command{Kind: Quit}, true
	}
	return Command{}, false
}

// Applier is the part of the simulation commands act on.
type Applier interface {
	ChangePlayerMoveDirection(d game.Direction)
	Quit()
}

// Apply forwards cmd to the simulation.
func Apply(a Applier, cmd Command) {
	switch cmd.Kind {
	case ChangeDirection:
		a.ChangePlayerMoveDirection(cmd.Direction)
	case Quit:
		a.Quit()
	}
}
