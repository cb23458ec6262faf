// Command simtrace plays a scripted game without a terminal UI and prints
// the board after every tick.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"unicode"

	"github.com/brensch/constrictor/game"
	"github.com/brensch/constrictor/input"
	"github.com/brensch/constrictor/rules"
)

func main() {
	width := flag.Int("width", 10, "Board width")
	height := flag.Int("height", 10, "Board height")
	seed := flag.Int64("seed", 1, "Seed for food placement")
	moves := flag.String("moves", "", "One input per tick: U R D L to turn, . for none, q to quit")
	maxTicks := flag.Int("max-ticks", 200, "Stop after this many ticks if the game is still running")
	flag.Parse()

	script, err := parseMoves(*moves)
	if err != nil {
		log.Fatalf("Bad -moves: %v", err)
	}

	log.Printf("Running %dx%d board, seed=%d, %d scripted inputs", *width, *height, *seed, len(script))
	res, done, err := run(os.Stdout, *width, *height, *seed, script, *maxTicks)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	if !done {
		log.Printf("Stopped after %d ticks without a result", *maxTicks)
		return
	}
	log.Printf("Game over: %s", res)
}

// parseMoves decodes a move script. A zero Command stands for a tick with
// no input. Whitespace is ignored.
func parseMoves(s string) ([]input.Command, error) {
	var out []input.Command
	for i, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '.':
			out = append(out, input.Command{})
		case r == 'q' || r == 'Q':
			out = append(out, input.Command{Kind: input.Quit})
		default:
			d, err := game.ParseDirection(string(r))
			if err != nil {
				return nil, fmt.Errorf("position %d: %w", i, err)
			}
			out = append(out, input.Turn(d))
		}
	}
	return out, nil
}

// run plays script on a classic board, writing a frame per tick to w.
// Once the script runs out the snake keeps its heading.
func run(w io.Writer, width, height int, seed int64, script []input.Command, maxTicks int) (rules.Result, bool, error) {
	sim, err := rules.NewClassic(width, height, rand.New(rand.NewSource(seed)))
	if err != nil {
		return rules.Result{}, false, err
	}
	fmt.Fprint(w, rules.Dump(sim))

	for tick := 0; tick < maxTicks; tick++ {
		if tick < len(script) {
			input.Apply(sim, script[tick])
		}
		res, done := sim.Advance()
		fmt.Fprintln(w, strings.Repeat("-", 2*width))
		fmt.Fprint(w, rules.Dump(sim))
		if done {
			return res, true, nil
		}
	}
	return rules.Result{}, false, nil
}
