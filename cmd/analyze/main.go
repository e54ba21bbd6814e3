// Command analyze prints quick, human-readable heuristics about the board a
// seed produces. It shows the board, every gem with its distance to each
// starting corner, and which player is closer to more gems.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/gemhunters/game/engine"
	"github.com/wricardo/gemhunters/random"
)

// Analysis summarizes a generated board
type Analysis struct {
	Seed      int64
	Board     *engine.Board
	Gems      []GemDistance
	Closer    [2]int // gems strictly closer to P1, P2
	Contested int    // gems equally far from both
}

// GemDistance is a gem with its Manhattan distance to each starting corner
type GemDistance struct {
	Position engine.Position
	FromP1   int
	FromP2   int
}

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "inspect the gem layout generated for one or more seeds",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "first seed to analyze (0 picks a random seed)",
			},
			&cli.IntFlag{
				Name:  "count",
				Value: 1,
				Usage: "number of consecutive seeds to analyze",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			seed := cmd.Int64("seed")
			if seed == 0 {
				var err error
				if seed, err = random.NewSeed(); err != nil {
					return err
				}
			}

			for i := 0; i < cmd.Int("count"); i++ {
				analysis, err := analyzeSeed(seed + int64(i))
				if err != nil {
					return err
				}
				if err := printAnalysis(os.Stdout, analysis); err != nil {
					return err
				}
			}
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func analyzeSeed(seed int64) (*Analysis, error) {
	rng, seed, err := random.New(seed)
	if err != nil {
		return nil, err
	}

	board := engine.NewBoard()
	if err := board.PlaceRandomGems(rng, engine.DefaultGemCount); err != nil {
		return nil, err
	}

	analysis := &Analysis{Seed: seed, Board: board}
	start1 := engine.SlotOne.StartPosition()
	start2 := engine.SlotTwo.StartPosition()

	for _, gem := range board.Gems() {
		d := GemDistance{
			Position: gem,
			FromP1:   engine.ManhattanDistance(start1, gem),
			FromP2:   engine.ManhattanDistance(start2, gem),
		}
		analysis.Gems = append(analysis.Gems, d)

		switch {
		case d.FromP1 < d.FromP2:
			analysis.Closer[engine.SlotOne]++
		case d.FromP2 < d.FromP1:
			analysis.Closer[engine.SlotTwo]++
		default:
			analysis.Contested++
		}
	}

	return analysis, nil
}

func printAnalysis(w io.Writer, a *Analysis) error {
	fmt.Fprintf(w, "\n=== Seed %d ===\n", a.Seed)
	if err := a.Board.Display(w); err != nil {
		return err
	}

	for _, gem := range a.Gems {
		fmt.Fprintf(w, "Gem (%d, %d): %d from P1, %d from P2\n", gem.Position.X, gem.Position.Y, gem.FromP1, gem.FromP2)
	}

	for _, slot := range []engine.Slot{engine.SlotOne, engine.SlotTwo} {
		if _, dist, found := engine.FindNearestGem(a.Board, slot.StartPosition()); found {
			fmt.Fprintf(w, "Nearest gem to %s: %d moves\n", slot.Name(), dist)
		}
	}

	_, err := fmt.Fprintf(w, "Closer to P1: %d, closer to P2: %d, contested: %d\n",
		a.Closer[engine.SlotOne], a.Closer[engine.SlotTwo], a.Contested)
	return err
}
