package engine

import (
	"errors"
	"fmt"
)

var ErrInvariant = errors.New("board invariant violated")

// Validate checks that the grid, the gem set and both players agree with each
// other. It is meant to run between turns, when no gem is pending collection.
func (b *Board) Validate(p1, p2 *Player) error {
	seen := make(map[Position]bool, len(b.gems))
	for _, gem := range b.gems {
		if !gem.InBounds() {
			return fmt.Errorf("%w: gem at (%d,%d) is off the board", ErrInvariant, gem.X, gem.Y)
		}
		if seen[gem] {
			return fmt.Errorf("%w: gem at (%d,%d) recorded twice", ErrInvariant, gem.X, gem.Y)
		}
		seen[gem] = true

		if cell := *b.cellAt(gem); cell != Gem {
			return fmt.Errorf("%w: gem at (%d,%d) but cell holds %s", ErrInvariant, gem.X, gem.Y, cell)
		}
	}

	if cells := b.CountCells(Gem); cells != len(b.gems) {
		return fmt.Errorf("%w: %d gem cells but %d gems recorded", ErrInvariant, cells, len(b.gems))
	}

	for _, p := range []*Player{p1, p2} {
		if !p.Position.InBounds() {
			return fmt.Errorf("%w: %s is off the board at (%d,%d)", ErrInvariant, p.Name, p.Position.X, p.Position.Y)
		}
		if cell := *b.cellAt(p.Position); cell != p.Marker() {
			return fmt.Errorf("%w: %s stands at (%d,%d) but cell holds %s", ErrInvariant, p.Name, p.Position.X, p.Position.Y, cell)
		}
		if n := b.CountCells(p.Marker()); n != 1 {
			return fmt.Errorf("%w: %d cells hold %s", ErrInvariant, n, p.Marker())
		}
	}

	return nil
}
