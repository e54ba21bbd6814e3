package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
)

var (
	ErrNoSpaceForGems  = errors.New("not enough empty cells for gems")
	ErrInvalidPosition = errors.New("invalid position")
)

// Board owns the grid occupancy and the gems that have not been collected.
//
// The grid is row-major: grid[row][col] with row = Y and col = X. All access
// goes through cellAt so the two conventions never get mixed.
type Board struct {
	grid [BoardSize][BoardSize]Cell
	gems []Position
}

// NewBoard creates an initialized board without gems
func NewBoard() *Board {
	b := &Board{}
	b.Initialize()
	return b
}

// Initialize clears every cell and places both players on their starting corners
func (b *Board) Initialize() {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			b.grid[y][x] = Empty
		}
	}
	b.gems = nil

	*b.cellAt(SlotOne.StartPosition()) = Player1
	*b.cellAt(SlotTwo.StartPosition()) = Player2
}

// cellAt maps a position to its grid cell (row = Y, column = X)
func (b *Board) cellAt(p Position) *Cell {
	return &b.grid[p.Y][p.X]
}

// Cell returns the marker at the given position, or Empty when out of bounds
func (b *Board) Cell(p Position) Cell {
	if !p.InBounds() {
		return Empty
	}
	return *b.cellAt(p)
}

// PlaceRandomGems samples uniformly random cells until count empty ones have
// been marked as gems. The generator is owned by the caller so placement is
// reproducible from a seed.
func (b *Board) PlaceRandomGems(rng *rand.Rand, count int) error {
	if free := b.CountCells(Empty); count > free {
		return fmt.Errorf("%w: need %d, have %d", ErrNoSpaceForGems, count, free)
	}

	for i := 0; i < count; i++ {
		var pos Position
		for {
			pos.X = rng.Intn(BoardSize)
			pos.Y = rng.Intn(BoardSize)
			if *b.cellAt(pos) == Empty {
				break
			}
		}
		if err := b.PlaceGem(pos); err != nil {
			return err
		}
	}
	return nil
}

// PlaceGem marks a single empty cell as a gem and records its position
func (b *Board) PlaceGem(pos Position) error {
	if !pos.InBounds() {
		return fmt.Errorf("%w: (%d,%d) is off the board", ErrInvalidPosition, pos.X, pos.Y)
	}
	if cell := *b.cellAt(pos); cell != Empty {
		return fmt.Errorf("%w: (%d,%d) holds %s", ErrInvalidPosition, pos.X, pos.Y, cell)
	}

	*b.cellAt(pos) = Gem
	b.gems = append(b.gems, pos)
	return nil
}

// Gems returns a copy of the remaining gem positions in placement order
func (b *Board) Gems() []Position {
	gems := make([]Position, len(b.gems))
	copy(gems, b.gems)
	return gems
}

// RemainingGems returns the number of gems not yet collected
func (b *Board) RemainingGems() int {
	return len(b.gems)
}

// HasGem reports whether an uncollected gem is recorded at pos
func (b *Board) HasGem(pos Position) bool {
	return b.gemIndex(pos) >= 0
}

func (b *Board) gemIndex(pos Position) int {
	for i, gem := range b.gems {
		if gem == pos {
			return i
		}
	}
	return -1
}

// CountCells counts the cells currently holding the given marker
func (b *Board) CountCells(marker Cell) int {
	count := 0
	for _, row := range b.grid {
		for _, cell := range row {
			if cell == marker {
				count++
			}
		}
	}
	return count
}

// PlayerGemCount is the per-turn diagnostic shown after a move. For either
// valid player name it counts the recorded gems whose cell still shows the
// gem marker, so it reports gems left on the board rather than the player's
// own tally (see Player.GemCount for that). Unknown names report 0.
func (b *Board) PlayerGemCount(name string) int {
	if name != Player1.String() && name != Player2.String() {
		return 0
	}

	count := 0
	for _, gem := range b.gems {
		if *b.cellAt(gem) == Gem {
			count++
		}
	}
	return count
}

// Display writes one line per row with each marker followed by a space,
// then a blank separator line
func (b *Board) Display(w io.Writer) error {
	_, err := io.WriteString(w, b.String())
	return err
}

func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.grid {
		for _, cell := range row {
			sb.WriteString(string(cell))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}
