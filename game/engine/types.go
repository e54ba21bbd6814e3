package engine

import "unicode"

// Cell is the marker occupying a single grid cell
type Cell string

const (
	Empty   Cell = "-"
	Gem     Cell = "G"
	Player1 Cell = "P1"
	Player2 Cell = "P2"

	// Board constants
	BoardSize        = 6
	DefaultGemCount  = 6
	DefaultTurnLimit = 30
)

func (c Cell) String() string {
	return string(c)
}

// Position represents x,y coordinates
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InBounds reports whether the position lies on the board
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Step returns the position one cell away in the given direction
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction is a single orthogonal move
type Direction rune

const (
	Up    Direction = 'U'
	Down  Direction = 'D'
	Left  Direction = 'L'
	Right Direction = 'R'
)

// Directions lists the four moves in prompt order
var Directions = []Direction{Up, Down, Left, Right}

// ParseDirection converts a typed character into a Direction, ignoring case
func ParseDirection(r rune) (Direction, bool) {
	switch d := Direction(unicode.ToUpper(r)); d {
	case Up, Down, Left, Right:
		return d, true
	default:
		return 0, false
	}
}

// Delta returns the column and row offsets for the direction.
// Unknown directions return a zero delta.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		dy = -1
	case Down:
		dy = 1
	case Left:
		dx = -1
	case Right:
		dx = 1
	}
	return dx, dy
}

// Valid reports whether d is one of the four moves
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// MarshalText encodes the direction as its input character
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(string(rune(d))), nil
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Slot selects one of the two players
type Slot int

const (
	SlotOne Slot = iota
	SlotTwo
)

// Other returns the opposing slot
func (s Slot) Other() Slot {
	if s == SlotOne {
		return SlotTwo
	}
	return SlotOne
}

// Marker returns the grid marker for the slot
func (s Slot) Marker() Cell {
	if s == SlotOne {
		return Player1
	}
	return Player2
}

// Name returns the fixed player name for the slot
func (s Slot) Name() string {
	return string(s.Marker())
}

// StartPosition returns the starting corner for the slot
func (s Slot) StartPosition() Position {
	if s == SlotOne {
		return Position{X: 0, Y: 0}
	}
	return Position{X: BoardSize - 1, Y: BoardSize - 1}
}

// TurnRecord represents a single completed turn in the game history
type TurnRecord struct {
	TurnNumber   int       `json:"turn_number"`
	Player       string    `json:"player"`
	Direction    Direction `json:"direction"`
	FromPosition Position  `json:"from_position"`
	ToPosition   Position  `json:"to_position"`
	Collected    bool      `json:"collected"`
	GemCount     int       `json:"gem_count"`
}
