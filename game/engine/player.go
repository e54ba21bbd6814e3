package engine

// Player holds a participant's identity, position and gem tally
type Player struct {
	Name     string   `json:"name"`
	Slot     Slot     `json:"slot"`
	Position Position `json:"position"`
	GemCount int      `json:"gem_count"`
}

// NewPlayer creates a player for the slot at its starting corner
func NewPlayer(slot Slot) *Player {
	return &Player{
		Name:     slot.Name(),
		Slot:     slot,
		Position: slot.StartPosition(),
	}
}

// Marker returns the grid marker for this player
func (p *Player) Marker() Cell {
	return p.Slot.Marker()
}

// Move applies the direction's delta to the player's position without any
// bounds or occupancy checks. Game uses Board.MovePlayer instead, which keeps
// the grid in sync.
func (p *Player) Move(direction Direction) {
	p.Position = p.Position.Step(direction)
}
