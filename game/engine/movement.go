package engine

// IsValidMove checks if the player can move in the specified direction.
// The destination must be on the board and hold either nothing or a gem;
// the other player's cell is never enterable.
func (b *Board) IsValidMove(player *Player, direction Direction) bool {
	if !direction.Valid() {
		return false
	}
	return b.CanMoveTo(player.Position.Step(direction))
}

// CanMoveTo checks if any player could step onto the given position
func (b *Board) CanMoveTo(pos Position) bool {
	if !pos.InBounds() {
		return false
	}
	cell := *b.cellAt(pos)
	return cell == Empty || cell == Gem
}

// MovePlayer moves the player to destination, clearing the cell it leaves and
// marking the one it enters. It does not validate; callers check IsValidMove
// first.
func (b *Board) MovePlayer(player *Player, destination Position) {
	*b.cellAt(player.Position) = Empty
	*b.cellAt(destination) = player.Marker()
	player.Position = destination
}

// CollectGem awards the gem recorded at the player's position, if any.
// The gem's grid marker was already replaced by MovePlayer; here the
// position leaves the gem set and the tally grows by one. Returns whether a
// gem was collected.
func (b *Board) CollectGem(player *Player) bool {
	i := b.gemIndex(player.Position)
	if i < 0 {
		return false
	}

	player.GemCount++
	b.gems = append(b.gems[:i], b.gems[i+1:]...)
	return true
}

// PossibleMoves returns all valid directions the player can move
func (b *Board) PossibleMoves(player *Player) []Direction {
	var possible []Direction
	for _, dir := range Directions {
		if b.IsValidMove(player, dir) {
			possible = append(possible, dir)
		}
	}
	return possible
}
