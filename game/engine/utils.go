package engine

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// FindNearestGem finds the closest remaining gem to pos and returns its position and distance.
// Ties go to the gem placed first.
func FindNearestGem(board *Board, pos Position) (Position, int, bool) {
	minDistance := -1
	var nearestPos Position
	found := false

	for _, gem := range board.gems {
		distance := ManhattanDistance(pos, gem)
		if minDistance == -1 || distance < minDistance {
			minDistance = distance
			nearestPos = gem
			found = true
		}
	}

	return nearestPos, minDistance, found
}
