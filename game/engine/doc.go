// Package engine provides the core game logic for Gem Hunters.
//
// The engine package implements the game mechanics including:
//   - A fixed 6x6 grid with occupancy markers and a gem set
//   - Orthogonal movement and collision detection between the two players
//   - Gem placement and collection
//   - Turn sequencing and winner determination
//
// Core Types:
//
// Board owns the grid and the remaining gems. Player holds a participant's
// name, position and tally. Game orchestrates the two players over a Board
// and enforces the turn limit defined by Rules.
//
// Coordinates:
//
// Positions use X for the column and Y for the row. The grid is stored
// row-major, so the cell for Position{X: x, Y: y} lives at grid[y][x].
//
// Usage:
//
//	rng := rand.New(rand.NewSource(seed))
//	game, err := engine.NewGame(engine.DefaultRules(), rng)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Move the current player
//	result, err := game.Play(engine.Right)
//	if errors.Is(err, engine.ErrInvalidMove) {
//		// same player tries again
//	}
//
// Game Rules:
//
// Player P1 starts in the top-left corner and P2 in the bottom-right corner.
// Each valid move steps one cell up, down, left or right onto an empty or
// gem cell; stepping onto a gem collects it. After 30 valid turns the player
// holding more gems wins, equal tallies are a tie.
package engine
