package engine

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrGameOver    = errors.New("game is over")
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state
	Board() *Board
	Player(slot Slot) *Player
	CurrentPlayer() *Player
	Turns() int
	IsGameOver() bool
	Outcome() Outcome

	// Movement operations
	Play(direction Direction) (*TurnResult, error)
	PossibleMoves() []Direction

	// History
	History() []TurnRecord
}

var _ Engine = (*Game)(nil)

// TurnResult describes the effects of one completed turn
type TurnResult struct {
	TurnRecord

	// RemainingGems is the post-move diagnostic from Board.PlayerGemCount,
	// taken before the gem under the mover is collected.
	RemainingGems int `json:"remaining_gems"`
}

// Outcome summarizes the final tallies
type Outcome struct {
	Player1Gems int    `json:"player1_gems"`
	Player2Gems int    `json:"player2_gems"`
	TotalGems   int    `json:"total_gems"`
	Tie         bool   `json:"tie"`
	Winner      string `json:"winner,omitempty"`
}

// Game orchestrates two players taking turns on a Board
type Game struct {
	board   *Board
	players [2]*Player
	current Slot
	turns   int
	rules   Rules
	history []TurnRecord
}

// NewGame creates a new game with a fresh board whose gems are placed using rng
func NewGame(rules Rules, rng *rand.Rand) (*Game, error) {
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}

	board := NewBoard()
	if err := board.PlaceRandomGems(rng, rules.GemCount); err != nil {
		return nil, fmt.Errorf("failed to place gems: %w", err)
	}

	return newGame(rules, board), nil
}

// NewGameWithBoard creates a game over a caller-prepared board. The board must
// be freshly initialized, with both players on their starting corners.
func NewGameWithBoard(rules Rules, board *Board) (*Game, error) {
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}
	if board == nil {
		return nil, fmt.Errorf("board cannot be nil")
	}

	g := newGame(rules, board)
	if err := board.Validate(g.players[SlotOne], g.players[SlotTwo]); err != nil {
		return nil, err
	}
	return g, nil
}

func newGame(rules Rules, board *Board) *Game {
	return &Game{
		board:   board,
		players: [2]*Player{NewPlayer(SlotOne), NewPlayer(SlotTwo)},
		current: SlotOne,
		rules:   rules,
		history: []TurnRecord{},
	}
}

// Board returns the game board
func (g *Game) Board() *Board {
	return g.board
}

// Player returns the player in the given slot
func (g *Game) Player(slot Slot) *Player {
	return g.players[slot]
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() *Player {
	return g.players[g.current]
}

// Turns returns the number of completed turns
func (g *Game) Turns() int {
	return g.turns
}

// Rules returns the rules the game was created with
func (g *Game) Rules() Rules {
	return g.rules
}

// SwitchTurn hands the turn to the other player
func (g *Game) SwitchTurn() {
	g.current = g.current.Other()
}

// IsGameOver returns whether the turn limit has been reached
func (g *Game) IsGameOver() bool {
	return g.turns == g.rules.TurnLimit
}

// Play attempts a move for the current player. An invalid move returns
// ErrInvalidMove and changes nothing, so the same player moves again.
func (g *Game) Play(direction Direction) (*TurnResult, error) {
	if g.IsGameOver() {
		return nil, ErrGameOver
	}

	player := g.CurrentPlayer()
	if !g.board.IsValidMove(player, direction) {
		return nil, fmt.Errorf("%w: %s cannot move %s from (%d,%d)",
			ErrInvalidMove, player.Name, direction, player.Position.X, player.Position.Y)
	}

	from := player.Position
	g.board.MovePlayer(player, from.Step(direction))
	remaining := g.board.PlayerGemCount(player.Name)
	collected := g.board.CollectGem(player)

	g.turns++
	record := TurnRecord{
		TurnNumber:   g.turns,
		Player:       player.Name,
		Direction:    direction,
		FromPosition: from,
		ToPosition:   player.Position,
		Collected:    collected,
		GemCount:     player.GemCount,
	}
	g.history = append(g.history, record)
	g.SwitchTurn()

	return &TurnResult{TurnRecord: record, RemainingGems: remaining}, nil
}

// PossibleMoves returns the directions the current player can move
func (g *Game) PossibleMoves() []Direction {
	return g.board.PossibleMoves(g.CurrentPlayer())
}

// History returns every completed turn in order
func (g *Game) History() []TurnRecord {
	return g.history
}

// Outcome compares the tallies; the strictly greater tally wins
func (g *Game) Outcome() Outcome {
	p1, p2 := g.players[SlotOne], g.players[SlotTwo]
	outcome := Outcome{
		Player1Gems: p1.GemCount,
		Player2Gems: p2.GemCount,
		TotalGems:   p1.GemCount + p2.GemCount,
	}

	switch {
	case p1.GemCount > p2.GemCount:
		outcome.Winner = p1.Name
	case p2.GemCount > p1.GemCount:
		outcome.Winner = p2.Name
	default:
		outcome.Tie = true
	}
	return outcome
}
