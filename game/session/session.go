package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wricardo/gemhunters/game/engine"
	"github.com/wricardo/gemhunters/telemetry"
)

// Console is the text channel a session plays over
type Console interface {
	io.Writer
	ReadMove() (rune, error)
}

// Session drives one game from the first prompt to the final report
type Session struct {
	game    engine.Engine
	console Console
	logger  *log.Logger
	tracer  trace.Tracer
}

// New creates a session that logs through the standard logrus logger
func New(game engine.Engine, console Console) *Session {
	return NewWithLogger(game, console, log.StandardLogger())
}

// NewWithLogger creates a session with its own logger
func NewWithLogger(game engine.Engine, console Console, logger *log.Logger) *Session {
	return &Session{
		game:    game,
		console: console,
		logger:  logger,
		tracer:  telemetry.Tracer("session"),
	}
}

// Run plays turns until the game is over, then prints the final board and
// the result. It returns early if ctx is done or the console fails.
func (s *Session) Run(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "game.session")
	defer span.End()

	for !s.game.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.turn(ctx); err != nil {
			span.RecordError(err)
			return err
		}
	}

	outcome := s.game.Outcome()
	span.SetAttributes(
		attribute.Int("game.turns", s.game.Turns()),
		attribute.Int("game.player1_gems", outcome.Player1Gems),
		attribute.Int("game.player2_gems", outcome.Player2Gems),
	)
	s.logger.WithFields(log.Fields{
		"turns":  s.game.Turns(),
		"winner": outcome.Winner,
		"tie":    outcome.Tie,
	}).Info("game finished")

	p := &printer{w: s.console}
	p.board(s.game.Board())
	announceWinner(p, outcome)
	return p.err
}

// turn prompts the current player once. An invalid key or blocked move is
// reported and leaves the turn with the same player.
func (s *Session) turn(ctx context.Context) error {
	player := s.game.CurrentPlayer()

	p := &printer{w: s.console}
	p.board(s.game.Board())
	p.printf("Current Turn: %s\n\n", player.Name)
	p.printf("Enter move (U/D/L/R): ")
	if p.err != nil {
		return p.err
	}

	key, err := s.console.ReadMove()
	if err != nil {
		return fmt.Errorf("failed to read move for %s: %w", player.Name, err)
	}
	p.printf("\n")

	_, span := s.tracer.Start(ctx, "game.turn", trace.WithAttributes(
		attribute.String("player", player.Name),
		attribute.String("input", string(key)),
		attribute.Int("turn", s.game.Turns()+1),
	))
	defer span.End()

	direction, _ := engine.ParseDirection(key)
	result, err := s.game.Play(direction)
	if errors.Is(err, engine.ErrInvalidMove) {
		span.SetAttributes(attribute.Bool("valid", false))
		s.logger.WithError(err).WithField("input", string(key)).Debug("move rejected")
		p.printf("Invalid move! Please Try again.\n")
		return p.err
	}
	if err != nil {
		return err
	}

	span.SetAttributes(
		attribute.Bool("valid", true),
		attribute.Bool("collected", result.Collected),
	)
	s.logger.WithFields(log.Fields{
		"turn":      result.TurnNumber,
		"player":    result.Player,
		"from":      fmt.Sprintf("(%d,%d)", result.FromPosition.X, result.FromPosition.Y),
		"to":        fmt.Sprintf("(%d,%d)", result.ToPosition.X, result.ToPosition.Y),
		"collected": result.Collected,
		"gem_count": result.GemCount,
	}).Debug("turn completed")

	p.printf("%s's gem count: %d\n\n", player.Name, result.RemainingGems)
	if result.Collected {
		p.printf("Player %s collected a gem! Gem Count: %d\n", player.Name, result.GemCount)
	}

	if s.logger.IsLevelEnabled(log.DebugLevel) {
		board := s.game.Board()
		if err := board.Validate(s.game.Player(engine.SlotOne), s.game.Player(engine.SlotTwo)); err != nil {
			s.logger.WithError(err).Error("board check failed")
		}
	}

	return p.err
}

func announceWinner(p *printer, outcome engine.Outcome) {
	p.printf("Game Over Buddy!\n")
	p.printf("Player %s collected %d gems.\n", engine.SlotOne.Name(), outcome.Player1Gems)
	p.printf("Player %s collected %d gems.\n", engine.SlotTwo.Name(), outcome.Player2Gems)
	p.printf("Total Gems Collected: %d\n\n", outcome.TotalGems)

	if outcome.Tie {
		p.printf("It's a tie!\n")
		return
	}
	p.printf("Player %s wins!\n", outcome.Winner)
}

// printer keeps the first write error so output code can stay linear
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) board(b *engine.Board) {
	if p.err != nil {
		return
	}
	p.err = b.Display(p.w)
}
