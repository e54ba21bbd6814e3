package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGame_TurnLimit(t *testing.T) {
	game := createTestGame(t, Position{3, 3})
	shuttle := []Direction{Right, Left, Left, Right} // P1, P2, P1, P2

	for i := 0; i < DefaultTurnLimit; i++ {
		if game.IsGameOver() {
			t.Fatalf("Game ended early after %d turns", game.Turns())
		}

		// An invalid attempt every few turns must not count
		if i%3 == 0 {
			if _, err := game.Play(Direction('?')); !errors.Is(err, ErrInvalidMove) {
				t.Fatalf("Expected ErrInvalidMove, got %v", err)
			}
		}

		if _, err := game.Play(shuttle[i%len(shuttle)]); err != nil {
			t.Fatalf("Turn %d: unexpected error: %v", i+1, err)
		}
	}

	if !game.IsGameOver() {
		t.Fatal("Expected game to be over after 30 turns")
	}
	if game.Turns() != DefaultTurnLimit {
		t.Errorf("Expected %d turns, got %d", DefaultTurnLimit, game.Turns())
	}
	if _, err := game.Play(Down); !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver, got %v", err)
	}

	history := game.History()
	if len(history) != DefaultTurnLimit {
		t.Fatalf("Expected %d history entries, got %d", DefaultTurnLimit, len(history))
	}
	for i, record := range history {
		if record.TurnNumber != i+1 {
			t.Errorf("Entry %d: expected turn number %d, got %d", i, i+1, record.TurnNumber)
		}
		expectedPlayer := "P1"
		if i%2 == 1 {
			expectedPlayer = "P2"
		}
		if record.Player != expectedPlayer {
			t.Errorf("Entry %d: expected %s, got %s", i, expectedPlayer, record.Player)
		}
	}

	outcome := game.Outcome()
	if !outcome.Tie || outcome.TotalGems != 0 {
		t.Errorf("Expected scoreless tie, got %+v", outcome)
	}
}

func TestGame_CustomTurnLimit(t *testing.T) {
	board := createTestBoard(t)
	game, err := NewGameWithBoard(Rules{GemCount: 1, TurnLimit: 2}, board)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	if _, err := game.Play(Right); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if game.IsGameOver() {
		t.Fatal("Expected game to continue after one turn")
	}
	if _, err := game.Play(Up); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !game.IsGameOver() {
		t.Error("Expected game to be over after two turns")
	}
}

func TestGame_CollectRow(t *testing.T) {
	game := createTestGame(t, Position{1, 0}, Position{2, 0}, Position{3, 0}, Position{5, 3})

	moves := []Direction{
		Right, Up, // P1 collects (1,0); P2 to (5,4)
		Right, Up, // P1 collects (2,0); P2 collects (5,3)
		Right, Down, // P1 collects (3,0); P2 back to (5,4)
		Down, Left, // no collections
	}
	for i, dir := range moves {
		if _, err := game.Play(dir); err != nil {
			t.Fatalf("Move %d (%s): unexpected error: %v", i, dir, err)
		}
	}

	if n := game.Player(SlotOne).GemCount; n != 3 {
		t.Errorf("Expected P1 tally 3, got %d", n)
	}
	if n := game.Player(SlotTwo).GemCount; n != 1 {
		t.Errorf("Expected P2 tally 1, got %d", n)
	}
	if game.Board().RemainingGems() != 0 {
		t.Errorf("Expected all gems collected, got %d left", game.Board().RemainingGems())
	}

	outcome := game.Outcome()
	if outcome.Winner != "P1" || outcome.TotalGems != 4 {
		t.Errorf("Expected P1 to lead with 4 total, got %+v", outcome)
	}
}

func TestGame_RandomPlaythroughInvariants(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		game, err := NewGame(DefaultRules(), rng)
		if err != nil {
			t.Fatalf("seed %d: failed to create game: %v", seed, err)
		}

		inputs := []Direction{Up, Down, Left, Right, Direction('X')}
		for attempts := 0; !game.IsGameOver(); attempts++ {
			if attempts > 10000 {
				t.Fatalf("seed %d: game did not finish", seed)
			}

			player := game.CurrentPlayer()
			before := player.Position
			tally := player.GemCount
			gems := game.Board().RemainingGems()
			turns := game.Turns()
			dir := inputs[rng.Intn(len(inputs))]
			valid := game.Board().IsValidMove(player, dir)

			result, err := game.Play(dir)
			if !valid {
				if !errors.Is(err, ErrInvalidMove) {
					t.Fatalf("seed %d: expected ErrInvalidMove, got %v", seed, err)
				}
				if player.Position != before || game.Turns() != turns {
					t.Fatalf("seed %d: invalid move changed state", seed)
				}
				continue
			}
			if err != nil {
				t.Fatalf("seed %d: unexpected error: %v", seed, err)
			}

			if ManhattanDistance(before, player.Position) != 1 {
				t.Fatalf("seed %d: move %s went from %+v to %+v", seed, dir, before, player.Position)
			}
			if game.Turns() != turns+1 {
				t.Fatalf("seed %d: expected turn counter %d, got %d", seed, turns+1, game.Turns())
			}

			if result.Collected {
				if player.GemCount != tally+1 || game.Board().RemainingGems() != gems-1 {
					t.Fatalf("seed %d: collection did not move exactly one gem", seed)
				}
			} else if player.GemCount != tally || game.Board().RemainingGems() != gems {
				t.Fatalf("seed %d: tallies changed without a collection", seed)
			}

			if err := game.Board().Validate(game.Player(SlotOne), game.Player(SlotTwo)); err != nil {
				t.Fatalf("seed %d: %v", seed, err)
			}
		}

		outcome := game.Outcome()
		if outcome.TotalGems+game.Board().RemainingGems() != DefaultGemCount {
			t.Errorf("seed %d: expected gems to be conserved, got %+v with %d left",
				seed, outcome, game.Board().RemainingGems())
		}
	}
}
