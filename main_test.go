package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName != "Gem Hunters" {
		t.Errorf("Expected app name Gem Hunters, got %s", AppName)
	}
}

// shuttleMoves keeps both players bouncing beside their corners, which is
// valid on any board
func shuttleMoves() string {
	return strings.Repeat("RLLR", 7) + "RL"
}

func runGame(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newCommand()
	cmd.Reader = strings.NewReader(input)
	cmd.Writer = &out
	cmd.ErrWriter = io.Discard

	err := cmd.Run(context.Background(), append([]string{"gemhunters"}, args...))
	return out.String(), err
}

func TestRun_FullGame(t *testing.T) {
	output, err := runGame(t, shuttleMoves(), "--seed", "7")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if n := strings.Count(output, "Enter move (U/D/L/R): "); n != 30 {
		t.Errorf("Expected 30 prompts, got %d", n)
	}
	if !strings.Contains(output, "Game Over Buddy!") {
		t.Error("Expected final report")
	}
	if !strings.HasSuffix(output, "wins!\n") && !strings.HasSuffix(output, "It's a tie!\n") {
		t.Errorf("Expected verdict at end of output, got %q", output[len(output)-40:])
	}
}

func TestRun_SameSeedSameGame(t *testing.T) {
	out1, err := runGame(t, shuttleMoves(), "--seed", "99")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	out2, err := runGame(t, shuttleMoves(), "--seed", "99", "--debug")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if out1 != out2 {
		t.Error("Expected identical transcripts for identical seeds")
	}
}

func TestRun_SeedFromEnvironment(t *testing.T) {
	t.Setenv("GEMHUNTERS_SEED", "99")
	fromEnv, err := runGame(t, shuttleMoves())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	fromFlag, err := runGame(t, shuttleMoves(), "--seed", "99")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if fromEnv != fromFlag {
		t.Error("Expected GEMHUNTERS_SEED to behave like --seed")
	}
}

func TestRun_InputEnds(t *testing.T) {
	_, err := runGame(t, "RL", "--seed", "1")
	if !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF when input runs out, got %v", err)
	}
}
