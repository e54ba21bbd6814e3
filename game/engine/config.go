package engine

import "fmt"

// Rules holds the tunable constants of a game. The defaults are the only
// values the game is played with; Rules exists so the constants are named
// and validated in one place.
type Rules struct {
	GemCount  int `json:"gem_count"`
	TurnLimit int `json:"turn_limit"`
}

// DefaultRules returns six gems and a thirty turn limit
func DefaultRules() Rules {
	return Rules{
		GemCount:  DefaultGemCount,
		TurnLimit: DefaultTurnLimit,
	}
}

// ValidateRules validates the rules for correctness and playability
func ValidateRules(rules Rules) error {
	// Both starting corners are occupied before gems are placed
	maxGems := BoardSize*BoardSize - 2

	if rules.GemCount < 1 || rules.GemCount > maxGems {
		return fmt.Errorf("config validation: gem_count must be between 1 and %d, got %d", maxGems, rules.GemCount)
	}
	if rules.TurnLimit < 1 {
		return fmt.Errorf("config validation: turn_limit must be positive, got %d", rules.TurnLimit)
	}
	return nil
}
