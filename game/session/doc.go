// Package session runs a single Gem Hunters game against a text console.
//
// The session package implements:
//   - The turn loop: board display, prompt, key read, move, report
//   - Invalid-move handling that re-prompts the same player
//   - The final report with both tallies and the verdict
//   - Per-turn debug logging and tracing spans
//
// Core Types:
//
// Session binds an engine.Engine to a Console. Console is any writer that
// can also read one move key at a time; transport/console provides the
// terminal implementation.
//
// Usage:
//
//	game, err := engine.NewGame(engine.DefaultRules(), rng)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess := session.New(game, console.New(os.Stdin, os.Stdout))
//	if err := sess.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
//
// Debugging:
//
// With a logger at debug level the session logs every turn and checks the
// board invariants after each valid move, logging any violation as an error.
package session
