// Package console provides the text input/output channel for Gem Hunters.
//
// The console package implements:
//   - Single-key move input, case-insensitive
//   - Raw terminal mode for key presses without Enter
//   - Line-oriented fallback for pipes and files
//   - Echo of the pressed key so transcripts read the same either way
//
// Terminal Handling:
//
// When the input is an interactive terminal, each read switches the terminal
// into raw mode for exactly one byte and restores it before returning, so
// normal line discipline is in effect while the board is printed. Ctrl-C and
// Ctrl-D arrive as bytes in raw mode and are reported as ErrInterrupted.
//
// Usage:
//
//	con := console.New(os.Stdin, os.Stdout)
//
//	key, err := con.ReadMove()
//	if err != nil {
//		return err
//	}
//	fmt.Fprintln(con)
package console
