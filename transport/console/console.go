package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"golang.org/x/term"
)

var ErrInterrupted = errors.New("input interrupted")

const (
	keyInterrupt = 0x03 // Ctrl-C
	keyEOF       = 0x04 // Ctrl-D
)

// Console reads one move key at a time and writes game text
type Console struct {
	out    io.Writer
	reader *bufio.Reader

	// Set when the input is a terminal
	file *os.File
	raw  bool
}

// New creates a console over the given streams. Terminal input is read in
// raw mode, anything else one non-space character at a time.
func New(in io.Reader, out io.Writer) *Console {
	c := &Console{
		out:    out,
		reader: bufio.NewReader(in),
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.file = f
		c.raw = true
	}
	return c
}

// Write implements io.Writer on the output stream
func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

// Interactive reports whether keys are read from a terminal
func (c *Console) Interactive() bool {
	return c.raw
}

// ReadMove reads a single key, echoes it and returns it upper-cased.
// Whitespace is skipped in line mode.
func (c *Console) ReadMove() (rune, error) {
	var (
		key rune
		err error
	)
	if c.raw {
		key, err = c.readRawKey()
	} else {
		key, err = c.readLineKey()
	}
	if err != nil {
		return 0, err
	}

	if _, err := fmt.Fprintf(c.out, "%c", key); err != nil {
		return 0, fmt.Errorf("failed to echo key: %w", err)
	}
	return unicode.ToUpper(key), nil
}

func (c *Console) readLineKey() (rune, error) {
	for {
		r, _, err := c.reader.ReadRune()
		if err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

func (c *Console) readRawKey() (rune, error) {
	fd := int(c.file.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	var buf [1]byte
	if _, err := io.ReadFull(c.file, buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read move: %w", err)
	}

	switch buf[0] {
	case keyInterrupt, keyEOF:
		return 0, ErrInterrupted
	}
	return rune(buf[0]), nil
}
