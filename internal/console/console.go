// internal/console/console.go
//
// Line input for the interactive loops.
// Responsibilities:
//   - LineReader: the capability the loops depend on (one prompt, one line).
//   - Scanner: plain bufio backend for pipes, files and tests.
//   - Readline: line editing and history when stdin is a terminal.
//
// End of input is always reported as io.EOF.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// ErrInterrupted is returned when the operator presses Ctrl-C at a prompt.
var ErrInterrupted = errors.New("interrupted")

// LineReader reads one line of operator input after showing prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// Scanner reads lines from any io.Reader.
type Scanner struct {
	sc   *bufio.Scanner
	in   io.Reader
	out  io.Writer
	once sync.Once
}

// NewScanner returns a Scanner reading in and writing prompts to out.
// A nil out discards prompts.
func NewScanner(in io.Reader, out io.Writer) *Scanner {
	if out == nil {
		out = io.Discard
	}
	return &Scanner{sc: bufio.NewScanner(in), in: in, out: out}
}

// ReadLine prints prompt and returns the next line without its line ending.
func (s *Scanner) ReadLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(s.sc.Text(), "\r"), nil
}

// Close closes the underlying reader when it is an io.Closer, which releases
// a pending ReadLine on most readers. Later calls do nothing.
func (s *Scanner) Close() error {
	var err error
	s.once.Do(func() {
		if c, ok := s.in.(io.Closer); ok {
			err = c.Close()
		}
	})
	return err
}

// Readline wraps a chzyer/readline instance.
type Readline struct {
	rl *readline.Instance
}

// NewReadline starts a line editor on the process terminal. history may be
// empty to disable the history file.
func NewReadline(out io.Writer, history string) (*Readline, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     history,
		Stdout:          out,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("start line editor: %w", err)
	}
	return &Readline{rl: rl}, nil
}

// ReadLine shows prompt and reads an edited line.
func (r *Readline) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	return line, err
}

// Close restores the terminal.
func (r *Readline) Close() error { return r.rl.Close() }

// Open picks a backend for in: Readline when in is the process stdin and a
// terminal, Scanner otherwise.
func Open(in io.Reader, out io.Writer, history string) (LineReader, error) {
	if f, ok := in.(*os.File); ok && f == os.Stdin && IsTerminal(f) {
		return NewReadline(out, history)
	}
	return NewScanner(in, out), nil
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
