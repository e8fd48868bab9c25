package vm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Reader reads VM commands from an input source. Comments and blank lines are skipped.
//
// Reading stops at the first malformed line. A Reader cannot be restarted.
type Reader struct {
	s    *bufio.Scanner
	line int
	cmd  Command
	err  error
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{s: bufio.NewScanner(r)}
}

// Next advances to the next command, which is then available through Command. It returns false
// at the end of the input or on error.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		line, _, _ := strings.Cut(r.s.Text(), "//")
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		cmd, err := parseCommand(line)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = r.line
			}
			r.err = err
			return false
		}
		r.cmd = cmd
		return true
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("failed to read VM code after line %d: %w", r.line, err)
	}
	return false
}

// Command returns the most recent command read by Next.
func (r *Reader) Command() Command {
	return r.cmd
}

// Line returns the 1-based line number of the most recent command.
func (r *Reader) Line() int {
	return r.line
}

// Err returns the first error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll reads all remaining commands.
func ReadAll(r io.Reader) ([]Command, error) {
	var commands []Command
	rd := NewReader(r)
	for rd.Next() {
		commands = append(commands, rd.Command())
	}
	return commands, rd.Err()
}
