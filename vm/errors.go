package vm

import "fmt"

// ParseError reports a malformed command line: a missing or non-numeric argument, or an
// operator or segment name the translator does not know.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("failed to parse %q: %s", e.Text, e.Msg)
	}
	return fmt.Sprintf("failed to parse line %d %q: %s", e.Line, e.Text, e.Msg)
}

// ArgumentError reports an argument that the command kind does not carry or that is out of
// range for its segment.
type ArgumentError struct {
	Kind Kind
	Msg  string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument for %s command: %s", e.Kind, e.Msg)
}

// StateError reports a control transfer without an enclosing context, such as return before any
// function was declared. A return executed at runtime without a caller frame is not detected.
type StateError struct {
	Op  string
	Msg string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("invalid state for %s: %s", e.Op, e.Msg)
}
