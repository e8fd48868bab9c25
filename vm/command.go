// Package vm translates the stack based VM language of https://www.nand2tetris.org/project07
// and https://www.nand2tetris.org/project08 into hack assembly.
package vm

import (
	"strconv"
	"strings"
)

// Kind classifies a VM command.
type Kind int

const (
	KindUnknown Kind = iota
	KindArithmetic
	KindPush
	KindPop
	KindLabel
	KindGoto
	KindIf
	KindFunction
	KindCall
	KindReturn
)

var kindNames = [...]string{
	KindUnknown:    "unknown",
	KindArithmetic: "arithmetic",
	KindPush:       "push",
	KindPop:        "pop",
	KindLabel:      "label",
	KindGoto:       "goto",
	KindIf:         "if-goto",
	KindFunction:   "function",
	KindCall:       "call",
	KindReturn:     "return",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// keywords maps the first token of a command to its kind. Anything else is arithmetic.
var keywords = map[string]Kind{
	"push":     KindPush,
	"pop":      KindPop,
	"label":    KindLabel,
	"goto":     KindGoto,
	"if-goto":  KindIf,
	"function": KindFunction,
	"call":     KindCall,
	"return":   KindReturn,
}

// hasArg1 reports whether commands of kind k carry a primary argument.
func (k Kind) hasArg1() bool {
	return k != KindUnknown && k != KindReturn
}

// hasArg2 reports whether commands of kind k carry a numeric argument.
func (k Kind) hasArg2() bool {
	return k == KindPush || k == KindPop || k == KindFunction || k == KindCall
}

// Command is one classified line of VM code.
type Command struct {
	Kind Kind
	arg1 string
	arg2 int
}

// NewCommand creates a command of given kind. arg1 and arg2 are ignored for kinds that do not
// carry them.
func NewCommand(kind Kind, arg1 string, arg2 int) Command {
	c := Command{Kind: kind}
	if kind.hasArg1() {
		c.arg1 = arg1
	}
	if kind.hasArg2() {
		c.arg2 = arg2
	}
	return c
}

// Arg1 returns the primary argument: the operator for arithmetic commands, the segment for
// push and pop and the symbol for all others. Return commands have none.
func (c Command) Arg1() (string, error) {
	if !c.Kind.hasArg1() {
		return "", &ArgumentError{Kind: c.Kind, Msg: "command has no primary argument"}
	}
	return c.arg1, nil
}

// Arg2 returns the numeric argument of push, pop, function and call commands.
func (c Command) Arg2() (int, error) {
	if !c.Kind.hasArg2() {
		return 0, &ArgumentError{Kind: c.Kind, Msg: "command has no numeric argument"}
	}
	return c.arg2, nil
}

// String renders the command the way it is written in VM code.
func (c Command) String() string {
	switch {
	case c.Kind == KindArithmetic:
		return c.arg1
	case c.Kind == KindReturn || c.Kind == KindUnknown:
		return c.Kind.String()
	case c.Kind.hasArg2():
		return c.Kind.String() + " " + c.arg1 + " " + strconv.Itoa(c.arg2)
	default:
		return c.Kind.String() + " " + c.arg1
	}
}

// parseCommand classifies a comment and whitespace stripped line.
func parseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	kind, ok := keywords[fields[0]]
	if !ok {
		return Command{Kind: KindArithmetic, arg1: line}, nil
	}

	want := 1
	if kind.hasArg1() {
		want++
	}
	if kind.hasArg2() {
		want++
	}
	if len(fields) < want {
		return Command{}, &ParseError{Text: line, Msg: "missing argument"}
	}
	if len(fields) > want {
		return Command{}, &ParseError{Text: line, Msg: "unexpected trailing " + strconv.Quote(fields[want])}
	}

	c := Command{Kind: kind}
	if kind.hasArg1() {
		c.arg1 = fields[1]
	}
	if kind.hasArg2() {
		n, err := strconv.ParseUint(fields[2], 10, 15)
		if err != nil {
			return Command{}, &ParseError{Text: line, Msg: "expected non-negative 15-bit number, got " + strconv.Quote(fields[2])}
		}
		c.arg2 = int(n)
	}
	return c, nil
}
