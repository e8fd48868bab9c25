// Package asm implements an assembler for the hack assembly language as documented in
// https://www.nand2tetris.org/project04.
package asm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type instruction interface {
	Instruction()
}

// A-instruction represents a constant or symbol which can be pre- or user-defined.
type aInstruction struct {
	Literal  string
	IsSymbol bool
	Value    uint16
}

func (a aInstruction) Instruction() {}

// C-instruction represents a computation in the form of dest=comp;jump.
type cInstruction struct {
	Dest dest
	Comp comp
	Jump jump
}

func (c cInstruction) Instruction() {}

// label represents a label declaration. It is a pseudo-instruction that will not be translated into
// machine code. It is used as a reference to instruction memory location holding the next command
// in the program.
type label struct {
	Literal string
}

func (l label) Instruction() {}

// Assemble translates hack assembly into machine code for the hack CPU. The machine code is written
// as text, one 16 character line of 0 and 1 per instruction.
func Assemble(r io.Reader, w io.Writer) error {
	words, err := AssembleWords(r)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for i, word := range words {
		if _, err := fmt.Fprintf(bw, "%016b\n", word); err != nil {
			return fmt.Errorf("failed to write instruction %d: %v", i, err)
		}
	}
	return bw.Flush()
}

// AssembleWords translates hack assembly into machine code for the hack CPU.
func AssembleWords(r io.Reader) ([]uint16, error) {
	instructions, err := parse(r)
	if err != nil {
		return nil, err
	}

	return code(instructions)
}

// parse parses hack assembly into instructions including the pseudo-instruction label. Symbolic
// declarations in labels or symbolic references in A-instructions will not have been resolved at
// this stage. Mnemonics are validated at this stage.
func parse(r io.Reader) ([]instruction, error) {
	var instructions []instruction
	var lineNumber int
	s := bufio.NewScanner(r)
	for s.Scan() {
		lineNumber++
		line, _, _ := strings.Cut(s.Text(), "//")
		command := strings.TrimSpace(line)

		if len(command) == 0 {
			continue
		}
		var ins instruction
		var err error
		switch command[0] {
		case '@':
			ins, err = parseAInstruction(command)
		case '(':
			ins, err = parseLabel(command)
		default:
			ins, err = parseCInstruction(command)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNumber, err)
		}
		instructions = append(instructions, ins)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assembly after line %d: %v", lineNumber, err)
	}

	return instructions, nil
}

func parseAInstruction(in string) (*aInstruction, error) {
	if len(in) < 2 {
		return nil, errors.New("failed to parse A-instruction: @ needs to be followed by a constant or symbol")
	}
	in = in[1:] // drop the @

	// symbols cannot start with a digit; as a starting digit indicates a constant
	if unicode.IsDigit(rune(in[0])) {
		v, err := strconv.ParseUint(in, 10, 15)
		if err != nil {
			return nil, fmt.Errorf("failed to parse A-instruction: expected unsigned 15-bit value: %v", err)
		}
		return &aInstruction{Literal: in, Value: uint16(v)}, nil
	}

	ok := containsOnly(in, validSymbolChars)
	if !ok {
		return nil, errIllegalSymbol
	}

	return &aInstruction{Literal: in, IsSymbol: true}, nil
}

var errIllegalSymbol = errors.New(`literal contains illegal character. A user-deﬁned symbol can be any sequence of letters, digits, underscore ( _ ),
dot (.), dollar sign ($), and colon (:) that does not begin with a digit`)

// validSymbolChars ensures that user-deﬁned symbol can only be any sequence of letters, digits,
// underscore ( _ ), dot (.), dollar sign ($), and colon (:).
func validSymbolChars(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '$' || r == ':'
}

// containsOnly returns true if every rune in s satisfies given f.
func containsOnly(s string, f func(rune) bool) bool {
	for _, r := range s {
		ok := f(r)
		if !ok {
			return false
		}
	}
	return true
}

func parseCInstruction(in string) (*cInstruction, error) {
	destField, rest, foundEquals := strings.Cut(in, "=")
	if !foundEquals {
		// this is to accommodate for Cut behavior
		destField = ""
		rest = in
	}
	compField, jumpField, foundSemicolon := strings.Cut(rest, ";")
	if !foundEquals && !foundSemicolon {
		return nil, fmt.Errorf("failed to parse C-instruction %q: dest or jump can be omitted but not both", in)
	}

	d, err := parseDest(strings.TrimSpace(destField))
	if err != nil {
		return nil, err
	}
	c, err := parseComp(strings.TrimSpace(compField))
	if err != nil {
		return nil, err
	}
	j, err := parseJump(strings.TrimSpace(jumpField))
	if err != nil {
		return nil, err
	}
	if foundEquals && d == destNull {
		return nil, fmt.Errorf("failed to parse C-instruction %q: missing dest before =", in)
	}
	if foundSemicolon && j == jumpNull {
		return nil, fmt.Errorf("failed to parse C-instruction %q: missing jump after ;", in)
	}

	return &cInstruction{Dest: d, Comp: c, Jump: j}, nil
}

func parseLabel(in string) (*label, error) {
	if len(in) < 3 {
		return nil, errors.New("failed to parse label: label definitions need to define symbols enclosed in ().")
	}
	if in[0] != '(' {
		return nil, errors.New("failed to parse label: label definitions need to be enclosed in (). Missing leading (")
	}
	if in[len(in)-1] != ')' {
		return nil, errors.New("failed to parse label: label definitions need to be enclosed in (). Missing closing )")
	}
	in = in[1 : len(in)-1]
	if unicode.IsDigit(rune(in[0])) || !containsOnly(in, validSymbolChars) {
		return nil, fmt.Errorf("failed to parse label: %v", errIllegalSymbol)
	}

	return &label{Literal: in}, nil
}

// code translates instructions into machine code. Labels do not result in an instruction in machine
// code. Symbolic references in A-instructions are resolved into memory addresses at this stage.
func code(instructions []instruction) ([]uint16, error) {
	symbols := NewSymbolTable()
	var pc uint16
	for _, instruction := range instructions {
		switch v := instruction.(type) {
		case *label:
			if err := symbols.AddLabel(v.Literal, pc); err != nil {
				return nil, fmt.Errorf("failed to encode label %q: %v", v.Literal, err)
			}
		default:
			pc++
		}
	}

	words := make([]uint16, 0, pc)
	for _, instruction := range instructions {
		switch ins := instruction.(type) {
		case *aInstruction:
			value := ins.Value
			if ins.IsSymbol {
				v, err := symbols.Resolve(ins.Literal)
				if err != nil {
					return nil, fmt.Errorf("failed to encode a-instruction %q: %v", ins.Literal, err)
				}
				value = v
			}
			words = append(words, codeAInstruction(value))
		case *cInstruction:
			words = append(words, codeCInstruction(ins))
		}
	}

	return words, nil
}

func codeAInstruction(value uint16) uint16 {
	return value & 0x7FFF
}

func codeCInstruction(instruction *cInstruction) uint16 {
	return 0b111<<13 | instruction.Comp.bits()<<6 | instruction.Dest.bits()<<3 | instruction.Jump.bits()
}
