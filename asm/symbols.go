package asm

import (
	"fmt"
	"strconv"
)

// VariableBase is the address of the first user-defined variable.
const VariableBase = 16

var predefinedSymbols = map[string]uint16{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"SCREEN": 16384,
	"KBD":    24576,
}

func init() {
	for i := 0; i < 16; i++ {
		predefinedSymbols["R"+strconv.Itoa(i)] = uint16(i)
	}
}

// SymbolTable maps symbols to addresses. It starts out with the predefined symbols. Labels map
// to instruction addresses and variables to consecutive data addresses starting at
// VariableBase.
type SymbolTable struct {
	table        map[string]uint16
	nextVariable uint16
}

// NewSymbolTable returns a SymbolTable holding the predefined symbols.
func NewSymbolTable() *SymbolTable {
	t := &SymbolTable{
		table:        make(map[string]uint16, len(predefinedSymbols)),
		nextVariable: VariableBase,
	}
	for k, v := range predefinedSymbols {
		t.table[k] = v
	}
	return t
}

// AddLabel declares a label at given instruction address.
func (t *SymbolTable) AddLabel(symbol string, address uint16) error {
	if _, ok := predefinedSymbols[symbol]; ok {
		return fmt.Errorf("%q is a pre-defined symbol which cannot be used as a label", symbol)
	}
	if _, ok := t.table[symbol]; ok {
		return fmt.Errorf("label %q re-declared", symbol)
	}
	t.table[symbol] = address
	return nil
}

// Address returns the address of symbol.
func (t *SymbolTable) Address(symbol string) (uint16, bool) {
	v, ok := t.table[symbol]
	return v, ok
}

// Resolve returns the address of symbol. Unknown symbols are variables and get the next free
// data address.
func (t *SymbolTable) Resolve(symbol string) (uint16, error) {
	if v, ok := t.table[symbol]; ok {
		return v, nil
	}
	if t.nextVariable >= predefinedSymbols["SCREEN"] {
		return 0, fmt.Errorf("out of variable memory for %q", symbol)
	}
	v := t.nextVariable
	t.table[symbol] = v
	t.nextVariable++
	return v, nil
}
