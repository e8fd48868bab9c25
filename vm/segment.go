package vm

import (
	"path/filepath"
	"strconv"
	"strings"
)

const (
	tempBase  = 5
	tempSize  = 8
	maxConst  = 1<<15 - 1
	stackBase = 256
)

// addressing is the strategy used to reach a segment entry.
type addressing int

const (
	// immediate loads the index itself.
	immediate addressing = iota
	// indirect adds the index to a base register and dereferences the result.
	indirect
	// direct names the memory cell through a symbol.
	direct
)

// baseRegisters maps segments addressed through a base register to that register.
var baseRegisters = map[string]string{
	"local":    "LCL",
	"argument": "ARG",
	"this":     "THIS",
	"that":     "THAT",
}

// location is a resolved segment entry.
type location struct {
	mode   addressing
	symbol string
	index  int
}

// resolve maps a segment and index to the way the entry is addressed. staticBase namespaces
// the static segment.
func resolve(kind Kind, segment string, index int, staticBase string) (location, error) {
	if index < 0 {
		return location{}, &ArgumentError{Kind: kind, Msg: "negative index " + strconv.Itoa(index)}
	}
	if reg, ok := baseRegisters[segment]; ok {
		return location{mode: indirect, symbol: reg, index: index}, nil
	}

	switch segment {
	case "constant":
		if index > maxConst {
			return location{}, &ArgumentError{Kind: kind, Msg: "constant " + strconv.Itoa(index) + " exceeds 15 bits"}
		}
		return location{mode: immediate, index: index}, nil
	case "pointer":
		switch index {
		case 0:
			return location{mode: direct, symbol: "THIS"}, nil
		case 1:
			return location{mode: direct, symbol: "THAT"}, nil
		}
		return location{}, &ArgumentError{Kind: kind, Msg: "pointer index must be 0 or 1, got " + strconv.Itoa(index)}
	case "temp":
		if index >= tempSize {
			return location{}, &ArgumentError{Kind: kind, Msg: "temp index must be below " + strconv.Itoa(tempSize) + ", got " + strconv.Itoa(index)}
		}
		return location{mode: direct, symbol: "R" + strconv.Itoa(tempBase+index)}, nil
	case "static":
		return location{mode: direct, symbol: staticBase + strconv.Itoa(index)}, nil
	}
	return location{}, &ParseError{Text: segment, Msg: "unknown segment"}
}

// staticBase derives the static segment namespace from a file name: its base name without
// extension.
func staticBase(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
