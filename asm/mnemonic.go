package asm

import "fmt"

// comp is the computation of a C-instruction.
type comp int

const (
	compZero comp = iota
	compOne
	compMinusOne
	compD
	compA
	compNotD
	compNotA
	compMinusD
	compMinusA
	compDPlusOne
	compAPlusOne
	compDMinusOne
	compAMinusOne
	compDPlusA
	compDMinusA
	compAMinusD
	compDAndA
	compDOrA
	compM
	compNotM
	compMinusM
	compMPlusOne
	compMMinusOne
	compDPlusM
	compDMinusM
	compMMinusD
	compDAndM
	compDOrM
)

var comps = map[string]comp{
	"0":   compZero,
	"1":   compOne,
	"-1":  compMinusOne,
	"D":   compD,
	"A":   compA,
	"!D":  compNotD,
	"!A":  compNotA,
	"-D":  compMinusD,
	"-A":  compMinusA,
	"D+1": compDPlusOne,
	"A+1": compAPlusOne,
	"D-1": compDMinusOne,
	"A-1": compAMinusOne,
	"D+A": compDPlusA,
	"D-A": compDMinusA,
	"A-D": compAMinusD,
	"D&A": compDAndA,
	"D|A": compDOrA,
	"M":   compM,
	"!M":  compNotM,
	"-M":  compMinusM,
	"M+1": compMPlusOne,
	"M-1": compMMinusOne,
	"D+M": compDPlusM,
	"D-M": compDMinusM,
	"M-D": compMMinusD,
	"D&M": compDAndM,
	"D|M": compDOrM,
}

// commutative spellings accepted in addition to the canonical ones.
var compAliases = map[string]comp{
	"1+D": compDPlusOne,
	"1+A": compAPlusOne,
	"1+M": compMPlusOne,
	"A+D": compDPlusA,
	"M+D": compDPlusM,
	"A&D": compDAndA,
	"M&D": compDAndM,
	"A|D": compDOrA,
	"M|D": compDOrM,
}

func parseComp(s string) (comp, error) {
	if c, ok := comps[s]; ok {
		return c, nil
	}
	if c, ok := compAliases[s]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("failed to parse comp field %q", s)
}

// bits returns the a-bit followed by the six c-bits.
func (c comp) bits() uint16 {
	switch c {
	case compZero:
		return 0b0101010
	case compOne:
		return 0b0111111
	case compMinusOne:
		return 0b0111010
	case compD:
		return 0b0001100
	case compA:
		return 0b0110000
	case compNotD:
		return 0b0001101
	case compNotA:
		return 0b0110001
	case compMinusD:
		return 0b0001111
	case compMinusA:
		return 0b0110011
	case compDPlusOne:
		return 0b0011111
	case compAPlusOne:
		return 0b0110111
	case compDMinusOne:
		return 0b0001110
	case compAMinusOne:
		return 0b0110010
	case compDPlusA:
		return 0b0000010
	case compDMinusA:
		return 0b0010011
	case compAMinusD:
		return 0b0000111
	case compDAndA:
		return 0b0000000
	case compDOrA:
		return 0b0010101
	case compM:
		return 0b1110000
	case compNotM:
		return 0b1110001
	case compMinusM:
		return 0b1110011
	case compMPlusOne:
		return 0b1110111
	case compMMinusOne:
		return 0b1110010
	case compDPlusM:
		return 0b1000010
	case compDMinusM:
		return 0b1010011
	case compMMinusD:
		return 0b1000111
	case compDAndM:
		return 0b1000000
	case compDOrM:
		return 0b1010101
	}
	panic(fmt.Sprintf("asm: unknown comp %d", int(c)))
}

// dest is the destination of a C-instruction.
type dest int

const (
	destNull dest = iota
	destM
	destD
	destMD
	destA
	destAM
	destAD
	destAMD
)

var dests = map[string]dest{
	"":    destNull,
	"M":   destM,
	"D":   destD,
	"MD":  destMD,
	"DM":  destMD,
	"A":   destA,
	"AM":  destAM,
	"MA":  destAM,
	"AD":  destAD,
	"DA":  destAD,
	"AMD": destAMD,
	"ADM": destAMD,
}

func parseDest(s string) (dest, error) {
	d, ok := dests[s]
	if !ok {
		return 0, fmt.Errorf("failed to parse dest field %q", s)
	}
	return d, nil
}

// bits returns the three d-bits, which are in A, D, M order.
func (d dest) bits() uint16 {
	switch d {
	case destNull:
		return 0b000
	case destM:
		return 0b001
	case destD:
		return 0b010
	case destMD:
		return 0b011
	case destA:
		return 0b100
	case destAM:
		return 0b101
	case destAD:
		return 0b110
	case destAMD:
		return 0b111
	}
	panic(fmt.Sprintf("asm: unknown dest %d", int(d)))
}

// jump is the jump condition of a C-instruction.
type jump int

const (
	jumpNull jump = iota
	jumpGT
	jumpEQ
	jumpGE
	jumpLT
	jumpNE
	jumpLE
	jumpMP
)

var jumps = map[string]jump{
	"":    jumpNull,
	"JGT": jumpGT,
	"JEQ": jumpEQ,
	"JGE": jumpGE,
	"JLT": jumpLT,
	"JNE": jumpNE,
	"JLE": jumpLE,
	"JMP": jumpMP,
}

func parseJump(s string) (jump, error) {
	j, ok := jumps[s]
	if !ok {
		return 0, fmt.Errorf("failed to parse jump field %q", s)
	}
	return j, nil
}

// bits returns the three j-bits, which are in <0, =0, >0 order.
func (j jump) bits() uint16 {
	switch j {
	case jumpNull:
		return 0b000
	case jumpGT:
		return 0b001
	case jumpEQ:
		return 0b010
	case jumpGE:
		return 0b011
	case jumpLT:
		return 0b100
	case jumpNE:
		return 0b101
	case jumpLE:
		return 0b110
	case jumpMP:
		return 0b111
	}
	panic(fmt.Sprintf("asm: unknown jump %d", int(j)))
}
