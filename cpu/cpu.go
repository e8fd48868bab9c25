// Package cpu emulates the hack computer of https://www.nand2tetris.org/project05 executing
// machine code produced by the assembler.
package cpu

import (
	"errors"
	"fmt"
)

// RAMSize is the number of addressable data words.
const RAMSize = 1 << 15

// Well known RAM addresses.
const (
	SP   = 0
	LCL  = 1
	ARG  = 2
	THIS = 3
	THAT = 4
)

// ErrStepLimit is returned by Run if the program did not halt within the given number of steps.
var ErrStepLimit = errors.New("step limit reached")

// Computer is a hack CPU with its instruction and data memory.
type Computer struct {
	rom []uint16
	ram []uint16

	A  uint16
	D  uint16
	PC uint16

	steps int
}

// New returns a Computer with rom loaded, all registers and RAM set to zero.
func New(rom []uint16) *Computer {
	return &Computer{
		rom: rom,
		ram: make([]uint16, RAMSize),
	}
}

// Peek returns the RAM word at addr.
func (c *Computer) Peek(addr uint16) uint16 {
	return c.ram[addr&(RAMSize-1)]
}

// Poke sets the RAM word at addr.
func (c *Computer) Poke(addr, value uint16) {
	c.ram[addr&(RAMSize-1)] = value
}

// Steps returns the number of instructions executed so far.
func (c *Computer) Steps() int {
	return c.steps
}

// Halted reports whether the program ran off the end of ROM or sits in the conventional halt
// loop: an unconditional jump to the A-instruction right before it that loads its own address.
func (c *Computer) Halted() bool {
	if int(c.PC) >= len(c.rom) {
		return true
	}
	if int(c.PC)+1 >= len(c.rom) {
		return false
	}
	return c.rom[c.PC] == c.PC && c.rom[c.PC+1] == jumpAlways
}

// jumpAlways encodes 0;JMP.
const jumpAlways = 0b1110101010000111

// Step executes one instruction.
func (c *Computer) Step() error {
	if int(c.PC) >= len(c.rom) {
		return fmt.Errorf("program counter %d outside of ROM of %d words", c.PC, len(c.rom))
	}
	ins := c.rom[c.PC]
	c.steps++
	if ins&0x8000 == 0 {
		c.A = ins
		c.PC++
		return nil
	}

	y := c.A
	if ins&0x1000 != 0 {
		y = c.Peek(c.A)
	}
	out := alu(c.D, y, ins>>6)

	addr := c.A
	if ins&0b001000 != 0 {
		c.Poke(addr, out)
	}
	if ins&0b100000 != 0 {
		c.A = out
	}
	if ins&0b010000 != 0 {
		c.D = out
	}

	if jumps(ins, int16(out)) {
		c.PC = addr
	} else {
		c.PC++
	}
	return nil
}

// Run executes instructions until the program halts or maxSteps instructions have been executed.
func (c *Computer) Run(maxSteps int) error {
	for i := 0; i < maxSteps; i++ {
		if c.Halted() {
			return nil
		}
		if err := c.Step(); err != nil {
			return err
		}
	}
	if c.Halted() {
		return nil
	}
	return ErrStepLimit
}

// alu computes the hack ALU output. ctrl holds the bits zx nx zy ny f no from most to least
// significant.
func alu(x, y, ctrl uint16) uint16 {
	if ctrl&0b100000 != 0 {
		x = 0
	}
	if ctrl&0b010000 != 0 {
		x = ^x
	}
	if ctrl&0b001000 != 0 {
		y = 0
	}
	if ctrl&0b000100 != 0 {
		y = ^y
	}
	var out uint16
	if ctrl&0b000010 != 0 {
		out = x + y
	} else {
		out = x & y
	}
	if ctrl&0b000001 != 0 {
		out = ^out
	}
	return out
}

func jumps(ins uint16, out int16) bool {
	switch {
	case out < 0:
		return ins&0b100 != 0
	case out == 0:
		return ins&0b010 != 0
	default:
		return ins&0b001 != 0
	}
}
