package vm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// EntryPoint is the function the bootstrap code calls.
const EntryPoint = "Sys.init"

// Scratch registers. R13 holds the frame base during return and the destination address during
// pop. R14 holds the return address during return.
const (
	scratchAddr   = "R13"
	scratchReturn = "R14"
)

// Generator receives VM commands in program order and emits code for them.
type Generator interface {
	// SetFileName announces the file the following commands come from.
	SetFileName(name string)
	WriteInit() error
	WriteArithmetic(op string) error
	WritePushPop(kind Kind, segment string, index int) error
	WriteLabel(label string) error
	WriteGoto(label string) error
	WriteIf(label string) error
	WriteFunction(name string, nVars int) error
	WriteCall(name string, nArgs int) error
	WriteReturn() error
}

// CodeWriter translates VM commands into hack assembly. Every command is preceded by a comment
// line holding the command.
//
// Labels generated for comparisons and return addresses are unique for the lifetime of the
// CodeWriter, across files.
type CodeWriter struct {
	w   *bufio.Writer
	err error

	static   string
	function string
	labels   int
	calls    int

	instructions int
}

var _ Generator = (*CodeWriter)(nil)

// NewCodeWriter returns a CodeWriter writing assembly to w. Call Flush once done.
func NewCodeWriter(w io.Writer) *CodeWriter {
	return &CodeWriter{w: bufio.NewWriter(w)}
}

// SetFileName sets the file name used to namespace the static segment.
func (cw *CodeWriter) SetFileName(name string) {
	cw.static = staticBase(name)
}

// Instructions returns the number of instructions written so far. Label declarations and
// comments are not counted.
func (cw *CodeWriter) Instructions() int {
	return cw.instructions
}

// Flush writes any buffered assembly to the underlying writer.
func (cw *CodeWriter) Flush() error {
	if cw.err != nil {
		return cw.err
	}
	if err := cw.w.Flush(); err != nil {
		cw.err = fmt.Errorf("failed to flush assembly: %w", err)
	}
	return cw.err
}

// WriteInit writes the bootstrap code: SP=256 followed by a call to Sys.init.
func (cw *CodeWriter) WriteInit() error {
	cw.comment("bootstrap")
	cw.emit("@"+strconv.Itoa(stackBase), "D=A", "@SP", "M=D")
	return cw.WriteCall(EntryPoint, 0)
}

// WriteArithmetic writes an arithmetic or logical command.
func (cw *CodeWriter) WriteArithmetic(op string) error {
	switch op {
	case "add":
		cw.comment(op)
		cw.binary("M=D+M")
	case "sub":
		cw.comment(op)
		cw.binary("M=M-D")
	case "and":
		cw.comment(op)
		cw.binary("M=D&M")
	case "or":
		cw.comment(op)
		cw.binary("M=D|M")
	case "neg":
		cw.comment(op)
		cw.unary("M=-M")
	case "not":
		cw.comment(op)
		cw.unary("M=!M")
	case "eq":
		cw.comment(op)
		cw.compare("JEQ")
	case "gt":
		cw.comment(op)
		cw.compare("JGT")
	case "lt":
		cw.comment(op)
		cw.compare("JLT")
	default:
		return &ParseError{Text: op, Msg: "unknown arithmetic command"}
	}
	return cw.err
}

// WritePushPop writes a push or pop command.
func (cw *CodeWriter) WritePushPop(kind Kind, segment string, index int) error {
	if kind != KindPush && kind != KindPop {
		return &ArgumentError{Kind: kind, Msg: "expected push or pop"}
	}
	loc, err := resolve(kind, segment, index, cw.static)
	if err != nil {
		return err
	}
	if kind == KindPop && loc.mode == immediate {
		return &ArgumentError{Kind: kind, Msg: "cannot pop into the constant segment"}
	}
	cw.comment(NewCommand(kind, segment, index).String())

	if kind == KindPush {
		switch loc.mode {
		case immediate:
			cw.emit("@"+strconv.Itoa(loc.index), "D=A")
		case indirect:
			cw.emit("@"+loc.symbol, "D=M", "@"+strconv.Itoa(loc.index), "A=D+A", "D=M")
		case direct:
			cw.emit("@"+loc.symbol, "D=M")
		}
		cw.pushD()
		return cw.err
	}

	switch loc.mode {
	case indirect:
		cw.emit("@"+loc.symbol, "D=M", "@"+strconv.Itoa(loc.index), "D=D+A", "@"+scratchAddr, "M=D")
		cw.popD()
		cw.emit("@"+scratchAddr, "A=M", "M=D")
	case direct:
		cw.popD()
		cw.emit("@"+loc.symbol, "M=D")
	}
	return cw.err
}

// WriteLabel writes a label declaration scoped to the current function.
func (cw *CodeWriter) WriteLabel(label string) error {
	cw.comment("label " + label)
	cw.declare(cw.qualify(label))
	return cw.err
}

// WriteGoto writes an unconditional jump to a label of the current function.
func (cw *CodeWriter) WriteGoto(label string) error {
	cw.comment("goto " + label)
	cw.emit("@"+cw.qualify(label), "0;JMP")
	return cw.err
}

// WriteIf pops the top of the stack and jumps to a label of the current function if the value
// is not zero.
func (cw *CodeWriter) WriteIf(label string) error {
	cw.comment("if-goto " + label)
	cw.popD()
	cw.emit("@"+cw.qualify(label), "D;JNE")
	return cw.err
}

// WriteFunction declares a function and initializes its nVars local variables to 0.
func (cw *CodeWriter) WriteFunction(name string, nVars int) error {
	if nVars < 0 {
		return &ArgumentError{Kind: KindFunction, Msg: "negative number of local variables"}
	}
	cw.comment(NewCommand(KindFunction, name, nVars).String())
	cw.function = name
	cw.declare(name)
	for i := 0; i < nVars; i++ {
		cw.emit("@SP", "A=M", "M=0")
		cw.incSP()
	}
	return cw.err
}

// WriteCall saves the caller's frame on the stack, repositions ARG and LCL and jumps to the
// callee.
func (cw *CodeWriter) WriteCall(name string, nArgs int) error {
	if nArgs < 0 {
		return &ArgumentError{Kind: KindCall, Msg: "negative number of arguments"}
	}
	cw.comment(NewCommand(KindCall, name, nArgs).String())
	ret := name + "$ret." + strconv.Itoa(cw.calls)
	cw.calls++

	cw.emit("@"+ret, "D=A")
	cw.pushD()
	for _, reg := range frameSaveOrder {
		cw.emit("@"+reg, "D=M")
		cw.pushD()
	}
	// ARG = SP - nArgs - 5
	cw.emit("@SP", "D=M", "@"+strconv.Itoa(nArgs+frameSize), "D=D-A", "@ARG", "M=D")
	// LCL = SP
	cw.emit("@SP", "D=M", "@LCL", "M=D")
	cw.emit("@"+name, "0;JMP")
	cw.declare(ret)
	return cw.err
}

// WriteReturn copies the return value to the caller's stack top, restores the caller's frame
// and jumps to the return address.
func (cw *CodeWriter) WriteReturn() error {
	if cw.function == "" {
		return &StateError{Op: "return", Msg: "no enclosing function"}
	}
	cw.comment("return")
	// frame = LCL
	cw.emit("@LCL", "D=M", "@"+scratchAddr, "M=D")
	// ret = *(frame-5)
	cw.emit("@"+strconv.Itoa(frameReturnAddress), "A=D-A", "D=M", "@"+scratchReturn, "M=D")
	// *ARG = pop()
	cw.popD()
	cw.emit("@ARG", "A=M", "M=D")
	// SP = ARG+1
	cw.emit("@ARG", "D=M+1", "@SP", "M=D")
	for _, slot := range frameRestoreOrder {
		cw.emit("@"+scratchAddr, "D=M", "@"+strconv.Itoa(slot.offset), "A=D-A", "D=M", "@"+slot.register, "M=D")
	}
	cw.emit("@"+scratchReturn, "A=M", "0;JMP")
	return cw.err
}

// qualify scopes a label to the current function. Labels outside of any function stay as is.
func (cw *CodeWriter) qualify(label string) string {
	if cw.function == "" {
		return label
	}
	return cw.function + "$" + label
}

func (cw *CodeWriter) unary(op string) {
	cw.decSP()
	cw.emit("A=M", op)
	cw.incSP()
}

func (cw *CodeWriter) binary(op string) {
	cw.popD()
	cw.decSP()
	cw.emit("A=M", op)
	cw.incSP()
}

// compare leaves -1 (true) or 0 (false) on the stack depending on whether x-y satisfies jump.
func (cw *CodeWriter) compare(jump string) {
	n := strconv.Itoa(cw.labels)
	cw.labels++
	isTrue, end := "COMPARE_TRUE_"+n, "COMPARE_END_"+n

	cw.popD()
	cw.decSP()
	cw.emit("A=M", "D=M-D", "@"+isTrue, "D;"+jump)
	cw.emit("@SP", "A=M", "M=0", "@"+end, "0;JMP")
	cw.declare(isTrue)
	cw.emit("@SP", "A=M", "M=-1")
	cw.declare(end)
	cw.incSP()
}

// pushD pushes the D register onto the stack.
func (cw *CodeWriter) pushD() {
	cw.emit("@SP", "A=M", "M=D")
	cw.incSP()
}

// popD pops the top of the stack into the D register.
func (cw *CodeWriter) popD() {
	cw.decSP()
	cw.emit("A=M", "D=M")
}

func (cw *CodeWriter) incSP() {
	cw.emit("@SP", "M=M+1")
}

func (cw *CodeWriter) decSP() {
	cw.emit("@SP", "M=M-1")
}

func (cw *CodeWriter) comment(text string) {
	cw.write("// " + text)
}

func (cw *CodeWriter) declare(label string) {
	cw.write("(" + label + ")")
}

func (cw *CodeWriter) emit(instructions ...string) {
	for _, ins := range instructions {
		cw.write(ins)
		cw.instructions++
	}
}

func (cw *CodeWriter) write(line string) {
	if cw.err != nil {
		return
	}
	if _, err := cw.w.WriteString(line + "\n"); err != nil {
		cw.err = fmt.Errorf("failed to write assembly: %w", err)
	}
}
