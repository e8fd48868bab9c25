package vm

// Offsets of the saved caller frame below the callee's LCL.
const (
	frameSavedLocal    = 1
	frameSavedArgument = 2
	frameSavedThis     = 3
	frameSavedThat     = 4
	frameReturnAddress = 5
	frameSize          = 5
)

// frameSlot is a saved base register and its offset below LCL.
type frameSlot struct {
	register string
	offset   int
}

// frameSaveOrder is the order a call pushes the caller's base registers after the return
// address.
var frameSaveOrder = []string{"LCL", "ARG", "THIS", "THAT"}

// frameRestoreOrder is the order return restores the caller's base registers. ARG is still
// needed to place the return value, so THAT and THIS go first.
var frameRestoreOrder = []frameSlot{
	{register: "THAT", offset: frameSavedThat},
	{register: "THIS", offset: frameSavedThis},
	{register: "ARG", offset: frameSavedArgument},
	{register: "LCL", offset: frameSavedLocal},
}
