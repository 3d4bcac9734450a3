// This file is part of Geckocodes.
//
// Geckocodes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Geckocodes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Geckocodes.  If not, see <https://www.gnu.org/licenses/>.

package vm

import (
	"github.com/jetsetilly/geckocodes/codes"
	"github.com/jetsetilly/geckocodes/curated"
	"github.com/jetsetilly/geckocodes/memory/bus"
)

// Memory is the interface to the memory of the emulated machine.
type Memory interface {
	bus.Bus
}

// DefaultBase is the value of the base address and pointer registers at the
// start of every code.
const DefaultBase = 0x80000000

// DefaultBudget is the maximum number of instructions a code can step
// through in a single frame.
const DefaultBudget = 4096

// Interpreter executes a single code against memory. The state of the
// interpreter is reset by Start() and lasts only until the code reaches a
// final state.
type Interpreter struct {
	mem    Memory
	budget int

	code  codes.Code
	pc    int
	ba    uint32
	po    uint32
	stack []block

	state    State
	executed int
	faults   []error
}

// NewInterpreter is the preferred method of initialisation for the
// Interpreter type. A budget of zero or less means DefaultBudget.
func NewInterpreter(mem Memory, budget int) *Interpreter {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Interpreter{
		mem:    mem,
		budget: budget,
		stack:  make([]block, 0, 8),
	}
}

// Run the code to a final state and return the result.
func (in *Interpreter) Run(code codes.Code) Result {
	in.Start(code)
	for in.Step() {
	}
	return in.Result()
}

// Start prepares the interpreter for the code. Any state from a previous
// code is lost.
func (in *Interpreter) Start(code codes.Code) {
	in.code = code
	in.pc = 0
	in.ba = DefaultBase
	in.po = DefaultBase
	in.stack = in.stack[:0]
	in.state = Running
	in.executed = 0
	in.faults = nil
}

// State returns the current state of the interpreter.
func (in *Interpreter) State() State {
	return in.state
}

// Registers returns the current value of the base address and pointer
// registers.
func (in *Interpreter) Registers() (ba uint32, po uint32) {
	return in.ba, in.po
}

// Result returns the result of the code so far.
func (in *Interpreter) Result() Result {
	return Result{
		PC:       in.pc,
		State:    in.state,
		Executed: in.executed,
		Faults:   in.faults,
	}
}

func (in *Interpreter) fault(err error) {
	in.faults = append(in.faults, curated.Errorf(Fault, in.code.Name, in.pc, err))
}

func (in *Interpreter) skipping() bool {
	return len(in.stack) > 0 && !in.stack[len(in.stack)-1].executing
}

// the state to report while the interpreter is not in a final state.
func (in *Interpreter) updateState() {
	if len(in.stack) == 0 {
		in.state = Running
		return
	}
	top := in.stack[len(in.stack)-1]
	switch {
	case !top.executing:
		in.state = Skipping
	case top.kind == conditionalBlock:
		in.state = InConditionalTrue
	default:
		in.state = Running
	}
}

// Step executes one instruction. Returns false once the interpreter has
// reached a final state.
func (in *Interpreter) Step() bool {
	if in.state.Final() {
		return false
	}

	if in.pc >= len(in.code.Instructions) {
		in.state = Finished
		return false
	}

	if in.executed >= in.budget {
		in.fault(curated.Errorf(ExecutionBudgetExceeded, in.budget))
		in.state = Aborted
		return false
	}

	in.executed++

	op, err := Decode(in.code.Instructions[in.pc])
	if err != nil {
		// an unknown opcode is skipped even when the interpreter is
		// skipping. we can't know whether it should have been a block
		// instruction
		in.fault(err)
		in.pc++
		in.updateState()
		return true
	}

	next := in.pc + op.length()
	if next > len(in.code.Instructions) {
		in.fault(curated.Errorf(StructuralFault, "string data runs off the end of the code"))
		in.pc = len(in.code.Instructions)
		in.state = Finished
		return false
	}

	switch op.Opcode.Category() {
	case Write:
		if !in.skipping() {
			in.write(op)
		}
	case Register:
		if !in.skipping() {
			in.register(op)
		}
	case Conditional:
		if op.AutoEndIf && len(in.stack) > 0 && in.stack[len(in.stack)-1].kind == conditionalBlock {
			in.stack = in.stack[:len(in.stack)-1]
		}
		in.conditional(op)
	case Loop:
		if op.Opcode == Repeat {
			in.repeat(next, op.Address&0xffff)
		} else if in.repeatEnd() {
			in.updateState()
			return true
		}
	case Flow:
		switch op.Opcode {
		case FullTerminator:
			in.stack = in.stack[:0]
			in.reset(op.Value)
		case EndIf:
			in.endIf(int(op.Address&0xff), op.Address&elseFlag == elseFlag)
			if !in.skipping() {
				in.reset(op.Value)
			}
		case End:
			in.pc = next
			in.state = Terminated
			return false
		}
	}

	in.pc = next
	in.updateState()
	return true
}

// address for a memory operation.
func (in *Interpreter) address(op Operation) uint32 {
	if op.Pointer {
		return in.po + op.Offset
	}
	return in.ba + op.Offset
}

func (in *Interpreter) read(address uint32, width bus.Width) (uint32, bool) {
	v, err := in.mem.Read(address, width)
	if err != nil {
		in.fault(curated.Errorf(MemoryAccessError, err))
		return 0, false
	}
	return v, true
}

func (in *Interpreter) store(address uint32, width bus.Width, value uint32) bool {
	if err := in.mem.Write(address, width, value); err != nil {
		in.fault(curated.Errorf(MemoryAccessError, err))
		return false
	}
	return true
}

func (in *Interpreter) write(op Operation) {
	address := in.address(op)

	switch op.Opcode {
	case Write8:
		for i := uint32(0); i <= op.Value>>16; i++ {
			if !in.store(address+i, bus.Byte, op.Value) {
				return
			}
		}
	case Write16:
		for i := uint32(0); i <= op.Value>>16; i++ {
			if !in.store(address+i*2, bus.Half, op.Value) {
				return
			}
		}
	case Write32:
		in.store(address, bus.Word, op.Value)
	case WriteString:
		for i := uint32(0); i < op.Value; i++ {
			data := in.code.Instructions[in.pc+1+int(i/8)].Bytes()
			if !in.store(address+i, bus.Byte, uint32(data[i%8])) {
				return
			}
		}
	}
}

// target address for the register load and store operations. the address is
// taken from the value, optionally offset by the registers.
func (in *Interpreter) target(op Operation) uint32 {
	t := op.Value
	if op.Address&addBaseFlag == addBaseFlag {
		t += in.ba
	}
	if op.Address&addPointFlag == addPointFlag {
		t += in.po
	}
	return t
}

func (in *Interpreter) register(op Operation) {
	switch op.Opcode {
	case LoadBase:
		if v, ok := in.read(in.target(op), bus.Word); ok {
			in.ba = v
		}
	case SetBase:
		in.ba = in.target(op)
	case StoreBase:
		in.store(in.target(op), bus.Word, in.ba)
	case LoadPointer:
		if v, ok := in.read(in.target(op), bus.Word); ok {
			in.po = v
		}
	case SetPointer:
		in.po = in.target(op)
	case StorePointer:
		in.store(in.target(op), bus.Word, in.po)
	}
}

func (in *Interpreter) conditional(op Operation) {
	if in.skipping() {
		in.stack = append(in.stack, block{kind: conditionalBlock, inert: true})
		return
	}

	var result bool

	address := in.address(op)

	if op.Opcode <= IfLess32 {
		v, ok := in.read(address, bus.Word)
		if ok {
			result = compare(op.Opcode, v, op.Value)
		}
	} else {
		v, ok := in.read(address, bus.Half)
		if ok {
			mask := op.Value >> 16
			data := op.Value & 0xffff
			result = compare(op.Opcode-(IfEqual16-IfEqual32), v&^mask&0xffff, data)
		}
	}

	in.stack = append(in.stack, block{kind: conditionalBlock, executing: result})
}

func compare(op Opcode, a uint32, b uint32) bool {
	switch op {
	case IfEqual32:
		return a == b
	case IfNotEqual32:
		return a != b
	case IfGreater32:
		return a > b
	case IfLess32:
		return a < b
	}
	return false
}

// close n conditional blocks. if els is true the last block is not closed
// but has its executing state inverted.
func (in *Interpreter) endIf(n int, els bool) {
	if n < 1 {
		n = 1
	}
	if els {
		n--
	}

	for ; n > 0; n-- {
		if len(in.stack) == 0 || in.stack[len(in.stack)-1].kind != conditionalBlock {
			in.fault(curated.Errorf(StructuralFault, "endif with no open conditional"))
			return
		}
		in.stack = in.stack[:len(in.stack)-1]
	}

	if els {
		if len(in.stack) == 0 || in.stack[len(in.stack)-1].kind != conditionalBlock {
			in.fault(curated.Errorf(StructuralFault, "else with no open conditional"))
			return
		}
		top := &in.stack[len(in.stack)-1]
		if !top.inert {
			top.executing = !top.executing
		}
	}
}

func (in *Interpreter) repeat(start int, count uint32) {
	if in.skipping() {
		in.stack = append(in.stack, block{kind: repeatBlock, inert: true})
		return
	}
	in.stack = append(in.stack, block{kind: repeatBlock, executing: true, start: start, count: count})
}

// close conditionals opened inside the loop body and loop if the count
// allows. returns true if the program counter has been changed.
func (in *Interpreter) repeatEnd() bool {
	i := len(in.stack) - 1
	for i >= 0 && in.stack[i].kind != repeatBlock {
		i--
	}
	if i < 0 {
		in.fault(curated.Errorf(StructuralFault, "repeat end with no open repeat"))
		return false
	}
	in.stack = in.stack[:i+1]

	top := &in.stack[i]
	if top.inert || top.count == 0 {
		in.stack = in.stack[:i]
		return false
	}

	top.count--
	in.pc = top.start
	return true
}

// reset the registers with the halves of the value, if they are non-zero.
func (in *Interpreter) reset(value uint32) {
	if v := value & 0xffff0000; v != 0 {
		in.ba = v
	}
	if v := value << 16; v != 0 {
		in.po = v
	}
}
