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
	"fmt"

	"github.com/jetsetilly/geckocodes/codes"
	"github.com/jetsetilly/geckocodes/curated"
)

// Opcode is the operation selected by the type byte of an instruction, with
// the pointer flag removed.
type Opcode uint8

// List of valid Opcode values.
const (
	Write8         Opcode = 0x00
	Write16        Opcode = 0x02
	Write32        Opcode = 0x04
	WriteString    Opcode = 0x06
	IfEqual32      Opcode = 0x20
	IfNotEqual32   Opcode = 0x22
	IfGreater32    Opcode = 0x24
	IfLess32       Opcode = 0x26
	IfEqual16      Opcode = 0x28
	IfNotEqual16   Opcode = 0x2a
	IfGreater16    Opcode = 0x2c
	IfLess16       Opcode = 0x2e
	LoadBase       Opcode = 0x40
	SetBase        Opcode = 0x42
	StoreBase      Opcode = 0x44
	LoadPointer    Opcode = 0x48
	SetPointer     Opcode = 0x4a
	StorePointer   Opcode = 0x4c

	// 6000NNNN 00000000. the count is the low half of the address and not the
	// value. the block runs NNNN+1 times
	Repeat         Opcode = 0x60
	RepeatEnd      Opcode = 0x62
	FullTerminator Opcode = 0xe0
	EndIf          Opcode = 0xe2
	End            Opcode = 0xf0
)

var opcodeNames = map[Opcode]string{
	Write8:         "Write8",
	Write16:        "Write16",
	Write32:        "Write32",
	WriteString:    "WriteString",
	IfEqual32:      "IfEqual32",
	IfNotEqual32:   "IfNotEqual32",
	IfGreater32:    "IfGreater32",
	IfLess32:       "IfLess32",
	IfEqual16:      "IfEqual16",
	IfNotEqual16:   "IfNotEqual16",
	IfGreater16:    "IfGreater16",
	IfLess16:       "IfLess16",
	LoadBase:       "LoadBase",
	SetBase:        "SetBase",
	StoreBase:      "StoreBase",
	LoadPointer:    "LoadPointer",
	SetPointer:     "SetPointer",
	StorePointer:   "StorePointer",
	Repeat:         "Repeat",
	RepeatEnd:      "RepeatEnd",
	FullTerminator: "FullTerminator",
	EndIf:          "EndIf",
	End:            "End",
}

func (op Opcode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return fmt.Sprintf("unknown opcode (%#02x)", uint8(op))
}

// Category of an opcode describes its effect.
type Category int

// List of valid Category values.
const (
	Write Category = iota
	Conditional
	Register
	Loop
	Flow
)

func (c Category) String() string {
	switch c {
	case Write:
		return "Write"
	case Conditional:
		return "Conditional"
	case Register:
		return "Register"
	case Loop:
		return "Loop"
	case Flow:
		return "Flow"
	}
	return "unknown category"
}

// Category returns the category of the opcode. Only valid for opcodes in
// the enumeration.
func (op Opcode) Category() Category {
	switch {
	case op <= WriteString:
		return Write
	case op >= IfEqual32 && op <= IfLess16:
		return Conditional
	case op >= LoadBase && op <= StorePointer:
		return Register
	case op == Repeat || op == RepeatEnd:
		return Loop
	}
	return Flow
}

// Bits in the address field with special meaning.
const (
	pointerFlag  = 0x10000000
	offsetMask   = 0x01ffffff
	autoEndIf    = 0x00000001
	elseFlag     = 0x00100000
	addBaseFlag  = 0x00100000
	addPointFlag = 0x00010000
)

// Operation is an instruction decoded once, ready for execution.
type Operation struct {
	Opcode Opcode

	// address is relative to the pointer register rather than the base
	// address register
	Pointer bool

	// offset from the selected register. for conditionals the auto endif bit
	// has been removed
	Offset uint32

	// conditional is preceeded by an implicit endif
	AutoEndIf bool

	Address uint32
	Value   uint32
}

func (op Operation) String() string {
	if op.Pointer {
		return fmt.Sprintf("%s po+%#x %#08x", op.Opcode, op.Offset, op.Value)
	}
	return fmt.Sprintf("%s ba+%#x %#08x", op.Opcode, op.Offset, op.Value)
}

// Decode the instruction into an Operation. Fails with the UnknownOpcode
// pattern if the type byte does not select an opcode in the enumeration.
func Decode(ins codes.Instruction) (Operation, error) {
	op := Operation{
		Opcode:  Opcode(ins.Type() & 0xee),
		Pointer: ins.Address&pointerFlag == pointerFlag,
		Offset:  ins.Address & offsetMask,
		Address: ins.Address,
		Value:   ins.Value,
	}

	// the pointer flag has no meaning for the flow opcodes and is part of
	// the opcode
	if ins.Type()&0xe0 == 0xe0 {
		op.Opcode = Opcode(ins.Type() & 0xfe)
		op.Pointer = false
	}

	if _, ok := opcodeNames[op.Opcode]; !ok {
		return Operation{}, curated.Errorf(UnknownOpcode, ins.Type())
	}

	if op.Opcode.Category() == Conditional {
		op.AutoEndIf = op.Offset&autoEndIf == autoEndIf
		op.Offset &^= autoEndIf
	}

	return op, nil
}

// the number of instructions occupied by the operation, including the
// instruction for the operation itself.
func (op Operation) length() int {
	if op.Opcode == WriteString {
		return 1 + int((uint64(op.Value)+7)/8)
	}
	return 1
}
