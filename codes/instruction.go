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

package codes

import (
	"encoding/binary"
	"fmt"
)

// Instruction is one address/value pair of a Gecko code. The high byte of
// Address selects the type of the instruction.
type Instruction struct {
	Address uint32
	Value   uint32
}

func (ins Instruction) String() string {
	return FormatLine(ins)
}

// Bytes returns the instruction in its eight byte big-endian form.
func (ins Instruction) Bytes() [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint32(b[:4], ins.Address)
	binary.BigEndian.PutUint32(b[4:], ins.Value)
	return b
}

// Type returns the type byte of the instruction.
func (ins Instruction) Type() uint8 {
	return uint8(ins.Address >> 24)
}

// GoString implements the fmt.GoStringer interface.
func (ins Instruction) GoString() string {
	return fmt.Sprintf("codes.Instruction{Address: %#08x, Value: %#08x}", ins.Address, ins.Value)
}
