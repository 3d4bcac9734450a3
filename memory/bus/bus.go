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

// Package bus defines the memory bus concept: the narrow interface through
// which the code handler reads and writes the memory of the emulated
// machine.
package bus

import "fmt"

// Width is the number of bytes involved in a memory access.
type Width int

// List of valid Width values.
const (
	Byte Width = 1
	Half Width = 2
	Word Width = 4
)

func (w Width) String() string {
	switch w {
	case Byte:
		return "8bit"
	case Half:
		return "16bit"
	case Word:
		return "32bit"
	}
	return fmt.Sprintf("width(%d)", int(w))
}

// Mask returns the value mask for the width.
func (w Width) Mask() uint32 {
	switch w {
	case Byte:
		return 0xff
	case Half:
		return 0xffff
	}
	return 0xffffffff
}

// OutOfRange is the pattern for errors returned by Bus implementations when
// an address cannot be accessed. Implementations should use this pattern so
// that callers can recognise the error with curated.Is().
const OutOfRange = "address out of range (%#08x)"

// Bus defines the operations for the memory system of the emulated machine.
// Values are big-endian, as is the case for the PowerPC.
type Bus interface {
	// Read returns the value at the address. The value will not be greater
	// than the width mask
	Read(address uint32, width Width) (uint32, error)

	// Write the value to the address. Bits of the value outside of the width
	// mask are ignored
	Write(address uint32, width Width, value uint32) error
}

// DebuggerBus defines the meta-operations for memory areas. Operations
// outside of the normal operation of the machine, ie. by the host
// application.
type DebuggerBus interface {
	Peek(address uint32) (uint8, error)
	Poke(address uint32, value uint8) error
}
