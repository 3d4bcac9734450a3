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

package memory

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/geckocodes/curated"
	"github.com/jetsetilly/geckocodes/memory/bus"
)

// Origin and size of MEM1 on the GameCube and Wii.
const (
	OriginMEM1 = 0x80000000
	SizeMEM1   = 0x01800000
)

// RAM is a contiguous area of big-endian memory. It implements the bus.Bus
// and bus.DebuggerBus interfaces.
type RAM struct {
	origin uint32
	memtop uint32
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(origin uint32, size uint32) (*RAM, error) {
	if size == 0 {
		return nil, curated.Errorf("ram: size cannot be zero")
	}
	if uint64(origin)+uint64(size) > 0x100000000 {
		return nil, curated.Errorf("ram: area exceeds 32bit address space (origin %#08x size %#x)", origin, size)
	}

	return &RAM{
		origin: origin,
		memtop: origin + (size - 1),
		memory: make([]uint8, size),
	}, nil
}

// Origin returns the first address of the RAM area.
func (ram *RAM) Origin() uint32 {
	return ram.origin
}

// Memtop returns the last address of the RAM area.
func (ram *RAM) Memtop() uint32 {
	return ram.memtop
}

// String returns a hex dump of the first 128 bytes of the RAM area.
func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString("           -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("         ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 8 && y*16 < len(ram.memory); y++ {
		s.WriteString(fmt.Sprintf("%08x |", ram.origin+uint32(y*16)))
		for x := 0; x < 16 && y*16+x < len(ram.memory); x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[y*16+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// the index into the memory array for the access. returns false if any part
// of the access falls outside of the RAM area.
func (ram *RAM) index(address uint32, width bus.Width) (uint32, bool) {
	if address < ram.origin || address > ram.memtop {
		return 0, false
	}
	idx := address - ram.origin
	if uint64(idx)+uint64(width) > uint64(len(ram.memory)) {
		return 0, false
	}
	return idx, true
}

// Read implements the bus.Bus interface.
func (ram *RAM) Read(address uint32, width bus.Width) (uint32, error) {
	idx, ok := ram.index(address, width)
	if !ok {
		return 0, curated.Errorf(bus.OutOfRange, address)
	}

	switch width {
	case bus.Byte:
		return uint32(ram.memory[idx]), nil
	case bus.Half:
		return uint32(binary.BigEndian.Uint16(ram.memory[idx:])), nil
	case bus.Word:
		return binary.BigEndian.Uint32(ram.memory[idx:]), nil
	}

	return 0, curated.Errorf("ram: unsupported access width (%v)", width)
}

// Write implements the bus.Bus interface.
func (ram *RAM) Write(address uint32, width bus.Width, value uint32) error {
	idx, ok := ram.index(address, width)
	if !ok {
		return curated.Errorf(bus.OutOfRange, address)
	}

	switch width {
	case bus.Byte:
		ram.memory[idx] = uint8(value)
	case bus.Half:
		binary.BigEndian.PutUint16(ram.memory[idx:], uint16(value))
	case bus.Word:
		binary.BigEndian.PutUint32(ram.memory[idx:], value)
	default:
		return curated.Errorf("ram: unsupported access width (%v)", width)
	}

	return nil
}

// Peek implements the bus.DebuggerBus interface.
func (ram *RAM) Peek(address uint32) (uint8, error) {
	v, err := ram.Read(address, bus.Byte)
	return uint8(v), err
}

// Poke implements the bus.DebuggerBus interface.
func (ram *RAM) Poke(address uint32, value uint8) error {
	return ram.Write(address, bus.Byte, uint32(value))
}

// Load the RAM area from the reader. The reader can provide less data than
// the size of the RAM area. Any remaining memory is left unchanged.
func (ram *RAM) Load(r io.Reader) error {
	_, err := io.ReadFull(r, ram.memory)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return curated.Errorf("ram: %v", err)
	}
	return nil
}

// Save the entire RAM area to the writer.
func (ram *RAM) Save(w io.Writer) error {
	if _, err := w.Write(ram.memory); err != nil {
		return curated.Errorf("ram: %v", err)
	}
	return nil
}
