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

// Error patterns for faults reported by the interpreter. Faults never stop
// the frame. They are collected in the Result for the code.
const (
	// the type byte does not select a known opcode
	UnknownOpcode = "unknown opcode (%#02x)"

	// the memory bus refused the access. the wrapped error will be the error
	// returned by the bus, usually with the bus.OutOfRange pattern
	MemoryAccessError = "memory access: %v"

	// the code did not finish within the instruction budget
	ExecutionBudgetExceeded = "execution budget exceeded (%d instructions)"

	// a block terminator with no open block, or a WriteString that runs off
	// the end of the code
	StructuralFault = "structural fault: %s"

	// all faults are wrapped with the line of the code that caused them
	Fault = "%s: line %d: %v"
)
