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

// Package vm is the code handler. It executes the instructions of enabled
// codes against the memory of the emulated machine, once per frame.
//
// Each instruction is decoded into an Operation with a fixed Opcode before
// it is executed. Conditionals and repeats open blocks on an explicit block
// stack. While the instruction at the top of the stack is not executing, the
// interpreter is Skipping: write and register instructions are ignored but
// nested blocks are still pushed (as inert blocks) so that the correct
// terminator closes them.
//
// A repeat end closes any conditionals that were opened inside the loop body
// before deciding whether to loop again.
//
// The interpreter never stops the frame. Faults (unknown opcodes, memory
// access errors, structural errors) are collected in the Result and the
// faulting instruction is skipped. The only fault that stops a code is
// ExecutionBudgetExceeded, which leaves the interpreter in the Aborted state.
package vm
