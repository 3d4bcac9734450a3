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

// State of the interpreter.
type State int

// List of valid State values. Running, InConditionalTrue and Skipping are
// states seen during execution of a code. Terminated, Aborted and Finished
// are final states.
const (
	Running State = iota
	InConditionalTrue
	Skipping
	Terminated
	Aborted
	Finished
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case InConditionalTrue:
		return "InConditionalTrue"
	case Skipping:
		return "Skipping"
	case Terminated:
		return "Terminated"
	case Aborted:
		return "Aborted"
	case Finished:
		return "Finished"
	}
	return "unknown state"
}

// Final returns true if the state is a final state.
func (s State) Final() bool {
	return s == Terminated || s == Aborted || s == Finished
}

type blockKind int

const (
	conditionalBlock blockKind = iota
	repeatBlock
)

// block is an entry on the block stack. a block is open from the
// conditional or repeat instruction until the instruction that closes it.
type block struct {
	kind blockKind

	// instructions inside the block are executed
	executing bool

	// the block was opened while skipping. it can never start executing and
	// exists only so that it is closed by the correct terminator
	inert bool

	// repeat blocks only
	start int
	count uint32
}

// Result of running a code for a single frame.
type Result struct {
	// index of the instruction that would be executed next
	PC int

	// final state of the interpreter
	State State

	// number of instructions stepped through, including instructions that
	// were skipped
	Executed int

	// faults encountered while running the code. a fault does not stop
	// execution unless it is an ExecutionBudgetExceeded fault
	Faults []error
}
