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

package codes_test

import (
	"testing"

	"github.com/jetsetilly/geckocodes/codes"
	"github.com/jetsetilly/geckocodes/test"
)

func code(name string, enabled bool, ins ...codes.Instruction) codes.Code {
	return codes.Code{
		Name:           name,
		Instructions:   ins,
		Enabled:        enabled,
		DefaultEnabled: enabled,
	}
}

var (
	insA = codes.Instruction{Address: 0x04001000, Value: 0x00000001}
	insB = codes.Instruction{Address: 0x04001004, Value: 0x00000002}
	insC = codes.Instruction{Address: 0x00001008, Value: 0x000000ff}
)

func TestMergeOverride(t *testing.T) {
	global := codes.List{
		code("Lives", false, insA),
		code("Health", false, insB),
	}

	// a local code with the same name and instructions as a global code
	local := codes.List{
		code("Health", true, insB),
	}

	m := codes.Merge(global, local)
	test.DemandEquality(t, len(m), 2)
	test.ExpectEquality(t, m[0].Name, "Lives")
	test.ExpectEquality(t, m[0].Enabled, false)
	test.ExpectEquality(t, m[1].Name, "Health")
	test.ExpectEquality(t, m[1].Enabled, true)
	test.ExpectEquality(t, m[1].UserDefined, false)

	// the global list has not been modified
	test.ExpectEquality(t, global[1].Enabled, false)
}

func TestMergeAppend(t *testing.T) {
	global := codes.List{
		code("Lives", false, insA),
	}

	// same name but different instructions is a different code. so is the
	// same instructions with a different name
	local := codes.List{
		code("Lives", true, insA, insB),
		code("Other", false, insA),
		code("Timer", true, insC),
	}

	m := codes.Merge(global, local)
	test.DemandEquality(t, len(m), 4)
	test.ExpectEquality(t, m[0].Name, "Lives")
	test.ExpectEquality(t, m[0].Enabled, false)
	test.ExpectEquality(t, m[0].UserDefined, false)

	test.ExpectEquality(t, m[1].Name, "Lives")
	test.ExpectEquality(t, len(m[1].Instructions), 2)
	test.ExpectEquality(t, m[1].UserDefined, true)
	test.ExpectEquality(t, m[2].Name, "Other")
	test.ExpectEquality(t, m[2].UserDefined, true)
	test.ExpectEquality(t, m[3].Name, "Timer")
	test.ExpectEquality(t, m[3].Enabled, true)
}

func TestMergeDuplicates(t *testing.T) {
	// two identical global codes. the local codes are matched in order
	global := codes.List{
		code("Lives", false, insA),
		code("Lives", false, insA),
	}
	local := codes.List{
		code("Lives", true, insA),
	}

	m := codes.Merge(global, local)
	test.DemandEquality(t, len(m), 2)
	test.ExpectEquality(t, m[0].Enabled, true)
	test.ExpectEquality(t, m[1].Enabled, false)
}

func TestMergeEmpty(t *testing.T) {
	local := codes.List{code("Timer", true, insC)}

	m := codes.Merge(nil, local)
	test.DemandEquality(t, len(m), 1)
	test.ExpectEquality(t, m[0].UserDefined, true)

	global := codes.List{code("Timer", true, insC)}
	m = codes.Merge(global, nil)
	test.ExpectSuccess(t, m.Equal(global))
}

func TestMergeDeterminism(t *testing.T) {
	global := codes.List{
		code("A", false, insA),
		code("B", true, insB),
		code("C", false, insC),
		code("D", false, insA, insB),
	}
	local := codes.List{
		code("C", true, insC),
		code("E", true, insB, insC),
		code("A", false, insA),
		code("F", false, insA),
	}

	first := codes.Merge(global, local)
	for i := 0; i < 50; i++ {
		m := codes.Merge(global, local)
		test.ExpectSuccess(t, m.Equal(first))

		// the serialised form is byte identical
		test.ExpectEquality(t, len(codes.SerialiseCodes(m)), len(codes.SerialiseCodes(first)))
		for j, l := range codes.SerialiseCodes(m) {
			test.ExpectEquality(t, l, codes.SerialiseCodes(first)[j])
		}
	}
}
