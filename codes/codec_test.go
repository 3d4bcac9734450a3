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
	"math/rand"
	"testing"

	"github.com/jetsetilly/geckocodes/codes"
	"github.com/jetsetilly/geckocodes/curated"
	"github.com/jetsetilly/geckocodes/test"
)

func TestParseLine(t *testing.T) {
	ins, err := codes.ParseLine("04001000 00000001")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ins, codes.Instruction{Address: 0x04001000, Value: 0x00000001})

	// no separator and upper case
	ins, err = codes.ParseLine("C2ABCDEF0000000A")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ins, codes.Instruction{Address: 0xc2abcdef, Value: 0x0000000a})

	// tab separator and surrounding white space
	ins, err = codes.ParseLine("  28001000\tffff0001  ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ins, codes.Instruction{Address: 0x28001000, Value: 0xffff0001})
}

func TestParseLineFailures(t *testing.T) {
	bad := []string{
		"",
		"   ",
		"04001000",
		"04001000 0000000",
		"04001000 000000001",
		"0400100 000000001",
		"04001000  00000001",
		"0400100g 00000001",
		"04001000-00000001",
		"+4001000 00000001",
		"$Infinite Lives",
		"*a note",
		"# comment",
		"0x001000 00000001",
	}

	for _, l := range bad {
		_, err := codes.ParseLine(l)
		if test.ExpectFailure(t, err, l) {
			test.ExpectSuccess(t, curated.Is(err, codes.FormatError), l)
		}
	}
}

func TestFormatLine(t *testing.T) {
	test.ExpectEquality(t, codes.FormatLine(codes.Instruction{Address: 0x04001000, Value: 1}), "04001000 00000001")
	test.ExpectEquality(t, codes.FormatLine(codes.Instruction{Address: 0xC2ABCDEF, Value: 0xA}), "c2abcdef 0000000a")
	test.ExpectEquality(t, codes.FormatLine(codes.Instruction{}), "00000000 00000000")
}

func TestLineRoundTrip(t *testing.T) {
	edges := []codes.Instruction{
		{},
		{Address: 0xffffffff, Value: 0xffffffff},
		{Address: 0xf0000000, Value: 0x00000000},
		{Address: 0x80000000, Value: 0x00000001},
	}

	r := rand.New(rand.NewSource(0x2600))
	for i := 0; i < 1000; i++ {
		edges = append(edges, codes.Instruction{Address: r.Uint32(), Value: r.Uint32()})
	}

	for _, ins := range edges {
		p, err := codes.ParseLine(codes.FormatLine(ins))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, ins)
	}
}

func TestIsCodeLine(t *testing.T) {
	test.ExpectSuccess(t, codes.IsCodeLine("04001000 00000001"))
	test.ExpectSuccess(t, codes.IsCodeLine("ZZZZZZZZ 00000001"))
	test.ExpectFailure(t, codes.IsCodeLine("0400100000000001"))
	test.ExpectFailure(t, codes.IsCodeLine("Added by someone"))
}
