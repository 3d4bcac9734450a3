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

package remote_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/geckocodes/codes/remote"
	"github.com/jetsetilly/geckocodes/curated"
	"github.com/jetsetilly/geckocodes/test"
)

const payload = `GALE01
Super Smash Bros. Melee (NTSC-U)

Infinite Lives [anon]
04001000 00000063
0400100G 00000000
this line is a note
04001000 00000001

Moon Jump
04001004 3f800000

Broken
not a code line
`

func TestParse(t *testing.T) {
	list, err := remote.Parse("GALE01", []byte(payload))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(list), 2)

	c := list[0]
	test.ExpectEquality(t, c.Name, "Infinite Lives")
	test.ExpectEquality(t, c.Author, "anon")
	test.ExpectEquality(t, c.UserDefined, true)
	test.ExpectEquality(t, c.Enabled, false)

	// the unparseable code line is skipped. the code line after the note is
	// part of the notes
	test.DemandEquality(t, len(c.Instructions), 1)
	test.ExpectEquality(t, c.Instructions[0].Value, uint32(0x63))
	test.DemandEquality(t, len(c.Notes), 2)
	test.ExpectEquality(t, c.Notes[0], "this line is a note")
	test.ExpectEquality(t, c.Notes[1], "04001000 00000001")

	test.ExpectEquality(t, list[1].Name, "Moon Jump")
	test.ExpectEquality(t, list[1].Author, "")
}

func TestParseCRLF(t *testing.T) {
	list, err := remote.Parse("GALE01", []byte("GALE01\r\nTitle\r\n\r\nCode\r\n04001000 00000001\r\n"))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(list), 1)
	test.ExpectEquality(t, len(list[0].Instructions), 1)
	test.ExpectEquality(t, len(list[0].Notes), 0)
}

func TestParseFailures(t *testing.T) {
	_, err := remote.Parse("GALE01", []byte(""))
	test.ExpectSuccess(t, curated.Is(err, remote.Malformed))

	_, err = remote.Parse("GALE01", []byte("<html>\n<body>\nerror</body>\n"))
	test.ExpectSuccess(t, curated.Is(err, remote.Malformed))

	_, err = remote.Parse("GALE01", []byte("GALE01\nTitle\n\n"))
	test.ExpectSuccess(t, curated.Is(err, remote.NotFound))

	_, err = remote.Parse("GALE01", []byte("GALE01\nTitle\n"))
	test.ExpectSuccess(t, curated.Is(err, remote.NotFound))

	// blocks but none with usable instructions
	_, err = remote.Parse("GALE01", []byte("GALE01\nTitle\n\nCode\nnote\n\nOther\n0400100G 00000000\n"))
	test.ExpectSuccess(t, curated.Is(err, remote.Malformed))
}

func TestParseLongLines(t *testing.T) {
	long := strings.Repeat("x", 70000)
	p := "GALE01\nTitle\n\nFirst\n04001000 00000001\n" + long + "\n\n" +
		"Second [v2] [anon]\n04001004 00000002\n" + long + "04001008\n"

	list, err := remote.Parse("GALE01", []byte(p))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(list), 2)

	test.ExpectEquality(t, list[0].Name, "First")
	test.DemandEquality(t, len(list[0].Notes), 1)
	test.ExpectEquality(t, len(list[0].Notes[0]), 70000)

	// the author is in the last pair of brackets
	test.ExpectEquality(t, list[1].Name, "Second [v2]")
	test.ExpectEquality(t, list[1].Author, "anon")
	test.ExpectEquality(t, len(list[1].Instructions), 1)
}
