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
	"strings"
	"testing"

	"github.com/jetsetilly/geckocodes/codes"
	"github.com/jetsetilly/geckocodes/test"
)

func TestDeserialise(t *testing.T) {
	sec := codes.Sections{
		Codes: []string{
			"# a comment",
			"$Infinite Lives [JetSetIlly]",
			"04001000 00000001",
			"04001004 00000002",
			"*lives never decrease",
			"",
			"+$Moon Jump",
			"C2001000 00000001",
			"*hold A",
			"*and jump",
		},
		Disabled: []string{"$Moon Jump"},
	}

	l := codes.Deserialise(sec, false)
	test.DemandEquality(t, len(l), 2)

	test.ExpectEquality(t, l[0].Name, "Infinite Lives")
	test.ExpectEquality(t, l[0].Author, "JetSetIlly")
	test.ExpectEquality(t, len(l[0].Instructions), 2)
	test.ExpectEquality(t, l[0].Instructions[1], codes.Instruction{Address: 0x04001004, Value: 2})
	test.ExpectEquality(t, len(l[0].Notes), 1)
	test.ExpectEquality(t, l[0].Enabled, false)
	test.ExpectEquality(t, l[0].UserDefined, false)

	test.ExpectEquality(t, l[1].Name, "Moon Jump")
	test.ExpectEquality(t, l[1].Author, "")
	test.ExpectEquality(t, l[1].DefaultEnabled, true)
	test.ExpectEquality(t, l[1].Enabled, false)
	test.ExpectEquality(t, l[1].Notes[1], "and jump")
}

func TestSerialiseRoundTrip(t *testing.T) {
	list := codes.List{
		{
			Name:         "Infinite Lives",
			Author:       "JetSetIlly",
			Instructions: []codes.Instruction{insA, insB},
			Notes:        []string{"lives never decrease"},
			Enabled:      true,
		},
		{
			Name:           "Moon Jump",
			Instructions:   []codes.Instruction{insC},
			Enabled:        false,
			DefaultEnabled: true,
		},
		{
			Name:           "Timer",
			Instructions:   []codes.Instruction{insC, insA},
			Enabled:        true,
			DefaultEnabled: true,
		},
	}

	sec := codes.Serialise(list)
	test.ExpectEquality(t, len(sec.Enabled), 1)
	test.ExpectEquality(t, sec.Enabled[0], "$Infinite Lives")
	test.ExpectEquality(t, len(sec.Disabled), 1)
	test.ExpectEquality(t, sec.Disabled[0], "$Moon Jump")

	r := codes.Deserialise(sec, false)
	test.ExpectSuccess(t, r.Equal(list))

	// user defined lists round trip too
	for i := range list {
		list[i].UserDefined = true
	}
	r = codes.Deserialise(codes.Serialise(list), true)
	test.ExpectSuccess(t, r.Equal(list))
}

func TestPartialFailure(t *testing.T) {
	sec := codes.Sections{
		Codes: []string{
			"$One",
			"04001000 00000001",
			"$Two",
			"04001000 0000000Z",
			"04001004 00000001",
			"$Three",
			"04001008 00000001",
			"$Four",
			"*no instructions",
			"$Five",
			"0400100c 00000001",
		},
	}

	l := codes.Deserialise(sec, true)
	test.DemandEquality(t, len(l), 3)
	test.ExpectEquality(t, l[0].Name, "One")
	test.ExpectEquality(t, l[1].Name, "Three")
	test.ExpectEquality(t, l[2].Name, "Five")
}

func TestOrphanedLines(t *testing.T) {
	sec := codes.Sections{
		Codes: []string{
			"04001000 00000001",
			"*orphaned note",
			"$",
			"04001000 00000001",
			"$Good",
			"04001000 00000001",
		},
	}

	l := codes.Deserialise(sec, true)
	test.DemandEquality(t, len(l), 1)
	test.ExpectEquality(t, l[0].Name, "Good")
}

func TestApplyState(t *testing.T) {
	list := codes.List{
		code("A", false, insA),
		code("B", true, insB),
		code("A", false, insC),
	}

	codes.ApplyState(list, []string{"$A", "$B", "junk"}, []string{"$B"})
	test.ExpectEquality(t, list[0].Enabled, true)
	test.ExpectEquality(t, list[1].Enabled, false)
	test.ExpectEquality(t, list[2].Enabled, true)
}

func TestSerialiseDuplicateNames(t *testing.T) {
	list := codes.List{
		code("Lives", true, insA),
		code("Lives", false, insB),
		code("Health", true, insC),
	}
	for i := range list {
		list[i].DefaultEnabled = false
	}

	enabled, disabled := codes.SerialiseState(list)
	test.DemandEquality(t, len(enabled), 2)
	test.ExpectEquality(t, enabled[0], "$Lives {"+list[0].Digest()+"}")
	test.ExpectEquality(t, enabled[1], "$Health")
	test.ExpectEquality(t, len(disabled), 0)

	r := codes.Deserialise(codes.Serialise(list), false)
	test.DemandEquality(t, len(r), 3)
	test.ExpectEquality(t, r[0].Enabled, true)
	test.ExpectEquality(t, r[1].Enabled, false)
	test.ExpectSuccess(t, r.Equal(list))

	// the other way round
	list[0].Enabled = false
	list[1].Enabled = true
	r = codes.Deserialise(codes.Serialise(list), false)
	test.ExpectSuccess(t, r.Equal(list))
}

func TestApplyStateDigest(t *testing.T) {
	list := codes.List{
		code("A", false, insA),
		code("A", false, insB),
	}

	codes.ApplyState(list, []string{"$A {" + list[1].Digest() + "}"}, nil)
	test.ExpectEquality(t, list[0].Enabled, false)
	test.ExpectEquality(t, list[1].Enabled, true)

	// digest is not case sensitive
	codes.ApplyState(list, nil, []string{"$A {" + strings.ToUpper(list[1].Digest()) + "}"})
	test.ExpectEquality(t, list[1].Enabled, false)

	// a digest that matches nothing changes nothing
	codes.ApplyState(list, []string{"$A {00000000}"}, nil)
	test.ExpectEquality(t, list[0].Enabled, false)
	test.ExpectEquality(t, list[1].Enabled, false)

	// braces that are not a digest are part of the name
	list = append(list, code("B {x}", false, insC))
	codes.ApplyState(list, []string{"$B {x}"}, nil)
	test.ExpectEquality(t, list[2].Enabled, true)
}

func TestTitleWithBrackets(t *testing.T) {
	name, author := codes.ParseTitle("Infinite HP [v2] [JetSetIlly]")
	test.ExpectEquality(t, name, "Infinite HP [v2]")
	test.ExpectEquality(t, author, "JetSetIlly")

	name, author = codes.ParseTitle("Infinite HP")
	test.ExpectEquality(t, name, "Infinite HP")
	test.ExpectEquality(t, author, "")

	// a name with brackets and no author is ambiguous so cannot be created
	c := code("Inf [HP]", false, insA)
	test.ExpectFailure(t, c.Validate())
	c = code("Inf", false, insA)
	c.Author = "a]b"
	test.ExpectFailure(t, c.Validate())
	test.ExpectFailure(t, code("Empty", false).Validate())
	test.ExpectFailure(t, code(" Spaced", false, insA).Validate())

	// a valid code round trips unchanged
	c = code("Inf HP", true, insA)
	c.Author = "JetSetIlly"
	test.ExpectSuccess(t, c.Validate())
	r := codes.Deserialise(codes.Serialise(codes.List{c}), false)
	test.ExpectSuccess(t, r.Equal(codes.List{c}))
}
