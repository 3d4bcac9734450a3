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
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/geckocodes/curated"
)

// FormatError is the pattern for errors that result from text which cannot
// be decoded into an instruction or a code.
const FormatError = "format error: %v"

// the number of hex digits in each half of an instruction line.
const halfLen = 8

// ParseLine decodes the text representation of a single instruction. The text
// must be exactly sixteen hexadecimal digits, optionally with a single space
// or tab separating the address and value halves. Leading and trailing white
// space is ignored.
//
// Comment lines, code titles and note lines are not instructions and will
// result in an error. Callers should recognise and skip those lines before
// calling this function.
func ParseLine(text string) (Instruction, error) {
	s := strings.TrimSpace(text)

	if len(s) == 0 {
		return Instruction{}, curated.Errorf(FormatError, "empty line")
	}

	switch s[0] {
	case '$', '+', '*', '#':
		return Instruction{}, curated.Errorf(FormatError, fmt.Sprintf("not an instruction (%s)", s))
	}

	var addr, val string

	switch len(s) {
	case halfLen * 2:
		addr, val = s[:halfLen], s[halfLen:]
	case halfLen*2 + 1:
		if s[halfLen] != ' ' && s[halfLen] != '\t' {
			return Instruction{}, curated.Errorf(FormatError, fmt.Sprintf("misplaced separator (%s)", s))
		}
		addr, val = s[:halfLen], s[halfLen+1:]
	default:
		return Instruction{}, curated.Errorf(FormatError, fmt.Sprintf("wrong length (%s)", s))
	}

	a, err := parseHalf(addr)
	if err != nil {
		return Instruction{}, curated.Errorf(FormatError, err)
	}
	v, err := parseHalf(val)
	if err != nil {
		return Instruction{}, curated.Errorf(FormatError, err)
	}

	return Instruction{Address: a, Value: v}, nil
}

// strconv.ParseUint() accepts an underscore and a sign in some situations. we
// want only the hex digits.
func parseHalf(s string) (uint32, error) {
	for _, c := range s {
		if !isHexDigit(c) {
			return 0, fmt.Errorf("not hex (%s)", s)
		}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// FormatLine renders an instruction as sixteen lowercase hexadecimal digits
// with a space separating the address and value halves.
func FormatLine(ins Instruction) string {
	return fmt.Sprintf("%08x %08x", ins.Address, ins.Value)
}

// IsCodeLine returns true if the text looks like an instruction line: two
// fields of eight characters each. Some code databases have note lines that
// begin with valid hex characters so looking at the first character isn't
// enough to distinguish a code line from a note.
//
// Note that a line that passes this test may still fail ParseLine().
func IsCodeLine(text string) bool {
	f := strings.Fields(text)
	return len(f) == 2 && len(f[0]) == halfLen && len(f[1]) == halfLen
}
