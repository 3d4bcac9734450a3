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
	"hash/crc32"
	"slices"
	"strings"

	"github.com/jetsetilly/geckocodes/curated"
)

// Code is a named, ordered list of instructions.
type Code struct {
	Name   string
	Author string

	// the order of instructions is significant and must never be changed
	Instructions []Instruction

	// annotations for the code. they have no effect on execution
	Notes []string

	// whether the code is currently enabled
	Enabled bool

	// whether the code is enabled by default, as specified by the source
	// that defined the code. used to decide whether the enabled state
	// needs to be saved
	DefaultEnabled bool

	// the code was defined by the user (ie. in the local source) and not by
	// the global source
	UserDefined bool
}

func (c Code) String() string {
	s := strings.Builder{}
	s.WriteString(c.title())
	for _, ins := range c.Instructions {
		s.WriteString("\n")
		s.WriteString(FormatLine(ins))
	}
	return s.String()
}

// Title returns the title line for the code, as used in the codes section of
// an INI file. The enabled state is not represented.
func (c Code) Title() string {
	return "$" + c.title()
}

func (c Code) title() string {
	if c.Author == "" {
		return c.Name
	}
	return fmt.Sprintf("%s [%s]", c.Name, c.Author)
}

// Identity returns a string that identifies the code. Two codes are the same
// code only if they have the same name and the same sequence of
// instructions.
func (c Code) Identity() string {
	s := strings.Builder{}
	s.WriteString(c.Name)
	s.WriteByte(0)
	for _, ins := range c.Instructions {
		b := ins.Bytes()
		s.Write(b[:])
	}
	return s.String()
}

// Digest returns the CRC-32 of the instruction bytes as eight hex digits.
// Used to tell apart codes that share a name.
func (c Code) Digest() string {
	h := crc32.NewIEEE()
	for _, ins := range c.Instructions {
		b := ins.Bytes()
		_, _ = h.Write(b[:])
	}
	return fmt.Sprintf("%08x", h.Sum32())
}

// Validate returns an error if the code could not be written to and read
// back from the persisted form unchanged. The name must not be empty and must
// not contain square brackets; the author must not contain square brackets.
// There must be at least one instruction.
func (c Code) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return curated.Errorf(FormatError, "code has no name")
	case strings.TrimSpace(c.Name) != c.Name || strings.TrimSpace(c.Author) != c.Author:
		return curated.Errorf(FormatError, "name and author must not have surrounding space")
	case strings.ContainsAny(c.Name, "[]\n"):
		return curated.Errorf(FormatError, "name contains a square bracket or newline")
	case strings.ContainsAny(c.Author, "[]\n"):
		return curated.Errorf(FormatError, "author contains a square bracket or newline")
	case len(c.Instructions) == 0:
		return curated.Errorf(FormatError, "code has no instructions")
	}
	return nil
}

// ParseTitle splits a title into name and author. The author is the text
// between the last '[' and a closing ']' at the end of the title. A title
// without a trailing author is all name.
func ParseTitle(title string) (name string, author string) {
	title = strings.TrimSpace(title)
	if strings.HasSuffix(title, "]") {
		if i := strings.LastIndex(title, "["); i >= 0 {
			return strings.TrimSpace(title[:i]), strings.TrimSpace(title[i+1 : len(title)-1])
		}
	}
	return title, ""
}

// Clone returns a deep copy of the code.
func (c Code) Clone() Code {
	c.Instructions = slices.Clone(c.Instructions)
	c.Notes = slices.Clone(c.Notes)
	return c
}

// Equal returns true if every field of the two codes is equal.
func (c Code) Equal(d Code) bool {
	return c.Name == d.Name && c.Author == d.Author &&
		c.Enabled == d.Enabled && c.DefaultEnabled == d.DefaultEnabled &&
		c.UserDefined == d.UserDefined &&
		slices.Equal(c.Instructions, d.Instructions) &&
		slices.Equal(c.Notes, d.Notes)
}

// List is an ordered list of codes. The order is the order of display and of
// execution.
type List []Code

// Clone returns a deep copy of the list.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	c := make(List, len(l))
	for i := range l {
		c[i] = l[i].Clone()
	}
	return c
}

// Equal returns true if the two lists contain equal codes in the same order.
func (l List) Equal(m List) bool {
	return slices.EqualFunc(l, m, func(a, b Code) bool {
		return a.Equal(b)
	})
}

// Enabled returns the enabled codes in the list. The returned codes share
// instruction slices with the list.
func (l List) Enabled() List {
	e := make(List, 0, len(l))
	for _, c := range l {
		if c.Enabled {
			e = append(e, c)
		}
	}
	return e
}

// UserDefined returns the user defined codes in the list. The returned codes
// share instruction slices with the list.
func (l List) UserDefined() List {
	u := make(List, 0, len(l))
	for _, c := range l {
		if c.UserDefined {
			u = append(u, c)
		}
	}
	return u
}
