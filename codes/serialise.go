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
	"strings"

	"github.com/jetsetilly/geckocodes/curated"
	"github.com/jetsetilly/geckocodes/logger"
)

// Names of the INI sections used to store a list of codes.
const (
	SectionCodes    = "Gecko"
	SectionEnabled  = "Gecko_Enabled"
	SectionDisabled = "Gecko_Disabled"
)

// Sections is the persisted form of a code list. Each field is the list of
// lines in the corresponding INI section.
type Sections struct {
	Codes    []string
	Enabled  []string
	Disabled []string
}

// Serialise a list of codes. Every code in the list is written to the codes
// section. See SerialiseState() for how the enabled state is stored.
func Serialise(list List) Sections {
	var sec Sections
	sec.Codes = SerialiseCodes(list)
	sec.Enabled, sec.Disabled = SerialiseState(list)
	return sec
}

// SerialiseCodes returns the lines of the codes section for the list. The
// title of a code that is enabled by default is prefixed with '+'.
func SerialiseCodes(list List) []string {
	lines := make([]string, 0, len(list)*4)
	for _, c := range list {
		t := c.Title()
		if c.DefaultEnabled {
			t = "+" + t
		}
		lines = append(lines, t)
		for _, ins := range c.Instructions {
			lines = append(lines, FormatLine(ins))
		}
		for _, n := range c.Notes {
			lines = append(lines, "*"+n)
		}
	}
	return lines
}

// SerialiseState returns the lines of the enabled and disabled sections. Only
// codes whose enabled state differs from the default are recorded.
//
// A code is recorded by name ($Name) unless another code in the list has the
// same name, in which case the digest of its instructions is added
// ($Name {digest}) so that the state of each code is restored separately.
func SerialiseState(list List) (enabled []string, disabled []string) {
	names := make(map[string]int, len(list))
	for _, c := range list {
		names[c.Name]++
	}

	seen := make(map[string]bool)
	for _, c := range list {
		if c.Enabled == c.DefaultEnabled {
			continue
		}
		t := stateLine(c, names[c.Name] > 1)
		if seen[t] {
			continue
		}
		seen[t] = true
		if c.Enabled {
			enabled = append(enabled, t)
		} else {
			disabled = append(disabled, t)
		}
	}
	return enabled, disabled
}

func stateLine(c Code, qualify bool) string {
	if qualify {
		return fmt.Sprintf("$%s {%s}", c.Name, c.Digest())
	}
	return "$" + c.Name
}

// parseStateLine is the inverse of stateLine. The digest is empty if the line
// is not qualified.
func parseStateLine(l string) (name string, digest string, ok bool) {
	l = strings.TrimSpace(l)
	if len(l) < 2 || l[0] != '$' {
		return "", "", false
	}
	l = l[1:]

	if strings.HasSuffix(l, "}") {
		if i := strings.LastIndex(l, " {"); i >= 0 {
			d := l[i+2 : len(l)-1]
			if len(d) == 8 && strings.IndexFunc(d, func(r rune) bool { return !isHexDigit(r) }) == -1 {
				return strings.TrimSpace(l[:i]), strings.ToLower(d), true
			}
		}
	}

	return strings.TrimSpace(l), "", true
}

// Deserialise the persisted form of a code list. All codes in the list will
// have the UserDefined field set to the value of the userDefined argument.
//
// Codes that cannot be decoded are dropped without affecting the rest of the
// list. A code cannot be decoded if it has no name, if it has no
// instructions or if any of its instruction lines cannot be parsed.
//
// The enabled state of each code is set to the default specified in the
// codes section and then overridden by the enabled and disabled sections.
func Deserialise(sec Sections, userDefined bool) List {
	list := make(List, 0)

	var c *Code
	var bad error

	commit := func() {
		if c == nil {
			return
		}
		switch {
		case bad != nil:
			logger.Logf(logger.Allow, "codes", "dropping %s: %v", c.Name, bad)
		case len(c.Instructions) == 0:
			logger.Logf(logger.Allow, "codes", "dropping %s: no instructions", c.Name)
		default:
			list = append(list, *c)
		}
		c = nil
		bad = nil
	}

	for i, l := range sec.Codes {
		l = strings.TrimSpace(l)
		if len(l) == 0 || l[0] == '#' {
			continue
		}

		switch l[0] {
		case '+', '$':
			commit()
			nc, err := parseTitle(l, userDefined)
			if err != nil {
				logger.Logf(logger.Allow, "codes", "line %d: %v", i+1, err)
				continue
			}
			c = &nc

		case '*':
			if c != nil {
				c.Notes = append(c.Notes, l[1:])
			}

		default:
			if c == nil {
				logger.Logf(logger.Allow, "codes", "line %d: instruction without a code title", i+1)
				continue
			}
			ins, err := ParseLine(l)
			if err != nil {
				if bad == nil {
					bad = err
				}
				continue
			}
			c.Instructions = append(c.Instructions, ins)
		}
	}
	commit()

	return ApplyState(list, sec.Enabled, sec.Disabled)
}

// parseTitle decodes a code title line:
//
//	$Name [Author]
//	+$Name [Author]
func parseTitle(l string, userDefined bool) (Code, error) {
	c := Code{UserDefined: userDefined}

	if l[0] == '+' {
		c.DefaultEnabled = true
		l = l[1:]
	}
	if len(l) == 0 || l[0] != '$' {
		return Code{}, curated.Errorf(FormatError, "malformed title")
	}
	l = l[1:]

	c.Name, c.Author = ParseTitle(l)

	if c.Name == "" {
		return Code{}, curated.Errorf(FormatError, "code has no name")
	}

	c.Enabled = c.DefaultEnabled

	return c, nil
}

// ApplyState sets the enabled state of codes in the list. The enabled and
// disabled arguments are lists of state lines as returned by
// SerialiseState(). A line with only a name applies to every code with that
// name. A line with a digest applies only to codes with that name and
// digest. Codes in the disabled list are disabled even if they are also in
// the enabled list.
//
// The list is modified in place and returned.
func ApplyState(list List, enabled []string, disabled []string) List {
	apply := func(lines []string, state bool) {
		for _, l := range lines {
			name, digest, ok := parseStateLine(l)
			if !ok || name == "" {
				continue
			}
			for i := range list {
				if list[i].Name != name {
					continue
				}
				if digest != "" && list[i].Digest() != digest {
					continue
				}
				list[i].Enabled = state
			}
		}
	}
	apply(enabled, true)
	apply(disabled, false)
	return list
}
