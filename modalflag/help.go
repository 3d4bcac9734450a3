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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// help prints the help message for the current mode. the flagHelp argument
// is the output of the flag package when the help flag is found.
func (md *Modes) help(flagHelp string) {
	if md.Output == nil {
		return
	}

	s := strings.Builder{}
	defer func() {
		io.WriteString(md.Output, s.String())
	}()

	usage, flags, _ := strings.Cut(flagHelp, "\n")

	if flags == "" && len(md.subModes) == 0 && md.additionalHelp == "" {
		s.WriteString("No help available")
		if md.Path() != "" {
			s.WriteString(fmt.Sprintf(" for %s", md.Path()))
		}
		s.WriteString("\n")
		return
	}

	if usage == "" {
		usage = "Usage:"
	}
	if md.Path() != "" {
		usage = fmt.Sprintf("%s for %s mode", usage, md.Path())
	}
	s.WriteString(usage)
	s.WriteString("\n")
	s.WriteString(flags)

	if len(md.subModes) > 0 {
		if flags != "" {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("  available sub-modes: %s\n", strings.Join(md.subModes, ", ")))
		s.WriteString(fmt.Sprintf("    default: %s\n", md.subModes[0]))
	}

	if md.additionalHelp != "" {
		s.WriteString("\n")
		s.WriteString(md.additionalHelp)
		s.WriteString("\n")
	}
}
