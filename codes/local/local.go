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

package local

import (
	"github.com/jetsetilly/geckocodes/codes"
)

// Config is the interface to the settings storage. It is implemented by
// inifile.File.
type Config interface {
	// Lines returns the lines in the named section. The boolean is false if
	// the section does not exist
	Lines(section string) ([]string, bool)

	// SetLines replaces the lines in the named section
	SetLines(section string, lines []string)
}

// sections returns the code sections from the Config. A nil Config, or a
// Config with none of the code sections, returns empty sections.
func sections(cfg Config) codes.Sections {
	var sec codes.Sections
	if cfg == nil {
		return sec
	}
	sec.Codes, _ = cfg.Lines(codes.SectionCodes)
	sec.Enabled, _ = cfg.Lines(codes.SectionEnabled)
	sec.Disabled, _ = cfg.Lines(codes.SectionDisabled)
	return sec
}

// Load the code list from the global and local settings.
//
// The global settings are the codes that are shipped with the application.
// The enabled state of these codes, after the global enabled and disabled
// sections have been applied, is the default state. The local settings are
// the codes added by the user and the user's choice of which codes are
// enabled.
//
// Either Config can be nil.
func Load(global Config, local Config) codes.List {
	g := codes.Deserialise(sections(global), false)
	for i := range g {
		g[i].DefaultEnabled = g[i].Enabled
	}

	lsec := sections(local)
	l := codes.Deserialise(lsec, true)

	merged := codes.Merge(g, l)
	return codes.ApplyState(merged, lsec.Enabled, lsec.Disabled)
}

// Save the code list to the local settings. Only user defined codes are
// written to the codes section. The enabled and disabled sections record
// every code whose enabled state is different to the default.
//
// Saving an unchanged list more than once always results in the same
// settings.
func Save(target Config, list codes.List) {
	target.SetLines(codes.SectionCodes, codes.SerialiseCodes(list.UserDefined()))
	enabled, disabled := codes.SerialiseState(list)
	target.SetLines(codes.SectionEnabled, enabled)
	target.SetLines(codes.SectionDisabled, disabled)
}
