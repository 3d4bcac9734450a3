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

// Package inifile reads and writes the INI files used for per-game
// settings. A file is a list of named sections, each holding a list of
// lines. Lines are not interpreted as key/value pairs because the code
// sections are free form.
//
// Output is deterministic. Sections are written in the order they were
// first seen and the lines of each section in the order they were set, so
// writing an unchanged File twice produces identical output.
package inifile
