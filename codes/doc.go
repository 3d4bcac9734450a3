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

// Package codes defines the Gecko code data model and the text formats used
// to store it.
//
// An Instruction is one eight byte address/value pair. A Code is a named,
// ordered list of instructions. A List is an ordered collection of codes.
//
// The textual form of an instruction is sixteen hexadecimal digits, with an
// optional space between the address and value halves:
//
//	04001000 00000001
//
// ParseLine() and FormatLine() convert between the two forms.
//
// Code lists are stored in three sections of an INI file. The "Gecko"
// section contains the codes themselves:
//
//	$Infinite Lives [Author]
//	04001000 00000001
//	*notes for the code
//	+$Moon Jump
//	...
//
// A title beginning with "+$" rather than "$" indicates that the code is
// enabled by default. Lines beginning with '#' are comments.
//
// The "Gecko_Enabled" and "Gecko_Disabled" sections contain title lines
// ($Name) that override the enabled state of every code with that name.
//
// The Merge() function combines a global list with a local list. Codes are
// identified by their name and the exact bytes of their instructions.
package codes
