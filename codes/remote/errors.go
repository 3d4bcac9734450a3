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

package remote

// Error patterns for the possible failures of a download. Callers should
// use curated.Is() to tell them apart.
const (
	// the server was reached but it has no codes for the game
	NotFound = "remote: no codes for game (%s)"

	// the server could not be reached, or did not respond in time, or
	// responded with an unexpected status
	Unreachable = "remote: server unreachable: %v"

	// the server responded but the response could not be understood
	Malformed = "remote: malformed response: %v"
)
