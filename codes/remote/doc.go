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

// Package remote downloads codes from an online code database. The database
// is queried by game ID and responds with a text payload of named code
// blocks. See Parse() for a description of the payload.
//
// The three possible failures are distinguished by the NotFound,
// Unreachable and Malformed error patterns. A download that takes longer
// than the Timeout preference fails as Unreachable.
//
// Fetch() blocks. Download() does the same work in a new goroutine so that
// the download can happen away from the emulation loop. A downloaded list
// should be given to store.MergeDownloaded() in one piece.
package remote
