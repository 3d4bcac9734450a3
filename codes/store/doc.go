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

// Package store owns the code list for a running game. The list is read by
// the code handler once per frame and changed by the user or by a completed
// download. To make sure the code handler never sees a partially changed
// list, changes are queued and applied together by Commit().
//
// There is no global store. The host creates a Store with NewStore() and
// passes it to whatever needs it.
package store
