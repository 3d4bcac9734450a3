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

// Package local is the local repository of codes. Codes for a game come
// from two settings files. The global file holds the codes shipped with the
// application and the local file holds the codes added by the user, along
// with the user's choice of which codes are enabled.
//
// Load() and Save() work with any implementation of the Config interface.
// LoadGame() and SaveGame() use INI files in the GameSettings directory of
// the resource path.
package local
