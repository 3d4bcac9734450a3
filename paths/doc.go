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

// Package paths contains functions to prepare paths to geckocodes resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the local INI file for a game.
//
//	d, err := paths.ResourcePath("GameSettings", "RMCE01.ini")
//
// Non-release builds use the ".geckocodes" directory in the current working
// directory. Release builds (built with the "release" tag) use the user's
// config directory, as returned by os.UserConfigDir().
//
// In both cases, the directories in the path are created if necessary.
package paths
