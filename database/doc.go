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

// Package database is a code database, of the type queried by the remote
// package. Codes are stored in an SQLite database, one row per code, and are
// served in the text payload format by the database/server package.
//
// A database can be filled from a YAML seed file with Import(). For example:
//
//	games:
//	  - id: GALE01
//	    title: Super Smash Bros. Melee
//	    codes:
//	      - name: Infinite Lives
//	        author: anon
//	        lines:
//	          - 04001000 00000063
//	        notes:
//	          - lives never decrease
package database
