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

// Package memory implements the memory of the emulated machine as far as the
// code handler needs to see it. The RAM type is a contiguous area of
// big-endian memory that satisfies the interfaces in the bus package.
//
// Accesses that fall outside of the RAM area, including accesses that start
// inside the area but run off the end of it, fail with a curated error with
// the bus.OutOfRange pattern.
package memory
