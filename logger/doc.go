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

// Package logger is the central log for the application. Log entries are
// made with the package level Log() and Logf() functions and are tagged with
// a short string describing the area of the program making the entry.
//
// Consecutive identical entries are folded into one entry with a repeat
// count. The number of entries kept is bounded.
//
// Every logging call takes a Permission. Logging can be suppressed by
// passing a Permission implementation that returns false from AllowLogging().
// Use logger.Allow if an entry should always be made.
package logger
