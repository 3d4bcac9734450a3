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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles programs with several modes of operation (and
// sub-modes), each with its own flags.
//
// Unlike flag.FlagSet, the arguments are given to NewArgs() and Parse() is
// called with no arguments. This is so that Parse() can be called once for
// each level of mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("LIST", "RUN")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 1, "number of frames to run")
//		origin := md.AddHex("origin", 0x80000000, "address of the memory image")
//		if p, err := md.Parse(); p != modalflag.ParseContinue {
//			return err
//		}
//		run(md.GetArg(0), *frames, *origin)
//	}
//
// Sub-mode comparisons are case insensitive and Mode() always returns the
// upper case form. If the first argument after the flags is not a listed
// sub-mode then the first sub-mode added is selected.
package modalflag
