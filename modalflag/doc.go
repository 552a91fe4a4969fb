// This file is part of Yardland.
//
// Yardland is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Yardland is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Yardland.  If not, see <https://www.gnu.org/licenses/>.


// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each of which can have its own set of flags.
//
// Arguments are given to NewArgs() and then parsed, one mode at a time, with
// Parse(). Sub-modes for the next call to Parse() are specified with
// AddSubModes(). The first sub-mode is the default and is selected if the
// first non-flag argument is not the name of a sub-mode. Sub-mode names are
// case insensitive.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "MAP")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		trace := md.AddBool("trace", false, "log every step")
//		...
//	}
//
// Help for the current mode is printed to the Output writer when the -help
// flag is seen.
package modalflag
