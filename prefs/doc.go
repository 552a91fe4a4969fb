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

// Package prefs facilitates the storage of preferential values. Values are
// typed (Bool, String, Int and Duration) and are safe to read from more than
// one goroutine.
//
// Values are associated with a key and a Disk instance. The Disk saves and
// loads the values to a simple text file, one "key :: value" entry per line.
//
//	dsk, err := prefs.NewDisk(paths.ResourcePath("prefs"))
//	var tick prefs.Duration
//	err = dsk.Add("serial.tick", &tick)
//	err = dsk.Load()
//
// Values found on the command line stack override values on disk. The stack
// is pushed with a string of the form "key::value; key::value".
package prefs
