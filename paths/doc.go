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

// Package paths contains functions to prepare paths for resources used by the
// emulator, such as the preferences file.
//
// The base path is a directory named ".yardland" in the current working
// directory if it exists. Otherwise the directory is "yardland" in the user's
// configuration directory, as returned by os.UserConfigDir().
package paths
