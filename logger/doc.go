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

// Package logger is the central log for the emulation. Entries are tagged
// strings and adjacent duplicate entries are collapsed into a single entry
// with a repeat count. Only the most recent entries are kept.
//
// Logging is controlled by the Permission interface. Code that always wants
// to log can use the Allow value.
//
//	logger.Logf(logger.Allow, "dma", "transfer %#08x -> %#08x", src, dest)
//
// The package level functions operate on the central logger. NewLogger()
// creates an independent logger which is useful for testing.
package logger
