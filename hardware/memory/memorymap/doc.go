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

// Package memorymap describes the default layout of the machine's address
// space. The layout is registered with the device bus by the hardware
// package.
//
// The RAM window covers the entire store and is registered last. The I/O
// devices are registered before it so that they shadow the RAM at their
// addresses.
//
//	00000000 -> 0000ffff	RAM (bank zero)
//	00010000 -> 00010004	Serial
//	00010010 -> 00010011	Keyboard
//	00010012 -> ...		RAM
//	0a000000 -> 0a095fff	Framebuffer (RAM)
//
// An optional boot ROM is mapped at ROMBase, again shadowing the RAM.
package memorymap
