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


// Package hardware is the base package for the machine emulation. The Machine
// type puts together the physical store, the address bus and the devices
// mapped onto it, the bank switching unit, the DMA engine and the coprocessor
// dispatcher. A CPU core is attached with AttachCore() and the machine is run
// with Run().
//
// The default layout registers the I/O devices before the RAM. The RAM covers
// the whole of the store, so the I/O devices shadow the RAM underneath them.
//
// The machine implements the cpu.Memory interface. Every address the core
// uses is translated by the bank switching unit before being passed to the
// bus.
package hardware
