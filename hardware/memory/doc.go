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


// Package memory is the parent package of the address space implementation.
// The packages are:
//
//	physical	the byte store underneath the RAM and framebuffer
//	bus		the Device interface and the address error patterns
//	mmu		the bus that decodes addresses to mapped devices
//	banks		the bank switching unit
//	dma		the DMA engine
//	faults		the log of faulting accesses
//	memorymap	the constants of the default layout
//
// The devices themselves are in the hardware/peripherals packages.
package memory
