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

package memorymap

import "fmt"

// Default size of the store. The framebuffer must fit inside the store.
const DefaultMemorySize = 0x10000000

// I/O devices.
const (
	SerialBase   = 0x00010000
	KeyboardBase = 0x00010010
)

// ROMBase is the address of the optional boot ROM.
const ROMBase = 0x00ff0000

// The framebuffer is 640x480 with 16 bits per pixel.
const (
	FramebufferBase   = 0x0a000000
	FramebufferWidth  = 640
	FramebufferHeight = 480
	FramebufferSize   = FramebufferWidth * FramebufferHeight * 2
)

// Area is a named region of the default layout.
type Area int

// List of valid areas.
const (
	RAM Area = iota
	Serial
	Keyboard
	ROM
	Framebuffer
)

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case Serial:
		return "Serial"
	case Keyboard:
		return "Keyboard"
	case ROM:
		return "ROM"
	case Framebuffer:
		return "Framebuffer"
	}
	return fmt.Sprintf("Area(%d)", int(a))
}

// MapAddress returns the area of the default layout that contains the real
// address. The serial and keyboard lengths are fixed by the devices. romSize
// is zero if there is no boot ROM.
func MapAddress(address uint32, romSize uint32) Area {
	switch {
	case address >= SerialBase && address < SerialBase+5:
		return Serial
	case address >= KeyboardBase && address < KeyboardBase+2:
		return Keyboard
	case romSize > 0 && address >= ROMBase && address-ROMBase < romSize:
		return ROM
	case address >= FramebufferBase && address < FramebufferBase+FramebufferSize:
		return Framebuffer
	}
	return RAM
}
