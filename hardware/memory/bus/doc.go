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

// Package bus defines the interfaces and error patterns shared by the devices
// attached to the machine's address space.
//
// Every device implements the Device interface. Offsets passed to a device are
// relative to the start of the device, not absolute addresses. The mmu package
// translates absolute addresses to device offsets.
//
// Multi-byte access to a device is provided by the ReadWord() family of
// functions in this package. They are derived from the stream primitives of
// the Device interface and are always little-endian.
package bus
