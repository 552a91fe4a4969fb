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

// Package rom implements a read-only memory device. Writes to the device are
// accepted and silently discarded, which is how a program writing to a ROM
// region behaves on the real hardware.
package rom

import (
	"github.com/yardland/yardland/curated"
	"github.com/yardland/yardland/hardware/memory/bus"
)

// ROM is a bus.Device with immutable contents.
type ROM struct {
	label string
	data  []byte
}

// New creates a ROM device. The data is copied so later changes to the
// argument do not affect the device.
func New(label string, data []byte) *ROM {
	r := &ROM{
		label: label,
		data:  make([]byte, len(data)),
	}
	copy(r.data, data)
	return r
}

// Label implements the bus.Device interface.
func (r *ROM) Label() string {
	return r.label
}

// Len implements the bus.Device interface.
func (r *ROM) Len() uint32 {
	return uint32(len(r.data))
}

// Read implements the bus.Device interface.
func (r *ROM) Read(offset uint32) (uint8, error) {
	if offset >= uint32(len(r.data)) {
		return 0, curated.Errorf(bus.AddressOutOfBounds, offset)
	}
	return r.data[offset], nil
}

// Write implements the bus.Device interface. The write is ignored.
func (r *ROM) Write(_ uint32, _ uint8) error {
	return nil
}

// ReadStream implements the bus.Device interface.
func (r *ROM) ReadStream(offset uint32, buffer []byte) error {
	if uint64(offset)+uint64(len(buffer)) > uint64(len(r.data)) {
		return curated.Errorf(bus.AddressOutOfBounds, offset)
	}
	copy(buffer, r.data[offset:])
	return nil
}

// WriteStream implements the bus.Device interface. The write is ignored.
func (r *ROM) WriteStream(_ uint32, _ []byte) error {
	return nil
}
