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

// Package ram implements a read/write memory device. The device can own its
// own store or it can be a view onto a region of a store shared with other
// parts of the machine.
package ram

import (
	"github.com/yardland/yardland/curated"
	"github.com/yardland/yardland/hardware/memory/bus"
	"github.com/yardland/yardland/hardware/memory/physical"
)

// RAM is a bus.Device backed by a physical.Store.
type RAM struct {
	label string
	store *physical.Store
	base  uint32
	size  uint32
}

// New creates a RAM device with its own store of the specified size.
func New(size uint32) *RAM {
	return &RAM{
		label: "RAM",
		store: physical.NewStore(size),
		size:  size,
	}
}

// NewView creates a RAM device that accesses size bytes of an existing store,
// starting at base. Writes through the device are visible to anything else
// using the store.
func NewView(store *physical.Store, base uint32, size uint32) (*RAM, error) {
	if uint64(base)+uint64(size) > uint64(store.Len()) {
		return nil, curated.Errorf(bus.AddressOutOfBounds, base+size)
	}
	return &RAM{
		label: "RAM",
		store: store,
		base:  base,
		size:  size,
	}, nil
}

// SetLabel changes the label of the device.
func (r *RAM) SetLabel(label string) {
	r.label = label
}

// Label implements the bus.Device interface.
func (r *RAM) Label() string {
	return r.label
}

// Len implements the bus.Device interface.
func (r *RAM) Len() uint32 {
	return r.size
}

func (r *RAM) check(offset uint32, n uint32) error {
	if uint64(offset)+uint64(n) > uint64(r.size) {
		return curated.Errorf(bus.AddressOutOfBounds, offset)
	}
	return nil
}

// Read implements the bus.Device interface.
func (r *RAM) Read(offset uint32) (uint8, error) {
	if err := r.check(offset, 1); err != nil {
		return 0, err
	}
	return r.store.Read(r.base + offset)
}

// Write implements the bus.Device interface.
func (r *RAM) Write(offset uint32, data uint8) error {
	if err := r.check(offset, 1); err != nil {
		return err
	}
	return r.store.Write(r.base+offset, data)
}

// ReadStream implements the bus.Device interface.
func (r *RAM) ReadStream(offset uint32, buffer []byte) error {
	if err := r.check(offset, uint32(len(buffer))); err != nil {
		return err
	}
	return r.store.ReadStream(r.base+offset, buffer)
}

// WriteStream implements the bus.Device interface.
func (r *RAM) WriteStream(offset uint32, buffer []byte) error {
	if err := r.check(offset, uint32(len(buffer))); err != nil {
		return err
	}
	return r.store.WriteStream(r.base+offset, buffer)
}

// Store returns the store underlying the device.
func (r *RAM) Store() *physical.Store {
	return r.store
}
