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

// Package keyboard is a placeholder for the keyboard controller. It occupies
// two ports (data and status) in the address space. Reads always return zero
// and writes are refused.
package keyboard

import (
	"github.com/yardland/yardland/curated"
	"github.com/yardland/yardland/hardware/memory/bus"
)

// the keyboard has a data port and a status port.
const (
	PortData = iota
	PortStatus
	numPorts
)

// Keyboard implements the bus.Device interface.
type Keyboard struct{}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Label implements the bus.Device interface.
func (k *Keyboard) Label() string {
	return "Keyboard"
}

// Len implements the bus.Device interface.
func (k *Keyboard) Len() uint32 {
	return numPorts
}

// Read implements the bus.Device interface.
func (k *Keyboard) Read(_ uint32) (uint8, error) {
	return 0, nil
}

// Write implements the bus.Device interface.
func (k *Keyboard) Write(_ uint32, _ uint8) error {
	return curated.Errorf(bus.Unsupported, k.Label(), "write")
}

// ReadStream implements the bus.Device interface.
func (k *Keyboard) ReadStream(_ uint32, buffer []byte) error {
	clear(buffer)
	return nil
}

// WriteStream implements the bus.Device interface.
func (k *Keyboard) WriteStream(_ uint32, _ []byte) error {
	return curated.Errorf(bus.Unsupported, k.Label(), "write")
}
