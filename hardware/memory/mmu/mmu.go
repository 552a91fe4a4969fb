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

package mmu

import (
	"fmt"
	"strings"

	"github.com/yardland/yardland/curated"
	"github.com/yardland/yardland/hardware/memory/bus"
	"github.com/yardland/yardland/hardware/memory/faults"
	"github.com/yardland/yardland/logger"
)

// Policy determines how the bus handles access to unmapped addresses.
type Policy int

// List of valid policies.
const (
	Lenient Policy = iota
	Strict
)

func (p Policy) String() string {
	switch p {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	}
	return "unknown policy"
}

// Mapping is a single entry in the mapping table. The device is mapped to
// the range [Base, Base+Size).
type Mapping struct {
	Base   uint32
	Size   uint32
	Device bus.Device
}

func (m Mapping) contains(address uint32) bool {
	return address >= m.Base && address-m.Base < m.Size
}

// top returns the first address after the mapping.
func (m Mapping) top() uint64 {
	return uint64(m.Base) + uint64(m.Size)
}

func (m Mapping) String() string {
	return fmt.Sprintf("%08x -> %08x\t%s", m.Base, m.top()-1, m.Device.Label())
}

// Bus routes accesses to the devices in its mapping table.
type Bus struct {
	label    string
	mappings []Mapping

	// the unmapped address policy
	Policy Policy

	// the value returned by reads of unmapped addresses under the lenient
	// policy
	Default uint8

	// the log of unmapped accesses
	Faults *faults.Faults
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(label string) *Bus {
	return &Bus{
		label:  label,
		Faults: faults.NewFaults(),
	}
}

// MapDevice adds the device to the end of the mapping table.
func (b *Bus) MapDevice(base uint32, size uint32, dev bus.Device) {
	b.mappings = append(b.mappings, Mapping{Base: base, Size: size, Device: dev})
	logger.Logf(logger.Allow, "mmu", "%s: mapped %s at %08x (%d bytes)", b.label, dev.Label(), base, size)
}

// RemapDevice moves the first mapping with a base address of oldBase to
// newBase. The size and position in the mapping table are unchanged.
func (b *Bus) RemapDevice(oldBase uint32, newBase uint32) error {
	for i := range b.mappings {
		if b.mappings[i].Base == oldBase {
			b.mappings[i].Base = newBase
			logger.Logf(logger.Allow, "mmu", "%s: remapped %s from %08x to %08x", b.label, b.mappings[i].Device.Label(), oldBase, newBase)
			return nil
		}
	}
	return curated.Errorf(bus.DeviceNotFound, oldBase)
}

// Decode returns the device mapped at the address and the offset of the
// address inside the device.
func (b *Bus) Decode(address uint32) (bus.Device, uint32, error) {
	for _, m := range b.mappings {
		if m.contains(address) {
			return m.Device, address - m.Base, nil
		}
	}
	return nil, 0, curated.Errorf(bus.AddressNotMapped, address)
}

// Mappings returns a copy of the mapping table.
func (b *Bus) Mappings() []Mapping {
	m := make([]Mapping, len(b.mappings))
	copy(m, b.mappings)
	return m
}

// unmapped handles an access to an address that is not mapped. returns nil
// if the access should be treated as successful.
func (b *Bus) unmapped(op faults.Operation, address uint32, err error) error {
	b.Faults.NewEntry(faults.Unmapped, op, address, err)
	if b.Policy == Strict {
		return err
	}
	logger.Logf(logger.Allow, "mmu", "%s: unmapped %s at %08x", b.label, op, address)
	return nil
}

// Label implements the bus.Device interface.
func (b *Bus) Label() string {
	return b.label
}

// Len implements the bus.Device interface. The length of a bus is the top
// of its highest mapping.
func (b *Bus) Len() uint32 {
	var top uint64
	for _, m := range b.mappings {
		if m.top() > top {
			top = m.top()
		}
	}
	if top > 0xffffffff {
		return 0xffffffff
	}
	return uint32(top)
}

// Read implements the bus.Device interface.
func (b *Bus) Read(address uint32) (uint8, error) {
	dev, offset, err := b.Decode(address)
	if err != nil {
		return b.Default, b.unmapped(faults.Read, address, err)
	}
	return dev.Read(offset)
}

// Write implements the bus.Device interface.
func (b *Bus) Write(address uint32, data uint8) error {
	dev, offset, err := b.Decode(address)
	if err != nil {
		return b.unmapped(faults.Write, address, err)
	}
	return dev.Write(offset, data)
}

// ReadStream implements the bus.Device interface. The entire stream is passed
// to the device that owns the first address.
func (b *Bus) ReadStream(address uint32, buffer []byte) error {
	dev, offset, err := b.Decode(address)
	if err != nil {
		for i := range buffer {
			buffer[i] = b.Default
		}
		return b.unmapped(faults.Read, address, err)
	}
	return dev.ReadStream(offset, buffer)
}

// WriteStream implements the bus.Device interface. The entire stream is
// passed to the device that owns the first address.
func (b *Bus) WriteStream(address uint32, buffer []byte) error {
	dev, offset, err := b.Decode(address)
	if err != nil {
		return b.unmapped(faults.Write, address, err)
	}
	return dev.WriteStream(offset, buffer)
}

// Summary returns a string listing the mapping table in registration order.
func (b *Bus) Summary() string {
	s := strings.Builder{}
	for _, m := range b.mappings {
		s.WriteString(m.String())
		s.WriteString("\n")
	}
	return s.String()
}

func (b *Bus) String() string {
	return fmt.Sprintf("%s: %d mappings (%s)", b.label, len(b.mappings), b.Policy)
}
