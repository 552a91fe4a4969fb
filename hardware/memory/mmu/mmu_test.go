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

package mmu_test

import (
	"testing"

	"github.com/yardland/yardland/curated"
	"github.com/yardland/yardland/hardware/memory/bus"
	"github.com/yardland/yardland/hardware/memory/mmu"
	"github.com/yardland/yardland/hardware/peripherals/keyboard"
	"github.com/yardland/yardland/hardware/peripherals/ram"
	"github.com/yardland/yardland/hardware/peripherals/rom"
	"github.com/yardland/yardland/test"
)

func TestDecode(t *testing.T) {
	b := mmu.NewBus("test")
	lo := ram.New(0x100)
	hi := ram.New(0x100)
	b.MapDevice(0x0000, 0x100, lo)
	b.MapDevice(0x1000, 0x100, hi)

	dev, offset, err := b.Decode(0x1010)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, dev == hi)
	test.ExpectEquality(t, offset, uint32(0x10))

	// the range is half open. the address at base+size is not mapped
	_, _, err = b.Decode(0x100)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressNotMapped))
	_, _, err = b.Decode(0x10ff)
	test.ExpectSuccess(t, err)
	_, _, err = b.Decode(0x1100)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressNotMapped))

	test.ExpectEquality(t, b.Len(), uint32(0x1100))
}

func TestFirstMatchWins(t *testing.T) {
	b := mmu.NewBus("test")
	io := rom.New("IO", []byte{0xaa, 0xbb})
	mem := ram.New(0x10000)

	b.MapDevice(0x0010, 2, io)
	b.MapDevice(0x0000, 0x10000, mem)

	v, err := b.Read(0x0011)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xbb))

	// writes to the shadowed region go to the ROM and are discarded
	test.ExpectSuccess(t, b.Write(0x0010, 0x55))
	v, err = mem.Read(0x0010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0))

	// addresses either side are RAM
	test.ExpectSuccess(t, b.Write(0x0012, 0x55))
	v, err = mem.Read(0x0012)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x55))
}

func TestRemap(t *testing.T) {
	b := mmu.NewBus("test")
	r := ram.New(0x10)
	b.MapDevice(0x100, 0x10, r)

	test.DemandSuccess(t, b.RemapDevice(0x100, 0x200))

	test.ExpectSuccess(t, b.Write(0x205, 0x42))
	v, err := r.Read(5)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x42))

	_, _, err = b.Decode(0x105)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressNotMapped))

	err = b.RemapDevice(0x100, 0x300)
	test.ExpectSuccess(t, curated.Is(err, bus.DeviceNotFound))
}

func TestUnmappedLenient(t *testing.T) {
	b := mmu.NewBus("test")
	r := ram.New(0x100)
	b.MapDevice(0, 0x100, r)

	v, err := b.Read(0x5000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0))

	test.ExpectSuccess(t, b.Write(0x5000, 0xff))

	// the value written to the unmapped address is not visible anywhere
	v, err = b.Read(0x5000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0))

	buf := []byte{1, 2, 3}
	test.ExpectSuccess(t, b.ReadStream(0x5000, buf))
	test.ExpectEquality(t, string(buf), string([]byte{0, 0, 0}))

	// a different default value for unmapped reads
	b.Default = 0xff
	v, err = b.Read(0x5000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xff))

	// both the read and the write are in the fault log
	test.ExpectEquality(t, b.Faults.Len(), 2)
}

func TestUnmappedStrict(t *testing.T) {
	b := mmu.NewBus("test")
	b.Policy = mmu.Strict

	_, err := b.Read(0x5000)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressNotMapped))

	err = b.Write(0x5000, 0)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressNotMapped))

	err = b.WriteStream(0x5000, []byte{1, 2})
	test.ExpectSuccess(t, curated.Is(err, bus.AddressNotMapped))

	test.ExpectEquality(t, b.Faults.Len(), 2)
}

func TestDeviceErrorsPropagate(t *testing.T) {
	b := mmu.NewBus("test")
	b.MapDevice(0x10, 2, keyboard.NewKeyboard())
	b.MapDevice(0x100, 0x10, ram.New(0x10))

	err := b.Write(0x10, 0x41)
	test.ExpectSuccess(t, curated.Is(err, bus.Unsupported))

	// a stream that runs off the end of the device is refused by the device
	err = b.WriteStream(0x10e, []byte{1, 2, 3})
	test.ExpectSuccess(t, curated.Is(err, bus.AddressOutOfBounds))

	// device errors are not unmapped faults
	test.ExpectEquality(t, b.Faults.Len(), 0)
}

func TestNesting(t *testing.T) {
	inner := mmu.NewBus("inner")
	r := ram.New(0x100)
	inner.MapDevice(0x80, 0x80, r)

	outer := mmu.NewBus("outer")
	outer.MapDevice(0x10000, inner.Len(), inner)

	test.ExpectSuccess(t, outer.Write(0x10081, 0x77))
	v, err := r.Read(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x77))

	test.DemandSuccess(t, bus.WriteDWord(outer, 0x10090, 0x01020304))
	d, err := bus.ReadDWord(r, 0x10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, uint32(0x01020304))
}

func TestSummary(t *testing.T) {
	b := mmu.NewBus("test")
	b.MapDevice(0x00010000, 5, ram.New(5))
	b.MapDevice(0x00000000, 0x10000, rom.New("ROM", make([]byte, 0x10000)))

	test.ExpectEquality(t, b.Summary(), "00010000 -> 00010004\tRAM\n00000000 -> 0000ffff\tROM\n")
	test.ExpectEquality(t, len(b.Mappings()), 2)
}
