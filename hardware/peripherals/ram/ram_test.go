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

package ram_test

import (
	"testing"

	"github.com/yardland/yardland/curated"
	"github.com/yardland/yardland/hardware/memory/bus"
	"github.com/yardland/yardland/hardware/memory/physical"
	"github.com/yardland/yardland/hardware/peripherals/ram"
	"github.com/yardland/yardland/test"
)

func TestRoundTrip(t *testing.T) {
	r := ram.New(0x10000)
	test.ExpectEquality(t, r.Len(), uint32(0x10000))

	for _, a := range []uint32{0, 1, 0x1234, 0xffff} {
		test.DemandSuccess(t, r.Write(a, uint8(a^0x5a)))
		v, err := r.Read(a)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint8(a^0x5a))
	}

	test.DemandSuccess(t, bus.WriteDWord(r, 0x100, 0xdeadbeef))
	d, err := bus.ReadDWord(r, 0x100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, uint32(0xdeadbeef))

	b, err := r.Read(0x100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(0xef))

	test.DemandSuccess(t, bus.WriteQWord(r, 0x200, 0x1122334455667788))
	q, err := bus.ReadQWord(r, 0x200)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, q, uint64(0x1122334455667788))

	test.DemandSuccess(t, bus.WriteWord(r, 0x300, 0xabcd))
	w, err := bus.ReadWord(r, 0x300)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint16(0xabcd))
}

func TestBounds(t *testing.T) {
	r := ram.New(0x100)

	_, err := r.Read(0x100)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressOutOfBounds))

	err = r.Write(0x100, 0)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressOutOfBounds))

	err = r.WriteStream(0xff, []byte{1, 2})
	test.ExpectSuccess(t, curated.Is(err, bus.AddressOutOfBounds))

	_, err = bus.ReadWord(r, 0xff)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressOutOfBounds))
}

func TestView(t *testing.T) {
	s := physical.NewStore(0x1000)

	r, err := ram.NewView(s, 0x800, 0x100)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, r.Write(0x10, 0x99))
	v, err := s.Read(0x810)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x99))

	// the view is bounded by its own size, not by the size of the store
	err = r.Write(0x100, 0)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressOutOfBounds))

	_, err = ram.NewView(s, 0xf00, 0x200)
	test.ExpectFailure(t, err)
}
