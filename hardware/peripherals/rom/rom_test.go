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

package rom_test

import (
	"testing"

	"github.com/yardland/yardland/curated"
	"github.com/yardland/yardland/hardware/memory/bus"
	"github.com/yardland/yardland/hardware/peripherals/rom"
	"github.com/yardland/yardland/test"
)

func TestImmutable(t *testing.T) {
	data := []byte{0xa9, 0x00, 0x8d, 0x00, 0x01}
	r := rom.New("BOOT", data)
	test.ExpectEquality(t, r.Len(), uint32(5))
	test.ExpectEquality(t, r.Label(), "BOOT")

	// changing the original slice does not change the ROM
	data[0] = 0xff

	// writes are accepted without error
	test.ExpectSuccess(t, r.Write(0, 0x55))
	test.ExpectSuccess(t, r.WriteStream(1, []byte{1, 2, 3}))
	test.ExpectSuccess(t, bus.WriteWord(r, 3, 0xffff))

	// and the content is unchanged
	buf := make([]byte, 5)
	test.DemandSuccess(t, r.ReadStream(0, buf))
	test.ExpectEquality(t, string(buf), string([]byte{0xa9, 0x00, 0x8d, 0x00, 0x01}))
}

func TestBounds(t *testing.T) {
	r := rom.New("BOOT", []byte{1, 2})

	v, err := r.Read(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(2))

	_, err = r.Read(2)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressOutOfBounds))

	_, err = bus.ReadWord(r, 1)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressOutOfBounds))
}
