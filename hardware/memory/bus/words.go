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

package bus

import "encoding/binary"

// ReadWord reads a little-endian 16 bit value from the device.
func ReadWord(d Device, offset uint32) (uint16, error) {
	var b [2]byte
	if err := d.ReadStream(offset, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// ReadDWord reads a little-endian 32 bit value from the device.
func ReadDWord(d Device, offset uint32) (uint32, error) {
	var b [4]byte
	if err := d.ReadStream(offset, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// ReadQWord reads a little-endian 64 bit value from the device.
func ReadQWord(d Device, offset uint32) (uint64, error) {
	var b [8]byte
	if err := d.ReadStream(offset, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// WriteWord writes a 16 bit value to the device in little-endian order.
func WriteWord(d Device, offset uint32, data uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], data)
	return d.WriteStream(offset, b[:])
}

// WriteDWord writes a 32 bit value to the device in little-endian order.
func WriteDWord(d Device, offset uint32, data uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], data)
	return d.WriteStream(offset, b[:])
}

// WriteQWord writes a 64 bit value to the device in little-endian order.
func WriteQWord(d Device, offset uint32, data uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], data)
	return d.WriteStream(offset, b[:])
}
