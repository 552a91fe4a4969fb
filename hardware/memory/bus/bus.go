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

// Device is implemented by everything that can be attached to the address
// space.
type Device interface {
	// Label returns a short human readable name for the device. It is used
	// in memory summaries and log entries.
	Label() string

	// Len returns the number of addressable bytes in the device.
	Len() uint32

	// Read and Write access a single byte at the offset.
	Read(offset uint32) (uint8, error)
	Write(offset uint32, data uint8) error

	// ReadStream fills the buffer with data starting at the offset. WriteStream
	// writes the entire buffer starting at the offset.
	ReadStream(offset uint32, buffer []byte) error
	WriteStream(offset uint32, buffer []byte) error
}

// Sentinal error patterns. Devices and the mmu package return errors created
// with these patterns so that callers can identify the kind of failure with
// curated.Is() and curated.Has().
const (
	// no device is mapped at the address
	AddressNotMapped = "bus: address not mapped (%#08x)"

	// the address is past the end of the device or store
	AddressOutOfBounds = "bus: address out of bounds (%#08x)"

	// the device does not have a register at the offset or the size of the
	// access is wrong for the register
	InvalidAddress = "bus: invalid address (%#08x)"

	// a queue was read but was empty
	NoData = "bus: no data (%s)"

	// a queue is unusable because an earlier failure happened while its lock
	// was held
	Poisoned = "bus: %s is poisoned"

	// a remap request did not match a mapping
	DeviceNotFound = "bus: device not found (%#08x)"

	// the device does not support the operation
	Unsupported = "bus: %s does not support %s"
)
