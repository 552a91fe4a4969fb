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

// Package mmu implements the device bus. Devices are mapped into an address
// range with MapDevice() and every access to the bus is routed to the device
// that owns the address.
//
// Decoding is a linear search of the mapping table in registration order. The
// first mapping whose range contains the address is used. Overlapping
// mappings are not rejected; an earlier mapping shadows a later one. This is
// useful, for example, to place I/O devices over a RAM window that covers the
// entire address space.
//
// The mapping table should be built before emulation starts. The table is not
// protected against concurrent modification.
//
// Access to an address with no mapping is handled according to the Policy of
// the bus. The Lenient policy returns the Default value for reads and drops
// writes. The Strict policy returns an error created with the
// bus.AddressNotMapped pattern. In both cases the access is recorded in the
// fault log.
//
// The Bus type implements the bus.Device interface so buses can be nested.
package mmu
