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

// Package banks implements the bank switching unit. The unit extends the 24
// bit addressing of the CPU by translating the virtual bank number (bits 16 to
// 23 of an address) to a 16 bit real bank number. The low 16 bits of the
// address are unchanged by translation.
//
//	real address = table[virtual bank] << 16 | address & 0xffff
//
// The table is the identity mapping after NewUnit() and Reset(). Every one of
// the 256 entries can be remapped. A remapping takes effect immediately.
package banks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/yardland/yardland/logger"
)

// NumBanks is the number of virtual banks.
const NumBanks = 256

// Unit is the bank switching unit.
type Unit struct {
	crit  sync.RWMutex
	table [NumBanks]uint16
}

// NewUnit is the preferred method of initialisation for the Unit type.
func NewUnit() *Unit {
	u := &Unit{}
	u.Reset()
	return u
}

// Reset the bank table to the identity mapping.
func (u *Unit) Reset() {
	u.crit.Lock()
	defer u.crit.Unlock()
	for i := range u.table {
		u.table[i] = uint16(i)
	}
}

// Map the virtual bank to the real bank.
func (u *Unit) Map(virtual uint8, real uint16) {
	u.crit.Lock()
	u.table[virtual] = real
	u.crit.Unlock()
	logger.Logf(logger.Allow, "banks", "map virtual %02x to real %04x", virtual, real)
}

// Real returns the real bank for the virtual bank.
func (u *Unit) Real(virtual uint8) uint16 {
	u.crit.RLock()
	defer u.crit.RUnlock()
	return u.table[virtual]
}

// Translate a virtual address to a real address.
func (u *Unit) Translate(address uint32) uint32 {
	return uint32(u.Real(uint8(address>>16)))<<16 | address&0xffff
}

// String lists the banks that are not identity mapped.
func (u *Unit) String() string {
	u.crit.RLock()
	defer u.crit.RUnlock()

	s := strings.Builder{}
	for i, r := range u.table {
		if uint16(i) != r {
			s.WriteString(fmt.Sprintf("%02x -> %04x\n", i, r))
		}
	}
	if s.Len() == 0 {
		return "identity\n"
	}
	return s.String()
}
