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


// Package memviz writes a graph of the machine's address space in the
// Graphviz DOT format. The graph shows the mapping table in decode order, the
// banks that are not identity mapped and the fault log.
//
// The store itself is not part of the graph. The data is summarised with the
// Layout type before being passed to github.com/bradleyjkemp/memviz.
package memviz

import (
	"io"

	viz "github.com/bradleyjkemp/memviz"

	"github.com/yardland/yardland/hardware"
	"github.com/yardland/yardland/hardware/memory/banks"
	"github.com/yardland/yardland/hardware/memory/memorymap"
)

// Mapping is a single entry of the mapping table.
type Mapping struct {
	Base   uint32
	Top    uint32
	Device string

	// the area of the default memory map containing the base address
	Area string
}

// Bank is a virtual bank that is not identity mapped.
type Bank struct {
	Virtual uint8
	Real    uint16
}

// Layout is a summary of the address space of a machine.
type Layout struct {
	Mappings []Mapping
	Banks    []Bank
	Faults   []string
}

// NewLayout summarises the address space of the machine.
func NewLayout(m *hardware.Machine) *Layout {
	l := &Layout{}

	var romSize uint32
	if m.ROM != nil {
		romSize = m.ROM.Len()
	}

	for _, mp := range m.Bus.Mappings() {
		l.Mappings = append(l.Mappings, Mapping{
			Base:   mp.Base,
			Top:    mp.Base + mp.Size - 1,
			Device: mp.Device.Label(),
			Area:   memorymap.MapAddress(mp.Base, romSize).String(),
		})
	}

	for v := 0; v < banks.NumBanks; v++ {
		if r := m.Banks.Real(uint8(v)); r != uint16(v) {
			l.Banks = append(l.Banks, Bank{Virtual: uint8(v), Real: r})
		}
	}

	for _, e := range m.Bus.Faults.Log() {
		l.Faults = append(l.Faults, e.String())
	}

	return l
}

// Write the graph of the machine to w.
func Write(w io.Writer, m *hardware.Machine) {
	viz.Map(w, NewLayout(m))
}
