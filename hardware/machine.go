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


package hardware

import (
	"io"
	"time"

	"github.com/yardland/yardland/coprocessor"
	"github.com/yardland/yardland/curated"
	"github.com/yardland/yardland/hardware/cpu"
	"github.com/yardland/yardland/hardware/framebuffer"
	"github.com/yardland/yardland/hardware/memory/banks"
	"github.com/yardland/yardland/hardware/memory/bus"
	"github.com/yardland/yardland/hardware/memory/dma"
	"github.com/yardland/yardland/hardware/memory/faults"
	"github.com/yardland/yardland/hardware/memory/memorymap"
	"github.com/yardland/yardland/hardware/memory/mmu"
	"github.com/yardland/yardland/hardware/memory/physical"
	"github.com/yardland/yardland/hardware/peripherals/keyboard"
	"github.com/yardland/yardland/hardware/peripherals/ram"
	"github.com/yardland/yardland/hardware/peripherals/rom"
	"github.com/yardland/yardland/hardware/peripherals/serial"
	"github.com/yardland/yardland/hardware/peripherals/serial/hostio"
	"github.com/yardland/yardland/hardware/preferences"
	"github.com/yardland/yardland/logger"
)

// Sentinal error patterns.
const (
	BusFault          = "machine: bus fault: %v"
	NoCore            = "machine: no core attached"
	NoFramebuffer     = "machine: no framebuffer"
	InvalidMemorySize = "machine: invalid memory size (%d)"
)

// Machine is the entire emulated machine except for the CPU core.
type Machine struct {
	Prefs *preferences.Preferences

	Store *physical.Store
	Bus   *mmu.Bus
	Banks *banks.Unit
	DMA   *dma.Engine

	Coprocessor *coprocessor.Dispatcher

	RAM      *ram.RAM
	ROM      *rom.ROM
	Serial   *serial.Serial
	Keyboard *keyboard.Keyboard

	// nil if the framebuffer preference is false
	Framebuffer *framebuffer.Framebuffer

	Core cpu.Core

	// the serial worker. nil until StartSerial() is called
	worker *serial.Running

	// the first fault seen under the strict policy. the run ends as soon as
	// the core returns control to the machine
	strictFault error
}

// NewMachine creates a new Machine with the default layout. The console is
// the host endpoint for serial pipe 1 and can be nil. If the serial port
// preference is not empty the port is opened as the endpoint for pipe 2.
//
// The optional boot ROM data is mapped at memorymap.ROMBase.
func NewMachine(p *preferences.Preferences, console hostio.Endpoint, romData []byte) (*Machine, error) {
	size := p.MemorySize.Get().(int)
	if size <= 0 || uint64(size) > 0xffffffff {
		return nil, curated.Errorf(InvalidMemorySize, size)
	}

	m := &Machine{
		Prefs: p,
		Store: physical.NewStore(uint32(size)),
		Bus:   mmu.NewBus("bus"),
		Banks: banks.NewUnit(),
	}

	if p.Strict.Get().(bool) {
		m.Bus.Policy = mmu.Strict
	}
	m.Bus.Default = uint8(p.UnmappedValue.Get().(int))

	// DMA works on the physical store directly. the device mappings on the
	// bus do not apply
	m.DMA = dma.NewEngine(m.Banks, m.Store)
	m.Coprocessor = coprocessor.NewDispatcher(m.Banks, m.DMA)

	var pipe2 hostio.Endpoint
	if port := p.SerialPort.Get().(string); port != "" {
		pt, err := hostio.NewPort(port, uint(p.SerialBaud.Get().(int)))
		if err != nil {
			return nil, curated.Errorf("machine: %v", err)
		}
		pipe2 = pt
	}

	m.Serial = serial.NewSerial(console, pipe2)
	m.Keyboard = keyboard.NewKeyboard()

	var err error

	m.RAM, err = ram.NewView(m.Store, 0, m.Store.Len())
	if err != nil {
		return nil, err
	}

	if p.Framebuffer.Get().(bool) {
		m.Framebuffer, err = framebuffer.NewFramebuffer(m.Store, memorymap.FramebufferBase,
			memorymap.FramebufferWidth, memorymap.FramebufferHeight)
		if err != nil {
			return nil, err
		}
	}

	// first match wins so the order of mapping is important. the RAM must
	// be last
	m.Bus.MapDevice(memorymap.SerialBase, m.Serial.Len(), m.Serial)
	m.Bus.MapDevice(memorymap.KeyboardBase, m.Keyboard.Len(), m.Keyboard)
	if len(romData) > 0 {
		m.ROM = rom.New("ROM", romData)
		m.Bus.MapDevice(memorymap.ROMBase, m.ROM.Len(), m.ROM)
	}
	m.Bus.MapDevice(0, m.RAM.Len(), m.RAM)

	return m, nil
}

// Snapshot writes the current framebuffer contents to w as a BMP image.
func (m *Machine) Snapshot(w io.Writer) error {
	if m.Framebuffer == nil {
		return curated.Errorf(NoFramebuffer)
	}
	return m.Framebuffer.Snapshot(w, m.DMA)
}

// AttachCore plumbs the CPU core into the machine. The core is not reset
// until Run() is called.
func (m *Machine) AttachCore(core cpu.Core) {
	m.Core = core
	m.Core.Plumb(m)
}

// LoadImage copies the data into physical memory at the virtual address.
// Device mappings on the bus are not consulted. Should be called before the
// emulation starts.
func (m *Machine) LoadImage(address uint32, data []byte) error {
	if err := m.DMA.MoveIn(data, address); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "machine", "loaded %d bytes at %08x", len(data), address)
	return nil
}

// StartSerial starts the serial worker with the tick interval in the
// preferences. It does nothing if the worker has already been started.
func (m *Machine) StartSerial() {
	if m.worker != nil {
		return
	}
	m.worker = m.Serial.Start(m.Prefs.SerialTick.Get().(time.Duration))
}

// Close stops the serial worker and closes the host endpoints.
func (m *Machine) Close() error {
	if m.worker != nil {
		m.worker.Stop()
	}
	return m.Serial.Close()
}

// fault handles an error from the bus. errors are recorded in the fault log
// if the bus hasn't done so already.
func (m *Machine) fault(op faults.Operation, address uint32, err error) {
	if err == nil || curated.Is(err, bus.NoData) {
		return
	}

	if !curated.Is(err, bus.AddressNotMapped) {
		m.Bus.Faults.NewEntry(faults.Device, op, address, err)
	}

	if m.Bus.Policy == mmu.Strict {
		if m.strictFault == nil {
			m.strictFault = curated.Errorf(BusFault, err)
		}
		return
	}

	logger.Logf(logger.Allow, "machine", "%s %08x: %v", op, address, err)
}

// Read implements the cpu.Memory interface. The address is virtual.
func (m *Machine) Read(address uint32) uint8 {
	addr := m.Banks.Translate(address)
	v, err := m.Bus.Read(addr)
	m.fault(faults.Read, addr, err)
	return v
}

// Write implements the cpu.Memory interface. The address is virtual.
func (m *Machine) Write(address uint32, data uint8) {
	addr := m.Banks.Translate(address)
	err := m.Bus.Write(addr, data)
	m.fault(faults.Write, addr, err)
}

func (m *Machine) String() string {
	return m.Bus.Summary()
}
