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


package hardware_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/yardland/yardland/coprocessor"
	"github.com/yardland/yardland/curated"
	"github.com/yardland/yardland/hardware"
	"github.com/yardland/yardland/hardware/cpu"
	"github.com/yardland/yardland/hardware/cpu/scripted"
	"github.com/yardland/yardland/hardware/memory/bus"
	"github.com/yardland/yardland/hardware/memory/memorymap"
	"github.com/yardland/yardland/hardware/peripherals/serial/hostio"
	"github.com/yardland/yardland/hardware/preferences"
	"github.com/yardland/yardland/test"
)

// instruction for the synthetic core. the function is called with the memory
// and then the core stops with the reason, unless the reason is NoReason.
type instruction struct {
	fn     func(mem cpu.Memory)
	reason cpu.StopReason
	inst   *coprocessor.Instruction
}

// synthetic core that executes a list of instructions. the core stops with
// cpu.Stop at the end of the list unless loop is true, in which case the list
// is repeated forever.
type synthetic struct {
	mem     cpu.Memory
	program []instruction
	loop    bool

	pc      int
	stopped bool
	reason  cpu.StopReason
	inst    *coprocessor.Instruction
	cycles  uint32

	resets     int
	interrupts int
}

func (c *synthetic) Plumb(mem cpu.Memory) {
	c.mem = mem
}

func (c *synthetic) Reset(_ bool) {
	c.pc = 0
	c.stopped = false
	c.reason = cpu.NoReason
	c.inst = nil
	c.cycles = 0
	c.resets++
}

func (c *synthetic) Step() {
	if c.pc >= len(c.program) {
		if !c.loop {
			c.stopped = true
			c.reason = cpu.Stop
			return
		}
		c.pc = 0
	}

	ins := c.program[c.pc]
	c.pc++
	c.cycles++

	if ins.fn != nil {
		ins.fn(c.mem)
	}
	if ins.reason != cpu.NoReason {
		c.stopped = true
		c.reason = ins.reason
		c.inst = ins.inst
	}
}

func (c *synthetic) IsStopped() bool {
	return c.stopped
}

func (c *synthetic) StopReason() cpu.StopReason {
	return c.reason
}

func (c *synthetic) Resume() {
	c.stopped = false
	c.reason = cpu.NoReason
	c.inst = nil
}

func (c *synthetic) Interrupt() {
	c.interrupts++
}

func (c *synthetic) CoprocessorInstruction() (coprocessor.Instruction, bool) {
	if c.inst == nil {
		return coprocessor.Instruction{}, false
	}
	return *c.inst, true
}

func (c *synthetic) Cycles() uint32 {
	return c.cycles
}

func cop(opcode coprocessor.Opcode, args ...uint16) instruction {
	return instruction{
		reason: cpu.Coprocessor,
		inst:   &coprocessor.Instruction{Opcode: opcode, Args: args},
	}
}

// a machine with 1MB of memory and no framebuffer
func newMachine(t *testing.T, strict bool) (*hardware.Machine, *hostio.Buffer) {
	t.Helper()

	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.MemorySize.Set(0x100000))
	test.DemandSuccess(t, p.Framebuffer.Set(false))
	test.DemandSuccess(t, p.Strict.Set(strict))

	console := hostio.NewBuffer()
	m, err := hardware.NewMachine(p, console, nil)
	test.DemandSuccess(t, err)

	return m, console
}

func TestLayout(t *testing.T) {
	m, _ := newMachine(t, false)
	test.ExpectEquality(t, m.String(), "00010000 -> 00010004\tSerial\n"+
		"00010010 -> 00010011\tKeyboard\n"+
		"00000000 -> 000fffff\tRAM\n")
	test.ExpectEquality(t, m.Framebuffer == nil, true)
}

func TestLayoutWithROM(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Framebuffer.Set(false))
	test.DemandSuccess(t, p.MemorySize.Set(0x01000000))

	m, err := hardware.NewMachine(p, nil, []byte{0xde, 0xad, 0xbe, 0xef})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.String(), "00010000 -> 00010004\tSerial\n"+
		"00010010 -> 00010011\tKeyboard\n"+
		"00ff0000 -> 00ff0003\tROM\n"+
		"00000000 -> 00ffffff\tRAM\n")

	// the ROM shadows the RAM and cannot be written to
	m.Write(0x00ff0001, 0x00)
	test.ExpectEquality(t, m.Read(0x00ff0001), uint8(0xad))
	test.ExpectEquality(t, m.Read(0x00ff0004), uint8(0x00))
}

func TestInvalidMemorySize(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.MemorySize.Set(0))

	_, err = hardware.NewMachine(p, nil, nil)
	test.ExpectSuccess(t, curated.Is(err, hardware.InvalidMemorySize))
}

func TestFramebufferTooLarge(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.MemorySize.Set(0x10000))

	_, err = hardware.NewMachine(p, nil, nil)
	test.ExpectSuccess(t, curated.Is(err, bus.AddressOutOfBounds))
}

func TestNoCore(t *testing.T) {
	m, _ := newMachine(t, false)
	err := m.Run(context.Background(), false)
	test.ExpectSuccess(t, curated.Is(err, hardware.NoCore))
}

func TestBankedTransfer(t *testing.T) {
	m, _ := newMachine(t, false)

	core := &synthetic{
		program: []instruction{
			// virtual bank 5 is real bank 0x0a
			cop(coprocessor.MapBanks, 0x05, 0x000a),
			{fn: func(mem cpu.Memory) {
				for i, v := range []uint8{1, 2, 3, 4} {
					mem.Write(0x00050100+uint32(i), v)
				}
			}},
			// virtual 0x00050100 to real 0x00001000
			cop(coprocessor.DmaTransferVR, 0x0100, 0x0005, 0x1000, 0x0000, 0x0004, 0x0000),
		},
	}
	m.AttachCore(core)

	test.DemandSuccess(t, m.Run(context.Background(), false))
	test.ExpectEquality(t, core.resets, 1)
	test.ExpectEquality(t, m.Banks.Real(0x05), uint16(0x000a))

	// the writes went to the real bank
	v, err := m.Store.Read(0x000a0102)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(3))

	b := make([]byte, 4)
	test.DemandSuccess(t, m.Store.ReadStream(0x00001000, b))
	test.ExpectEquality(t, string(b), string([]byte{1, 2, 3, 4}))
}

func TestUnmappedLenient(t *testing.T) {
	m, _ := newMachine(t, false)
	m.Bus.Default = 0xff

	var r uint8
	core := &synthetic{
		program: []instruction{
			{fn: func(mem cpu.Memory) {
				mem.Write(0x00200000, 0x12)
				r = mem.Read(0x00200000)
			}},
		},
	}
	m.AttachCore(core)

	test.DemandSuccess(t, m.Run(context.Background(), false))
	test.ExpectEquality(t, r, uint8(0xff))
	test.ExpectEquality(t, m.Bus.Faults.Len(), 2)
}

func TestUnmappedStrict(t *testing.T) {
	m, _ := newMachine(t, true)

	var after bool
	core := &synthetic{
		program: []instruction{
			{fn: func(mem cpu.Memory) {
				_ = mem.Read(0x00200000)
			}},
			{fn: func(_ cpu.Memory) {
				after = true
			}},
		},
	}
	m.AttachCore(core)

	err := m.Run(context.Background(), false)
	test.ExpectSuccess(t, curated.Is(err, hardware.BusFault))
	test.ExpectSuccess(t, curated.Has(err, bus.AddressNotMapped))
	test.ExpectEquality(t, after, false)
	test.ExpectEquality(t, m.Bus.Faults.Len(), 1)
}

func TestDeviceFault(t *testing.T) {
	m, _ := newMachine(t, true)

	core := &synthetic{
		program: []instruction{
			{fn: func(mem cpu.Memory) {
				mem.Write(0x00010010, 0x01)
			}},
		},
	}
	m.AttachCore(core)

	err := m.Run(context.Background(), false)
	test.ExpectSuccess(t, curated.Has(err, bus.Unsupported))
	test.ExpectEquality(t, m.Bus.Faults.Len(), 1)
}

func TestEmptyPipeIsNotAFault(t *testing.T) {
	m, _ := newMachine(t, true)

	var r uint8
	core := &synthetic{
		program: []instruction{
			{fn: func(mem cpu.Memory) {
				r = mem.Read(0x00010003)
			}},
		},
	}
	m.AttachCore(core)

	test.DemandSuccess(t, m.Run(context.Background(), false))
	test.ExpectEquality(t, r, uint8(0))
	test.ExpectEquality(t, m.Bus.Faults.Len(), 0)
}

func TestMalformedInstruction(t *testing.T) {
	m, _ := newMachine(t, false)

	core := &synthetic{
		program: []instruction{
			cop(coprocessor.MapBanks, 0x05, 0x000a, 0x06),
		},
	}
	m.AttachCore(core)

	err := m.Run(context.Background(), false)
	test.ExpectSuccess(t, curated.Is(err, coprocessor.MalformedInstruction))

	// no bank was remapped
	test.ExpectEquality(t, m.Banks.Real(0x05), uint16(0x0005))
}

func TestWaitInterrupt(t *testing.T) {
	m, _ := newMachine(t, false)

	core := &synthetic{
		program: []instruction{
			{reason: cpu.WaitInterrupt},
			{reason: cpu.NoReason},
			{reason: cpu.WaitInterrupt},
			{reason: cpu.Coprocessor},
		},
	}
	m.AttachCore(core)

	test.DemandSuccess(t, m.Run(context.Background(), false))
	test.ExpectEquality(t, core.interrupts, 2)
	test.ExpectEquality(t, core.cycles, uint32(4))
}

func TestCancel(t *testing.T) {
	m, _ := newMachine(t, false)

	core := &synthetic{
		program: []instruction{{}},
		loop:    true,
	}
	m.AttachCore(core)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Run(ctx, false)
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
	test.ExpectSuccess(t, core.cycles < hardware.PerformanceBrake)
}

func TestScripted(t *testing.T) {
	m, console := newMachine(t, false)

	core, err := scripted.NewCore(`
function reset()
	poke(0x10002, 0x01)
end

function step()
	poke(0x10003, 0x48)
	poke(0x10003, 0x69)
	cop(0, {0x05, 0x000a})
	stop()
end
`)
	test.DemandSuccess(t, err)
	m.AttachCore(core)

	test.DemandSuccess(t, m.Run(context.Background(), false))

	// the stop() call replaced the cop() call
	test.ExpectEquality(t, m.Banks.Real(0x05), uint16(0x0005))

	test.DemandSuccess(t, m.Serial.Tick())
	test.ExpectEquality(t, string(console.Output()), "Hi")
	test.DemandSuccess(t, m.Close())
}

func TestScriptedError(t *testing.T) {
	m, _ := newMachine(t, false)

	core, err := scripted.NewCore(`
function step()
	error("boom")
end
`)
	test.DemandSuccess(t, err)
	m.AttachCore(core)

	err = m.Run(context.Background(), false)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, core.Err(), err)
}

func TestLoadImage(t *testing.T) {
	m, _ := newMachine(t, false)
	test.DemandSuccess(t, m.LoadImage(0x00002000, []byte("yardland")))

	b := make([]byte, 8)
	test.DemandSuccess(t, m.Store.ReadStream(0x00002000, b))
	test.ExpectEquality(t, string(b), "yardland")

	test.ExpectFailure(t, m.LoadImage(0x000ffffc, []byte("yardland")))
}

func TestLoadImageUnderDevice(t *testing.T) {
	m, console := newMachine(t, false)

	// the serial registers are mapped over this address but the image goes to
	// physical memory
	test.DemandSuccess(t, m.LoadImage(memorymap.SerialBase, []byte("yardland")))

	b := make([]byte, 8)
	test.DemandSuccess(t, m.Store.ReadStream(memorymap.SerialBase, b))
	test.ExpectEquality(t, string(b), "yardland")
	test.ExpectEquality(t, len(console.Output()), 0)
}

func TestTransferUnderDevice(t *testing.T) {
	m, console := newMachine(t, false)

	src := make([]byte, 0x100)
	for i := range src {
		src[i] = uint8(i)
	}
	test.DemandSuccess(t, m.Store.WriteStream(memorymap.SerialBase, src))

	core := &synthetic{
		program: []instruction{
			// real 0x00010000 to real 0x00002000. the source range covers the
			// serial and keyboard registers
			cop(coprocessor.DmaTransferR, 0x0000, 0x0001, 0x2000, 0x0000, 0x0100, 0x0000),
			// real 0x00002000 back over the keyboard registers
			cop(coprocessor.DmaTransferR, 0x2000, 0x0000, 0x0010, 0x0001, 0x0002, 0x0000),
		},
	}
	m.AttachCore(core)

	test.DemandSuccess(t, m.Run(context.Background(), false))

	b := make([]byte, 0x100)
	test.DemandSuccess(t, m.Store.ReadStream(0x00002000, b))
	test.ExpectSuccess(t, bytes.Equal(b, src))

	v, err := m.Store.Read(memorymap.KeyboardBase)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x00))
	v, err = m.Store.Read(memorymap.KeyboardBase + 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x01))

	// nothing reached the serial device
	test.ExpectEquality(t, len(console.Output()), 0)
	test.ExpectEquality(t, m.Bus.Faults.Len(), 0)
}

func TestSnapshotWithoutFramebuffer(t *testing.T) {
	m, _ := newMachine(t, false)
	var buf bytes.Buffer
	err := m.Snapshot(&buf)
	test.ExpectSuccess(t, curated.Is(err, hardware.NoFramebuffer))
	test.ExpectEquality(t, buf.Len(), 0)
}
