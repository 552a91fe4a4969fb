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

// Package scripted implements a cpu.Core whose behaviour is a Lua script. It
// does not emulate an instruction set. Each call to Step() calls the step()
// function of the script, which uses the following global functions to
// interact with the machine:
//
//	peek(address)		returns the byte at the virtual address
//	poke(address, value)	writes the byte to the virtual address
//	cop(opcode, {words})	traps to the coprocessor
//	wai()			waits for an interrupt
//	stop()			stops the machine
//
// The script may also define reset(), called by Reset(), and irq(), called
// when an interrupt is delivered. The global variable cycles holds the number
// of steps executed so far.
//
// The stop functions cop(), wai() and stop() take effect when the step()
// function returns. If more than one is called in a single step the last one
// wins.
//
// A Lua error stops the core with the cpu.Stop reason. The error is available
// with the Err() function.
//
//	step_count = 0
//	function step()
//		poke(0x10003, 0x41)
//		step_count = step_count + 1
//		if step_count == 10 then
//			stop()
//		end
//	end
package scripted

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/yardland/yardland/coprocessor"
	"github.com/yardland/yardland/hardware/cpu"
	"github.com/yardland/yardland/logger"
)

// Core is a cpu.Core driven by a Lua script.
type Core struct {
	script string
	state  *lua.LState
	mem    cpu.Memory

	trace  bool
	cycles uint32

	stopped bool
	reason  cpu.StopReason

	// the instruction passed to the most recent cop() call
	inst    coprocessor.Instruction
	hasInst bool

	// the most recent stop reason requested by the script during a step
	pending cpu.StopReason

	err error
}

// NewCore is the preferred method of initialisation for the Core type. The
// script is compiled but not run until Reset() is called.
func NewCore(script string) (*Core, error) {
	L := lua.NewState()
	defer L.Close()
	if _, err := L.LoadString(script); err != nil {
		return nil, fmt.Errorf("scripted: %w", err)
	}
	return &Core{script: script}, nil
}

// Plumb implements the cpu.Core interface.
func (c *Core) Plumb(mem cpu.Memory) {
	c.mem = mem
}

// Err returns the Lua error that stopped the core, if any.
func (c *Core) Err() error {
	return c.err
}

func (c *Core) fail(err error) {
	c.err = fmt.Errorf("scripted: %w", err)
	c.stopped = true
	c.reason = cpu.Stop
	logger.Logf(logger.Allow, "scripted", "%v", err)
}

// Reset implements the cpu.Core interface. The Lua state is recreated so
// global variables set by the script are lost.
func (c *Core) Reset(trace bool) {
	if c.state != nil {
		c.state.Close()
	}

	c.trace = trace
	c.cycles = 0
	c.stopped = false
	c.reason = cpu.NoReason
	c.pending = cpu.NoReason
	c.hasInst = false
	c.err = nil

	c.state = lua.NewState()
	c.state.SetGlobal("peek", c.state.NewFunction(c.peek))
	c.state.SetGlobal("poke", c.state.NewFunction(c.poke))
	c.state.SetGlobal("cop", c.state.NewFunction(c.cop))
	c.state.SetGlobal("wai", c.state.NewFunction(c.wai))
	c.state.SetGlobal("stop", c.state.NewFunction(c.stop))
	c.state.SetGlobal("cycles", lua.LNumber(0))

	if err := c.state.DoString(c.script); err != nil {
		c.fail(err)
		return
	}

	c.call("reset")
	c.settle()
}

// call the named global function if it exists. returns false if there was an
// error.
func (c *Core) call(name string) bool {
	fn := c.state.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return true
	}
	err := c.state.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true})
	if err != nil {
		c.fail(err)
		return false
	}
	return true
}

// settle applies any stop requested during a call to the script.
func (c *Core) settle() {
	if c.stopped {
		return
	}
	if c.pending != cpu.NoReason {
		c.stopped = true
		c.reason = c.pending
		c.pending = cpu.NoReason
	}
}

// Step implements the cpu.Core interface.
func (c *Core) Step() {
	if c.stopped || c.state == nil {
		return
	}

	if _, ok := c.state.GetGlobal("step").(*lua.LFunction); !ok {
		c.fail(fmt.Errorf("script has no step() function"))
		return
	}

	c.cycles++
	c.state.SetGlobal("cycles", lua.LNumber(c.cycles))

	if c.trace {
		logger.Logf(logger.Allow, "scripted", "step %d", c.cycles)
	}

	if c.call("step") {
		c.settle()
	}
}

// IsStopped implements the cpu.Core interface.
func (c *Core) IsStopped() bool {
	return c.stopped
}

// StopReason implements the cpu.Core interface.
func (c *Core) StopReason() cpu.StopReason {
	return c.reason
}

// Resume implements the cpu.Core interface. A core stopped by a Lua error
// cannot be resumed.
func (c *Core) Resume() {
	if c.err != nil {
		return
	}
	c.stopped = false
	c.reason = cpu.NoReason
	c.hasInst = false
}

// Interrupt implements the cpu.Core interface.
func (c *Core) Interrupt() {
	if c.state == nil {
		return
	}
	if c.trace {
		logger.Log(logger.Allow, "scripted", "interrupt")
	}
	c.call("irq")
}

// CoprocessorInstruction implements the cpu.Core interface.
func (c *Core) CoprocessorInstruction() (coprocessor.Instruction, bool) {
	return c.inst, c.hasInst
}

// Cycles implements the cpu.Core interface.
func (c *Core) Cycles() uint32 {
	return c.cycles
}

func (c *Core) peek(L *lua.LState) int {
	address := uint32(L.CheckInt64(1))
	var v uint8
	if c.mem != nil {
		v = c.mem.Read(address)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (c *Core) poke(L *lua.LState) int {
	address := uint32(L.CheckInt64(1))
	data := uint8(L.CheckInt(2))
	if c.mem != nil {
		c.mem.Write(address, data)
	}
	return 0
}

func (c *Core) cop(L *lua.LState) int {
	opcode := coprocessor.Opcode(L.CheckInt(1))

	var args []uint16
	if L.GetTop() >= 2 {
		tbl := L.CheckTable(2)
		args = make([]uint16, 0, tbl.Len())
		for i := 1; i <= tbl.Len(); i++ {
			args = append(args, uint16(lua.LVAsNumber(tbl.RawGetInt(i))))
		}
	}

	c.inst = coprocessor.Instruction{Opcode: opcode, Args: args}
	c.hasInst = true
	c.pending = cpu.Coprocessor
	return 0
}

func (c *Core) wai(L *lua.LState) int {
	c.pending = cpu.WaitInterrupt
	return 0
}

func (c *Core) stop(L *lua.LState) int {
	c.pending = cpu.Stop
	return 0
}
