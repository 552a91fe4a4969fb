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

package cpu

import "github.com/yardland/yardland/coprocessor"

// StopReason is the reason a Core stopped.
type StopReason int

// List of valid stop reasons.
const (
	NoReason StopReason = iota
	Coprocessor
	WaitInterrupt
	Stop
)

func (r StopReason) String() string {
	switch r {
	case NoReason:
		return "no reason"
	case Coprocessor:
		return "coprocessor"
	case WaitInterrupt:
		return "wait interrupt"
	case Stop:
		return "stop"
	}
	return "unknown stop reason"
}

// Memory is the interface the Core uses for all memory access. Addresses are
// virtual. The implementation translates and decodes the address and handles
// any faults, so the Core never sees an error.
type Memory interface {
	Read(address uint32) uint8
	Write(address uint32, data uint8)
}

// Core is the CPU instruction-set emulator. The machine drives the Core by
// calling Step() until the Core stops and then acts on the reason.
type Core interface {
	// Plumb attaches the memory the Core uses. Must be called before Reset().
	Plumb(mem Memory)

	// Reset the Core. If trace is true the Core logs every step.
	Reset(trace bool)

	// Step executes a single instruction.
	Step()

	IsStopped() bool
	StopReason() StopReason

	// Resume after a stop has been handled.
	Resume()

	// Interrupt delivers an interrupt to the Core.
	Interrupt()

	// CoprocessorInstruction returns the instruction that caused the
	// Coprocessor stop reason. The boolean is false if there is no
	// instruction.
	CoprocessorInstruction() (coprocessor.Instruction, bool)

	// Cycles returns the number of cycles executed since Reset().
	Cycles() uint32
}
