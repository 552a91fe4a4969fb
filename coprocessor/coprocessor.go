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

package coprocessor

import (
	"fmt"

	"github.com/yardland/yardland/curated"
	"github.com/yardland/yardland/hardware/memory/banks"
	"github.com/yardland/yardland/hardware/memory/dma"
	"github.com/yardland/yardland/logger"
)

// Opcode of a coprocessor instruction.
type Opcode uint8

// List of valid opcodes.
const (
	MapBanks Opcode = iota
	DmaTransferVR
	DmaTransferV
	DmaTransferR
)

func (op Opcode) String() string {
	switch op {
	case MapBanks:
		return "MapBanks"
	case DmaTransferVR:
		return "DmaTransferVR"
	case DmaTransferV:
		return "DmaTransferV"
	case DmaTransferR:
		return "DmaTransferR"
	}
	return fmt.Sprintf("Opcode(%d)", uint8(op))
}

// Instruction is a single coprocessor instruction.
type Instruction struct {
	Opcode Opcode
	Args   []uint16
}

func (inst Instruction) String() string {
	return fmt.Sprintf("%s %04x", inst.Opcode, inst.Args)
}

// Error patterns. Both indicate that the emulated program is broken.
const (
	MalformedInstruction = "coprocessor: malformed instruction: %s has %d arguments"
	UnknownOpcode        = "coprocessor: unknown opcode (%d)"
	TransferFailed       = "coprocessor: %s: %v"
)

// the number of argument words for the DMA opcodes.
const dmaArgs = 6

// Dispatcher executes coprocessor instructions.
type Dispatcher struct {
	banks *banks.Unit
	dma   *dma.Engine
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type.
func NewDispatcher(banks *banks.Unit, dma *dma.Engine) *Dispatcher {
	return &Dispatcher{
		banks: banks,
		dma:   dma,
	}
}

// le32 assembles a 32 bit value from two little-endian 16 bit words.
func le32(lo uint16, hi uint16) uint32 {
	return uint32(hi)<<16 | uint32(lo)
}

// Dispatch the instruction.
func (dsp *Dispatcher) Dispatch(inst Instruction) error {
	logger.Logf(logger.Allow, "coprocessor", "%s", inst)

	switch inst.Opcode {
	case MapBanks:
		if len(inst.Args)%2 != 0 {
			return curated.Errorf(MalformedInstruction, inst.Opcode, len(inst.Args))
		}
		for i := 0; i < len(inst.Args); i += 2 {
			dsp.banks.Map(uint8(inst.Args[i]), inst.Args[i+1])
		}
		return nil

	case DmaTransferVR, DmaTransferV, DmaTransferR:
		if len(inst.Args) != dmaArgs {
			return curated.Errorf(MalformedInstruction, inst.Opcode, len(inst.Args))
		}

		src := le32(inst.Args[0], inst.Args[1])
		dest := le32(inst.Args[2], inst.Args[3])
		size := le32(inst.Args[4], inst.Args[5])

		var err error
		switch inst.Opcode {
		case DmaTransferVR:
			err = dsp.dma.TransferVR(src, dest, size)
		case DmaTransferV:
			err = dsp.dma.TransferV(src, dest, size)
		case DmaTransferR:
			err = dsp.dma.TransferR(src, dest, size)
		}
		if err != nil {
			return curated.Errorf(TransferFailed, inst.Opcode, err)
		}
		return nil
	}

	return curated.Errorf(UnknownOpcode, uint8(inst.Opcode))
}
