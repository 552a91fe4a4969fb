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

// Package dma implements bulk transfer of data within the address space.
//
// There are three transfer variants, named by how the source and destination
// addresses are interpreted:
//
//	TransferVR	virtual source, real destination
//	TransferV	virtual source, virtual destination
//	TransferR	real source, real destination
//
// Virtual addresses are translated by the bank switching unit before the
// transfer. Only the start address is translated. A transfer that crosses a
// 64KB boundary continues in the real address space and does not follow the
// bank table.
//
// Every transfer reads the entire source region into a scratch buffer before
// writing the destination region. The result of a transfer between
// overlapping regions is therefore the same as a copy through a temporary
// buffer.
package dma

import (
	"github.com/yardland/yardland/curated"
	"github.com/yardland/yardland/hardware/memory/banks"
	"github.com/yardland/yardland/hardware/memory/bus"
	"github.com/yardland/yardland/logger"
)

// Space is the real address space that the DMA engine transfers data in. Both
// physical.Store and mmu.Bus satisfy the interface.
type Space interface {
	Len() uint32
	ReadStream(address uint32, buffer []byte) error
	WriteStream(address uint32, buffer []byte) error
}

// Engine performs DMA transfers.
type Engine struct {
	banks *banks.Unit
	space Space
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(banks *banks.Unit, space Space) *Engine {
	return &Engine{
		banks: banks,
		space: space,
	}
}

func (dma *Engine) check(address uint32, size uint32) error {
	if uint64(address)+uint64(size) > uint64(dma.space.Len()) {
		return curated.Errorf(bus.AddressOutOfBounds, address)
	}
	return nil
}

// transfer size bytes from real address src to real address dest.
func (dma *Engine) transfer(src uint32, dest uint32, size uint32) error {
	if size == 0 {
		return nil
	}

	// check both regions before allocating the scratch buffer. the size of
	// a transfer is controlled by the program being emulated
	if err := dma.check(src, size); err != nil {
		return err
	}
	if err := dma.check(dest, size); err != nil {
		return err
	}

	scratch := make([]byte, size)
	if err := dma.space.ReadStream(src, scratch); err != nil {
		return err
	}
	return dma.space.WriteStream(dest, scratch)
}

// TransferVR transfers size bytes from the virtual source address to the real
// destination address.
func (dma *Engine) TransferVR(src uint32, dest uint32, size uint32) error {
	rsrc := dma.banks.Translate(src)
	logger.Logf(logger.Allow, "dma", "transfer vr: vsrc %08x rsrc %08x dest %08x size %x", src, rsrc, dest, size)
	return dma.transfer(rsrc, dest, size)
}

// TransferV transfers size bytes from the virtual source address to the
// virtual destination address.
func (dma *Engine) TransferV(src uint32, dest uint32, size uint32) error {
	rsrc := dma.banks.Translate(src)
	rdest := dma.banks.Translate(dest)
	logger.Logf(logger.Allow, "dma", "transfer v: vsrc %08x rsrc %08x vdest %08x rdest %08x size %x", src, rsrc, dest, rdest, size)
	return dma.transfer(rsrc, rdest, size)
}

// TransferR transfers size bytes from the real source address to the real
// destination address.
func (dma *Engine) TransferR(src uint32, dest uint32, size uint32) error {
	logger.Logf(logger.Allow, "dma", "transfer r: src %08x dest %08x size %x", src, dest, size)
	return dma.transfer(src, dest, size)
}

// MoveOut copies len(dest) bytes from the address space into dest. The start
// address is virtual if the virtual argument is true.
func (dma *Engine) MoveOut(dest []byte, start uint32, virtual bool) error {
	if virtual {
		start = dma.banks.Translate(start)
	}
	if err := dma.check(start, uint32(len(dest))); err != nil {
		return err
	}
	return dma.space.ReadStream(start, dest)
}

// MoveIn copies src into the address space starting at the virtual start
// address.
func (dma *Engine) MoveIn(src []byte, start uint32) error {
	start = dma.banks.Translate(start)
	if err := dma.check(start, uint32(len(src))); err != nil {
		return err
	}
	return dma.space.WriteStream(start, src)
}
