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

// Package framebuffer is the contract between the machine and the renderer.
// The framebuffer is a fixed region of the address space holding an RGB565
// image, two bytes per pixel in little-endian order, with no padding between
// rows.
//
// The renderer calls Refresh() to copy the region. Refresh() never waits for
// the CPU or the DMA engine. If the store is being written to at that moment
// the copy is skipped and the renderer should use the previous frame.
package framebuffer

import (
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"

	"github.com/yardland/yardland/curated"
	"github.com/yardland/yardland/hardware/memory/bus"
	"github.com/yardland/yardland/hardware/memory/physical"
)

// the number of bytes per pixel.
const bytesPerPixel = 2

// Framebuffer is a view onto the framebuffer region of a store.
type Framebuffer struct {
	store  *physical.Store
	base   uint32
	Width  int
	Height int
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer(store *physical.Store, base uint32, width int, height int) (*Framebuffer, error) {
	fb := &Framebuffer{
		store:  store,
		base:   base,
		Width:  width,
		Height: height,
	}
	if uint64(base)+uint64(fb.Len()) > uint64(store.Len()) {
		return nil, curated.Errorf(bus.AddressOutOfBounds, base)
	}
	return fb, nil
}

// Base returns the address of the first pixel.
func (fb *Framebuffer) Base() uint32 {
	return fb.base
}

// Len returns the size of the framebuffer in bytes.
func (fb *Framebuffer) Len() uint32 {
	return uint32(fb.Width * fb.Height * bytesPerPixel)
}

// Refresh copies the framebuffer into dst, which must be at least Len() bytes
// long. Returns false if the copy did not happen because the store was being
// written to.
func (fb *Framebuffer) Refresh(dst []byte) (bool, error) {
	if len(dst) < int(fb.Len()) {
		return false, curated.Errorf(bus.InvalidAddress, fb.base)
	}
	return fb.store.TryReadStream(fb.base, dst[:fb.Len()])
}

// rgb565 expands a 16 bit pixel to 8 bits per channel.
func rgb565(v uint16) color.RGBA {
	r := uint8(v >> 11 & 0x1f)
	g := uint8(v >> 5 & 0x3f)
	b := uint8(v & 0x1f)
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 0xff,
	}
}

// Image converts raw framebuffer data, as filled by Refresh(), to an image.
func (fb *Framebuffer) Image(data []byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			i := (y*fb.Width + x) * bytesPerPixel
			img.SetRGBA(x, y, rgb565(uint16(data[i])|uint16(data[i+1])<<8))
		}
	}
	return img
}

// Mover copies a region of real memory into a buffer. Implemented by the
// DMA engine.
type Mover interface {
	MoveOut(dest []byte, start uint32, virtual bool) error
}

// Snapshot writes the current contents of the framebuffer to w as a BMP
// image. The framebuffer is copied with the Mover. Unlike Refresh() the copy
// waits for any writer to finish.
func (fb *Framebuffer) Snapshot(w io.Writer, mv Mover) error {
	data := make([]byte, fb.Len())
	if err := mv.MoveOut(data, fb.base, false); err != nil {
		return err
	}
	return bmp.Encode(w, fb.Image(data))
}
