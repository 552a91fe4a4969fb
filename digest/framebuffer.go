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


package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/yardland/yardland/hardware/framebuffer"
)

// Framebuffer is a Digest of the frames copied from a framebuffer.
type Framebuffer struct {
	fb     *framebuffer.Framebuffer
	digest [sha1.Size]byte

	// the head of the slice holds the previous digest. the frame data
	// follows
	pixels []byte

	frames int
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer(fb *framebuffer.Framebuffer) *Framebuffer {
	return &Framebuffer{
		fb:     fb,
		pixels: make([]byte, sha1.Size+int(fb.Len())),
	}
}

func (dig *Framebuffer) String() string {
	return fmt.Sprintf("%s (%d frames)", dig.Hash(), dig.frames)
}

// Hash implements the Digest interface.
func (dig *Framebuffer) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Framebuffer) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frame copies the framebuffer and adds it to the digest. Returns false if
// the framebuffer was busy, in which case the digest is unchanged.
func (dig *Framebuffer) Frame() (bool, error) {
	ok, err := dig.fb.Refresh(dig.pixels[sha1.Size:])
	if err != nil || !ok {
		return false, err
	}

	copy(dig.pixels, dig.digest[:])
	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	return true, nil
}
