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


// Package digest creates digests of the framebuffer. A digest is used to
// compare the output of two runs of the emulation without storing the
// output itself.
//
// Digests are chained. The digest of the previous frame is hashed with the
// contents of the current frame, so the final digest depends on every frame
// and on the order of the frames.
package digest

// Digest implementations compute a chained hash.
type Digest interface {
	Hash() string
	ResetDigest()
}
