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

// Package physical implements the backing store for the machine's address
// space. The store is a fixed size array of bytes, allocated once, which is
// shared between the CPU, the DMA engine and the renderer.
//
// Multi-byte values are always little-endian. The generic Read() and Write()
// functions are the typed interface to the store:
//
//	v, err := physical.Read[uint32](store, 0x1000)
//	err = physical.Write[uint16](store, 0x2000, 0xbeef)
//
// ReadSlice() reads a run of typed values. Any trailing bytes that do not
// make up a complete value are silently discarded, so reading five bytes as
// uint32 values returns a single value.
//
// The store is guarded by a sync.RWMutex. Many readers may access the store at
// once but a writer has exclusive access. TryReadStream() allows a reader that
// must not stall (the renderer) to skip a read while a writer is active.
package physical
