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

package hostio

import (
	"sync"
)

// Buffer is an in-memory Endpoint. Input is supplied with Feed() and output
// is inspected with Output().
type Buffer struct {
	crit   sync.Mutex
	input  []byte
	output []byte
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Feed adds bytes to the input. They will be returned by the next call to
// Available().
func (b *Buffer) Feed(p []byte) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.input = append(b.input, p...)
}

// Output returns a copy of everything written to the Buffer.
func (b *Buffer) Output() []byte {
	b.crit.Lock()
	defer b.crit.Unlock()
	return append([]byte(nil), b.output...)
}

// Write implements the io.Writer interface.
func (b *Buffer) Write(p []byte) (int, error) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.output = append(b.output, p...)
	return len(p), nil
}

// Available implements the Endpoint interface.
func (b *Buffer) Available() ([]byte, error) {
	b.crit.Lock()
	defer b.crit.Unlock()
	if len(b.input) == 0 {
		return nil, nil
	}
	p := b.input
	b.input = nil
	return p, nil
}

// Close implements the Endpoint interface.
func (b *Buffer) Close() error {
	return nil
}
