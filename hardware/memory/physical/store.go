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

package physical

import (
	"encoding/binary"
	"sync"
	"unsafe"

	"github.com/yardland/yardland/curated"
	"github.com/yardland/yardland/hardware/memory/bus"
)

// Value is the set of types that can be read from and written to the store.
type Value interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Store is the backing memory of the address space.
type Store struct {
	crit sync.RWMutex
	data []byte
}

// NewStore is the preferred method of initialisation for the Store type.
func NewStore(size uint32) *Store {
	return &Store{
		data: make([]byte, size),
	}
}

// Len returns the size of the store in bytes.
func (s *Store) Len() uint32 {
	return uint32(len(s.data))
}

// check that the range [addr, addr+size) is inside the store. must be called
// with the lock held.
func (s *Store) check(addr uint32, size uint32) error {
	if uint64(addr)+uint64(size) > uint64(len(s.data)) {
		return curated.Errorf(bus.AddressOutOfBounds, addr)
	}
	return nil
}

func sizeOf[T Value]() uint32 {
	var v T
	return uint32(unsafe.Sizeof(v))
}

func decode[T Value](b []byte) T {
	switch len(b) {
	case 1:
		return T(b[0])
	case 2:
		return T(binary.LittleEndian.Uint16(b))
	case 4:
		return T(binary.LittleEndian.Uint32(b))
	}
	return T(binary.LittleEndian.Uint64(b))
}

func encode[T Value](b []byte, v T) {
	switch len(b) {
	case 1:
		b[0] = uint8(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(v))
	default:
		binary.LittleEndian.PutUint64(b, uint64(v))
	}
}

// Read a single value of type T from the address.
func Read[T Value](s *Store, addr uint32) (T, error) {
	sz := sizeOf[T]()

	s.crit.RLock()
	defer s.crit.RUnlock()

	if err := s.check(addr, sz); err != nil {
		return 0, err
	}
	return decode[T](s.data[addr : addr+sz]), nil
}

// Write a single value of type T to the address.
func Write[T Value](s *Store, addr uint32, v T) error {
	sz := sizeOf[T]()

	s.crit.Lock()
	defer s.crit.Unlock()

	if err := s.check(addr, sz); err != nil {
		return err
	}
	encode(s.data[addr:addr+sz], v)
	return nil
}

// ReadSlice reads size bytes from the address and returns them as values of
// type T. Trailing bytes that do not make a complete value are discarded.
func ReadSlice[T Value](s *Store, addr uint32, size uint32) ([]T, error) {
	sz := sizeOf[T]()

	s.crit.RLock()
	defer s.crit.RUnlock()

	if err := s.check(addr, size); err != nil {
		return nil, err
	}

	n := size / sz
	r := make([]T, n)
	for i := uint32(0); i < n; i++ {
		o := addr + i*sz
		r[i] = decode[T](s.data[o : o+sz])
	}
	return r, nil
}

// WriteSlice writes the values to consecutive locations starting at the
// address.
func WriteSlice[T Value](s *Store, addr uint32, v []T) error {
	sz := sizeOf[T]()

	s.crit.Lock()
	defer s.crit.Unlock()

	if err := s.check(addr, sz*uint32(len(v))); err != nil {
		return err
	}

	for i := range v {
		o := addr + uint32(i)*sz
		encode(s.data[o:o+sz], v[i])
	}
	return nil
}

// Read is a convenience function for Read[uint8]().
func (s *Store) Read(addr uint32) (uint8, error) {
	return Read[uint8](s, addr)
}

// Write is a convenience function for Write[uint8]().
func (s *Store) Write(addr uint32, data uint8) error {
	return Write(s, addr, data)
}

// ReadWord is a convenience function for Read[uint16]().
func (s *Store) ReadWord(addr uint32) (uint16, error) {
	return Read[uint16](s, addr)
}

// WriteWord is a convenience function for Write[uint16]().
func (s *Store) WriteWord(addr uint32, data uint16) error {
	return Write(s, addr, data)
}

// ReadDWord is a convenience function for Read[uint32]().
func (s *Store) ReadDWord(addr uint32) (uint32, error) {
	return Read[uint32](s, addr)
}

// WriteDWord is a convenience function for Write[uint32]().
func (s *Store) WriteDWord(addr uint32, data uint32) error {
	return Write(s, addr, data)
}

// ReadQWord is a convenience function for Read[uint64]().
func (s *Store) ReadQWord(addr uint32) (uint64, error) {
	return Read[uint64](s, addr)
}

// WriteQWord is a convenience function for Write[uint64]().
func (s *Store) WriteQWord(addr uint32, data uint64) error {
	return Write(s, addr, data)
}

// ReadStream fills the buffer with bytes starting at the address.
func (s *Store) ReadStream(addr uint32, buffer []byte) error {
	s.crit.RLock()
	defer s.crit.RUnlock()

	if err := s.check(addr, uint32(len(buffer))); err != nil {
		return err
	}
	copy(buffer, s.data[addr:])
	return nil
}

// WriteStream copies the buffer into the store starting at the address.
func (s *Store) WriteStream(addr uint32, buffer []byte) error {
	s.crit.Lock()
	defer s.crit.Unlock()

	if err := s.check(addr, uint32(len(buffer))); err != nil {
		return err
	}
	copy(s.data[addr:], buffer)
	return nil
}

// TryReadStream is like ReadStream() except that it will not wait for a
// writer to finish. The boolean return value is false if the read did not
// happen.
func (s *Store) TryReadStream(addr uint32, buffer []byte) (bool, error) {
	if !s.crit.TryRLock() {
		return false, nil
	}
	defer s.crit.RUnlock()

	if err := s.check(addr, uint32(len(buffer))); err != nil {
		return false, err
	}
	copy(buffer, s.data[addr:])
	return true, nil
}

// Reset sets every byte in the store to zero.
func (s *Store) Reset() {
	s.crit.Lock()
	defer s.crit.Unlock()
	clear(s.data)
}
