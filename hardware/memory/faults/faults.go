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

// Package faults records accesses to the address space that did not succeed,
// or that only succeeded because of the lenient unmapped policy. Each distinct
// fault (category, operation and address) is logged once and then counted.
//
// The number of distinct faults is limited to MaxEntries. Faults at new
// addresses after that are counted as dropped but not stored.
package faults

import (
	"fmt"
	"io"
	"sync"
)

// MaxEntries is the maximum number of distinct faults in the log.
const MaxEntries = 1024

// Category of bus fault.
type Category string

// List of valid fault categories.
const (
	Unmapped    Category = "unmapped"
	OutOfBounds Category = "out of bounds"
	Device      Category = "device"
)

// Operation is the kind of access that caused the fault.
type Operation string

// List of valid operations.
const (
	Read  Operation = "read"
	Write Operation = "write"
)

// Entry is a single entry in the fault log.
type Entry struct {
	Category  Category
	Operation Operation
	Address   uint32

	// the error that caused the fault. may be nil for unmapped accesses
	// that were allowed to continue
	Err error

	// number of times this specific fault has been seen
	Count int
}

func (e Entry) String() string {
	s := fmt.Sprintf("%s: %s %08x", e.Category, e.Operation, e.Address)
	if e.Err != nil {
		s = fmt.Sprintf("%s: %v", s, e.Err)
	}
	if e.Count > 1 {
		s = fmt.Sprintf("%s (x%d)", s, e.Count)
	}
	return s
}

type key struct {
	category  Category
	operation Operation
	address   uint32
}

// Faults is the log of bus faults. It is safe to add entries from more than
// one goroutine.
type Faults struct {
	crit    sync.Mutex
	entries map[key]*Entry

	// all faults in order of first appearance
	log []*Entry

	// number of faults not stored because the log was full
	dropped int
}

// NewFaults is the preferred method of initialisation for the Faults type.
func NewFaults() *Faults {
	return &Faults{
		entries: make(map[key]*Entry),
	}
}

// Clear all entries from the log.
func (flt *Faults) Clear() {
	flt.crit.Lock()
	defer flt.crit.Unlock()
	clear(flt.entries)
	flt.log = flt.log[:0]
	flt.dropped = 0
}

// NewEntry records a fault. Returns the entry for the fault, which may have
// been created by an earlier call. If the log is full and the fault has not
// been seen before the returned entry is not stored.
func (flt *Faults) NewEntry(category Category, op Operation, address uint32, err error) Entry {
	flt.crit.Lock()
	defer flt.crit.Unlock()

	k := key{category: category, operation: op, address: address}

	e, found := flt.entries[k]
	if !found {
		if len(flt.log) >= MaxEntries {
			flt.dropped++
			return Entry{
				Category:  category,
				Operation: op,
				Address:   address,
				Err:       err,
				Count:     1,
			}
		}
		e = &Entry{
			Category:  category,
			Operation: op,
			Address:   address,
			Err:       err,
		}
		flt.entries[k] = e
		flt.log = append(flt.log, e)
	}

	e.Count++

	return *e
}

// Len returns the number of distinct faults.
func (flt *Faults) Len() int {
	flt.crit.Lock()
	defer flt.crit.Unlock()
	return len(flt.log)
}

// Dropped returns the number of faults that were not stored because the log
// was full.
func (flt *Faults) Dropped() int {
	flt.crit.Lock()
	defer flt.crit.Unlock()
	return flt.dropped
}

// Log returns a copy of the fault log in order of first appearance.
func (flt *Faults) Log() []Entry {
	flt.crit.Lock()
	defer flt.crit.Unlock()
	l := make([]Entry, len(flt.log))
	for i, e := range flt.log {
		l[i] = *e
	}
	return l
}

// WriteLog writes the log to the io.Writer, one entry per line.
func (flt *Faults) WriteLog(w io.Writer) {
	for _, e := range flt.Log() {
		io.WriteString(w, e.String())
		io.WriteString(w, "\n")
	}
	if d := flt.Dropped(); d > 0 {
		io.WriteString(w, fmt.Sprintf("%d further faults not logged\n", d))
	}
}
