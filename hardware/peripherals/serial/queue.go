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

package serial

import (
	"sync"

	"github.com/yardland/yardland/curated"
	"github.com/yardland/yardland/hardware/memory/bus"
)

// queue is a FIFO of bytes behind a poison-aware lock.
type queue struct {
	name string

	crit     sync.Mutex
	poisoned bool
	data     []byte
}

// access calls f with the lock held. if f panics the queue is poisoned
// before the lock is released. f can poison the queue itself by setting the
// poisoned field.
func (q *queue) access(f func(q *queue) error) error {
	q.crit.Lock()
	defer q.crit.Unlock()

	if q.poisoned {
		return curated.Errorf(bus.Poisoned, q.name)
	}

	completed := false
	defer func() {
		if !completed {
			q.poisoned = true
		}
	}()

	err := f(q)
	completed = true

	return err
}

func (q *queue) push(b ...byte) error {
	return q.access(func(q *queue) error {
		q.data = append(q.data, b...)
		return nil
	})
}

// pop returns false if the queue is empty.
func (q *queue) pop() (uint8, bool, error) {
	var v uint8
	var ok bool
	err := q.access(func(q *queue) error {
		if len(q.data) > 0 {
			v = q.data[0]
			q.data = q.data[1:]
			ok = true
		}
		return nil
	})
	return v, ok, err
}

func (q *queue) len() (int, error) {
	var n int
	err := q.access(func(q *queue) error {
		n = len(q.data)
		return nil
	})
	return n, err
}
