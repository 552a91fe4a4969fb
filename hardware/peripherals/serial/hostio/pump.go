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
	"io"
	"sync"

	"github.com/yardland/yardland/logger"
)

// the number of reads that can be queued by a pump before the reading
// goroutine waits for Available() to be called.
const pumpQueueLen = 64

// pump reads from a blocking io.Reader in its own goroutine and queues what
// it reads for non-blocking collection.
type pump struct {
	label string
	queue chan []byte

	crit sync.Mutex
	err  error
}

func newPump(label string, r io.Reader) *pump {
	p := &pump{
		label: label,
		queue: make(chan []byte, pumpQueueLen),
	}

	go func() {
		buf := make([]byte, 256)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				p.queue <- append([]byte(nil), buf[:n]...)
			}
			if err != nil {
				if err != io.EOF {
					logger.Logf(logger.Allow, "hostio", "%s: %v", p.label, err)
				}
				p.crit.Lock()
				p.err = err
				p.crit.Unlock()
				close(p.queue)
				return
			}
		}
	}()

	return p
}

// available drains the queue without blocking. end of file is not an
// error. the endpoint simply never has any more data.
func (p *pump) available() ([]byte, error) {
	var data []byte
	for {
		select {
		case b, ok := <-p.queue:
			if !ok {
				p.crit.Lock()
				defer p.crit.Unlock()
				if p.err != nil && p.err != io.EOF {
					return data, p.err
				}
				return data, nil
			}
			data = append(data, b...)
		default:
			return data, nil
		}
	}
}
