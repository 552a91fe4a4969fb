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
	"sync/atomic"
	"time"

	"github.com/yardland/yardland/logger"
)

// DefaultTick is the interval between iterations of the serial worker.
const DefaultTick = 10 * time.Millisecond

// Running is a Serial device with a worker goroutine. It is returned by
// Start() and implements the bus.Device interface through the embedded
// Serial.
type Running struct {
	*Serial

	interval time.Duration
	stop     atomic.Bool
	done     chan struct{}
	once     sync.Once
}

// Start a worker goroutine that calls Tick() at the specified interval. An
// interval of zero or less means DefaultTick.
func (s *Serial) Start(interval time.Duration) *Running {
	if interval <= 0 {
		interval = DefaultTick
	}

	r := &Running{
		Serial:   s,
		interval: interval,
		done:     make(chan struct{}),
	}

	go r.run()

	return r
}

func (r *Running) run() {
	defer close(r.done)

	// a panic in the worker will have poisoned whichever queue was locked at
	// the time. the worker cannot continue
	defer func() {
		if rec := recover(); rec != nil {
			logger.Logf(logger.Allow, "serial", "worker stopped: %v", rec)
		}
	}()

	logger.Logf(logger.Allow, "serial", "worker started (%v)", r.interval)

	for !r.stop.Load() {
		if err := r.Tick(); err != nil {
			logger.Logf(logger.Allow, "serial", "%v", err)
		}
		time.Sleep(r.interval)
	}

	logger.Log(logger.Allow, "serial", "worker stopped")
}

// Stop the worker goroutine and wait for it to end. It is safe to call Stop()
// more than once.
func (r *Running) Stop() {
	r.once.Do(func() {
		r.stop.Store(true)
		<-r.done
	})
}
