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
	"sync/atomic"

	"github.com/yardland/yardland/curated"
	"github.com/yardland/yardland/hardware/memory/bus"
	"github.com/yardland/yardland/hardware/peripherals/serial/hostio"
	"github.com/yardland/yardland/logger"
)

// Register offsets.
const (
	RegReserved = iota
	RegStatus
	RegControl
	RegPipe1
	RegPipe2
	numRegisters
)

// Bits in the CONTROL register.
const (
	ControlPipe1 = 0x01
	ControlPipe2 = 0x02
)

// Bits in the STATUS register.
const (
	StatusPipe1RX = 0x01
	StatusPipe2RX = 0x02
)

// the length of a stream access.
const streamLen = 3

// Error patterns specific to the serial device.
const (
	HostError = "serial: host: %v"
)

// Serial is the dual pipe serial device.
type Serial struct {
	pipe1 hostio.Endpoint
	pipe2 hostio.Endpoint

	control atomic.Uint32

	rx1 queue
	tx1 queue
	rx2 queue
	tx2 queue
}

// NewSerial is the preferred method of initialisation for the Serial type.
// The pipe2 endpoint can be nil, in which case bytes transmitted on pipe 2
// stay in the transmit queue and nothing is ever received.
func NewSerial(pipe1 hostio.Endpoint, pipe2 hostio.Endpoint) *Serial {
	return &Serial{
		pipe1: pipe1,
		pipe2: pipe2,
		rx1:   queue{name: "rx1"},
		tx1:   queue{name: "tx1"},
		rx2:   queue{name: "rx2"},
		tx2:   queue{name: "tx2"},
	}
}

// Label implements the bus.Device interface.
func (s *Serial) Label() string {
	return "Serial"
}

// Len implements the bus.Device interface.
func (s *Serial) Len() uint32 {
	return numRegisters
}

// Control returns the current value of the CONTROL register.
func (s *Serial) Control() uint8 {
	return uint8(s.control.Load())
}

// Status returns the current value of the STATUS register.
func (s *Serial) Status() (uint8, error) {
	var status uint8

	n, err := s.rx1.len()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		status |= StatusPipe1RX
	}

	n, err = s.rx2.len()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		status |= StatusPipe2RX
	}

	return status, nil
}

func popPipe(q *queue) (uint8, error) {
	v, ok, err := q.pop()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, curated.Errorf(bus.NoData, q.name)
	}
	return v, nil
}

// Read implements the bus.Device interface.
func (s *Serial) Read(offset uint32) (uint8, error) {
	switch offset {
	case RegStatus:
		return s.Status()
	case RegControl:
		return s.Control(), nil
	case RegPipe1:
		return popPipe(&s.rx1)
	case RegPipe2:
		return popPipe(&s.rx2)
	}
	return 0, curated.Errorf(bus.InvalidAddress, offset)
}

// Write implements the bus.Device interface.
func (s *Serial) Write(offset uint32, data uint8) error {
	switch offset {
	case RegStatus:
		// STATUS is read only
		return nil
	case RegControl:
		s.control.Store(uint32(data))
		logger.Logf(logger.Allow, "serial", "control %02x", data)
		return nil
	case RegPipe1:
		return s.tx1.push(data)
	case RegPipe2:
		return s.tx2.push(data)
	}
	return curated.Errorf(bus.InvalidAddress, offset)
}

func checkStream(offset uint32, buffer []byte) error {
	if len(buffer) != streamLen || offset > RegPipe2 {
		return curated.Errorf(bus.InvalidAddress, offset)
	}
	return nil
}

// ReadStream implements the bus.Device interface. The buffer must be exactly
// three bytes long.
func (s *Serial) ReadStream(offset uint32, buffer []byte) error {
	if err := checkStream(offset, buffer); err != nil {
		return err
	}

	status, err := s.Status()
	if err != nil {
		return err
	}

	// empty queues are read as zero
	rx1, _, err := s.rx1.pop()
	if err != nil {
		return err
	}
	rx2, _, err := s.rx2.pop()
	if err != nil {
		return err
	}

	buffer[0] = status
	buffer[1] = rx1
	buffer[2] = rx2

	return nil
}

// WriteStream implements the bus.Device interface. The buffer must be exactly
// three bytes long.
func (s *Serial) WriteStream(offset uint32, buffer []byte) error {
	if err := checkStream(offset, buffer); err != nil {
		return err
	}
	if err := s.tx1.push(buffer[1]); err != nil {
		return err
	}
	return s.tx2.push(buffer[2])
}

// Tick moves data between the queues and the host endpoints of the enabled
// pipes. This is a single iteration of the serial worker.
func (s *Serial) Tick() error {
	control := s.Control()

	if control&ControlPipe1 == ControlPipe1 {
		if err := service(s.pipe1, &s.tx1, &s.rx1); err != nil {
			return err
		}
	}

	if control&ControlPipe2 == ControlPipe2 && s.pipe2 != nil {
		if err := service(s.pipe2, &s.tx2, &s.rx2); err != nil {
			return err
		}
	}

	return nil
}

// service drains the transmit queue to the endpoint and appends the data
// available from the endpoint to the receive queue.
func service(ep hostio.Endpoint, tx *queue, rx *queue) error {
	err := tx.access(func(q *queue) error {
		if len(q.data) == 0 {
			return nil
		}
		if _, err := ep.Write(q.data); err != nil {
			q.poisoned = true
			return curated.Errorf(HostError, err)
		}
		q.data = q.data[:0]
		return nil
	})
	if err != nil {
		return err
	}

	// an endpoint can return data along with an error. the data is queued
	// before the error is reported
	in, err := ep.Available()
	if len(in) > 0 {
		if perr := rx.push(in...); perr != nil {
			return perr
		}
	}
	if err != nil {
		return curated.Errorf(HostError, err)
	}

	return nil
}

// Pending returns the number of bytes waiting in the transmit queues.
func (s *Serial) Pending() (int, int, error) {
	tx1, err := s.tx1.len()
	if err != nil {
		return 0, 0, err
	}
	tx2, err := s.tx2.len()
	if err != nil {
		return 0, 0, err
	}
	return tx1, tx2, nil
}

// Close the host endpoints.
func (s *Serial) Close() error {
	var err error
	if s.pipe1 != nil {
		err = s.pipe1.Close()
	}
	if s.pipe2 != nil {
		if e := s.pipe2.Close(); err == nil {
			err = e
		}
	}
	return err
}
