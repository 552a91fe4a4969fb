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

// Package serial implements the dual pipe serial device. The device has five
// byte wide registers:
//
//	0	reserved
//	1	STATUS (read only)
//	2	CONTROL
//	3	PIPE1
//	4	PIPE2
//
// Bit 0 of CONTROL enables pipe 1 and bit 1 enables pipe 2. Bit 0 of STATUS is
// set when pipe 1 has received data waiting to be read and bit 1 is set when
// pipe 2 has data waiting. STATUS is derived from the receive queues every
// time it is read.
//
// Writing to a PIPE register queues the byte for transmission to the host.
// Reading a PIPE register removes the oldest received byte from the queue or
// fails with the bus.NoData pattern if the queue is empty.
//
// The device can also be accessed with a three byte stream. A stream read
// returns STATUS followed by one byte from each receive queue (zero if the
// queue is empty). A stream write transmits the second byte on pipe 1 and the
// third byte on pipe 2. The first byte is ignored.
//
// The host side of each pipe is a hostio.Endpoint. Data is moved between the
// queues and the endpoints by Tick(). Start() creates a goroutine that calls
// Tick() at a regular interval.
//
// The queues are protected by locks that are poisoned by a failure that
// happens while the lock is held. A poisoned queue is unusable and every
// later access to it fails with the bus.Poisoned pattern.
package serial
