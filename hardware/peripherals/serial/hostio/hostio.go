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

// Package hostio provides the host side of the serial device's pipes. An
// Endpoint receives the bytes transmitted by the emulated program and supplies
// the bytes that the program will receive.
//
// Three endpoints are provided. Console connects to the standard input and
// output of the process. Port connects to a real serial port. Buffer is an
// in-memory endpoint for headless use and for testing.
//
// The Available() function of every endpoint must not block. Endpoints that
// read from a blocking source do so in a goroutine of their own.
package hostio

import "io"

// Endpoint is the host side of a serial pipe.
type Endpoint interface {
	io.Writer

	// Available returns the bytes received from the host since the previous
	// call. It must not block. A nil slice means no data is available.
	Available() ([]byte, error)

	// Close releases the resources of the endpoint.
	Close() error
}
