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

	"github.com/jacobsa/go-serial/serial"

	"github.com/yardland/yardland/logger"
)

// Port is an Endpoint connected to a serial port on the host.
type Port struct {
	name string
	port io.ReadWriteCloser
	pump *pump
}

// NewPort opens the named serial port with the specified baud rate. The port
// is always 8N1.
func NewPort(name string, baud uint) (*Port, error) {
	port, err := serial.Open(serial.OpenOptions{
		PortName:        name,
		BaudRate:        baud,
		DataBits:        8,
		StopBits:        1,
		MinimumReadSize: 1,
	})
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "hostio", "port: opened %s at %d baud", name, baud)

	return &Port{
		name: name,
		port: port,
		pump: newPump(name, port),
	}, nil
}

// Write implements the io.Writer interface.
func (p *Port) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Available implements the Endpoint interface.
func (p *Port) Available() ([]byte, error) {
	return p.pump.available()
}

// Close implements the Endpoint interface. Closing the port also ends the
// goroutine reading from it.
func (p *Port) Close() error {
	logger.Logf(logger.Allow, "hostio", "port: closed %s", p.name)
	return p.port.Close()
}
