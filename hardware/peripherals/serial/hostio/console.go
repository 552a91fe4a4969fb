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
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/yardland/yardland/logger"
)

// Console is an Endpoint connected to the terminal. If the input is a
// terminal it is put into cbreak mode while the Console is open, so that
// key presses are delivered to the emulated program as they happen and are
// not echoed by the terminal.
type Console struct {
	input  *os.File
	output io.Writer
	pump   *pump

	// the terminal attributes to restore on Close(). only valid if
	// isTerminal is true
	isTerminal bool
	canAttr    unix.Termios
}

// NewConsole is the preferred method of initialisation for the Console type.
// Usually called with os.Stdin and os.Stdout.
func NewConsole(input *os.File, output io.Writer) (*Console, error) {
	con := &Console{
		input:      input,
		output:     output,
		isTerminal: term.IsTerminal(int(input.Fd())),
	}

	if con.isTerminal {
		if err := termios.Tcgetattr(input.Fd(), &con.canAttr); err != nil {
			return nil, err
		}

		cbreakAttr := con.canAttr
		termios.Cfmakecbreak(&cbreakAttr)
		if err := termios.Tcsetattr(input.Fd(), termios.TCSANOW, &cbreakAttr); err != nil {
			return nil, err
		}
		logger.Log(logger.Allow, "hostio", "console: terminal in cbreak mode")
	}

	con.pump = newPump("console", input)

	return con, nil
}

// Write implements the io.Writer interface.
func (con *Console) Write(p []byte) (int, error) {
	return con.output.Write(p)
}

// Available implements the Endpoint interface.
func (con *Console) Available() ([]byte, error) {
	return con.pump.available()
}

// Close implements the Endpoint interface. The terminal is returned to the
// mode it was in before NewConsole() was called.
//
// The goroutine reading the input is not stopped. It will end when the input
// reaches end of file or when the process exits.
func (con *Console) Close() error {
	if con.isTerminal {
		logger.Log(logger.Allow, "hostio", "console: terminal restored")
		return termios.Tcsetattr(con.input.Fd(), termios.TCSANOW, &con.canAttr)
	}
	return nil
}
