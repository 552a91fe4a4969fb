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

package preferences

import (
	"github.com/yardland/yardland/hardware/memory/memorymap"
	"github.com/yardland/yardland/hardware/peripherals/serial"
	"github.com/yardland/yardland/paths"
	"github.com/yardland/yardland/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// size of the physical store in bytes
	MemorySize prefs.Int

	// access to unmapped addresses is an error rather than a fault that is
	// logged and ignored
	Strict prefs.Bool

	// value returned by reads of unmapped addresses when Strict is false
	UnmappedValue prefs.Int

	// interval between iterations of the serial worker
	SerialTick prefs.Duration

	// host serial port for pipe 2. empty string means pipe 2 has no host
	// endpoint
	SerialPort prefs.String
	SerialBaud prefs.Int

	// create the framebuffer view. the memory size must be large enough to
	// contain the framebuffer
	Framebuffer prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences are loaded from the named file. If the
// filename is empty the default preferences file in the resource path is
// used.
func NewPreferences(filename string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	if filename == "" {
		filename, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p.dsk, err = prefs.NewDisk(filename)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.memory.size", &p.MemorySize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.memory.strict", &p.Strict)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.memory.unmapped", &p.UnmappedValue)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.serial.tick", &p.SerialTick)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.serial.port", &p.SerialPort)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.serial.baud", &p.SerialBaud)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.framebuffer", &p.Framebuffer)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.MemorySize.Set(memorymap.DefaultMemorySize)
	_ = p.Strict.Set(false)
	_ = p.UnmappedValue.Set(0)
	_ = p.SerialTick.Set(serial.DefaultTick)
	_ = p.SerialPort.Set("")
	_ = p.SerialBaud.Set(115200)
	_ = p.Framebuffer.Set(true)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
