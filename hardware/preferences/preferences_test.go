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

package preferences_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/yardland/yardland/hardware/preferences"
	"github.com/yardland/yardland/prefs"
	"github.com/yardland/yardland/test"
)

func TestDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.MemorySize.Get().(int), 0x10000000)
	test.ExpectEquality(t, p.Strict.Get().(bool), false)
	test.ExpectEquality(t, p.SerialTick.Get().(time.Duration), 10*time.Millisecond)
	test.ExpectEquality(t, p.Framebuffer.Get().(bool), true)
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Strict.Set(true))
	test.ExpectSuccess(t, p.MemorySize.Set("0x100000"))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Strict.Get().(bool), true)
	test.ExpectEquality(t, q.MemorySize.Get().(int), 0x100000)
}

func TestCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	prefs.PushCommandLineStack("hardware.serial.tick::25ms")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SerialTick.Get().(time.Duration), 25*time.Millisecond)
}
