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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yardland/yardland/prefs"
	"github.com/yardland/yardland/test"
)

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading prefs file: %v", err)
		return
	}

	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\n"+expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("0x10000"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 10\nnumberB :: 65536\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var tick prefs.Duration
	var port prefs.String
	test.ExpectSuccess(t, dsk.Add("serial.tick", &tick))
	test.ExpectSuccess(t, dsk.Add("serial.port", &port))

	// missing file is not an error
	test.ExpectSuccess(t, dsk.Load())

	test.ExpectSuccess(t, tick.Set(20*time.Millisecond))
	test.ExpectSuccess(t, port.Set("/dev/ttyUSB0"))
	test.DemandSuccess(t, dsk.Save())

	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var tick2 prefs.Duration
	test.ExpectSuccess(t, dsk2.Add("serial.tick", &tick2))
	test.ExpectSuccess(t, dsk2.Load())
	test.ExpectEquality(t, tick2.Get().(time.Duration), 20*time.Millisecond)

	// the unknown serial.port entry survives a save from a disk that never
	// added it
	test.DemandSuccess(t, dsk2.Save())
	cmpPrefFile(t, fn, "serial.port :: /dev/ttyUSB0\nserial.tick :: 20ms\n")
}

func TestCommandLineStack(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var strict prefs.Bool
	test.ExpectSuccess(t, dsk.Add("memory.unmapped.strict", &strict))

	prefs.PushCommandLineStack("memory.unmapped.strict::true; foo::bar")
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, strict.Get().(bool), true)

	// only the unused entry remains
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
