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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yardland/yardland/paths"
	"github.com/yardland/yardland/test"
)

func TestPaths(t *testing.T) {
	// run from inside a temporary directory containing the local config
	// directory so that the user's real config directory is left alone
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	test.DemandSuccess(t, os.Mkdir(".yardland", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".yardland", "foo", "bar", "baz"))

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".yardland", "baz"))

	_, err = os.Stat(filepath.Join(".yardland", "foo", "bar"))
	test.ExpectSuccess(t, err)
}
