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


//go:build !statsview

package statsview_test

import (
	"testing"

	"github.com/yardland/yardland/statsview"
	"github.com/yardland/yardland/test"
)

func TestUnavailable(t *testing.T) {
	w := &test.CompareWriter{}
	statsview.Launch(w)
	test.ExpectEquality(t, statsview.Available(), false)
	test.ExpectEquality(t, w.String(), "")
}
