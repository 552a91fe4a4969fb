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


package digest_test

import (
	"testing"

	"github.com/yardland/yardland/digest"
	"github.com/yardland/yardland/hardware/framebuffer"
	"github.com/yardland/yardland/hardware/memory/physical"
	"github.com/yardland/yardland/test"
)

func TestChaining(t *testing.T) {
	s := physical.NewStore(0x100)
	fb, err := framebuffer.NewFramebuffer(s, 0x10, 4, 4)
	test.DemandSuccess(t, err)

	dig := digest.NewFramebuffer(fb)
	var d digest.Digest = dig
	zero := d.Hash()

	ok, err := dig.Frame()
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, err)
	first := d.Hash()
	test.ExpectInequality(t, first, zero)

	// the same frame again gives a different digest
	_, err = dig.Frame()
	test.ExpectSuccess(t, err)
	second := d.Hash()
	test.ExpectInequality(t, second, first)

	// same sequence of frames gives the same digest
	d.ResetDigest()
	test.ExpectEquality(t, d.Hash(), zero)
	_, _ = dig.Frame()
	test.ExpectEquality(t, d.Hash(), first)

	// a change to the frame changes the digest
	d.ResetDigest()
	test.DemandSuccess(t, s.Write(0x12, 0xff))
	_, _ = dig.Frame()
	test.ExpectInequality(t, d.Hash(), first)
}
