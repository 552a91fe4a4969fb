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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() family of functions report failures with t.Errorf()
// and allow the test to continue. The Demand*() functions use t.Fatalf() and
// stop the test immediately.
//
// The ExpectSuccess() and ExpectFailure() functions accept bool and error
// values. A nil error is success. A true bool is success.
//
// CompareWriter and RingWriter are io.Writer implementations that are useful
// for testing output.
package test
