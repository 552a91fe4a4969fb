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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf() which, like the function of the same
// name in the fmt package, takes a formatting pattern and placeholder values.
//
// The pattern is what distinguishes one curated error from another. Patterns
// that are tested for by callers should be stored as const strings in the
// package that produces them. For example:
//
//	const AddressNotMapped = "bus: address not mapped (%#08x)"
//
//	err := curated.Errorf(AddressNotMapped, addr)
//	if curated.Is(err, AddressNotMapped) {
//		...
//	}
//
// Is() checks only the outermost error. Has() walks the chain of curated
// errors passed as values to Errorf(). IsAny() answers whether the error was
// created by this package at all, which is useful for distinguishing expected
// errors from unexpected errors.
//
// The Error() implementation normalises the message so that duplicate
// adjacent parts (separated by ": ") appear only once. This means it is not
// necessary to be careful about whether a caller or callee has already
// prefixed a message with the same context.
package curated
