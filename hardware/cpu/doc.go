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

// Package cpu defines the interface between the machine and the CPU core.
// The instruction set emulation itself lives outside this module. Any type
// that implements the Core interface can be attached to the machine.
//
// The Core accesses memory through the Memory interface. Every access is made
// with a virtual address which the machine translates through the bank
// switching unit before decoding it on the device bus.
//
// The scripted sub-package contains a Core implementation driven by a Lua
// script, which is useful for exercising the machine without a real
// instruction set.
package cpu
