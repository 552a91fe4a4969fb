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

// Package coprocessor handles the coprocessor instructions trapped by the CPU
// core. A coprocessor instruction is an opcode and a list of 16 bit argument
// words.
//
//	MapBanks	pairs of {virtual bank, real bank}, any even number of words
//	DmaTransferVR	six words: src lo, src hi, dest lo, dest hi, size lo, size hi
//	DmaTransferV	as DmaTransferVR
//	DmaTransferR	as DmaTransferVR
//
// An instruction with the wrong number of arguments means that the emulated
// program has gone wrong. Such an instruction is never partially executed and
// the error returned by Dispatch() should end emulation.
package coprocessor
