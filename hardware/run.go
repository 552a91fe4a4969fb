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


package hardware

import (
	"context"

	"github.com/yardland/yardland/curated"
	"github.com/yardland/yardland/hardware/cpu"
	"github.com/yardland/yardland/logger"
)

// PerformanceBrake is the number of steps between checks of the context in
// Run(). Checking the context after every step is expensive.
const PerformanceBrake = 100

// Reset the core and clear any outstanding fault. The fault log is not
// cleared.
func (m *Machine) Reset(trace bool) error {
	if m.Core == nil {
		return curated.Errorf(NoCore)
	}
	m.strictFault = nil
	m.Core.Reset(trace)
	return nil
}

// takeFault returns and clears the outstanding strict fault.
func (m *Machine) takeFault() error {
	err := m.strictFault
	m.strictFault = nil
	return err
}

// Step the core by one instruction and then handle the stop reason if the
// core has stopped. If the core is already stopped the stop reason is handled
// without stepping.
//
// Returns true if the machine should not be stepped any further, either
// because the core has stopped with the cpu.Stop reason or because of an
// error.
func (m *Machine) Step() (bool, error) {
	if m.Core == nil {
		return true, curated.Errorf(NoCore)
	}

	if !m.Core.IsStopped() {
		m.Core.Step()
	}

	if err := m.takeFault(); err != nil {
		return true, err
	}

	if !m.Core.IsStopped() {
		return false, nil
	}

	return m.handleStop()
}

// the core implements this interface if it can fail for reasons of its own.
type coreError interface {
	Err() error
}

func (m *Machine) handleStop() (bool, error) {
	switch m.Core.StopReason() {
	case cpu.Stop:
		if ce, ok := m.Core.(coreError); ok && ce.Err() != nil {
			return true, ce.Err()
		}
		logger.Logf(logger.Allow, "machine", "stopped after %d cycles", m.Core.Cycles())
		return true, nil

	case cpu.Coprocessor:
		inst, ok := m.Core.CoprocessorInstruction()
		if !ok {
			logger.Log(logger.Allow, "machine", "coprocessor stop without instruction")
			break
		}

		// a failed instruction means the emulated program has gone wrong.
		// there is no way to recover
		if err := m.Coprocessor.Dispatch(inst); err != nil {
			return true, err
		}

	case cpu.WaitInterrupt:
		m.Core.Interrupt()

	case cpu.NoReason:
	}

	if err := m.takeFault(); err != nil {
		return true, err
	}

	m.Core.Resume()

	return false, nil
}

// Run resets the core and steps it until it stops with the cpu.Stop reason,
// an error occurs or the context is done.
func (m *Machine) Run(ctx context.Context, trace bool) error {
	if err := m.Reset(trace); err != nil {
		return err
	}

	var brake int

	for {
		brake++
		if brake >= PerformanceBrake {
			brake = 0
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		done, err := m.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}
