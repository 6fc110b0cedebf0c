// This file is part of Demorecorder.
//
// Demorecorder is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Demorecorder is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Demorecorder.  If not, see <https://www.gnu.org/licenses/>.

package userinput

import (
	"math"

	"github.com/jetsetilly/demorecorder/gamepad"
	"github.com/jetsetilly/demorecorder/logger"
)

// Speed limits and step size used by IncreaseSpeed() and DecreaseSpeed().
const (
	MinSpeed  = 0.05
	MaxSpeed  = 0.80
	SpeedStep = 0.05
)

// Default values for the Config type.
const (
	DefaultSpeed    = 0.2
	DefaultDeadZone = 0.15
)

// precisionScale is applied to the speed multiplier when precision mode is on.
const precisionScale = 0.3

// gain applied to the right stick horizontal axis.
const rotationGain = 0.5

// physical axes and hat used by ReadAction().
const (
	axisLeftHoriz  = 0
	axisLeftVert   = 1
	axisRightHoriz = 3
	axisRightVert  = 4
	hatIndex       = 0
)

// Config for a new Mapper.
type Config struct {
	Speed    float64
	DeadZone float64
	Mapping  Mapping
}

// DefaultConfig returns a Config with the default values.
func DefaultConfig() Config {
	return Config{
		Speed:    DefaultSpeed,
		DeadZone: DefaultDeadZone,
		Mapping:  DefaultMapping(),
	}
}

// Mapper translates the state of a gamepad.Driver into an Action and into
// button events.
type Mapper struct {
	driver   gamepad.Driver
	deadZone float64
	mapping  Mapping

	speed     float64
	precision bool

	// the level of each button the last time it was checked by
	// ButtonPressed()
	previous map[Button]bool
}

// NewMapper is the preferred method of initialisation for the Mapper type. A
// nil mapping in the Config is replaced by DefaultMapping(). The speed is
// clamped to the speed limits and snapped to the nearest SpeedStep.
func NewMapper(driver gamepad.Driver, cfg Config) *Mapper {
	m := &Mapper{
		driver:   driver,
		deadZone: math.Abs(cfg.DeadZone),
		mapping:  cfg.Mapping.Copy(),
		speed:    clampSpeed(cfg.Speed),
		previous: make(map[Button]bool),
	}
	if cfg.Mapping == nil {
		m.mapping = DefaultMapping()
	}
	return m
}

// Driver returns the underlying gamepad.Driver.
func (m *Mapper) Driver() gamepad.Driver {
	return m.driver
}

// ReadAction pumps the driver and returns the action for the current state
// of the controller. Missing axes and hats contribute nothing to the action.
func (m *Mapper) ReadAction() Action {
	m.driver.Pump()

	var a Action

	a[X] = m.axis(axisLeftHoriz)
	a[Y] = -m.axis(axisLeftVert)
	a[Z] = -m.axis(axisRightVert)
	a[RY] = m.axis(axisRightHoriz) * rotationGain

	hx, hy := m.driver.Hat(hatIndex)
	a[RX] = float64(hy)
	a[RZ] = float64(hx)

	s := m.EffectiveSpeed()
	for i := range a {
		a[i] *= s

		// normalise negative zero
		if a[i] == 0 {
			a[i] = 0
		}
	}

	return a
}

// axis returns the value of the axis after the dead zone has been applied.
func (m *Mapper) axis(i int) float64 {
	if i >= m.driver.NumAxes() {
		return 0.0
	}
	v := m.driver.Axis(i)
	if math.Abs(v) <= m.deadZone {
		return 0.0
	}
	return v
}

// ButtonPressed returns true if the button has been pressed since the last
// time it was checked. Buttons that are not in the mapping or which do not
// exist on the controller are never pressed.
//
// Each button should be checked no more than once per call to ReadAction().
func (m *Mapper) ButtonPressed(b Button) bool {
	idx, ok := m.mapping[b]
	if !ok || idx < 0 || idx >= m.driver.NumButtons() {
		return false
	}

	level := m.driver.Button(idx)
	pressed := level && !m.previous[b]
	m.previous[b] = level

	return pressed
}

// Speed returns the current speed multiplier.
func (m *Mapper) Speed() float64 {
	return m.speed
}

// EffectiveSpeed returns the speed multiplier adjusted for precision mode.
func (m *Mapper) EffectiveSpeed() float64 {
	if m.precision {
		return m.speed * precisionScale
	}
	return m.speed
}

// IncreaseSpeed by one step. Returns the new speed.
func (m *Mapper) IncreaseSpeed() float64 {
	m.speed = clampSpeed(m.speed + SpeedStep)
	logger.Logf(logger.Allow, "userinput", "speed %.2f", m.speed)
	return m.speed
}

// DecreaseSpeed by one step. Returns the new speed.
func (m *Mapper) DecreaseSpeed() float64 {
	m.speed = clampSpeed(m.speed - SpeedStep)
	logger.Logf(logger.Allow, "userinput", "speed %.2f", m.speed)
	return m.speed
}

// Precision returns true if precision mode is on.
func (m *Mapper) Precision() bool {
	return m.precision
}

// TogglePrecision flips precision mode. Returns the new state.
func (m *Mapper) TogglePrecision() bool {
	m.precision = !m.precision
	logger.Logf(logger.Allow, "userinput", "precision %v", m.precision)
	return m.precision
}

// Close the underlying driver.
func (m *Mapper) Close() error {
	return m.driver.Close()
}

// clampSpeed snaps the value to the nearest speed step and clamps it to the
// speed limits.
func clampSpeed(v float64) float64 {
	const steps = 1 / SpeedStep
	v = math.Round(v*steps) / steps
	return math.Max(MinSpeed, math.Min(MaxSpeed, v))
}

// onSpeedGrid returns true if the value is a whole number of speed steps.
func onSpeedGrid(v float64) bool {
	const steps = 1 / SpeedStep
	return math.Abs(v*steps-math.Round(v*steps)) < 1e-9
}
