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

package gamepad

import "math"

// Sentinal error returned by drivers when no controller can be opened.
const (
	NoController = "gamepad: no controller found (index %d)"
)

// Driver is implemented by controller drivers.
type Driver interface {
	// Pump refreshes the snapshot of the controller.
	Pump()

	// Name of the controller as reported by the device.
	Name() string

	NumAxes() int
	NumHats() int
	NumButtons() int

	// Axis returns the axis value in the range -1.0 to 1.0. Axes that do not
	// exist return 0.0.
	Axis(i int) float64

	// Hat returns the direction of the hat as x and y values of -1, 0 or 1.
	// Left is -1 and up is 1. Hats that do not exist return 0, 0.
	Hat(i int) (x int, y int)

	// Button returns true if the button is held down. Buttons that do not
	// exist return false.
	Button(i int) bool

	Close() error
}

// AxisValue normalises a raw signed 16bit axis reading to the range -1.0 to
// 1.0. The most negative reading is clamped so that both directions have the
// same magnitude.
func AxisValue(raw int) float64 {
	return math.Max(-1.0, math.Min(1.0, float64(raw)/math.MaxInt16))
}
