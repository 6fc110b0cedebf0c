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

package gamepad_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/demorecorder/gamepad"
	"github.com/jetsetilly/demorecorder/test"
)

func TestAxisValue(t *testing.T) {
	test.ExpectEquality(t, gamepad.AxisValue(0), 0.0)
	test.ExpectEquality(t, gamepad.AxisValue(math.MaxInt16), 1.0)
	test.ExpectEquality(t, gamepad.AxisValue(math.MinInt16), -1.0)
	test.ExpectEquality(t, gamepad.AxisValue(-math.MaxInt16), -1.0)
	test.ExpectApproximate(t, gamepad.AxisValue(16384), 0.5, 0.001)

	// readings outside of the 16bit range are clamped
	test.ExpectEquality(t, gamepad.AxisValue(40000), 1.0)
}

func TestVirtual(t *testing.T) {
	var drv gamepad.Driver
	v := gamepad.NewVirtual("virtual", 6, 1, 10)
	drv = v

	test.ExpectEquality(t, drv.NumAxes(), 6)
	test.ExpectEquality(t, drv.NumHats(), 1)
	test.ExpectEquality(t, drv.NumButtons(), 10)

	v.SetAxis(0, 0.5)
	v.SetHat(0, -1, 1)
	v.SetButton(9, true)

	// state is not visible until pumped
	test.ExpectEquality(t, drv.Axis(0), 0.0)
	test.ExpectEquality(t, drv.Button(9), false)

	drv.Pump()
	test.ExpectEquality(t, drv.Axis(0), 0.5)
	x, y := drv.Hat(0)
	test.ExpectEquality(t, x, -1)
	test.ExpectEquality(t, y, 1)
	test.ExpectEquality(t, drv.Button(9), true)
	test.ExpectEquality(t, v.Pumps(), 1)

	// out of range reads are neutral
	test.ExpectEquality(t, drv.Axis(6), 0.0)
	test.ExpectEquality(t, drv.Axis(-1), 0.0)
	x, y = drv.Hat(1)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 0)
	test.ExpectEquality(t, drv.Button(10), false)
}
