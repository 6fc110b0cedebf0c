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
	"fmt"
	"math"
)

// Indexes of the components of an Action.
const (
	X = iota
	Y
	Z
	RX
	RY
	RZ
)

// activeThreshold is the magnitude a component must exceed for the action to
// be considered active.
const activeThreshold = 0.01

// Action is a six degrees-of-freedom control vector. The order of components
// is X, Y, Z, RX, RY, RZ.
type Action [6]float64

// Active returns true if any component is large enough to be worth sending
// to the environment.
func (a Action) Active() bool {
	for _, c := range a {
		if math.Abs(c) > activeThreshold {
			return true
		}
	}
	return false
}

func (a Action) String() string {
	return fmt.Sprintf("x=%+.3f y=%+.3f z=%+.3f rx=%+.3f ry=%+.3f rz=%+.3f",
		a[X], a[Y], a[Z], a[RX], a[RY], a[RZ])
}
