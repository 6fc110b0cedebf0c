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

import "sync"

// Virtual is a Driver with no hardware behind it. The state of the controller
// is set with the SetAxis(), SetHat() and SetButton() functions and becomes
// visible after the next call to Pump().
//
// Virtual is safe to update from a goroutine other than the one polling it.
type Virtual struct {
	name string

	crit    sync.Mutex
	pending virtualState
	state   virtualState

	// number of times Pump() has been called
	pumps int
}

type virtualState struct {
	axes    []float64
	hats    [][2]int
	buttons []bool
}

func (s virtualState) copy() virtualState {
	return virtualState{
		axes:    append([]float64(nil), s.axes...),
		hats:    append([][2]int(nil), s.hats...),
		buttons: append([]bool(nil), s.buttons...),
	}
}

// NewVirtual is the preferred method of initialisation for the Virtual type.
func NewVirtual(name string, axes int, hats int, buttons int) *Virtual {
	v := &Virtual{
		name: name,
		pending: virtualState{
			axes:    make([]float64, axes),
			hats:    make([][2]int, hats),
			buttons: make([]bool, buttons),
		},
	}
	v.state = v.pending.copy()
	return v
}

// SetAxis sets the value of an axis. Out of range indexes are ignored.
func (v *Virtual) SetAxis(i int, value float64) {
	v.crit.Lock()
	defer v.crit.Unlock()
	if i >= 0 && i < len(v.pending.axes) {
		v.pending.axes[i] = value
	}
}

// SetHat sets the direction of a hat. Out of range indexes are ignored.
func (v *Virtual) SetHat(i int, x int, y int) {
	v.crit.Lock()
	defer v.crit.Unlock()
	if i >= 0 && i < len(v.pending.hats) {
		v.pending.hats[i] = [2]int{x, y}
	}
}

// SetButton sets the level of a button. Out of range indexes are ignored.
func (v *Virtual) SetButton(i int, down bool) {
	v.crit.Lock()
	defer v.crit.Unlock()
	if i >= 0 && i < len(v.pending.buttons) {
		v.pending.buttons[i] = down
	}
}

// Pumps returns the number of times Pump() has been called.
func (v *Virtual) Pumps() int {
	v.crit.Lock()
	defer v.crit.Unlock()
	return v.pumps
}

// Pump implements the Driver interface.
func (v *Virtual) Pump() {
	v.crit.Lock()
	defer v.crit.Unlock()
	v.state = v.pending.copy()
	v.pumps++
}

// Name implements the Driver interface.
func (v *Virtual) Name() string {
	return v.name
}

// NumAxes implements the Driver interface.
func (v *Virtual) NumAxes() int {
	return len(v.state.axes)
}

// NumHats implements the Driver interface.
func (v *Virtual) NumHats() int {
	return len(v.state.hats)
}

// NumButtons implements the Driver interface.
func (v *Virtual) NumButtons() int {
	return len(v.state.buttons)
}

// Axis implements the Driver interface.
func (v *Virtual) Axis(i int) float64 {
	if i < 0 || i >= len(v.state.axes) {
		return 0.0
	}
	return v.state.axes[i]
}

// Hat implements the Driver interface.
func (v *Virtual) Hat(i int) (int, int) {
	if i < 0 || i >= len(v.state.hats) {
		return 0, 0
	}
	return v.state.hats[i][0], v.state.hats[i][1]
}

// Button implements the Driver interface.
func (v *Virtual) Button(i int) bool {
	if i < 0 || i >= len(v.state.buttons) {
		return false
	}
	return v.state.buttons[i]
}

// Close implements the Driver interface.
func (v *Virtual) Close() error {
	return nil
}
