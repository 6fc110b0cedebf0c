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

// Package sdlpad implements the gamepad.Driver interface with the joystick
// subsystem of SDL2.
//
// SDL functions should be called from the main thread. The caller is
// responsible for locking the OS thread with runtime.LockOSThread() before
// calling NewPad().
package sdlpad

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/demorecorder/curated"
	"github.com/jetsetilly/demorecorder/gamepad"
	"github.com/jetsetilly/demorecorder/logger"
)

// Pad is an SDL joystick.
type Pad struct {
	joy *sdl.Joystick
}

// NewPad is the preferred method of initialisation for the Pad type. The
// index argument selects the joystick when more than one is attached.
func NewPad(index int) (*Pad, error) {
	if err := sdl.InitSubSystem(sdl.INIT_JOYSTICK); err != nil {
		return nil, curated.Errorf("sdlpad: %v", err)
	}

	n := sdl.NumJoysticks()
	logger.Logf(logger.Allow, "sdlpad", "%d joysticks attached", n)

	if index < 0 || index >= n {
		sdl.QuitSubSystem(sdl.INIT_JOYSTICK)
		return nil, curated.Errorf(gamepad.NoController, index)
	}

	joy := sdl.JoystickOpen(index)
	if joy == nil || !joy.Attached() {
		sdl.QuitSubSystem(sdl.INIT_JOYSTICK)
		return nil, curated.Errorf(gamepad.NoController, index)
	}

	pad := &Pad{joy: joy}
	logger.Logf(logger.Allow, "sdlpad", "joystick: %s (axes %d, hats %d, buttons %d)",
		pad.Name(), pad.NumAxes(), pad.NumHats(), pad.NumButtons())

	return pad, nil
}

// Pump implements the gamepad.Driver interface.
func (pad *Pad) Pump() {
	sdl.JoystickUpdate()
}

// Name implements the gamepad.Driver interface.
func (pad *Pad) Name() string {
	return pad.joy.Name()
}

// NumAxes implements the gamepad.Driver interface.
func (pad *Pad) NumAxes() int {
	return pad.joy.NumAxes()
}

// NumHats implements the gamepad.Driver interface.
func (pad *Pad) NumHats() int {
	return pad.joy.NumHats()
}

// NumButtons implements the gamepad.Driver interface.
func (pad *Pad) NumButtons() int {
	return pad.joy.NumButtons()
}

// Axis implements the gamepad.Driver interface.
func (pad *Pad) Axis(i int) float64 {
	if i < 0 || i >= pad.joy.NumAxes() {
		return 0.0
	}
	return gamepad.AxisValue(int(pad.joy.Axis(i)))
}

// Hat implements the gamepad.Driver interface.
func (pad *Pad) Hat(i int) (int, int) {
	if i < 0 || i >= pad.joy.NumHats() {
		return 0, 0
	}

	var x, y int

	h := pad.joy.Hat(i)
	if h&sdl.HAT_LEFT == sdl.HAT_LEFT {
		x = -1
	} else if h&sdl.HAT_RIGHT == sdl.HAT_RIGHT {
		x = 1
	}
	if h&sdl.HAT_UP == sdl.HAT_UP {
		y = 1
	} else if h&sdl.HAT_DOWN == sdl.HAT_DOWN {
		y = -1
	}

	return x, y
}

// Button implements the gamepad.Driver interface.
func (pad *Pad) Button(i int) bool {
	if i < 0 || i >= pad.joy.NumButtons() {
		return false
	}
	return pad.joy.Button(i) == sdl.PRESSED
}

// Close implements the gamepad.Driver interface.
func (pad *Pad) Close() error {
	if pad.joy != nil {
		pad.joy.Close()
		pad.joy = nil
	}
	sdl.QuitSubSystem(sdl.INIT_JOYSTICK)
	logger.Log(logger.Allow, "sdlpad", "closed")
	return nil
}
