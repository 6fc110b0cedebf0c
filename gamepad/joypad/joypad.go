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

// Package joypad implements the gamepad.Driver interface with the operating
// system's joystick API. It does not require SDL.
//
// The joystick API has no concept of a hat. Controllers that have enough
// axes report the directional pad as the last two axes and these are
// presented as hat zero.
package joypad

import (
	"github.com/0xcafed00d/joystick"

	"github.com/jetsetilly/demorecorder/curated"
	"github.com/jetsetilly/demorecorder/gamepad"
	"github.com/jetsetilly/demorecorder/logger"
)

// the axes used for the directional pad if the controller has enough axes.
const (
	hatAxisX = 6
	hatAxisY = 7
)

// the dead zone applied to the hat axes before they are treated as a
// direction. some controllers report small non-zero values when centred.
const hatThreshold = 0.5

// Pad is a joystick opened through the joystick API.
type Pad struct {
	js    joystick.Joystick
	state joystick.State

	// true if the most recent Read() failed. used to avoid repeated logging
	failed bool
}

// NewPad is the preferred method of initialisation for the Pad type. The
// index argument selects the joystick device.
func NewPad(index int) (*Pad, error) {
	js, err := joystick.Open(index)
	if err != nil {
		logger.Log(logger.Allow, "joypad", err)
		return nil, curated.Errorf(gamepad.NoController, index)
	}

	pad := &Pad{js: js}
	logger.Logf(logger.Allow, "joypad", "joystick: %s (axes %d, hats %d, buttons %d)",
		pad.Name(), pad.NumAxes(), pad.NumHats(), pad.NumButtons())

	return pad, nil
}

// Pump implements the gamepad.Driver interface. A failed read leaves the
// previous snapshot in place.
func (pad *Pad) Pump() {
	state, err := pad.js.Read()
	if err != nil {
		if !pad.failed {
			logger.Log(logger.Allow, "joypad", err)
		}
		pad.failed = true
		return
	}
	pad.failed = false
	pad.state = state
}

// Name implements the gamepad.Driver interface.
func (pad *Pad) Name() string {
	return pad.js.Name()
}

// NumAxes implements the gamepad.Driver interface.
func (pad *Pad) NumAxes() int {
	return pad.js.AxisCount()
}

// NumHats implements the gamepad.Driver interface.
func (pad *Pad) NumHats() int {
	if pad.js.AxisCount() > hatAxisY {
		return 1
	}
	return 0
}

// NumButtons implements the gamepad.Driver interface.
func (pad *Pad) NumButtons() int {
	return pad.js.ButtonCount()
}

// Axis implements the gamepad.Driver interface.
func (pad *Pad) Axis(i int) float64 {
	if i < 0 || i >= len(pad.state.AxisData) {
		return 0.0
	}
	return gamepad.AxisValue(pad.state.AxisData[i])
}

// Hat implements the gamepad.Driver interface.
func (pad *Pad) Hat(i int) (int, int) {
	if i != 0 || pad.NumHats() == 0 {
		return 0, 0
	}
	return direction(pad.Axis(hatAxisX)), -direction(pad.Axis(hatAxisY))
}

func direction(v float64) int {
	if v < -hatThreshold {
		return -1
	}
	if v > hatThreshold {
		return 1
	}
	return 0
}

// Button implements the gamepad.Driver interface.
func (pad *Pad) Button(i int) bool {
	if i < 0 || i >= pad.js.ButtonCount() || i >= 32 {
		return false
	}
	return pad.state.Buttons&(1<<uint(i)) != 0
}

// Close implements the gamepad.Driver interface.
func (pad *Pad) Close() error {
	pad.js.Close()
	logger.Log(logger.Allow, "joypad", "closed")
	return nil
}
