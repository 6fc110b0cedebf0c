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

// Package gamepad defines the Driver interface through which a single game
// controller is polled. Concrete drivers are in the sub-packages sdlpad (SDL2
// joystick subsystem) and joypad (the operating system's joystick API,
// without SDL).
//
// A Driver presents a snapshot of the controller. The snapshot is refreshed
// by calling Pump(). Reads of axes, hats and buttons that do not exist on the
// controller return a neutral value rather than an error.
package gamepad
