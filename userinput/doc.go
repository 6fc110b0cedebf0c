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

// Package userinput translates the state of a game controller into the six
// degrees-of-freedom action vector used to drive the robotic arm, and into
// edge-triggered button events used to control the recording session.
//
// The Mapper type polls a gamepad.Driver once per call to ReadAction(). The
// sticks and the hat are mapped as follows:
//
//	left stick horizontal     X
//	left stick vertical       Y (up is positive)
//	right stick vertical      Z (up is positive)
//	right stick horizontal    RY (half gain)
//	hat vertical              RX
//	hat horizontal            RZ (left opens the gripper, right closes it)
//
// Analog axes are subject to a dead zone. All components are scaled by the
// current speed multiplier, which is reduced further when precision mode is
// on.
//
// Buttons are named by the Button type and mapped to physical button indexes
// by a Mapping. The default mapping suits an Xbox style controller.
package userinput
