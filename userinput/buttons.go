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

// Button is the logical name of a controller button.
type Button string

// List of valid Button values.
const (
	RecordToggle  Button = "record_toggle"
	Precision     Button = "precision"
	SpeedUp       Button = "speed_up"
	SpeedDown     Button = "speed_down"
	Pause         Button = "pause"
	Reset         Button = "reset"
	Quit          Button = "quit"
	EmergencyStop Button = "emergency_stop"
	GripperToggle Button = "gripper_toggle"
)

// Buttons lists every Button in the order in which the recording session
// handles them.
var Buttons = []Button{
	RecordToggle,
	Precision,
	SpeedUp,
	SpeedDown,
	Pause,
	Reset,
	Quit,
	EmergencyStop,
	GripperToggle,
}

// Mapping of logical buttons to physical button indexes.
type Mapping map[Button]int

// DefaultMapping returns a new instance of the default button mapping.
func DefaultMapping() Mapping {
	return Mapping{
		EmergencyStop: 0,
		Reset:         1,
		Precision:     2,
		Quit:          3,
		SpeedUp:       4,
		SpeedDown:     5,
		GripperToggle: 6,
		Pause:         8,
		RecordToggle:  9,
	}
}

// Copy returns a new instance of the mapping.
func (m Mapping) Copy() Mapping {
	n := make(Mapping, len(m))
	for k, v := range m {
		n[k] = v
	}
	return n
}
