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

package environment

import (
	"github.com/jetsetilly/demorecorder/userinput"
)

// Observation is the state of the simulation as seen by the operator.
type Observation []float64

// Copy returns a new instance of the observation.
func (o Observation) Copy() Observation {
	if o == nil {
		return nil
	}
	return append(Observation(nil), o...)
}

// Step is the result of stepping the environment by one action.
type Step struct {
	Observation Observation `json:"observation"`
	Reward      float64     `json:"reward"`
	Terminated  bool        `json:"terminated"`
	Truncated   bool        `json:"truncated"`
	Info        Info        `json:"info"`
}

// Done returns true if the step ended the simulation's episode for any
// reason.
func (s Step) Done() bool {
	return s.Terminated || s.Truncated
}

// Environment is implemented by simulations that can be driven by the
// controller.
type Environment interface {
	// Reset the simulation to an initial state.
	Reset() (Observation, Info, error)

	// Step the simulation by one action.
	Step(a userinput.Action) (Step, error)

	Close() error
}

// noTimeLimit wraps an Environment so that steps are never truncated.
type noTimeLimit struct {
	Environment
}

// NoTimeLimit wraps the Environment so that the Truncated field of every Step
// is false. Terminated is passed through unchanged.
func NoTimeLimit(env Environment) Environment {
	if _, ok := env.(noTimeLimit); ok {
		return env
	}
	return noTimeLimit{Environment: env}
}

// Step implements the Environment interface.
func (env noTimeLimit) Step(a userinput.Action) (Step, error) {
	s, err := env.Environment.Step(a)
	s.Truncated = false
	return s, err
}
