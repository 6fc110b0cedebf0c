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
	"fmt"
	"math"
	"math/rand"

	"github.com/jetsetilly/demorecorder/logger"
	"github.com/jetsetilly/demorecorder/userinput"
)

// layout of the Stub observation.
const (
	StubPosX = iota
	StubPosY
	StubPosZ
	StubRotX
	StubRotY
	StubGripper
	StubTargetX
	StubTargetY
	StubTargetZ
	StubObservationSize
)

const (
	// the workspace is a cube centred on the origin
	stubWorkspace = 1.0

	// distance moved per step by a full scale action component
	stubStepSize = 0.05

	// the gripper opens or closes fully in this many full scale steps
	stubGripperSteps = 10

	// the gripper is considered closed above this value
	stubGripperClosed = 0.95

	// the episode terminates when the gripper is closed within this distance
	// of the target
	stubReachDistance = 0.05

	// like many simulations the stub truncates episodes that run for too long
	stubMaxSteps = 500
)

// Stub is a minimal simulation of a gripper moving towards a target within a
// cube. The reward for each step is the negative distance to the target. The
// episode terminates when the gripper is closed at the target.
type Stub struct {
	rng *rand.Rand

	pos     [3]float64
	rot     [2]float64
	gripper float64
	target  [3]float64

	steps  int
	closed bool
}

// NewStub is the preferred method of initialisation for the Stub type. The
// seed argument makes the target positions reproducible.
func NewStub(seed int64) *Stub {
	return &Stub{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Reset implements the Environment interface. The gripper is returned to the
// centre of the workspace, fully open, and a new target is chosen.
func (env *Stub) Reset() (Observation, Info, error) {
	if env.closed {
		return nil, Info{}, fmt.Errorf("environment: stub: reset after close")
	}

	env.pos = [3]float64{}
	env.rot = [2]float64{}
	env.gripper = 0.0
	for i := range env.target {
		env.target[i] = (env.rng.Float64()*2 - 1) * stubWorkspace * 0.8
	}
	env.steps = 0

	logger.Logf(logger.Allow, "environment", "stub target %.3f %.3f %.3f",
		env.target[0], env.target[1], env.target[2])

	return env.observation(), env.info(), nil
}

// Step implements the Environment interface.
func (env *Stub) Step(a userinput.Action) (Step, error) {
	if env.closed {
		return Step{}, fmt.Errorf("environment: stub: step after close")
	}

	env.pos[0] = clamp(env.pos[0]+a[userinput.X]*stubStepSize, stubWorkspace)
	env.pos[1] = clamp(env.pos[1]+a[userinput.Y]*stubStepSize, stubWorkspace)
	env.pos[2] = clamp(env.pos[2]+a[userinput.Z]*stubStepSize, stubWorkspace)
	env.rot[0] = math.Remainder(env.rot[0]+a[userinput.RX]*stubStepSize, 2*math.Pi)
	env.rot[1] = math.Remainder(env.rot[1]+a[userinput.RY]*stubStepSize, 2*math.Pi)

	// positive RZ closes the gripper
	env.gripper = math.Max(0.0, math.Min(1.0, env.gripper+a[userinput.RZ]/stubGripperSteps))

	env.steps++

	d := env.distance()
	s := Step{
		Observation: env.observation(),
		Reward:      -d,
		Terminated:  d <= stubReachDistance && env.gripper > stubGripperClosed,
		Truncated:   env.steps >= stubMaxSteps,
		Info:        env.info(),
	}

	return s, nil
}

// Close implements the Environment interface.
func (env *Stub) Close() error {
	env.closed = true
	return nil
}

func (env *Stub) distance() float64 {
	var sum float64
	for i := range env.pos {
		d := env.pos[i] - env.target[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func (env *Stub) observation() Observation {
	obs := make(Observation, StubObservationSize)
	obs[StubPosX] = env.pos[0]
	obs[StubPosY] = env.pos[1]
	obs[StubPosZ] = env.pos[2]
	obs[StubRotX] = env.rot[0]
	obs[StubRotY] = env.rot[1]
	obs[StubGripper] = env.gripper
	obs[StubTargetX] = env.target[0]
	obs[StubTargetY] = env.target[1]
	obs[StubTargetZ] = env.target[2]
	return obs
}

func (env *Stub) info() Info {
	return NewInfoMapping(map[string]interface{}{
		"distance": env.distance(),
		"steps":    env.steps,
	})
}

func clamp(v float64, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}
