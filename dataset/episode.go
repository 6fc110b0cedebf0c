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

package dataset

import (
	"time"

	"github.com/google/uuid"

	"github.com/jetsetilly/demorecorder/environment"
	"github.com/jetsetilly/demorecorder/userinput"
)

// Metadata for an Episode. Duration and TotalSteps are set when the episode
// is finalised.
type Metadata struct {
	StartTime  time.Time     `json:"start_time"`
	Duration   time.Duration `json:"duration"`
	TotalSteps int           `json:"total_steps"`
}

// Episode is a single recorded demonstration.
type Episode struct {
	ID           uuid.UUID                 `json:"id"`
	Observations []environment.Observation `json:"observations"`
	Actions      []userinput.Action        `json:"actions"`
	Rewards      []float64                 `json:"rewards"`
	Dones        []bool                    `json:"dones"`
	Infos        []environment.Info        `json:"infos"`
	Metadata     Metadata                  `json:"metadata"`
}

// NewEpisode is the preferred method of initialisation for the Episode type.
// The observation and info are the state of the environment at the moment
// recording started.
func NewEpisode(obs environment.Observation, info environment.Info, start time.Time) *Episode {
	return &Episode{
		ID:           uuid.New(),
		Observations: []environment.Observation{obs.Copy()},
		Infos:        []environment.Info{info.Copy()},
		Metadata: Metadata{
			StartTime: start,
		},
	}
}

// Append the result of a single environment step and the action that caused
// it. The done flag is true if the step was either terminated or truncated.
func (ep *Episode) Append(a userinput.Action, s environment.Step) {
	ep.Observations = append(ep.Observations, s.Observation.Copy())
	ep.Actions = append(ep.Actions, a)
	ep.Rewards = append(ep.Rewards, s.Reward)
	ep.Dones = append(ep.Dones, s.Done())
	ep.Infos = append(ep.Infos, s.Info.Copy())
}

// Steps returns the number of recorded steps.
func (ep *Episode) Steps() int {
	return len(ep.Actions)
}

// TotalReward returns the sum of rewards for all steps.
func (ep *Episode) TotalReward() float64 {
	var sum float64
	for _, r := range ep.Rewards {
		sum += r
	}
	return sum
}

// Finalise sets the duration and total steps of the metadata. The end
// argument is the moment recording stopped.
func (ep *Episode) Finalise(end time.Time) {
	ep.Metadata.Duration = end.Sub(ep.Metadata.StartTime)
	ep.Metadata.TotalSteps = ep.Steps()
}
