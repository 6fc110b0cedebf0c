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

package recorder

import (
	"context"
	"fmt"
	"math"

	"github.com/jetsetilly/demorecorder/curated"
	"github.com/jetsetilly/demorecorder/dataset"
	"github.com/jetsetilly/demorecorder/environment"
	"github.com/jetsetilly/demorecorder/logger"
)

// Playback steps an environment with the actions of a recorded episode. The
// rewards from the environment can then be compared with the rewards that
// were recorded.
type Playback struct {
	episode *dataset.Episode
	env     environment.Environment

	// index of the next action
	seqCt int

	// sum of the rewards returned by the environment so far
	reward float64

	// the first step at which the environment terminated. -1 if the
	// environment has not terminated
	terminatedAt int

	// observation returned by the reset in NewPlayback()
	start environment.Observation
}

func (plb *Playback) String() string {
	end := len(plb.episode.Actions)
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.seqCt, end, 100*(float64(plb.seqCt)/float64(end)))
}

// NewPlayback is the preferred method of initialisation for the Playback type.
// The environment is reset.
func NewPlayback(episode *dataset.Episode, env environment.Environment) (*Playback, error) {
	if episode == nil || len(episode.Actions) == 0 {
		return nil, curated.Errorf("playback: episode has no actions")
	}

	obs, _, err := env.Reset()
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	return &Playback{
		episode:      episode,
		env:          env,
		terminatedAt: -1,
		start:        obs.Copy(),
	}, nil
}

// tolerance used when comparing observations
const observationTolerance = 1e-9

// StartMatches returns true if the environment after the initial reset is in
// the state the episode was recorded from. An episode recorded after the arm
// had been moved will not match and the rewards of the playback should not
// be expected to reproduce the recorded rewards.
func (plb *Playback) StartMatches() bool {
	if len(plb.episode.Observations) == 0 {
		return false
	}
	rec := plb.episode.Observations[0]
	if len(rec) != len(plb.start) {
		return false
	}
	for i := range rec {
		if math.Abs(rec[i]-plb.start[i]) > observationTolerance {
			return false
		}
	}
	return true
}

// End returns true if every action has been played back.
func (plb *Playback) End() bool {
	return plb.seqCt >= len(plb.episode.Actions)
}

// Step the environment with the next recorded action. The environment is reset
// whenever it terminates, in the same way as it was during recording.
func (plb *Playback) Step() (environment.Step, error) {
	if plb.End() {
		return environment.Step{}, curated.Errorf("playback: no more actions")
	}

	st, err := plb.env.Step(plb.episode.Actions[plb.seqCt])
	if err != nil {
		return environment.Step{}, curated.Errorf("playback: %v", err)
	}

	plb.reward += st.Reward
	if st.Terminated {
		if plb.terminatedAt == -1 {
			plb.terminatedAt = plb.seqCt
		}
		logger.Logf(logger.Allow, "playback", "environment terminated at step %d", plb.seqCt)

		if _, _, err := plb.env.Reset(); err != nil {
			return environment.Step{}, curated.Errorf("playback: %v", err)
		}
	}
	plb.seqCt++

	return st, nil
}

// Run plays back every remaining action. The throttle can be nil.
func (plb *Playback) Run(ctx context.Context, throttle Throttle) error {
	for !plb.End() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if _, err := plb.Step(); err != nil {
			return err
		}

		if throttle != nil {
			throttle.Wait()
		}
	}
	return nil
}

// Result of a playback. RecordedReward is the sum of rewards in the episode
// and Reward is the sum of rewards from the environment during playback.
type Result struct {
	Steps          int
	Reward         float64
	RecordedReward float64
	TerminatedAt   int
}

// Result returns the outcome of the playback so far.
func (plb *Playback) Result() Result {
	return Result{
		Steps:          plb.seqCt,
		Reward:         plb.reward,
		RecordedReward: plb.episode.TotalReward(),
		TerminatedAt:   plb.terminatedAt,
	}
}
