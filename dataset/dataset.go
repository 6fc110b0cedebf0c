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
	"github.com/montanaflynn/stats"
)

// Dataset is the ordered list of committed episodes.
type Dataset struct {
	Episodes []*Episode `json:"episodes"`
}

// Add a finalised episode to the dataset. Returns the number of episodes in
// the dataset after the addition.
func (d *Dataset) Add(ep *Episode) int {
	d.Episodes = append(d.Episodes, ep)
	return len(d.Episodes)
}

// Len returns the number of episodes in the dataset.
func (d *Dataset) Len() int {
	return len(d.Episodes)
}

// Statistics summarises the episodes in a Dataset. Durations are in seconds.
type Statistics struct {
	TotalEpisodes  int       `json:"total_episodes" yaml:"total_episodes"`
	AvgSteps       float64   `json:"avg_steps" yaml:"avg_steps"`
	AvgReward      float64   `json:"avg_reward" yaml:"avg_reward"`
	BestReward     float64   `json:"best_reward" yaml:"best_reward"`
	WorstReward    float64   `json:"worst_reward" yaml:"worst_reward"`
	AvgDuration    float64   `json:"avg_duration" yaml:"avg_duration"`
	TotalDuration  float64   `json:"total_duration" yaml:"total_duration"`
	EpisodeLengths []int     `json:"episode_lengths" yaml:"episode_lengths"`
	Rewards        []float64 `json:"rewards" yaml:"rewards"`
}

// Valid returns false if the statistics were calculated from an empty
// dataset.
func (s Statistics) Valid() bool {
	return s.TotalEpisodes > 0
}

// Statistics calculates the summary statistics for the dataset. The reward
// of an episode is the sum of the rewards of all its steps. An empty dataset
// returns the zero value.
func (d *Dataset) Statistics() Statistics {
	if len(d.Episodes) == 0 {
		return Statistics{}
	}

	s := Statistics{
		TotalEpisodes:  len(d.Episodes),
		EpisodeLengths: make([]int, 0, len(d.Episodes)),
		Rewards:        make([]float64, 0, len(d.Episodes)),
	}

	lengths := make([]float64, 0, len(d.Episodes))
	durations := make([]float64, 0, len(d.Episodes))

	for _, ep := range d.Episodes {
		s.EpisodeLengths = append(s.EpisodeLengths, ep.Steps())
		s.Rewards = append(s.Rewards, ep.TotalReward())
		lengths = append(lengths, float64(ep.Steps()))
		durations = append(durations, ep.Metadata.Duration.Seconds())
	}

	// errors from the stats package only occur for empty inputs, which has
	// already been ruled out
	s.AvgSteps, _ = stats.Mean(lengths)
	s.AvgReward, _ = stats.Mean(s.Rewards)
	s.BestReward, _ = stats.Max(s.Rewards)
	s.WorstReward, _ = stats.Min(s.Rewards)
	s.AvgDuration, _ = stats.Mean(durations)
	s.TotalDuration, _ = stats.Sum(durations)

	return s
}
