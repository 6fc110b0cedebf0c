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

package notifications

import "time"

// Notice describes events that change the state of the recording session.
type Notice string

// List of defined notifications.
const (
	// recording of a new episode has started. Detail.Episode is the number the
	// episode will have if it is committed
	NotifyRecordingStarted Notice = "NotifyRecordingStarted"

	// recording has stopped and the episode has been committed to the dataset.
	// Detail.Episode, Detail.Steps and Detail.Duration are set
	NotifyEpisodeCommitted Notice = "NotifyEpisodeCommitted"

	// recording has stopped but the episode was too short. Detail.Steps is set
	NotifyEpisodeDiscarded Notice = "NotifyEpisodeDiscarded"

	// sent periodically while recording. Detail.Steps and Detail.Duration are set
	NotifyRecordingProgress Notice = "NotifyRecordingProgress"

	// an intermediate snapshot or the final dataset has been written.
	// Detail.Episode is the number of episodes and Detail.Path is the location
	NotifyProgressSaved Notice = "NotifyProgressSaved"
	NotifyDatasetSaved  Notice = "NotifyDatasetSaved"

	// precision mode and pause have been toggled. Detail.On is the new state
	NotifyPrecision Notice = "NotifyPrecision"
	NotifyPause     Notice = "NotifyPause"

	// speed multiplier has changed. Detail.Speed is the new value
	NotifySpeed Notice = "NotifySpeed"

	// the environment has been reset by the user or because the environment
	// signalled termination. Detail.On is true if an episode is being recorded
	// across the reset
	NotifyReset      Notice = "NotifyReset"
	NotifyTerminated Notice = "NotifyTerminated"

	// the session is ending because of the quit button or an interrupt
	NotifyQuit        Notice = "NotifyQuit"
	NotifyInterrupted Notice = "NotifyInterrupted"

	// the session has ended and all resources have been released.
	// Detail.Episode is the number of committed episodes
	NotifySessionEnded Notice = "NotifySessionEnded"
)

// Detail accompanies a Notice. Only the fields described by the Notice are
// meaningful.
type Detail struct {
	Episode  int
	Steps    int
	Duration time.Duration
	Speed    float64
	On       bool
	Path     string
}

// Notify is implemented by anything that presents the session to the user.
type Notify interface {
	Notify(notice Notice, detail Detail) error
}
