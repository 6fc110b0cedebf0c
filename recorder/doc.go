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

// Package recorder runs the control loop of a demonstration recording
// session. Every tick of the loop reads the controller, handles any buttons
// that have been pressed, steps the environment if the action is large
// enough and, while recording, adds the step to the current episode.
//
// Recording is started and stopped by the record toggle button. An episode
// must have more than Config.MinSteps steps to be committed to the dataset,
// shorter episodes are discarded. A snapshot of the dataset is saved after
// every third committed episode. The session ends when the quit button is
// pressed, when the context is cancelled or when Config.MaxEpisodes episodes
// have been committed. However the session ends, the dataset is saved (if it
// is not empty) and the environment and controller are closed.
//
// Resetting the environment, either with the reset button or because the
// environment terminated the episode, does not stop recording. The episode
// continues across the reset.
//
// The Playback type steps an environment with the actions of a previously
// recorded episode.
package recorder
