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

// Package dataset holds recorded demonstrations. An Episode is a single
// demonstration, from the moment recording starts to the moment it stops. A
// Dataset is the ordered list of episodes committed during a session.
//
// An Episode always has one more observation than it has actions. The first
// observation is the state of the environment when recording started. The
// infos list is seeded in the same way and so also has one more entry than
// the number of actions.
package dataset
