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

// Package environment defines the interface to the simulation being driven by
// the controller. The recording session only ever talks to the simulation
// through the Environment interface.
//
// The Stub type is a small self-contained simulation of a gripper moving
// towards a target. It is useful for trying out a controller without a real
// simulation server. The remote sub-package talks to a simulation server over
// HTTP.
//
// Simulations commonly end an episode after a fixed number of steps by
// returning a truncated result. Demonstrations are ended by the operator and
// not by the simulation so environments should be wrapped with NoTimeLimit()
// before use.
package environment
