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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes, each with its own set of flags.
//
// Arguments are given to NewArgs() and then parsed layer by layer with
// Parse(). For example, a program with a RECORD mode (the default) and a
// SESSIONS mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RECORD", "SESSIONS")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RECORD":
//		md.NewMode()
//		episodes := md.AddInt("episodes", 50, "number of episodes to record")
//		...
//	}
//
// Mode selection is case insensitive. If the first remaining argument is not
// one of the sub-modes then the first sub-mode is selected and the argument is
// left in place for the next call to Parse().
//
// Help is handled automatically. A -help flag prints the flags for the
// current mode, the path of modes that led to it and the available sub-modes.
package modalflag
