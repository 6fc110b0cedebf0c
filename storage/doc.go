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

// Package storage persists datasets recorded during a session. Every session
// has its own directory under the dataset root:
//
//	<root>/gamepad_session_<id>/
//		progress_<id>_<count>.json.sz             snapshot after every third episode
//		dataset_<id>_final.json.sz                 the complete dataset
//		dataset_<N>eps_<MMDD_HHMM>_summary.yaml    session info and statistics
//
// The session id is the local time the session started, formatted as
// YYYYMMDD_HHMMSS. Dataset files are JSON compressed with the snappy framing
// format. Files are written to a temporary name and then renamed, so a
// dataset file is never seen half written.
//
// All file access goes through an afero.Fs. The program uses the real
// filesystem but any afero filesystem will do.
package storage
