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

// Package paths contains functions to prepare paths to demorecorder resources,
// such as the preferences file.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// If a directory named ".demorecorder" is present in the program's current
// directory then that is the base path. Otherwise the user's config directory
// is used, as returned by os.UserConfigDir(). On a modern Linux system the
// example above returns:
//
//	/home/user/.config/demorecorder/preferences
//
// Directories are created as required but the resource itself is not.
package paths
