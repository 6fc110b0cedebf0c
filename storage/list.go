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

package storage

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/jetsetilly/demorecorder/curated"
)

// FileListing is a single file in a session directory.
type FileListing struct {
	Name string
	Size int64
}

func (f FileListing) String() string {
	return fmt.Sprintf("%s (%s)", f.Name, humanize.Bytes(uint64(f.Size)))
}

// SessionListing is a session directory and the dataset files in it.
type SessionListing struct {
	ID    string
	Path  string
	Files []FileListing
}

// ListSessions returns every session under the dataset root, sorted by ID.
// A root directory that does not exist has no sessions and is not an error.
func ListSessions(fs afero.Fs, root string) ([]SessionListing, error) {
	exists, err := afero.DirExists(fs, root)
	if err != nil {
		return nil, curated.Errorf("storage: %v", err)
	}
	if !exists {
		return nil, nil
	}

	dirs, err := afero.Glob(fs, filepath.Join(root, fmt.Sprintf("%s*", sessionPrefix)))
	if err != nil {
		return nil, curated.Errorf("storage: %v", err)
	}
	sort.Strings(dirs)

	var sessions []SessionListing

	for _, d := range dirs {
		if ok, _ := afero.DirExists(fs, d); !ok {
			continue
		}

		entries, err := afero.ReadDir(fs, d)
		if err != nil {
			return nil, curated.Errorf("storage: %v", err)
		}

		s := SessionListing{
			ID:   strings.TrimPrefix(filepath.Base(d), sessionPrefix),
			Path: d,
		}

		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if !strings.HasSuffix(e.Name(), datasetExtension) && !strings.HasSuffix(e.Name(), summaryExtension) {
				continue
			}
			s.Files = append(s.Files, FileListing{Name: e.Name(), Size: e.Size()})
		}

		sort.Slice(s.Files, func(i, j int) bool {
			return s.Files[i].Name < s.Files[j].Name
		})

		sessions = append(sessions, s)
	}

	return sessions, nil
}
