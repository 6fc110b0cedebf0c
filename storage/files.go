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
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang/snappy"
	"github.com/spf13/afero"

	"github.com/jetsetilly/demorecorder/curated"
	"github.com/jetsetilly/demorecorder/dataset"
)

// SessionInfo describes the session that created a final dataset file.
type SessionInfo struct {
	SessionID     string    `json:"session_id" yaml:"session_id"`
	TotalEpisodes int       `json:"total_episodes" yaml:"total_episodes"`
	CreationTime  time.Time `json:"creation_time" yaml:"creation_time"`
}

// File is the content of a dataset file. Progress snapshots fill in the
// Count, SessionID and Timestamp fields. Final datasets fill in the
// SessionInfo and Statistics fields.
type File struct {
	Episodes []*dataset.Episode `json:"episodes"`

	Count     int        `json:"count,omitempty"`
	SessionID string     `json:"session_id,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`

	SessionInfo *SessionInfo        `json:"session_info,omitempty"`
	Statistics  *dataset.Statistics `json:"statistics,omitempty"`
}

// Dataset returns the episodes in the file as a Dataset.
func (f *File) Dataset() *dataset.Dataset {
	return &dataset.Dataset{Episodes: f.Episodes}
}

// Summary is the human readable summary written alongside the final dataset.
type Summary struct {
	SessionInfo SessionInfo        `yaml:"session_info"`
	Statistics  dataset.Statistics `yaml:"statistics"`
}

// Load a dataset file written by a Session.
func Load(fs afero.Fs, path string) (*File, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, curated.Errorf("storage: %v", err)
	}
	defer f.Close()

	var data File
	if err := json.NewDecoder(snappy.NewReader(f)).Decode(&data); err != nil {
		return nil, curated.Errorf("storage: %s: %v", path, err)
	}

	return &data, nil
}

// writeCompressed encodes v as JSON and writes it, snappy compressed, to
// path. The file is written under a temporary name and renamed when complete.
func writeCompressed(fs afero.Fs, path string, v any) error {
	tmp := fmt.Sprintf("%s.tmp", path)

	f, err := fs.Create(tmp)
	if err != nil {
		return curated.Errorf("storage: %v", err)
	}

	w := snappy.NewBufferedWriter(f)
	err = json.NewEncoder(w).Encode(v)
	if err == nil {
		err = w.Close()
	}
	if err != nil {
		_ = f.Close()
		_ = fs.Remove(tmp)
		return curated.Errorf("storage: %s: %v", path, err)
	}

	if err := f.Close(); err != nil {
		_ = fs.Remove(tmp)
		return curated.Errorf("storage: %s: %v", path, err)
	}

	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return curated.Errorf("storage: %v", err)
	}

	return nil
}
