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
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/jetsetilly/demorecorder/curated"
	"github.com/jetsetilly/demorecorder/dataset"
	"github.com/jetsetilly/demorecorder/logger"
)

// Sentinal error returned by NewSession() when the session directory has
// already been created.
const (
	SessionExists = "storage: session already exists (%s)"
)

// DefaultRoot is the default dataset root directory.
const DefaultRoot = "datasets"

// layout of session IDs.
const sessionIDLayout = "20060102_150405"

// prefix of every session directory.
const sessionPrefix = "gamepad_session_"

// extension of dataset files.
const datasetExtension = ".json.sz"

// extension of summary files.
const summaryExtension = ".yaml"

// SessionID returns the session ID for a session starting at the time.
func SessionID(t time.Time) string {
	return t.Format(sessionIDLayout)
}

// Session writes the dataset files for a single recording session.
type Session struct {
	fs   afero.Fs
	id   string
	path string

	// the time used for timestamps and summary filenames
	Now func() time.Time
}

// NewSession is the preferred method of initialisation for the Session type.
// The session directory is created under the root directory, which is
// created if necessary.
func NewSession(fs afero.Fs, root string, id string) (*Session, error) {
	s := &Session{
		fs:   fs,
		id:   id,
		path: filepath.Join(root, fmt.Sprintf("%s%s", sessionPrefix, id)),
		Now:  time.Now,
	}

	exists, err := afero.DirExists(fs, s.path)
	if err != nil {
		return nil, curated.Errorf("storage: %v", err)
	}
	if exists {
		return nil, curated.Errorf(SessionExists, s.path)
	}

	if err := fs.MkdirAll(s.path, 0o755); err != nil {
		return nil, curated.Errorf("storage: %v", err)
	}

	logger.Logf(logger.Allow, "storage", "session directory %s", s.path)

	return s, nil
}

func (s *Session) String() string {
	return s.path
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

// Path returns the session directory.
func (s *Session) Path() string {
	return s.path
}

// SaveProgress writes a snapshot of the dataset. The count argument is the
// number of episodes committed so far and forms part of the filename. Returns
// the path of the snapshot file.
func (s *Session) SaveProgress(d *dataset.Dataset, count int) (string, error) {
	now := s.Now()
	pth := filepath.Join(s.path, fmt.Sprintf("progress_%s_%03d%s", s.id, count, datasetExtension))

	err := writeCompressed(s.fs, pth, File{
		Episodes:  d.Episodes,
		Count:     count,
		SessionID: s.id,
		Timestamp: &now,
	})
	if err != nil {
		return "", err
	}

	logger.Logf(logger.Allow, "storage", "progress saved to %s", pth)

	return pth, nil
}

// SaveFinal writes the final dataset and a human readable summary of it.
// Returns the path of the final dataset file.
func (s *Session) SaveFinal(d *dataset.Dataset) (string, error) {
	now := s.Now()

	info := SessionInfo{
		SessionID:     s.id,
		TotalEpisodes: d.Len(),
		CreationTime:  now,
	}
	stats := d.Statistics()

	pth := filepath.Join(s.path, fmt.Sprintf("dataset_%s_final%s", s.id, datasetExtension))
	err := writeCompressed(s.fs, pth, File{
		Episodes:    d.Episodes,
		SessionInfo: &info,
		Statistics:  &stats,
	})
	if err != nil {
		return "", err
	}

	logger.Logf(logger.Allow, "storage", "dataset saved to %s", pth)

	summary, err := yaml.Marshal(Summary{
		SessionInfo: info,
		Statistics:  stats,
	})
	if err != nil {
		return "", curated.Errorf("storage: %v", err)
	}

	summaryPth := filepath.Join(s.path, fmt.Sprintf("dataset_%deps_%s_summary%s", d.Len(), now.Format("0102_1504"), summaryExtension))
	if err := afero.WriteFile(s.fs, summaryPth, summary, 0o644); err != nil {
		return "", curated.Errorf("storage: %v", err)
	}

	logger.Logf(logger.Allow, "storage", "summary saved to %s", summaryPth)

	return pth, nil
}
