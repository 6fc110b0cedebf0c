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

package storage_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/jetsetilly/demorecorder/curated"
	"github.com/jetsetilly/demorecorder/dataset"
	"github.com/jetsetilly/demorecorder/environment"
	"github.com/jetsetilly/demorecorder/storage"
	"github.com/jetsetilly/demorecorder/userinput"
)

var sessionStart = time.Date(2024, 3, 1, 9, 5, 7, 0, time.Local)

func clock() time.Time {
	return time.Date(2024, 3, 1, 10, 30, 0, 0, time.Local)
}

func newDataset(episodes int, steps int) *dataset.Dataset {
	var d dataset.Dataset
	for i := 0; i < episodes; i++ {
		ep := dataset.NewEpisode(environment.Observation{0, 0, 0},
			environment.NewInfoMapping(map[string]interface{}{"episode": i}), sessionStart)
		for j := 0; j < steps; j++ {
			ep.Append(userinput.Action{0.1, -0.1}, environment.Step{
				Observation: environment.Observation{float64(j), 0, 0},
				Reward:      1.0,
				Info:        environment.NewInfoScalar("ok"),
			})
		}
		ep.Finalise(sessionStart.Add(time.Duration(steps) * time.Second))
		d.Add(ep)
	}
	return &d
}

func TestSessionID(t *testing.T) {
	assert.Equal(t, "20240301_090507", storage.SessionID(sessionStart))
}

func TestNewSession(t *testing.T) {
	fs := afero.NewMemMapFs()

	s, err := storage.NewSession(fs, "datasets", "20240301_090507")
	require.NoError(t, err)
	assert.Equal(t, "20240301_090507", s.ID())
	assert.Equal(t, filepath.Join("datasets", "gamepad_session_20240301_090507"), s.Path())

	exists, err := afero.DirExists(fs, s.Path())
	require.NoError(t, err)
	assert.True(t, exists)

	// a second session with the same id is refused
	_, err = storage.NewSession(fs, "datasets", "20240301_090507")
	require.Error(t, err)
	assert.True(t, curated.Is(err, storage.SessionExists))
}

func TestSaveProgress(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := storage.NewSession(fs, "datasets", "20240301_090507")
	require.NoError(t, err)
	s.Now = clock

	d := newDataset(3, 12)
	pth, err := s.SaveProgress(d, 3)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Path(), "progress_20240301_090507_003.json.sz"), pth)

	// no temporary file left behind
	exists, err := afero.Exists(fs, pth+".tmp")
	require.NoError(t, err)
	assert.False(t, exists)

	f, err := storage.Load(fs, pth)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Count)
	assert.Equal(t, "20240301_090507", f.SessionID)
	require.NotNil(t, f.Timestamp)
	assert.True(t, f.Timestamp.Equal(clock()))
	assert.Nil(t, f.SessionInfo)
	assert.Nil(t, f.Statistics)

	require.Len(t, f.Episodes, 3)
	ep := f.Episodes[1]
	assert.Equal(t, d.Episodes[1].ID, ep.ID)
	assert.Len(t, ep.Actions, 12)
	assert.Len(t, ep.Observations, 13)
	assert.Len(t, ep.Infos, 13)
	assert.Equal(t, userinput.Action{0.1, -0.1}, ep.Actions[0])
	assert.Equal(t, environment.InfoMapping, ep.Infos[0].Kind)
	assert.Equal(t, environment.InfoScalar, ep.Infos[1].Kind)
	assert.Equal(t, 12, ep.Metadata.TotalSteps)
	assert.Equal(t, 12*time.Second, ep.Metadata.Duration)
}

func TestSaveFinal(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := storage.NewSession(fs, "datasets", "20240301_090507")
	require.NoError(t, err)
	s.Now = clock

	d := newDataset(2, 20)
	pth, err := s.SaveFinal(d)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Path(), "dataset_20240301_090507_final.json.sz"), pth)

	f, err := storage.Load(fs, pth)
	require.NoError(t, err)
	require.Len(t, f.Episodes, 2)
	require.NotNil(t, f.SessionInfo)
	assert.Equal(t, "20240301_090507", f.SessionInfo.SessionID)
	assert.Equal(t, 2, f.SessionInfo.TotalEpisodes)
	require.NotNil(t, f.Statistics)
	assert.Equal(t, 2, f.Statistics.TotalEpisodes)
	assert.Equal(t, 20.0, f.Statistics.AvgReward)
	assert.Equal(t, []int{20, 20}, f.Statistics.EpisodeLengths)
	assert.Equal(t, 2, f.Dataset().Len())

	// human readable summary
	summaryPth := filepath.Join(s.Path(), "dataset_2eps_0301_1030_summary.yaml")
	data, err := afero.ReadFile(fs, summaryPth)
	require.NoError(t, err)

	var summary storage.Summary
	require.NoError(t, yaml.Unmarshal(data, &summary))
	assert.Equal(t, "20240301_090507", summary.SessionInfo.SessionID)
	assert.Equal(t, 2, summary.SessionInfo.TotalEpisodes)
	assert.Equal(t, 40.0, summary.Statistics.TotalDuration)
	assert.Equal(t, []float64{20, 20}, summary.Statistics.Rewards)

	// the summary holds no episodes
	var top map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &top))
	assert.Len(t, top, 2)
	assert.Contains(t, top, "session_info")
	assert.Contains(t, top, "statistics")
	assert.NotContains(t, top, "episodes")
}

func TestLoadMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := storage.Load(fs, "nosuchfile.json.sz")
	assert.Error(t, err)

	// files that are not snappy compressed JSON
	require.NoError(t, afero.WriteFile(fs, "bad.json.sz", []byte("not a dataset"), 0o644))
	_, err = storage.Load(fs, "bad.json.sz")
	assert.Error(t, err)
}

func TestListSessions(t *testing.T) {
	fs := afero.NewMemMapFs()

	// no root directory
	sessions, err := storage.ListSessions(fs, "datasets")
	require.NoError(t, err)
	assert.Empty(t, sessions)

	b, err := storage.NewSession(fs, "datasets", "20240302_000000")
	require.NoError(t, err)
	a, err := storage.NewSession(fs, "datasets", "20240301_000000")
	require.NoError(t, err)
	a.Now = clock

	_, err = a.SaveProgress(newDataset(3, 11), 3)
	require.NoError(t, err)
	_, err = a.SaveFinal(newDataset(3, 11))
	require.NoError(t, err)

	// unrelated files and directories are ignored
	require.NoError(t, afero.WriteFile(fs, filepath.Join(a.Path(), "notes.txt"), []byte("notes"), 0o644))
	require.NoError(t, fs.MkdirAll(filepath.Join("datasets", "other"), 0o755))

	sessions, err = storage.ListSessions(fs, "datasets")
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	assert.Equal(t, "20240301_000000", sessions[0].ID)
	require.Len(t, sessions[0].Files, 3)
	assert.Equal(t, "dataset_20240301_000000_final.json.sz", sessions[0].Files[0].Name)
	assert.Equal(t, "dataset_3eps_0301_1030_summary.yaml", sessions[0].Files[1].Name)
	assert.Equal(t, "progress_20240301_000000_003.json.sz", sessions[0].Files[2].Name)
	assert.Greater(t, sessions[0].Files[0].Size, int64(0))
	assert.Contains(t, sessions[0].Files[0].String(), "dataset_20240301_000000_final.json.sz (")

	assert.Equal(t, b.ID(), sessions[1].ID)
	assert.Empty(t, sessions[1].Files)
}
