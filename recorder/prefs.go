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

package recorder

import (
	"fmt"

	"github.com/jetsetilly/demorecorder/paths"
	"github.com/jetsetilly/demorecorder/prefs"
)

// DefaultDatasetDir is the default root directory for session directories.
const DefaultDatasetDir = "datasets"

// Preferences for the recording session. Saved to the global preferences
// file.
type Preferences struct {
	dsk *prefs.Disk

	MaxEpisodes prefs.Int
	MinSteps    prefs.Int
	TickRate    prefs.Int
	DatasetDir  prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	positive := func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("recorder: value must be positive (%v)", v)
		}
		return nil
	}
	p.MaxEpisodes.SetHookPre(positive)
	p.TickRate.SetHookPre(positive)

	p.MinSteps.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("recorder: minimum steps cannot be negative (%v)", v)
		}
		return nil
	})

	p.DatasetDir.SetHookPre(func(v prefs.Value) error {
		if v.(string) == "" {
			return fmt.Errorf("recorder: dataset directory cannot be empty")
		}
		return nil
	})

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("recorder: %w", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("recorder: %w", err)
	}

	err = p.dsk.Add("recorder.maxepisodes", &p.MaxEpisodes)
	if err != nil {
		return nil, fmt.Errorf("recorder: %w", err)
	}
	err = p.dsk.Add("recorder.minsteps", &p.MinSteps)
	if err != nil {
		return nil, fmt.Errorf("recorder: %w", err)
	}
	err = p.dsk.Add("recorder.tickrate", &p.TickRate)
	if err != nil {
		return nil, fmt.Errorf("recorder: %w", err)
	}
	err = p.dsk.Add("recorder.datasetdir", &p.DatasetDir)
	if err != nil {
		return nil, fmt.Errorf("recorder: %w", err)
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, fmt.Errorf("recorder: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all recorder settings to default values.
func (p *Preferences) SetDefaults() {
	p.MaxEpisodes.Set(DefaultMaxEpisodes)
	p.MinSteps.Set(DefaultMinSteps)
	p.TickRate.Set(DefaultTickRate)
	p.DatasetDir.Set(DefaultDatasetDir)
}

// Load recorder preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current recorder preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config returns a Config built from the current preference values.
func (p *Preferences) Config() Config {
	return Config{
		MaxEpisodes: p.MaxEpisodes.Get().(int),
		MinSteps:    p.MinSteps.Get().(int),
	}
}
