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

package userinput

import (
	"fmt"

	"github.com/jetsetilly/demorecorder/paths"
	"github.com/jetsetilly/demorecorder/prefs"
)

// Preferences for the controller. Saved to the global preferences file.
type Preferences struct {
	dsk *prefs.Disk

	Speed    prefs.Float
	DeadZone prefs.Float
	Buttons  map[Button]*prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		Buttons: make(map[Button]*prefs.Int),
	}
	p.SetDefaults()

	p.Speed.SetHookPre(func(v prefs.Value) error {
		s := v.(float64)
		if s < MinSpeed || s > MaxSpeed {
			return fmt.Errorf("userinput: speed must be between %.2f and %.2f (%v)", MinSpeed, MaxSpeed, s)
		}
		if !onSpeedGrid(s) {
			return fmt.Errorf("userinput: speed must be a multiple of %.2f (%v)", SpeedStep, s)
		}
		return nil
	})

	p.DeadZone.SetHookPre(func(v prefs.Value) error {
		d := v.(float64)
		if d < 0.0 || d >= 1.0 {
			return fmt.Errorf("userinput: dead zone must be between 0.0 and 1.0 (%v)", d)
		}
		return nil
	})

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("userinput: %w", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("userinput: %w", err)
	}

	err = p.dsk.Add("controller.speed", &p.Speed)
	if err != nil {
		return nil, fmt.Errorf("userinput: %w", err)
	}
	err = p.dsk.Add("controller.deadzone", &p.DeadZone)
	if err != nil {
		return nil, fmt.Errorf("userinput: %w", err)
	}
	for _, b := range Buttons {
		err = p.dsk.Add(fmt.Sprintf("controller.button.%s", b), p.Buttons[b])
		if err != nil {
			return nil, fmt.Errorf("userinput: %w", err)
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, fmt.Errorf("userinput: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all controller settings to default values.
func (p *Preferences) SetDefaults() {
	p.Speed.Set(DefaultSpeed)
	p.DeadZone.Set(DefaultDeadZone)
	for b, idx := range DefaultMapping() {
		if _, ok := p.Buttons[b]; !ok {
			p.Buttons[b] = &prefs.Int{}
		}
		p.Buttons[b].Set(idx)
	}
}

// Load controller preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current controller preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config returns a Config built from the current preference values.
func (p *Preferences) Config() Config {
	cfg := Config{
		Speed:    p.Speed.Get().(float64),
		DeadZone: p.DeadZone.Get().(float64),
		Mapping:  make(Mapping),
	}
	for b, v := range p.Buttons {
		cfg.Mapping[b] = v.Get().(int)
	}
	return cfg
}
