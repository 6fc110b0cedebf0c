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

package userinput_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/demorecorder/prefs"
	"github.com/jetsetilly/demorecorder/test"
	"github.com/jetsetilly/demorecorder/userinput"
)

// change to a temporary directory with a local resource directory so that
// the preferences file is isolated from the user's real preferences
func isolate(t *testing.T) {
	t.Helper()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() {
		os.Chdir(wd)
	})

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".demorecorder", 0o700))
}

func TestPreferencesDefaults(t *testing.T) {
	isolate(t)

	p, err := userinput.NewPreferences()
	test.DemandSuccess(t, err)

	cfg := p.Config()
	test.ExpectEquality(t, cfg.Speed, userinput.DefaultSpeed)
	test.ExpectEquality(t, cfg.DeadZone, userinput.DefaultDeadZone)
	test.ExpectEquality(t, len(cfg.Mapping), len(userinput.Buttons))
	for b, idx := range userinput.DefaultMapping() {
		test.ExpectEquality(t, cfg.Mapping[b], idx, b)
	}
}

func TestPreferencesLimits(t *testing.T) {
	isolate(t)

	p, err := userinput.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.Speed.Set(0.9))
	test.ExpectFailure(t, p.Speed.Set(0.01))
	test.ExpectFailure(t, p.DeadZone.Set(1.0))

	// speeds between steps are rejected rather than snapped
	test.ExpectFailure(t, p.Speed.Set(0.22))
	test.ExpectFailure(t, p.Speed.Set("0.33"))
	test.ExpectEquality(t, p.Config().Speed, userinput.DefaultSpeed)

	test.ExpectSuccess(t, p.Speed.Set("0.35"))
	test.ExpectEquality(t, p.Config().Speed, 0.35)
}

func TestPreferencesSave(t *testing.T) {
	isolate(t)

	p, err := userinput.NewPreferences()
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, p.Speed.Set(0.4))
	test.DemandSuccess(t, p.Buttons[userinput.Quit].Set(7))
	test.DemandSuccess(t, p.Save())

	q, err := userinput.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Config().Speed, 0.4)
	test.ExpectEquality(t, q.Config().Mapping[userinput.Quit], 7)
	test.ExpectEquality(t, q.Config().Mapping[userinput.Pause], 8)
}

func TestPreferencesCommandLine(t *testing.T) {
	isolate(t)

	prefs.PushCommandLineStack("controller.speed::0.5; controller.button.pause::2")
	defer prefs.PopCommandLineStack()

	p, err := userinput.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Config().Speed, 0.5)
	test.ExpectEquality(t, p.Config().Mapping[userinput.Pause], 2)
}
