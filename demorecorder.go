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

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/jetsetilly/demorecorder/console"
	"github.com/jetsetilly/demorecorder/environment"
	"github.com/jetsetilly/demorecorder/environment/remote"
	"github.com/jetsetilly/demorecorder/gamepad"
	"github.com/jetsetilly/demorecorder/gamepad/joypad"
	"github.com/jetsetilly/demorecorder/gamepad/sdlpad"
	"github.com/jetsetilly/demorecorder/logger"
	"github.com/jetsetilly/demorecorder/modalflag"
	"github.com/jetsetilly/demorecorder/performance/limiter"
	"github.com/jetsetilly/demorecorder/prefs"
	"github.com/jetsetilly/demorecorder/recorder"
	"github.com/jetsetilly/demorecorder/statsview"
	"github.com/jetsetilly/demorecorder/storage"
	"github.com/jetsetilly/demorecorder/userinput"
	"github.com/jetsetilly/demorecorder/version"
)

// SDL requires that joystick events are serviced from the thread that
// initialised the joystick subsystem
func init() {
	runtime.LockOSThread()
}

func main() {
	// ctrl-c cancels the context. the recording session is finalised normally
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx)
	stop()

	os.Exit(exitVal)
}

func launch(ctx context.Context) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RECORD", "PAD", "SESSIONS", "SUMMARY", "REPLAY")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RECORD":
		err = record(ctx, md)

	case "PAD":
		err = pad(ctx, md)

	case "SESSIONS":
		err = sessions(md)

	case "SUMMARY":
		err = summary(md)

	case "REPLAY":
		err = replay(ctx, md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// open the controller using the named driver.
func openDriver(driver string, index int) (gamepad.Driver, error) {
	switch strings.ToUpper(driver) {
	case "SDL":
		return sdlpad.NewPad(index)
	case "JOYSTICK":
		return joypad.NewPad(index)
	}
	return nil, fmt.Errorf("unknown controller driver (%s)", driver)
}

// open the named environment. the environment's time limit is always removed.
func openEnvironment(kind string, url string, seed int) (environment.Environment, error) {
	switch strings.ToUpper(kind) {
	case "STUB":
		return environment.NoTimeLimit(environment.NewStub(int64(seed))), nil
	case "REMOTE":
		env, err := remote.NewRemote(url, &http.Client{Timeout: remote.DefaultTimeout})
		if err != nil {
			return nil, err
		}
		return environment.NoTimeLimit(env), nil
	}
	return nil, fmt.Errorf("unknown environment (%s)", kind)
}

func setLogging(echo bool) {
	if echo {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
}

func record(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	driver := md.AddString("driver", "SDL", "controller driver: SDL, JOYSTICK")
	padIdx := md.AddInt("pad", 0, "index of controller to use")
	envKind := md.AddString("env", "STUB", "environment: STUB, REMOTE")
	url := md.AddString("url", "http://localhost:8000", "address of remote environment")
	seed := md.AddInt("seed", int(time.Now().UnixNano()&0x7fffffff), "seed for stub environment")
	episodes := md.AddInt("episodes", recorder.DefaultMaxEpisodes, "number of episodes to record")
	minSteps := md.AddInt("minsteps", recorder.DefaultMinSteps, "episodes with this many steps or fewer are discarded")
	speed := md.AddFloat64("speed", userinput.DefaultSpeed, "initial speed")
	deadZone := md.AddFloat64("deadzone", userinput.DefaultDeadZone, "stick dead zone")
	dataDir := md.AddString("datadir", recorder.DefaultDatasetDir, "directory for recording sessions")
	tickRate := md.AddInt("tickrate", recorder.DefaultTickRate, "control loop rate (ticks per second)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	savePrefs := md.AddBool("saveprefs", false, "save preferences after applying command line values")
	prefsStr := md.AddString("prefs", "", "preferences string: key::value; key::value")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	setLogging(*log)

	if *stats {
		statsview.Launch(os.Stdout, statsview.DefaultAddress)
	}

	if *prefsStr != "" {
		prefs.PushCommandLineStack(*prefsStr)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
			}
		}()
	}

	ctrlPrefs, err := userinput.NewPreferences()
	if err != nil {
		return err
	}
	recPrefs, err := recorder.NewPreferences()
	if err != nil {
		return err
	}

	// flags set explicitly on the command line override the preferences
	md.Visit(func(flag string) {
		if err != nil {
			return
		}
		switch flag {
		case "episodes":
			err = recPrefs.MaxEpisodes.Set(*episodes)
		case "minsteps":
			err = recPrefs.MinSteps.Set(*minSteps)
		case "tickrate":
			err = recPrefs.TickRate.Set(*tickRate)
		case "datadir":
			err = recPrefs.DatasetDir.Set(*dataDir)
		case "speed":
			err = ctrlPrefs.Speed.Set(*speed)
		case "deadzone":
			err = ctrlPrefs.DeadZone.Set(*deadZone)
		}
	})
	if err != nil {
		return err
	}

	if *savePrefs {
		if err := ctrlPrefs.Save(); err != nil {
			return err
		}
		if err := recPrefs.Save(); err != nil {
			return err
		}
	}

	drv, err := openDriver(*driver, *padIdx)
	if err != nil {
		return err
	}
	mapper := userinput.NewMapper(drv, ctrlPrefs.Config())

	env, err := openEnvironment(*envKind, *url, *seed)
	if err != nil {
		mapper.Close()
		return err
	}

	store, err := storage.NewSession(afero.NewOsFs(), recPrefs.DatasetDir.String(), storage.SessionID(time.Now()))
	if err != nil {
		env.Close()
		mapper.Close()
		return err
	}

	lim, err := limiter.NewFPSLimiter(recPrefs.TickRate.Get().(int))
	if err != nil {
		env.Close()
		mapper.Close()
		return err
	}
	defer lim.Stop()

	con := console.NewConsole(os.Stdout)
	con.Banner(version.String(), ctrlPrefs.Config().Mapping)
	fmt.Printf("controller: %s\n", drv.Name())
	fmt.Printf("session: %s\n", store)

	sess, err := recorder.NewSession(mapper, env, store, con, lim, recPrefs.Config())
	if err != nil {
		env.Close()
		mapper.Close()
		return err
	}

	return sess.Run(ctx)
}

func pad(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Prints the action and button presses for the controller until the quit button is pressed.")

	driver := md.AddString("driver", "SDL", "controller driver: SDL, JOYSTICK")
	padIdx := md.AddInt("pad", 0, "index of controller to use")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogging(*log)

	ctrlPrefs, err := userinput.NewPreferences()
	if err != nil {
		return err
	}

	drv, err := openDriver(*driver, *padIdx)
	if err != nil {
		return err
	}
	mapper := userinput.NewMapper(drv, ctrlPrefs.Config())
	defer mapper.Close()

	lim, err := limiter.NewFPSLimiter(recorder.DefaultTickRate)
	if err != nil {
		return err
	}
	defer lim.Stop()

	fmt.Printf("%s: %d axes, %d hats, %d buttons\n", drv.Name(), drv.NumAxes(), drv.NumHats(), drv.NumButtons())

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		action := mapper.ReadAction()
		if action.Active() {
			fmt.Println(action)
		}

		for _, b := range userinput.Buttons {
			if mapper.ButtonPressed(b) {
				fmt.Printf("pressed: %s\n", b)
				if b == userinput.Quit {
					return nil
				}
			}
		}

		lim.Wait()
	}
}

func sessions(md *modalflag.Modes) error {
	md.NewMode()

	dataDir := md.AddString("datadir", recorder.DefaultDatasetDir, "directory for recording sessions")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	lst, err := storage.ListSessions(afero.NewOsFs(), *dataDir)
	if err != nil {
		return err
	}

	if len(lst) == 0 {
		fmt.Printf("no sessions in %s\n", *dataDir)
		return nil
	}

	for _, s := range lst {
		fmt.Println(s.ID)
		for _, f := range s.Files {
			fmt.Printf("  %s\n", f)
		}
	}

	return nil
}

func summary(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("dataset file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	f, err := storage.Load(afero.NewOsFs(), md.GetArg(0))
	if err != nil {
		return err
	}

	// statistics are recalculated rather than relying on the values saved
	// with the file. progress files do not have them
	s := storage.Summary{
		Statistics: f.Dataset().Statistics(),
	}
	if f.SessionInfo != nil {
		s.SessionInfo = *f.SessionInfo
	} else {
		s.SessionInfo.SessionID = f.SessionID
		s.SessionInfo.TotalEpisodes = len(f.Episodes)
		if f.Timestamp != nil {
			s.SessionInfo.CreationTime = *f.Timestamp
		}
	}

	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	fmt.Print(string(b))

	return nil
}

func replay(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	episode := md.AddInt("episode", 1, "episode number to replay")
	envKind := md.AddString("env", "STUB", "environment: STUB, REMOTE")
	url := md.AddString("url", "http://localhost:8000", "address of remote environment")
	seed := md.AddInt("seed", 0, "seed for stub environment")
	tickRate := md.AddInt("tickrate", 0, "playback rate (steps per second). zero for unlimited")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("dataset file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	setLogging(*log)

	f, err := storage.Load(afero.NewOsFs(), md.GetArg(0))
	if err != nil {
		return err
	}

	if *episode < 1 || *episode > len(f.Episodes) {
		return fmt.Errorf("no episode %d in dataset (%d episodes)", *episode, len(f.Episodes))
	}
	ep := f.Episodes[*episode-1]

	env, err := openEnvironment(*envKind, *url, *seed)
	if err != nil {
		return err
	}
	defer env.Close()

	plb, err := recorder.NewPlayback(ep, env)
	if err != nil {
		return err
	}

	if !plb.StartMatches() {
		fmt.Println("! episode was not recorded from a freshly reset environment. rewards will differ")
	}

	var throttle recorder.Throttle
	if *tickRate > 0 {
		lim, err := limiter.NewFPSLimiter(*tickRate)
		if err != nil {
			return err
		}
		defer lim.Stop()
		throttle = lim
	}

	fmt.Printf("replaying episode %d (%s)\n", *episode, ep.ID)

	err = plb.Run(ctx, throttle)
	if err != nil {
		return err
	}

	res := plb.Result()
	fmt.Printf("steps: %s\n", plb)
	fmt.Printf("reward: %.3f (recorded %.3f)\n", res.Reward, res.RecordedReward)
	if res.TerminatedAt >= 0 {
		fmt.Printf("terminated at step %d\n", res.TerminatedAt)
	}

	return nil
}
