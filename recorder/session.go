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
	"context"
	"time"

	"github.com/jetsetilly/demorecorder/curated"
	"github.com/jetsetilly/demorecorder/dataset"
	"github.com/jetsetilly/demorecorder/environment"
	"github.com/jetsetilly/demorecorder/logger"
	"github.com/jetsetilly/demorecorder/notifications"
	"github.com/jetsetilly/demorecorder/userinput"
)

// Store is implemented by anything that can persist a dataset. Both functions
// return the path of the written file.
type Store interface {
	SaveProgress(d *dataset.Dataset, count int) (string, error)
	SaveFinal(d *dataset.Dataset) (string, error)
}

// Throttle limits the rate of the control loop. Wait() blocks until the next
// tick is due.
type Throttle interface {
	Wait()
}

// Default values for the Config type.
const (
	DefaultMaxEpisodes = 10
	DefaultMinSteps    = 10
	DefaultTickRate    = 30
)

// a progress notification is sent every progressInterval recorded steps.
const progressInterval = 150

// a snapshot of the dataset is saved every snapshotInterval episodes.
const snapshotInterval = 3

// Config for a new Session.
type Config struct {
	// the session ends when this many episodes have been committed
	MaxEpisodes int

	// episodes with this many steps or fewer are discarded
	MinSteps int
}

// DefaultConfig returns a Config with the default values.
func DefaultConfig() Config {
	return Config{
		MaxEpisodes: DefaultMaxEpisodes,
		MinSteps:    DefaultMinSteps,
	}
}

// Session is a single recording session.
type Session struct {
	mapper   *userinput.Mapper
	env      environment.Environment
	store    Store
	notify   notifications.Notify
	throttle Throttle

	cfg Config

	// the time used for episode start times and durations
	Now func() time.Time

	data dataset.Dataset

	// the most recent observation and info from the environment. seeds new
	// episodes
	observation environment.Observation
	info        environment.Info

	// the episode being recorded. nil if not recording
	episode *dataset.Episode

	paused bool

	// number of steps since the environment was last reset or recording
	// started
	stepCount int

	started   bool
	finalised bool
}

// NewSession is the preferred method of initialisation for the Session type.
// The throttle argument can be nil, in which case the loop runs as fast as
// possible.
func NewSession(mapper *userinput.Mapper, env environment.Environment, store Store,
	notify notifications.Notify, throttle Throttle, cfg Config) (*Session, error) {

	if mapper == nil || env == nil || store == nil || notify == nil {
		return nil, curated.Errorf("recorder: session is missing a collaborator")
	}
	if cfg.MaxEpisodes <= 0 {
		return nil, curated.Errorf("recorder: maximum episodes must be positive (%d)", cfg.MaxEpisodes)
	}
	if cfg.MinSteps < 0 {
		return nil, curated.Errorf("recorder: minimum steps cannot be negative (%d)", cfg.MinSteps)
	}

	return &Session{
		mapper:   mapper,
		env:      env,
		store:    store,
		notify:   notify,
		throttle: throttle,
		cfg:      cfg,
		Now:      time.Now,
	}, nil
}

// Dataset returns the committed episodes.
func (s *Session) Dataset() *dataset.Dataset {
	return &s.data
}

// Recording returns true if an episode is being recorded.
func (s *Session) Recording() bool {
	return s.episode != nil
}

// StepCount returns the number of environment steps since the environment was
// last reset or recording last started.
func (s *Session) StepCount() int {
	return s.stepCount
}

// Paused returns true if the environment is not being stepped.
func (s *Session) Paused() bool {
	return s.paused
}

// send notification. failures to notify are logged but are not fatal
func (s *Session) notice(notice notifications.Notice, detail notifications.Detail) {
	if err := s.notify.Notify(notice, detail); err != nil {
		logger.Log(logger.Allow, "recorder", err)
	}
}

// Start resets the environment in preparation for the first tick. It is
// called automatically by Run() if it has not been called already.
func (s *Session) Start() error {
	if s.started {
		return nil
	}
	if s.finalised {
		return curated.Errorf("recorder: session has already ended")
	}

	obs, info, err := s.env.Reset()
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	s.observation = obs
	s.info = info
	s.started = true

	logger.Logf(logger.Allow, "recorder", "session started (max episodes %d)", s.cfg.MaxEpisodes)

	return nil
}

// Run the control loop until the session ends. Any error from the
// environment or the store ends the session. Cancelling the context ends the
// session normally.
//
// The session is finalised however the loop ends.
func (s *Session) Run(ctx context.Context) (rerr error) {
	defer func() {
		if err := s.Finalise(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	if err := s.Start(); err != nil {
		return err
	}

	for s.data.Len() < s.cfg.MaxEpisodes {
		select {
		case <-ctx.Done():
			s.notice(notifications.NotifyInterrupted, notifications.Detail{})
			return nil
		default:
		}

		cont, err := s.Tick()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	logger.Logf(logger.Allow, "recorder", "maximum episodes (%d) reached", s.cfg.MaxEpisodes)

	return nil
}

// Tick performs one iteration of the control loop. Returns false if the quit
// button was pressed.
func (s *Session) Tick() (bool, error) {
	if !s.started {
		return false, curated.Errorf("recorder: session not started")
	}
	if s.finalised {
		return false, curated.Errorf("recorder: session has already ended")
	}

	now := s.Now()

	action := s.mapper.ReadAction()

	// every button is checked every tick so that edges are tracked correctly
	// even for buttons that are only logged
	pressed := make(map[userinput.Button]bool, len(userinput.Buttons))
	for _, b := range userinput.Buttons {
		pressed[b] = s.mapper.ButtonPressed(b)
	}

	if pressed[userinput.RecordToggle] {
		if err := s.toggleRecording(now); err != nil {
			return false, err
		}
	}

	if pressed[userinput.Precision] {
		on := s.mapper.TogglePrecision()
		s.notice(notifications.NotifyPrecision, notifications.Detail{On: on})
	}

	if pressed[userinput.SpeedUp] {
		speed := s.mapper.IncreaseSpeed()
		s.notice(notifications.NotifySpeed, notifications.Detail{Speed: speed})
	}

	if pressed[userinput.SpeedDown] {
		speed := s.mapper.DecreaseSpeed()
		s.notice(notifications.NotifySpeed, notifications.Detail{Speed: speed})
	}

	if pressed[userinput.Pause] {
		s.paused = !s.paused
		s.notice(notifications.NotifyPause, notifications.Detail{On: s.paused})
	}

	if pressed[userinput.Reset] {
		if err := s.reset(); err != nil {
			return false, err
		}
		s.notice(notifications.NotifyReset, notifications.Detail{On: s.Recording()})
	}

	if pressed[userinput.EmergencyStop] {
		logger.Log(logger.Allow, "recorder", "emergency stop pressed (no action)")
	}

	if pressed[userinput.GripperToggle] {
		logger.Log(logger.Allow, "recorder", "gripper toggle pressed (no action)")
	}

	if pressed[userinput.Quit] {
		s.notice(notifications.NotifyQuit, notifications.Detail{})
		return false, nil
	}

	if !s.paused && action.Active() {
		if err := s.step(action, now); err != nil {
			return false, err
		}
	}

	if s.throttle != nil {
		s.throttle.Wait()
	}

	return true, nil
}

func (s *Session) toggleRecording(now time.Time) error {
	if s.episode == nil {
		s.episode = dataset.NewEpisode(s.observation, s.info, now)
		s.stepCount = 0
		s.notice(notifications.NotifyRecordingStarted, notifications.Detail{Episode: s.data.Len() + 1})
		return nil
	}

	ep := s.episode
	s.episode = nil

	if ep.Steps() <= s.cfg.MinSteps {
		s.notice(notifications.NotifyEpisodeDiscarded, notifications.Detail{Steps: ep.Steps()})
		return nil
	}

	ep.Finalise(now)
	n := s.data.Add(ep)
	s.notice(notifications.NotifyEpisodeCommitted, notifications.Detail{
		Episode:  n,
		Steps:    ep.Steps(),
		Duration: ep.Metadata.Duration,
	})

	if n%snapshotInterval == 0 {
		pth, err := s.store.SaveProgress(&s.data, n)
		if err != nil {
			return curated.Errorf("recorder: %v", err)
		}
		s.notice(notifications.NotifyProgressSaved, notifications.Detail{Episode: n, Path: pth})
	}

	return nil
}

func (s *Session) step(action userinput.Action, now time.Time) error {
	st, err := s.env.Step(action)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	s.observation = st.Observation
	s.info = st.Info
	s.stepCount++

	if s.episode != nil {
		s.episode.Append(action, st)
		if n := s.episode.Steps(); n%progressInterval == 0 {
			s.notice(notifications.NotifyRecordingProgress, notifications.Detail{
				Steps:    n,
				Duration: now.Sub(s.episode.Metadata.StartTime),
			})
		}
	}

	if st.Terminated {
		if err := s.reset(); err != nil {
			return err
		}
		s.notice(notifications.NotifyTerminated, notifications.Detail{On: s.Recording()})
	}

	return nil
}

func (s *Session) reset() error {
	obs, info, err := s.env.Reset()
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	s.observation = obs
	s.info = info
	s.stepCount = 0
	return nil
}

// Finalise ends the session. The dataset is saved if any episodes have been
// committed. An episode that is still being recorded is discarded. The
// environment and the controller are closed even if saving fails.
//
// It is safe to call Finalise() more than once.
func (s *Session) Finalise() error {
	if s.finalised {
		return nil
	}
	s.finalised = true

	if s.episode != nil {
		logger.Logf(logger.Allow, "recorder", "unfinished episode of %d steps discarded", s.episode.Steps())
		s.episode = nil
	}

	var err error

	if s.data.Len() > 0 {
		var pth string
		pth, err = s.store.SaveFinal(&s.data)
		if err != nil {
			err = curated.Errorf("recorder: %v", err)
		} else {
			s.notice(notifications.NotifyDatasetSaved, notifications.Detail{Episode: s.data.Len(), Path: pth})
		}
	}

	if cerr := s.env.Close(); cerr != nil {
		logger.Log(logger.Allow, "recorder", cerr)
		if err == nil {
			err = curated.Errorf("recorder: %v", cerr)
		}
	}

	if cerr := s.mapper.Close(); cerr != nil {
		logger.Log(logger.Allow, "recorder", cerr)
		if err == nil {
			err = curated.Errorf("recorder: %v", cerr)
		}
	}

	s.notice(notifications.NotifySessionEnded, notifications.Detail{Episode: s.data.Len()})

	return err
}
