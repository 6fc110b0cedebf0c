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

package remote_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jetsetilly/demorecorder/curated"
	"github.com/jetsetilly/demorecorder/environment"
	"github.com/jetsetilly/demorecorder/environment/remote"
	"github.com/jetsetilly/demorecorder/test"
	"github.com/jetsetilly/demorecorder/userinput"
)

// simulation server that counts steps and terminates on the third
func newServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var steps atomic.Int32
	var closed atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/reset", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		steps.Store(0)
		w.Write([]byte(`{"observation": [0, 0, 0], "info": {"steps": 0}}`))
	})
	mux.HandleFunc("/step", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Action []float64 `json:"action"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Action) != 6 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		n := steps.Add(1)
		json.NewEncoder(w).Encode(map[string]any{
			"observation": []float64{req.Action[0], req.Action[1], req.Action[2]},
			"reward":      -1.0,
			"terminated":  n == 3,
			"truncated":   true,
			"info":        map[string]any{"steps": n},
		})
	})
	mux.HandleFunc("/close", func(w http.ResponseWriter, r *http.Request) {
		closed.Add(1)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, &closed
}

func TestRemote(t *testing.T) {
	srv, closed := newServer(t)

	env, err := remote.NewRemote(srv.URL+"/", srv.Client())
	test.DemandSuccess(t, err)

	obs, info, err := env.Reset()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(obs), 3)
	test.ExpectEquality(t, info.Kind, environment.InfoMapping)

	a := userinput.Action{0.1, 0.2, 0.3, 0, 0, 0}
	s, err := env.Step(a)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Observation[1], 0.2)
	test.ExpectEquality(t, s.Reward, -1.0)
	test.ExpectFailure(t, s.Terminated)
	test.ExpectSuccess(t, s.Truncated)
	test.ExpectEquality(t, s.Info.Mapping["steps"], interface{}(1.0))

	_, err = env.Step(a)
	test.DemandSuccess(t, err)
	s, err = env.Step(a)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, s.Terminated)

	test.ExpectSuccess(t, env.Close())
	test.ExpectEquality(t, closed.Load(), 1)
}

func TestRemoteNoTimeLimit(t *testing.T) {
	srv, _ := newServer(t)

	r, err := remote.NewRemote(srv.URL, srv.Client())
	test.DemandSuccess(t, err)
	env := environment.NoTimeLimit(r)

	_, _, err = env.Reset()
	test.DemandSuccess(t, err)
	s, err := env.Step(userinput.Action{})
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, s.Truncated)
}

func TestRemoteBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	env, err := remote.NewRemote(srv.URL, srv.Client())
	test.DemandSuccess(t, err)

	_, _, err = env.Reset()
	test.ExpectSuccess(t, curated.Is(err, remote.BadStatus))
	test.ExpectEquality(t, err.Error(), "remote: reset: bad status (500)")

	_, err = env.Step(userinput.Action{})
	test.ExpectSuccess(t, curated.Is(err, remote.BadStatus))
}

func TestRemoteNoURL(t *testing.T) {
	_, err := remote.NewRemote("", nil)
	test.ExpectFailure(t, err)
}

func TestRemoteUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	env, err := remote.NewRemote(url, nil)
	test.DemandSuccess(t, err)
	_, _, err = env.Reset()
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, curated.Is(err, remote.BadStatus))
}
