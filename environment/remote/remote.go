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

// Package remote implements the environment.Environment interface for a
// simulation running in a separate process. The simulation server is reached
// over HTTP with JSON request and response bodies:
//
//	POST /reset    {}                        -> {"observation": [...], "info": ...}
//	POST /step     {"action": [x,y,z,rx,ry,rz]} -> {"observation": [...], "reward": r,
//	                                             "terminated": b, "truncated": b, "info": ...}
//	POST /close    {}                        -> any
//
// Any response status other than 200 is an error.
package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jetsetilly/demorecorder/curated"
	"github.com/jetsetilly/demorecorder/environment"
	"github.com/jetsetilly/demorecorder/logger"
	"github.com/jetsetilly/demorecorder/userinput"
)

// Sentinal error returned when the server responds with anything other than
// http.StatusOK.
const (
	BadStatus = "remote: %s: bad status (%d)"
)

// DefaultTimeout for every request to the simulation server.
const DefaultTimeout = 10 * time.Second

type resetResponse struct {
	Observation environment.Observation `json:"observation"`
	Info        environment.Info        `json:"info"`
}

type stepRequest struct {
	Action userinput.Action `json:"action"`
}

// Remote is an environment reached over HTTP.
type Remote struct {
	url    string
	client *http.Client
}

// NewRemote is the preferred method of initialisation for the Remote type. A
// nil client is replaced with a client using DefaultTimeout.
func NewRemote(url string, client *http.Client) (*Remote, error) {
	if url == "" {
		return nil, curated.Errorf("remote: no url for simulation server")
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Remote{
		url:    strings.TrimRight(url, "/"),
		client: client,
	}, nil
}

func (env *Remote) String() string {
	return env.url
}

// Reset implements the environment.Environment interface.
func (env *Remote) Reset() (environment.Observation, environment.Info, error) {
	var r resetResponse
	if err := env.post("reset", struct{}{}, &r); err != nil {
		return nil, environment.Info{}, err
	}
	return r.Observation, r.Info, nil
}

// Step implements the environment.Environment interface.
func (env *Remote) Step(a userinput.Action) (environment.Step, error) {
	var s environment.Step
	if err := env.post("step", stepRequest{Action: a}, &s); err != nil {
		return environment.Step{}, err
	}
	return s, nil
}

// Close implements the environment.Environment interface.
func (env *Remote) Close() error {
	err := env.post("close", struct{}{}, nil)
	env.client.CloseIdleConnections()
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "remote", "closed %s", env.url)
	return nil
}

// post the payload to the endpoint and decode the response into result. The
// response body is discarded if result is nil.
func (env *Remote) post(endpoint string, payload any, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return curated.Errorf("remote: %s: %v", endpoint, err)
	}

	resp, err := env.client.Post(fmt.Sprintf("%s/%s", env.url, endpoint), "application/json", bytes.NewReader(body))
	if err != nil {
		return curated.Errorf("remote: %s: %v", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return curated.Errorf(BadStatus, endpoint, resp.StatusCode)
	}

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return curated.Errorf("remote: %s: %v", endpoint, err)
	}

	return nil
}
