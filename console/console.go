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

// Package console presents the recording session as lines of text. Colour is
// used if the output is a terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/jetsetilly/demorecorder/notifications"
	"github.com/jetsetilly/demorecorder/userinput"
)

const ansiOff = "\033[0m"

const ansiRed = "\033[31m"
const ansiGreen = "\033[32m"
const ansiYellow = "\033[33m"
const ansiCyan = "\033[36m"
const ansiGray = "\033[37m"

// Console implements the notifications.Notify interface.
type Console struct {
	crit   sync.Mutex
	output io.Writer
	color  bool
}

// NewConsole is the preferred method of initialisation for the Console type.
// Colour is enabled if the output is a terminal.
func NewConsole(output io.Writer) *Console {
	con := &Console{output: output}
	if f, ok := output.(*os.File); ok {
		con.color = term.IsTerminal(int(f.Fd()))
	}
	return con
}

func (con *Console) print(color string, s string, a ...interface{}) {
	con.crit.Lock()
	defer con.crit.Unlock()

	if con.color && color != "" {
		fmt.Fprintf(con.output, "%s%s%s\n", color, fmt.Sprintf(s, a...), ansiOff)
		return
	}
	fmt.Fprintf(con.output, "%s\n", fmt.Sprintf(s, a...))
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

// Notify implements the notifications.Notify interface.
func (con *Console) Notify(notice notifications.Notice, d notifications.Detail) error {
	switch notice {
	case notifications.NotifyRecordingStarted:
		con.print(ansiRed, "* recording episode %d", d.Episode)
	case notifications.NotifyEpisodeCommitted:
		con.print(ansiGreen, "+ episode %d saved: %d steps, %.1fs", d.Episode, d.Steps, d.Duration.Seconds())
	case notifications.NotifyEpisodeDiscarded:
		con.print(ansiYellow, "- episode too short (%d steps), discarded", d.Steps)
	case notifications.NotifyRecordingProgress:
		con.print(ansiRed, "* recording: %d steps, %.1fs", d.Steps, d.Duration.Seconds())
	case notifications.NotifyProgressSaved:
		con.print(ansiCyan, "progress saved (%d episodes): %s", d.Episode, d.Path)
	case notifications.NotifyDatasetSaved:
		con.print(ansiCyan, "dataset saved (%d episodes): %s", d.Episode, d.Path)
	case notifications.NotifyPrecision:
		con.print(ansiGray, "precision mode: %s", onOff(d.On))
	case notifications.NotifySpeed:
		con.print(ansiGray, "speed: %.2f", d.Speed)
	case notifications.NotifyPause:
		if d.On {
			con.print(ansiYellow, "paused")
		} else {
			con.print(ansiYellow, "resumed")
		}
	case notifications.NotifyReset:
		if d.On {
			con.print(ansiGray, "environment reset (recording continues)")
		} else {
			con.print(ansiGray, "environment reset")
		}
	case notifications.NotifyTerminated:
		if d.On {
			con.print(ansiGray, "episode terminated by the environment (recording continues)")
		} else {
			con.print(ansiGray, "episode terminated by the environment")
		}
	case notifications.NotifyQuit:
		con.print("", "quitting...")
	case notifications.NotifyInterrupted:
		con.print("", "interrupted by user")
	case notifications.NotifySessionEnded:
		con.print("", "session ended (%d episodes)", d.Episode)
	default:
		return fmt.Errorf("console: unhandled notification (%s)", notice)
	}
	return nil
}

const rule = "============================================================"

// Banner prints the welcome message and the controls for the mapping.
func (con *Console) Banner(title string, mapping userinput.Mapping) {
	s := strings.Builder{}
	s.WriteString(rule)
	s.WriteString("\n")
	s.WriteString(title)
	s.WriteString("\n\n")
	s.WriteString("left stick       move X/Y\n")
	s.WriteString("right stick      move Z, rotate RY\n")
	s.WriteString("d-pad            rotate RX, gripper (left open, right close)\n\n")
	for _, b := range userinput.Buttons {
		if idx, ok := mapping[b]; ok {
			s.WriteString(fmt.Sprintf("button %-2d        %s\n", idx, b))
		}
	}
	s.WriteString(rule)

	con.print("", "%s", s.String())
}
