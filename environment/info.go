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

package environment

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// InfoKind indicates which field of the Info type is valid.
type InfoKind int

// List of valid InfoKind values.
const (
	InfoNone InfoKind = iota
	InfoMapping
	InfoScalar
)

func (k InfoKind) String() string {
	switch k {
	case InfoNone:
		return "none"
	case InfoMapping:
		return "mapping"
	case InfoScalar:
		return "scalar"
	}
	return fmt.Sprintf("unknown info kind (%d)", int(k))
}

// Info is the auxiliary information returned by the environment alongside an
// observation. Simulations usually return a mapping of names to values but
// any value is allowed.
type Info struct {
	Kind    InfoKind
	Mapping map[string]interface{}
	Scalar  interface{}
}

// NewInfoMapping creates an Info value of the InfoMapping kind. The map is
// copied.
func NewInfoMapping(m map[string]interface{}) Info {
	return Info{Kind: InfoMapping, Mapping: copyMapping(m)}
}

// NewInfoScalar creates an Info value of the InfoScalar kind.
func NewInfoScalar(v interface{}) Info {
	return Info{Kind: InfoScalar, Scalar: v}
}

func (i Info) String() string {
	switch i.Kind {
	case InfoMapping:
		return fmt.Sprintf("%v", i.Mapping)
	case InfoScalar:
		return fmt.Sprintf("%v", i.Scalar)
	}
	return "none"
}

// Copy returns an Info that does not share the mapping with the original.
// Values in the mapping are copied shallowly.
func (i Info) Copy() Info {
	if i.Kind == InfoMapping {
		return Info{Kind: InfoMapping, Mapping: copyMapping(i.Mapping)}
	}
	return i
}

func copyMapping(m map[string]interface{}) map[string]interface{} {
	n := make(map[string]interface{}, len(m))
	for k, v := range m {
		n[k] = v
	}
	return n
}

// MarshalJSON implements the json.Marshaler interface. An InfoNone value is
// encoded as null.
func (i Info) MarshalJSON() ([]byte, error) {
	switch i.Kind {
	case InfoMapping:
		if i.Mapping == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(i.Mapping)
	case InfoScalar:
		return json.Marshal(i.Scalar)
	}
	return []byte("null"), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. A JSON object is
// decoded as an InfoMapping and null as InfoNone. Anything else is an
// InfoScalar.
func (i *Info) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = Info{}
		return nil
	}

	if data[0] == '{' {
		var m map[string]interface{}
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("environment: info: %w", err)
		}
		*i = Info{Kind: InfoMapping, Mapping: m}
		return nil
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("environment: info: %w", err)
	}
	*i = Info{Kind: InfoScalar, Scalar: v}

	return nil
}
