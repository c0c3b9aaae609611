// Copyright 2026 Radial Networks
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package topology

import (
	"strings"

	"github.com/radialnet/radial/pkg/private/serrors"
)

// LogFormat selects the record schema of traffic log deliveries.
type LogFormat uint8

const (
	// FormatDefault is the provider's built-in record format.
	FormatDefault LogFormat = iota
	// FormatExtended includes the extended attribute set in every record.
	FormatExtended
)

func (f LogFormat) String() string {
	switch f {
	case FormatDefault:
		return "default"
	case FormatExtended:
		return "extended"
	default:
		return "unknown"
	}
}

// ParseLogFormat parses the string representation of a log format.
func ParseLogFormat(s string) (LogFormat, error) {
	switch strings.ToLower(s) {
	case "default", "":
		return FormatDefault, nil
	case "extended":
		return FormatExtended, nil
	default:
		return 0, serrors.New("unsupported log format", "format", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f LogFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *LogFormat) UnmarshalText(b []byte) error {
	parsed, err := ParseLogFormat(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// LogSink is the destination traffic logs are delivered to. Provisioning the
// destination is outside the controller; it only needs the name to route to.
type LogSink interface {
	Destination() string
}

// StaticSink is a log sink with a fixed destination name.
type StaticSink string

// Destination implements LogSink.
func (s StaticSink) Destination() string {
	return string(s)
}

// LogRoute binds a network to a traffic log destination with a record format.
type LogRoute struct {
	Destination string    `json:"destination"`
	Format      LogFormat `json:"format"`
}

// defaultSinkName derives the traffic log destination name from a scope
// path. The name must be usable as a storage bucket name, so the path is
// lowercased and every character outside [a-z0-9] becomes a dash.
func defaultSinkName(path string) string {
	if path == "" {
		return "traffic-logs"
	}
	var b strings.Builder
	b.Grow(len(path) + len("-traffic-logs"))
	for _, r := range strings.ToLower(path) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	b.WriteString("-traffic-logs")
	return b.String()
}
