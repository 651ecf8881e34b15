package unixtime

import (
	"fmt"
	"strings"
)

// Resolution is the fixed unit a timestamp codec counts in.
type Resolution interface {
	// NanosPerUnit returns the number of nanoseconds in one unit.
	NanosPerUnit() int64
	// String returns the short unit name ("s", "ms", "us", "ns").
	String() string
}

// Second counts whole seconds.
type Second struct{}

func (Second) NanosPerUnit() int64 { return 1_000_000_000 }
func (Second) String() string      { return "s" }

// Millisecond counts milliseconds.
type Millisecond struct{}

func (Millisecond) NanosPerUnit() int64 { return 1_000_000 }
func (Millisecond) String() string      { return "ms" }

// Microsecond counts microseconds.
type Microsecond struct{}

func (Microsecond) NanosPerUnit() int64 { return 1_000 }
func (Microsecond) String() string      { return "us" }

// Nanosecond counts nanoseconds.
type Nanosecond struct{}

func (Nanosecond) NanosPerUnit() int64 { return 1 }
func (Nanosecond) String() string      { return "ns" }

// Resolutions returns all resolutions from coarsest to finest.
func Resolutions() []Resolution {
	return []Resolution{Second{}, Millisecond{}, Microsecond{}, Nanosecond{}}
}

// ParseResolution returns the resolution named by s. Short names and
// the singular or plural long names are accepted, case-insensitively.
func ParseResolution(s string) (Resolution, error) {
	switch strings.ToLower(s) {
	case "s", "sec", "second", "seconds":
		return Second{}, nil
	case "ms", "milli", "millis", "millisecond", "milliseconds":
		return Millisecond{}, nil
	case "us", "µs", "micro", "micros", "microsecond", "microseconds":
		return Microsecond{}, nil
	case "ns", "nano", "nanos", "nanosecond", "nanoseconds":
		return Nanosecond{}, nil
	default:
		return nil, fmt.Errorf("unknown resolution %q: must be one of s, ms, us, ns", s)
	}
}
