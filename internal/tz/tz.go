// Package tz converts naive wall-clock times between the three fixed
// meeting timezones.
package tz

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	_ "time/tzdata" // zone data must not depend on the host
)

// Layout is the display and storage format: "YYYY-MM-DD hh:mm AM/PM".
const Layout = "2006-01-02 03:04 PM"

// Zone is one of the fixed timezone labels.
type Zone string

const (
	EST Zone = "EST"
	CST Zone = "CST"
	IST Zone = "IST"
)

// Zones lists the labels in column order.
var Zones = []Zone{EST, CST, IST}

// Reference is the canonical zone instants are expressed in for sorting.
const Reference = CST

var ErrUnknownZone = errors.New("unknown timezone")

var ianaNames = map[Zone]string{
	EST: "US/Eastern",
	CST: "America/Chicago",
	IST: "Asia/Kolkata",
}

var locations = func() map[Zone]*time.Location {
	out := make(map[Zone]*time.Location, len(ianaNames))
	for z, name := range ianaNames {
		loc, err := time.LoadLocation(name)
		if err != nil {
			panic(fmt.Sprintf("tz: load %s: %v", name, err))
		}
		out[z] = loc
	}
	return out
}()

// ParseZone accepts a label case-insensitively.
func ParseZone(s string) (Zone, error) {
	z := Zone(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := ianaNames[z]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownZone, s)
	}
	return z, nil
}

func (z Zone) Valid() bool {
	_, ok := ianaNames[z]
	return ok
}

// IANA returns the zone identifier the label maps to.
func (z Zone) IANA() string { return ianaNames[z] }

func (z Zone) Location() (*time.Location, error) {
	loc, ok := locations[z]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, string(z))
	}
	return loc, nil
}

func (z Zone) String() string { return string(z) }

// Localize interprets the wall clock of naive (its own location is ignored)
// as a time in zone z and returns the absolute instant. A wall clock that
// occurs twice at a DST changeover, or is skipped by one, resolves to
// standard time.
func Localize(naive time.Time, z Zone) (time.Time, error) {
	loc, err := z.Location()
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := naive.Date()
	h, mi, s := naive.Clock()
	wall := time.Date(y, mo, d, h, mi, s, naive.Nanosecond(), time.UTC)

	// Any transition near the wall clock lies between these two offsets.
	cands := []offset{
		offsetAt(wall.Add(-24*time.Hour), loc),
		offsetAt(wall.Add(24*time.Hour), loc),
	}
	if cands[0] == cands[1] {
		return cands[0].apply(wall, loc), nil
	}
	slices.SortStableFunc(cands, func(a, b offset) int {
		switch {
		case a.dst == b.dst:
			return 0
		case !a.dst:
			return -1
		}
		return 1
	})
	for _, c := range cands {
		at := c.apply(wall, loc)
		if _, secs := at.Zone(); secs == c.secs {
			return at, nil
		}
	}
	// Skipped wall clock.
	return cands[0].apply(wall, loc), nil
}

type offset struct {
	secs int
	dst  bool
}

func offsetAt(t time.Time, loc *time.Location) offset {
	t = t.In(loc)
	_, secs := t.Zone()
	return offset{secs: secs, dst: t.IsDST()}
}

// apply reads wall as a clock running at this offset.
func (o offset) apply(wall time.Time, loc *time.Location) time.Time {
	return wall.Add(-time.Duration(o.secs) * time.Second).In(loc)
}

// Convert maps every label, base included, to the formatted local time of
// the instant naive@base in that label's zone.
func Convert(naive time.Time, base Zone) (map[Zone]string, error) {
	at, err := Localize(naive, base)
	if err != nil {
		return nil, err
	}
	out := make(map[Zone]string, len(Zones))
	for _, z := range Zones {
		out[z] = at.In(locations[z]).Format(Layout)
	}
	return out, nil
}

// SortKey returns the instant of naive@base expressed in the Reference zone.
func SortKey(naive time.Time, base Zone) (time.Time, error) {
	at, err := Localize(naive, base)
	if err != nil {
		return time.Time{}, err
	}
	return at.In(locations[Reference]), nil
}

// ParseLocal parses s in Layout as a naive wall-clock time.
func ParseLocal(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

// FormatLocal formats a naive wall-clock time in Layout.
func FormatLocal(naive time.Time) string {
	return naive.Format(Layout)
}
