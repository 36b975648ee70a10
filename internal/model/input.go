package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/idilsaglam/meetings/internal/tz"
)

// Form choices offered by the interactive surface.
var (
	Hours     = []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"}
	Minutes   = []string{"00", "15", "30", "45"}
	Meridiems = []string{"AM", "PM"}
)

var ErrMissingField = errors.New("missing field")

// FieldError reports a required field left empty.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string { return e.Field + " is required" }

func (e *FieldError) Unwrap() error { return ErrMissingField }

// ParseError reports date/time fields that do not form a valid time.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("check date/time format %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Input is the plain form data the UI layers hand to the core.
type Input struct {
	Title    string
	Date     string // YYYY-MM-DD
	Hour     string // 1-12
	Minute   string
	Meridiem string // AM or PM
	Zone     tz.Zone
}

// Meeting validates the input and builds a Meeting with a fresh ID. The
// title is kept as typed; blank-only titles count as missing.
func (in Input) Meeting() (Meeting, error) {
	required := []struct{ name, val string }{
		{"title", in.Title},
		{"date", in.Date},
		{"hour", in.Hour},
		{"minute", in.Minute},
		{"meridiem", in.Meridiem},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return Meeting{}, &FieldError{Field: r.name}
		}
	}
	if !in.Zone.Valid() {
		return Meeting{}, fmt.Errorf("%w: %q", tz.ErrUnknownZone, string(in.Zone))
	}

	local, err := in.Local()
	if err != nil {
		return Meeting{}, err
	}
	return New(in.Title, local, in.Zone), nil
}

// Local combines the date and clock fields into a naive wall-clock time.
func (in Input) Local() (time.Time, error) {
	hour := strings.TrimSpace(in.Hour)
	if len(hour) == 1 {
		hour = "0" + hour
	}
	s := fmt.Sprintf("%s %s:%s %s",
		strings.TrimSpace(in.Date), hour, strings.TrimSpace(in.Minute),
		strings.ToUpper(strings.TrimSpace(in.Meridiem)))
	t, err := tz.ParseLocal(s)
	if err != nil {
		return time.Time{}, &ParseError{Value: s, Err: err}
	}
	return t, nil
}

// SplitClock breaks "hh:mm AM" into its hour, minute and meridiem parts.
func SplitClock(clock string) (hour, minute, meridiem string, err error) {
	fields := strings.Fields(clock)
	if len(fields) != 2 {
		return "", "", "", &ParseError{Value: clock, Err: errors.New(`want "hh:mm AM|PM"`)}
	}
	hm := strings.SplitN(fields[0], ":", 2)
	if len(hm) != 2 {
		return "", "", "", &ParseError{Value: clock, Err: errors.New(`want "hh:mm AM|PM"`)}
	}
	return hm[0], hm[1], fields[1], nil
}
