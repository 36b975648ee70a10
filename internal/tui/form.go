package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/idilsaglam/meetings/internal/model"
	"github.com/idilsaglam/meetings/internal/tz"
	"github.com/idilsaglam/meetings/internal/ui"
)

const dateLayout = "2006-01-02"

type field int

const (
	fieldTitle field = iota
	fieldDate
	fieldHour
	fieldMinute
	fieldMeridiem
	fieldZone
	fieldTable
	numFields
)

// choice is a read-only dropdown cycled with left/right.
type choice struct {
	options []string
	idx     int
}

func newChoice(options []string, initial string) choice {
	c := choice{options: options}
	c.set(initial)
	return c
}

func (c *choice) set(v string) {
	if i := slices.Index(c.options, v); i >= 0 {
		c.idx = i
	}
}

func (c *choice) next() { c.idx = (c.idx + 1) % len(c.options) }
func (c *choice) prev() { c.idx = (c.idx - 1 + len(c.options)) % len(c.options) }

func (c choice) value() string { return c.options[c.idx] }

type form struct {
	title    textinput.Model
	date     textinput.Model
	hour     choice
	minute   choice
	meridiem choice
	zone     choice
}

func newForm(defaultZone tz.Zone) form {
	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "Meeting title"
	title.CharLimit = 200
	title.Width = 40

	date := textinput.New()
	date.Prompt = ""
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.Width = 12

	zones := make([]string, 0, len(tz.Zones))
	for _, z := range tz.Zones {
		zones = append(zones, z.String())
	}

	f := form{
		title:    title,
		date:     date,
		hour:     newChoice(model.Hours, "01"),
		minute:   newChoice(model.Minutes, "00"),
		meridiem: newChoice(model.Meridiems, "AM"),
		zone:     newChoice(zones, defaultZone.String()),
	}
	return f
}

// input snapshots the form as plain data for the core.
func (f form) input() model.Input {
	return model.Input{
		Title:    f.title.Value(),
		Date:     f.date.Value(),
		Hour:     f.hour.value(),
		Minute:   f.minute.value(),
		Meridiem: f.meridiem.value(),
		Zone:     tz.Zone(f.zone.value()),
	}
}

// reset clears everything but the zone after a successful add.
func (f *form) reset() {
	f.title.SetValue("")
	f.date.SetValue("")
	f.hour.set("01")
	f.minute.set("00")
	f.meridiem.set("AM")
}

// stepDate moves the date by days. A field without a valid date starts at
// today instead.
func (f *form) stepDate(days int, today time.Time) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(f.date.Value()))
	if err != nil {
		d = today
	} else {
		d = d.AddDate(0, 0, days)
	}
	f.date.SetValue(d.Format(dateLayout))
	f.date.CursorEnd()
}

func (f *form) choiceFor(fl field) *choice {
	switch fl {
	case fieldHour:
		return &f.hour
	case fieldMinute:
		return &f.minute
	case fieldMeridiem:
		return &f.meridiem
	case fieldZone:
		return &f.zone
	}
	return nil
}

func (f *form) focus(fl field) {
	f.title.Blur()
	f.date.Blur()
	switch fl {
	case fieldTitle:
		f.title.Focus()
	case fieldDate:
		f.date.Focus()
	}
}

func (f form) view(focus field) string {
	t := ui.Current()
	label := func(fl field, s string) string {
		s = fmt.Sprintf("%-16s", s)
		if fl == focus {
			return t.Accent.Render("› " + s)
		}
		return t.Muted.Render("  " + s)
	}
	pick := func(fl field, c choice) string {
		v := c.value()
		if fl == focus {
			return t.Selected.Render("‹ " + v + " ›")
		}
		return "  " + v + "  "
	}

	lines := []string{
		label(fieldTitle, "Meeting Title") + f.title.View(),
		label(fieldDate, "Date") + f.date.View(),
		label(fieldHour, "Time") + strings.Join([]string{
			pick(fieldHour, f.hour),
			pick(fieldMinute, f.minute),
			pick(fieldMeridiem, f.meridiem),
		}, " "),
		label(fieldZone, "Base Time Zone") + pick(fieldZone, f.zone),
	}
	return strings.Join(lines, "\n")
}
