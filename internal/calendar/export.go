// Package calendar exports meetings as an iCalendar feed.
package calendar

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/idilsaglam/meetings/internal/model"
	"github.com/idilsaglam/meetings/internal/tz"
)

const productID = "-//idilsaglam//meetings//EN"

var uidSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/idilsaglam/meetings"))

// Export writes one VEVENT per meeting, each lasting d. Times are written
// in UTC so the feed does not depend on the zone labels.
func Export(w io.Writer, meetings iter.Seq[model.Meeting], d time.Duration, now time.Time) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %s", d)
	}
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	seen := make(map[string]int)
	for m := range meetings {
		start, err := m.Instant()
		if err != nil {
			return fmt.Errorf("meeting %q: %w", m.Title, err)
		}
		ev := cal.AddEvent(eventUID(m, seen))
		ev.SetDtStampTime(now.UTC())
		ev.SetSummary(m.Title)
		ev.SetStartAt(start.UTC())
		ev.SetEndAt(start.Add(d).UTC())
		ev.SetDescription(fmt.Sprintf("Entered as %s %s", tz.FormatLocal(m.Local), m.Zone))
	}
	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("serialize calendar: %w", err)
	}
	return nil
}

// eventUID derives the UID from the stored fields only, so exporting the
// same file again yields the same UIDs. Identical records are told apart by
// how many came before them.
func eventUID(m model.Meeting, seen map[string]int) string {
	key := strings.Join([]string{m.Title, tz.FormatLocal(m.Local), m.Zone.String()}, "\x1f")
	n := seen[key]
	seen[key] = n + 1
	return uuid.NewSHA1(uidSpace, fmt.Appendf(nil, "%s\x1f%d", key, n)).String()
}
