package calendar

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/meetings/internal/model"
	"github.com/idilsaglam/meetings/internal/store/csvstore"
	"github.com/idilsaglam/meetings/internal/tz"
)

func TestExport(t *testing.T) {
	local, err := tz.ParseLocal("2024-01-10 09:00 AM")
	require.NoError(t, err)
	m := model.New("Standup", local, tz.CST)

	var buf bytes.Buffer
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, Export(&buf, slices.Values([]model.Meeting{m}), 30*time.Minute, now))

	cal, err := ical.ParseCalendar(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)

	ev := events[0]
	assert.NotEmpty(t, ev.GetProperty(ical.ComponentPropertyUniqueId).Value)
	assert.Equal(t, "Standup", ev.GetProperty(ical.ComponentPropertySummary).Value)

	start, err := ev.GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)))

	end, err := ev.GetEndAt()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, end.Sub(start))
}

func TestExportRejectsDuration(t *testing.T) {
	var buf bytes.Buffer
	err := Export(&buf, slices.Values([]model.Meeting(nil)), 0, time.Now())
	assert.Error(t, err)
}

func exportUIDs(t *testing.T, data string) []string {
	t.Helper()
	ms, err := csvstore.Decode(strings.NewReader(data))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, slices.Values(ms), time.Hour, time.Now()))
	cal, err := ical.ParseCalendar(&buf)
	require.NoError(t, err)

	var uids []string
	for _, ev := range cal.Events() {
		uids = append(uids, ev.GetProperty(ical.ComponentPropertyUniqueId).Value)
	}
	return uids
}

func TestExportUIDsSurviveReload(t *testing.T) {
	data := "Title,DateTime,TimeZone\n" +
		"Standup,2024-01-10 09:00 AM,CST\n" +
		"Standup,2024-01-10 09:00 AM,CST\n" +
		"Review,2024-01-10 09:00 AM,EST\n"

	first := exportUIDs(t, data)
	second := exportUIDs(t, data)
	require.Len(t, first, 3)
	assert.Equal(t, first, second)

	// Duplicated records still get distinct UIDs.
	assert.Len(t, slices.Compact(slices.Sorted(slices.Values(first))), 3)
}
