package tz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naive(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := ParseLocal(s)
	require.NoError(t, err)
	return v
}

func TestConvertStandup(t *testing.T) {
	got, err := Convert(naive(t, "2024-01-10 09:00 AM"), CST)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-10 10:00 AM", got[EST])
	assert.Equal(t, "2024-01-10 09:00 AM", got[CST])
	assert.Equal(t, "2024-01-10 08:30 PM", got[IST])
}

func TestConvertSummerOffsets(t *testing.T) {
	// EDT is UTC-4, IST is UTC+5:30.
	got, err := Convert(naive(t, "2024-06-01 11:00 PM"), EST)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-01 10:00 PM", got[CST])
	assert.Equal(t, "2024-06-02 08:30 AM", got[IST])
}

func TestConvertRoundTrip(t *testing.T) {
	inputs := []string{
		"2024-01-10 09:00 AM",
		"2024-03-10 12:15 PM",
		"2024-07-04 11:45 PM",
		"2024-11-03 06:30 AM",
	}
	for _, in := range inputs {
		for _, a := range Zones {
			for _, b := range Zones {
				start := naive(t, in)
				forward, err := Convert(start, a)
				require.NoError(t, err)

				back, err := Convert(naive(t, forward[b]), b)
				require.NoError(t, err)
				assert.Equal(t, in, back[a], "%s %s->%s", in, a, b)
			}
		}
	}
}

func TestConvertUnknownZone(t *testing.T) {
	_, err := Convert(naive(t, "2024-01-10 09:00 AM"), Zone("PST"))
	assert.ErrorIs(t, err, ErrUnknownZone)
}

func TestParseZone(t *testing.T) {
	z, err := ParseZone(" ist ")
	require.NoError(t, err)
	assert.Equal(t, IST, z)
	assert.Equal(t, "Asia/Kolkata", z.IANA())

	_, err = ParseZone("UTC")
	assert.ErrorIs(t, err, ErrUnknownZone)
}

func TestSortKeyReference(t *testing.T) {
	key, err := SortKey(naive(t, "2024-01-10 10:00 AM"), EST)
	require.NoError(t, err)

	assert.Equal(t, "America/Chicago", key.Location().String())
	assert.Equal(t, 9, key.Hour())
}

func TestLocalizeRepeatedHourPrefersStandardTime(t *testing.T) {
	// 01:30 happens twice in New York on 2024-11-03: EDT then EST.
	at, err := Localize(naive(t, "2024-11-03 01:30 AM"), EST)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 11, 3, 6, 30, 0, 0, time.UTC), at.UTC())

	got, err := Convert(naive(t, "2024-11-03 01:30 AM"), EST)
	require.NoError(t, err)
	assert.Equal(t, "2024-11-03 01:30 AM", got[EST])
	assert.Equal(t, "2024-11-03 01:30 AM", got[CST]) // Chicago is still on CDT
	assert.Equal(t, "2024-11-03 12:00 PM", got[IST])
}

func TestLocalizeSkippedHourUsesStandardOffset(t *testing.T) {
	// 02:30 does not exist in New York on 2024-03-10.
	at, err := Localize(naive(t, "2024-03-10 02:30 AM"), EST)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 7, 30, 0, 0, time.UTC), at.UTC())

	got, err := Convert(naive(t, "2024-03-10 02:30 AM"), EST)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10 03:30 AM", got[EST])
	assert.Equal(t, "2024-03-10 01:30 AM", got[CST])
	assert.Equal(t, "2024-03-10 01:00 PM", got[IST])
}

func TestLocalizeAwayFromTransitions(t *testing.T) {
	for _, s := range []string{"2024-03-09 02:30 AM", "2024-11-04 01:30 AM", "2024-07-01 12:00 PM"} {
		for _, z := range Zones {
			loc, err := z.Location()
			require.NoError(t, err)
			n := naive(t, s)
			want := time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), 0, 0, loc)

			got, err := Localize(n, z)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "%s %s", s, z)
		}
	}
}
