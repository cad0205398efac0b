package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay_Strict(t *testing.T) {
	d, err := ParseDay("2025-12-10")
	require.NoError(t, err)

	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.December, d.Month())
	assert.Equal(t, 10, d.DayOfMonth())
	assert.Equal(t, "2025-12-10", d.String())
}

func TestParseDay_StrictIsLocalMidnight(t *testing.T) {
	d := MustParseDay("2026-01-03")

	midnight := d.Time()
	assert.Equal(t, time.Local, midnight.Location())
	assert.Equal(t, 0, midnight.Hour())
	assert.Equal(t, 3, midnight.Day())
}

func TestParseDay_StrictOutOfRange(t *testing.T) {
	for _, s := range []string{"2025-13-01", "2025-00-10", "2025-02-30", "2025-04-31"} {
		_, err := ParseDay(s)
		assert.ErrorIs(t, err, ErrInvalidDay, s)
	}
}

func TestParseDay_LeapYear(t *testing.T) {
	d, err := ParseDay("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())
}

func TestParseDay_TimestampTruncatedToDay(t *testing.T) {
	d, err := ParseDay("2025-12-10T18:45:00")
	require.NoError(t, err)
	assert.Equal(t, MustParseDay("2025-12-10"), d)

	d, err = ParseDay("2025-12-10 07:00:00")
	require.NoError(t, err)
	assert.Equal(t, MustParseDay("2025-12-10"), d)
}

func TestParseDay_TimestampWithOffsetUsesLocalDay(t *testing.T) {
	in := "2025-12-10T12:00:00Z"
	expected := DayOf(time.Date(2025, 12, 10, 12, 0, 0, 0, time.UTC).In(time.Local))

	d, err := ParseDay(in)
	require.NoError(t, err)
	assert.Equal(t, expected, d)
}

func TestParseDay_Malformed(t *testing.T) {
	for _, s := range []string{"", "tomorrow", "10/12/2025", "2025-1-5", "2025-12-10X"} {
		_, err := ParseDay(s)
		assert.ErrorIs(t, err, ErrInvalidDay, s)
	}
}

func TestNightsBetween(t *testing.T) {
	a := MustParseDay("2025-12-10")

	assert.Equal(t, 2, NightsBetween(a, MustParseDay("2025-12-12")))
	assert.Equal(t, 2, NightsBetween(MustParseDay("2025-12-12"), a))
	assert.Equal(t, 1, NightsBetween(a, a))
	assert.Equal(t, 31, NightsBetween(MustParseDay("2025-03-01"), MustParseDay("2025-04-01")))
}

func TestNightsBetween_AcrossDSTChange(t *testing.T) {
	// in zones with DST one of these nights is 23 or 25 hours long
	assert.Equal(t, 7, NightsBetween(MustParseDay("2025-03-27"), MustParseDay("2025-04-03")))
	assert.Equal(t, 7, NightsBetween(MustParseDay("2025-10-23"), MustParseDay("2025-10-30")))
}

func TestDay_AddDaysCrossesMonthAndYear(t *testing.T) {
	assert.Equal(t, MustParseDay("2026-01-01"), MustParseDay("2025-12-31").AddDays(1))
	assert.Equal(t, MustParseDay("2025-02-28"), MustParseDay("2025-03-01").AddDays(-1))
}

func TestDay_Compare(t *testing.T) {
	a := MustParseDay("2025-12-10")
	b := MustParseDay("2026-01-03")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
	assert.True(t, a.Equal(NewDay(2025, time.December, 10)))
	assert.Equal(t, 24, a.DaysUntil(b))
	assert.Equal(t, -24, b.DaysUntil(a))
}

func TestDay_InRangeIsHalfOpen(t *testing.T) {
	from := MustParseDay("2025-12-10")
	to := MustParseDay("2025-12-12")

	assert.True(t, from.InRange(from, to))
	assert.True(t, MustParseDay("2025-12-11").InRange(from, to))
	assert.False(t, to.InRange(from, to))
	assert.False(t, MustParseDay("2025-12-09").InRange(from, to))
}

func TestRange(t *testing.T) {
	days := Range(MustParseDay("2025-12-30"), MustParseDay("2026-01-02"))

	require.Len(t, days, 3)
	assert.Equal(t, "2025-12-30", days[0].String())
	assert.Equal(t, "2025-12-31", days[1].String())
	assert.Equal(t, "2026-01-01", days[2].String())

	assert.Empty(t, Range(MustParseDay("2026-01-02"), MustParseDay("2026-01-02")))
	assert.Empty(t, Range(MustParseDay("2026-01-02"), MustParseDay("2026-01-01")))
}

func TestDay_Weekday(t *testing.T) {
	assert.Equal(t, time.Saturday, MustParseDay("2025-12-13").Weekday())
	assert.Equal(t, time.Monday, MustParseDay("2025-12-01").Weekday())
}

func TestDay_UsableAsMapKey(t *testing.T) {
	m := map[Day]int{}
	m[MustParseDay("2025-12-10")] += 2
	m[NewDay(2025, time.December, 10)] += 3
	m[DayOf(time.Date(2025, 12, 10, 23, 59, 0, 0, time.UTC))] += 1

	assert.Equal(t, 6, m[MustParseDay("2025-12-10")])
}

func TestDay_JSON(t *testing.T) {
	type payload struct {
		CheckIn Day `json:"checkIn"`
	}

	data, err := json.Marshal(payload{CheckIn: MustParseDay("2025-12-10")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"checkIn":"2025-12-10"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"checkIn":"2026-01-05"}`), &p))
	assert.Equal(t, MustParseDay("2026-01-05"), p.CheckIn)

	err = json.Unmarshal([]byte(`{"checkIn":"05.01.2026"}`), &p)
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestDay_ScanAndValue(t *testing.T) {
	var d Day
	require.NoError(t, d.Scan(time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, MustParseDay("2025-12-10"), d)

	require.NoError(t, d.Scan([]byte("2026-01-03")))
	assert.Equal(t, MustParseDay("2026-01-03"), d)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-01-03", v)

	assert.Error(t, d.Scan(42))
}
