package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DayFormat is the canonical YYYY-MM-DD representation of a Day.
const DayFormat = "2006-01-02"

var (
	// ErrInvalidDay is returned when a string is neither a strict YYYY-MM-DD date nor a timestamp
	ErrInvalidDay = errors.New("types: invalid day")
)

var strictDayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// timestampLayouts are tried in order for inputs that are not strict dates
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
}

// Day is a calendar day without time of day or zone.
// It is comparable and can be used as a map key.
type Day struct {
	year  int
	month time.Month
	day   int
}

// NewDay builds a Day, normalizing overflowing components the way time.Date does
func NewDay(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DayOf returns the calendar day of t in t's own location
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{year: y, month: m, day: d}
}

// ParseDay parses a strict YYYY-MM-DD date or, failing that, a timestamp
// truncated to its local calendar day.
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)

	if strictDayPattern.MatchString(s) {
		return parseStrict(s)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return DayOf(t.In(time.Local)), nil
		}
	}

	return Day{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
}

// MustParseDay is ParseDay for literals known to be valid
func MustParseDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// parseStrict собирает день из компонентов без участия часовых поясов
func parseStrict(s string) (Day, error) {
	parts := strings.Split(s, "-")

	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])

	if month < 1 || month > 12 {
		return Day{}, fmt.Errorf("%w: month out of range in %q", ErrInvalidDay, s)
	}
	if day < 1 || day > DaysInMonth(year, time.Month(month)) {
		return Day{}, fmt.Errorf("%w: day out of range in %q", ErrInvalidDay, s)
	}

	return Day{year: year, month: time.Month(month), day: day}, nil
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NightsBetween returns the number of nights between two days, at least 1
func NightsBetween(a, b Day) int {
	n := a.DaysUntil(b)
	if n < 0 {
		n = -n
	}
	if n < 1 {
		return 1
	}
	return n
}

// Range returns every day of the half-open interval [from, to)
func Range(from, to Day) []Day {
	if !from.Before(to) {
		return []Day{}
	}

	days := make([]Day, 0, from.DaysUntil(to))
	for d := from; d.Before(to); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

func (d Day) Year() int { return d.year }

func (d Day) Month() time.Month { return d.month }

func (d Day) DayOfMonth() int { return d.day }

func (d Day) IsZero() bool { return d == Day{} }

func (d Day) Weekday() time.Weekday { return d.utc().Weekday() }

// Time returns local midnight of the day
func (d Day) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.Local)
}

// AddDays returns the day n days after d (n may be negative)
func (d Day) AddDays(n int) Day {
	return DayOf(d.utc().AddDate(0, 0, n))
}

// DaysUntil returns the signed number of calendar days from d to other
func (d Day) DaysUntil(other Day) int {
	return int(other.utc().Sub(d.utc()).Hours() / 24)
}

func (d Day) Before(other Day) bool { return d.Compare(other) < 0 }

func (d Day) After(other Day) bool { return d.Compare(other) > 0 }

func (d Day) Equal(other Day) bool { return d == other }

// Compare returns -1, 0 or +1
func (d Day) Compare(other Day) int {
	switch {
	case d.year != other.year:
		return cmpInt(d.year, other.year)
	case d.month != other.month:
		return cmpInt(int(d.month), int(other.month))
	default:
		return cmpInt(d.day, other.day)
	}
}

// InRange reports whether d belongs to the half-open interval [from, to)
func (d Day) InRange(from, to Day) bool {
	return !d.Before(from) && d.Before(to)
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Day) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Day{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDay, err)
	}

	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan реализует sql.Scanner (колонки типа DATE приходят как time.Time)
func (d *Day) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Day{}
		return nil
	case time.Time:
		*d = DayOf(v)
		return nil
	case string:
		parsed, err := ParseDay(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDay(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidDay, value)
	}
}

// Value реализует driver.Valuer
func (d Day) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func (d Day) utc() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
