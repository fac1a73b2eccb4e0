package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DayCount is a continuous Julian day count.
// 2000-01-01 00:00 UT is 2451544.5.
type DayCount float64

const (
	// SecondsPerDay is the length of a calendar day in seconds.
	SecondsPerDay = 86400

	// SeriesEpoch is the day count at which the analytic orbital
	// series measure d = 0 (1999-12-31 00:00 UT).
	SeriesEpoch DayCount = 2451543.5

	// J2000 is the day count of 2000-01-01 12:00 TT.
	J2000 DayCount = 2451545.0

	// OneMinute is one minute expressed as a day-count step.
	OneMinute DayCount = 60.0 / SecondsPerDay
)

// Float returns the day count as a plain float64.
func (jd DayCount) Float() float64 {
	return float64(jd)
}

// SinceSeriesEpoch returns the days elapsed since SeriesEpoch.
func (jd DayCount) SinceSeriesEpoch() float64 {
	return float64(jd - SeriesEpoch)
}

// CenturiesSinceJ2000 returns Julian centuries elapsed since J2000.
func (jd DayCount) CenturiesSinceJ2000() float64 {
	return float64(jd-J2000) / 36525.0
}

// Date is a proleptic Gregorian calendar date with an optional time of day in UT.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`

	// Seconds is the time since midnight; only used when HasTime is set.
	Seconds float64 `json:"seconds,omitempty"`
	HasTime bool    `json:"has_time,omitempty"`
}

// Date layouts accepted by ParseDate.
const (
	dateLayout            = "2006-01-02"
	dateTimeLayout        = "2006-01-02T15:04:05"
	dateMinuteLayout      = "2006-01-02T15:04"
	dateSpaceLayout       = "2006-01-02 15:04:05"
	dateSpaceMinuteLayout = "2006-01-02 15:04"
)

// NewDate creates a date at midnight.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// WithTime returns a copy of the date at the given time of day.
func (d Date) WithTime(hour, minute int, second float64) Date {
	d.Seconds = float64(hour*3600+minute*60) + second
	d.HasTime = true
	return d
}

// DateFromTime converts a time.Time to a Date in UT.
func DateFromTime(t time.Time) Date {
	t = t.UTC()
	seconds := float64(t.Hour()*3600+t.Minute()*60+t.Second()) + float64(t.Nanosecond())/1e9
	return Date{
		Year:    t.Year(),
		Month:   int(t.Month()),
		Day:     t.Day(),
		Seconds: seconds,
		HasTime: true,
	}
}

// ParseDate parses "YYYY-MM-DD" or "YYYY-MM-DDTHH:MM[:SS]" (UT).
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return NewDate(t.Year(), int(t.Month()), t.Day()), nil
	}
	for _, layout := range []string{dateTimeLayout, dateMinuteLayout, dateSpaceLayout, dateSpaceMinuteLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateFromTime(t), nil
		}
	}
	return Date{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD or YYYY-MM-DDTHH:MM[:SS]", ErrInvalidInput, s)
}

// Validate checks the calendar fields are in range.
func (d Date) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidInput, d.Month)
	}
	if d.Day < 1 || d.Day > 31 {
		return fmt.Errorf("%w: day %d", ErrInvalidInput, d.Day)
	}
	if d.HasTime && (d.Seconds < 0 || d.Seconds >= SecondsPerDay) {
		return fmt.Errorf("%w: seconds since midnight %v", ErrInvalidInput, d.Seconds)
	}
	return nil
}

// Time returns the date as a UTC time.Time.
func (d Date) Time() time.Time {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	if d.HasTime {
		t = t.Add(time.Duration(d.Seconds * float64(time.Second)))
	}
	return t
}

// String formats the date as ISO 8601, with a time component when present.
func (d Date) String() string {
	if !d.HasTime {
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
	return d.Time().Format(dateTimeLayout) + "Z"
}

// DayCount converts the date to a continuous Julian day count.
func (d Date) DayCount() DayCount {
	return DayCountFromDate(d)
}

// DayCountFromDate converts a Gregorian calendar date to a Julian day count.
// January and February count as months 13 and 14 of the previous year.
// The -1524.5 constant anchors the count to the standard Julian Day, which
// is the convention SeriesEpoch assumes.
func DayCountFromDate(d Date) DayCount {
	year := float64(d.Year)
	month := float64(d.Month)
	if d.Month == 1 || d.Month == 2 {
		year--
		month += 12
	}

	a := math.Floor(year / 100)
	b := math.Floor(a / 4)
	c := 2 - a + b
	e := math.Floor(365.25 * (year + 4716))
	f := math.Floor(30.6001 * (month + 1))

	jd := c + float64(d.Day) + e + f - 1524.5
	if d.HasTime {
		jd += d.Seconds / SecondsPerDay
	}
	return DayCount(jd)
}

// DayCountFromTime converts a time.Time (taken in UTC) to a Julian day count.
func DayCountFromTime(t time.Time) DayCount {
	return DayCountFromDate(DateFromTime(t))
}

// DateFromDayCount converts a Julian day count back to a Gregorian date
// with time of day, rounded to the millisecond.
func DateFromDayCount(jd DayCount) Date {
	z := math.Floor(float64(jd) + 0.5)
	f := float64(jd) + 0.5 - z

	alpha := math.Floor((z - 1867216.25) / 36524.25)
	a := z + 1 + alpha - math.Floor(alpha/4)
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := int(b - d - math.Floor(30.6001*e))
	month := int(e - 1)
	if e >= 14 {
		month = int(e - 13)
	}
	year := int(c - 4716)
	if month <= 2 {
		year = int(c - 4715)
	}

	ms := math.Round(f * SecondsPerDay * 1000)
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(ms) * time.Millisecond)
	return DateFromTime(t)
}
