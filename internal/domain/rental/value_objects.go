package rental

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrStartDateInPast      = errors.New("start date cannot be in the past")
	ErrEndDateNotAfterStart = errors.New("end date must be after start date")
	ErrMalformedDate        = errors.New("date must be formatted as YYYY-MM-DD")
)

// DateRange is a half-open interval of calendar dates [start, end).
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start, end = truncateDate(start), truncateDate(end)
	if !end.After(start) {
		return DateRange{}, ErrEndDateNotAfterStart
	}
	return DateRange{start: start, end: end}, nil
}

func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}
	return t, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Overlaps uses half-open semantics, so back-to-back ranges do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.start.Before(other.end) && r.end.After(other.start)
}

func (r DateRange) StartsBefore(day time.Time) bool {
	return r.start.Before(truncateDate(day))
}

func (r DateRange) String() string {
	return "[" + r.start.Format(DateLayout) + "," + r.end.Format(DateLayout) + ")"
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
