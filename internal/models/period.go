package models

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinPeriodYear = 2000
	MaxPeriodYear = 2100
)

var ErrInvalidPeriod = errors.New("invalid month or year")

// Period identifies a calendar month. All dates derived from it are UTC midnights.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func NewPeriod(year, month int) (Period, error) {
	p := Period{Year: year, Month: month}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// PeriodOf returns the period containing t, evaluated in UTC.
func PeriodOf(t time.Time) Period {
	t = t.UTC()
	return Period{Year: t.Year(), Month: int(t.Month())}
}

func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 || p.Year < MinPeriodYear || p.Year > MaxPeriodYear {
		return fmt.Errorf("%w: %d/%d", ErrInvalidPeriod, p.Month, p.Year)
	}
	return nil
}

// Start is the first instant of the month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End is the last calendar day of the month at midnight.
func (p Period) End() time.Time {
	return p.Next().Start().AddDate(0, 0, -1)
}

func (p Period) LastDay() int {
	return p.End().Day()
}

func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Year: p.Year + 1, Month: 1}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

func (p Period) Prev() Period {
	if p.Month == 1 {
		return Period{Year: p.Year - 1, Month: 12}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

func (p Period) AddMonths(n int) Period {
	idx := p.Year*12 + (p.Month - 1) + n
	return Period{Year: idx / 12, Month: idx%12 + 1}
}

func (p Period) Before(o Period) bool {
	return p.Year < o.Year || (p.Year == o.Year && p.Month < o.Month)
}

func (p Period) After(o Period) bool {
	return o.Before(p)
}

// MonthsUntil counts whole months from p to o; negative when o precedes p.
func (p Period) MonthsUntil(o Period) int {
	return (o.Year-p.Year)*12 + (o.Month - p.Month)
}

// Day returns the given day of the month, clamped to the month's last day.
func (p Period) Day(day int) time.Time {
	if day < 1 {
		day = 1
	}
	if last := p.LastDay(); day > last {
		day = last
	}
	return time.Date(p.Year, time.Month(p.Month), day, 0, 0, 0, 0, time.UTC)
}

// Key formats the period as YYYY-MM.
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

func (p Period) MonthName() string {
	return time.Month(p.Month).String()
}

func (p Period) String() string {
	return p.Key()
}

// TruncateDay drops the time of day, keeping the UTC calendar date.
func TruncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
