package services

import (
	"errors"
	"time"

	"github.com/nando-castro/api-financas/internal/models"
)

var (
	ErrForbidden   = errors.New("resource belongs to another user")
	ErrInvalidDate = errors.New("invalid date")
)

// periodOrCurrent fills a zero month or year from now.
func periodOrCurrent(now time.Time, month, year int) (models.Period, error) {
	p := models.PeriodOf(now)
	if month != 0 {
		p.Month = month
	}
	if year != 0 {
		p.Year = year
	}
	if err := p.Validate(); err != nil {
		return models.Period{}, err
	}
	return p, nil
}

func systemClock() time.Time {
	return time.Now().UTC()
}
