package services

import (
	"time"

	"github.com/nando-castro/api-financas/internal/models"
)

// StatementResolution is the statement a card transaction is billed under and
// the date it is posted with.
type StatementResolution struct {
	Period      models.Period
	PostingDate time.Time
}

// ResolveStatement maps a purchase date onto a card statement.
//
// Cards without a closing or due day bill the purchase in its own month and
// keep the purchase date. Otherwise a purchase up to and including the closing
// day belongs to that month's statement, later purchases to the next month's,
// and the posting date is the statement's due day clamped to the month length.
func ResolveStatement(card *models.Card, transactionDate time.Time) StatementResolution {
	date := models.TruncateDay(transactionDate)
	period := models.PeriodOf(date)

	if !card.HasBillingCycle() {
		return StatementResolution{Period: period, PostingDate: date}
	}

	if date.Day() > *card.ClosingDay {
		period = period.Next()
	}

	return StatementResolution{
		Period:      period,
		PostingDate: period.Day(*card.DueDay),
	}
}
