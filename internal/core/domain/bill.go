package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurrenceType is how often a bill repeats.
type RecurrenceType string

const (
	RecurrenceMonthly   RecurrenceType = "monthly"
	RecurrenceWeekly    RecurrenceType = "weekly"
	RecurrenceQuarterly RecurrenceType = "quarterly"
	RecurrenceYearly    RecurrenceType = "yearly"
)

// Bill is a recurring expected payment that drives calendar event generation.
type Bill struct {
	BillID         string          `json:"billID"`
	Name           string          `json:"name"`
	Provider       string          `json:"provider,omitempty"`
	CategoryID     string          `json:"categoryID"`
	AccountID      string          `json:"accountID"`
	Recurrence     RecurrenceType  `json:"recurrence"`
	DueDay         int             `json:"dueDay"` // 1-31
	ExpectedAmount decimal.Decimal `json:"expectedAmount"`
	Autopay        bool            `json:"autopay"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}

// NextOccurrence computes the next due instant for dueDay relative to now,
// at 09:00 in now's location.
//
// If dueDay has already passed this month (dueDay <= today's day), the
// occurrence falls in the next month, rolling December into January of the
// following year. When the target month is shorter than dueDay the day is
// clamped to the month's last day (due day 31 in April becomes April 30,
// in February the 28th or 29th).
func NextOccurrence(dueDay int, now time.Time) time.Time {
	year, month := now.Year(), now.Month()
	if dueDay <= now.Day() {
		if month == time.December {
			year++
			month = time.January
		} else {
			month++
		}
	}
	day := dueDay
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 9, 0, 0, 0, now.Location())
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
