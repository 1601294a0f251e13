package reminder

import (
	"time"

	"supplier-ledger-backend/internal/models"
)

// Urgency labels, projected at read time and never stored.
const (
	UrgencyOK       = "ok"
	UrgencyUpcoming = "upcoming"
	UrgencyOverdue  = "overdue"
)

// upcomingWindow is how far ahead of the deadline a document starts being
// flagged.
const upcomingWindow = 3

// Urgency projects a document's effective urgency from its deadline and
// status as of now. A done document is always ok regardless of date;
// otherwise the deadline is compared by calendar day: past is overdue,
// within the next three days is upcoming.
func Urgency(deadline time.Time, status string, now time.Time) string {
	if status == models.DocumentDone {
		return UrgencyOK
	}

	// compare calendar days in one location; stored deadlines may come
	// back from the database in UTC
	today := startOfDay(now)
	due := startOfDay(deadline.In(now.Location()))

	switch {
	case due.Before(today):
		return UrgencyOverdue
	case !due.After(today.AddDate(0, 0, upcomingWindow)):
		return UrgencyUpcoming
	default:
		return UrgencyOK
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
