package task

import "time"

// Urgency classifies a due date relative to the current date.
type Urgency int

const (
	UrgencyOverdue Urgency = iota
	UrgencyToday
	UrgencyUpcoming
)

// Tag returns the one-letter tag of the urgency.
func (u Urgency) Tag() string {
	switch u {
	case UrgencyOverdue:
		return "O"
	case UrgencyToday:
		return "T"
	default:
		return "I"
	}
}

func (u Urgency) String() string {
	switch u {
	case UrgencyOverdue:
		return "overdue"
	case UrgencyToday:
		return "today"
	default:
		return "upcoming"
	}
}

// ClassifyDays maps a day distance to an urgency.
func ClassifyDays(days int) Urgency {
	switch {
	case days > 0:
		return UrgencyUpcoming
	case days < 0:
		return UrgencyOverdue
	default:
		return UrgencyToday
	}
}

// UrgencyAt returns the urgency of t on the UTC calendar date of now.
func (t Task) UrgencyAt(now time.Time) (Urgency, error) {
	days, err := DaysBetween(now, t.Date)
	if err != nil {
		return UrgencyToday, err
	}
	return ClassifyDays(days), nil
}
