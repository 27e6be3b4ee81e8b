package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

// DaysBetween counts whole days from t1 to t2, negative when t2 precedes t1.
func DaysBetween(t1, t2 time.Time) int {
	return int(t2.Sub(t1).Hours() / 24)
}
