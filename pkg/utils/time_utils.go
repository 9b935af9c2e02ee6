package utils

import "time"

// Billing day arithmetic uses fixed 24-hour units, not calendar days.
const Day = 24 * time.Hour

func NowUnixSeconds() int64 { return time.Now().Unix() }

func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

// ElapsedDays returns the number of whole 24-hour periods between from and
// now, truncating partial days.
func ElapsedDays(from, now time.Time) int {
	if now.Before(from) {
		return 0
	}
	return int(now.Sub(from) / Day)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
