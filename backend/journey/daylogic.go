// Package journey contains the day-unlock logic for the 21-day program.
// Unlocking is based on (current date - start date), always at calendar-day
// granularity: everything is normalized to midnight before comparing.
//
// All functions are pure. The current time is an explicit parameter, so tests
// pass fixed instants instead of mocking the clock.
package journey

import (
	"math"
	"time"
)

// TotalDays is the fixed length of the program.
const TotalDays = 21

// Status of a single day from the participant's point of view.
type Status string

const (
	StatusAvailable Status = "available"
	StatusLocked    Status = "locked"
	StatusCompleted Status = "completed"
)

// Stats is the aggregate progress of one journey, recomputed on every query.
type Stats struct {
	CurrentDay         int  `json:"currentDay"`
	TotalCompleted     int  `json:"totalCompleted"`
	ProgressPercentage int  `json:"progressPercentage"`
	DaysRemaining      int  `json:"daysRemaining"`
	IsJourneyComplete  bool `json:"isJourneyComplete"`
}

// midnight drops the time of day. The calendar date is taken from the
// instant's own location, then pinned to UTC so day differences are exact
// multiples of 24h regardless of DST.
func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AvailableDayNumber returns which day of the journey is available at now.
// On the start date itself day 1 is already available. The result is always
// clamped to [1, TotalDays]: before the start date it stays 1, past the end
// of the program it stays TotalDays.
func AvailableDayNumber(now, startDate time.Time) int {
	diffDays := int(midnight(now).Sub(midnight(startDate)) / (24 * time.Hour))

	availableDay := diffDays + 1

	if availableDay < 1 {
		return 1
	}
	if availableDay > TotalDays {
		return TotalDays
	}
	return availableDay
}

// IsDayUnlocked reports whether dayNumber is unlocked at now. Day numbers
// outside [1, TotalDays] are never unlocked.
func IsDayUnlocked(dayNumber int, now, startDate time.Time) bool {
	if dayNumber < 1 || dayNumber > TotalDays {
		return false
	}
	return dayNumber <= AvailableDayNumber(now, startDate)
}

// StatusFor classifies a day. Completion takes precedence over the calendar:
// a completed day is "completed" even if it was never unlocked by date.
func StatusFor(dayNumber int, now, startDate time.Time, completed bool) Status {
	if completed {
		return StatusCompleted
	}
	if IsDayUnlocked(dayNumber, now, startDate) {
		return StatusAvailable
	}
	return StatusLocked
}

// DaysUntilUnlock returns how many days remain until dayNumber unlocks,
// 0 if it is already unlocked. The day number is not range-checked.
func DaysUntilUnlock(dayNumber int, now, startDate time.Time) int {
	availableDay := AvailableDayNumber(now, startDate)

	if dayNumber <= availableDay {
		return 0
	}
	return dayNumber - availableDay
}

// UnlockDate returns the date on which dayNumber unlocks: day 1 on the start
// date, day 2 on the next day, and so on. The day number is not range-checked.
func UnlockDate(dayNumber int, startDate time.Time) time.Time {
	return midnight(startDate).AddDate(0, 0, dayNumber-1)
}

// ProgressStats derives the aggregate journey statistics from the start date
// and the set of completed day numbers. The journey is complete only when the
// calendar has reached the last day AND all days are actually completed.
func ProgressStats(now, startDate time.Time, completedDays []int) Stats {
	availableDay := AvailableDayNumber(now, startDate)
	totalCompleted := len(completedDays)
	progressPercentage := int(math.Round(float64(totalCompleted) / TotalDays * 100))

	return Stats{
		CurrentDay:         availableDay,
		TotalCompleted:     totalCompleted,
		ProgressPercentage: progressPercentage,
		DaysRemaining:      TotalDays - totalCompleted,
		IsJourneyComplete:  availableDay >= TotalDays && totalCompleted >= TotalDays,
	}
}
