package checkin

import "time"

// Day boundaries are calendar dates in UTC. Time of day never matters to
// the streak: a check-in at 23:59 and one at 00:01 the next day are one
// day apart.
func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type StreakResult struct {
	StreakDays int
	// NewDay is true when this is the first check-in of the calendar day.
	// Exactly one token is awarded per new day.
	NewDay bool
}

// ComputeStreak derives the next streak state from the prior one.
//
// A streak continues when the previous check-in was yesterday (or today,
// which leaves it unchanged); any larger gap resets it to 1. A first-ever
// check-in starts at 1.
func ComputeStreak(lastCheckIn *time.Time, streakDays int, now time.Time) StreakResult {
	today := dateOf(now)

	if lastCheckIn == nil {
		return StreakResult{StreakDays: 1, NewDay: true}
	}

	lastDay := dateOf(*lastCheckIn)
	if !today.After(lastDay) {
		// Same-day resubmission: streak untouched, no token.
		return StreakResult{StreakDays: streakDays, NewDay: false}
	}

	yesterday := today.AddDate(0, 0, -1)
	if lastDay.Equal(yesterday) {
		return StreakResult{StreakDays: streakDays + 1, NewDay: true}
	}
	return StreakResult{StreakDays: 1, NewDay: true}
}
