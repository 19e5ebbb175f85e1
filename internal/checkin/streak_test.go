package checkin

import (
	"testing"
	"time"
)

func TestComputeStreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	daysAgo := func(n int, hour int) *time.Time {
		ts := time.Date(2025, 3, 10-n, hour, 0, 0, 0, time.UTC)
		return &ts
	}

	tests := []struct {
		name        string
		lastCheckIn *time.Time
		streakDays  int
		wantStreak  int
		wantNewDay  bool
	}{
		{
			name:        "first ever check-in",
			lastCheckIn: nil,
			streakDays:  0,
			wantStreak:  1,
			wantNewDay:  true,
		},
		{
			name:        "yesterday continues streak",
			lastCheckIn: daysAgo(1, 9),
			streakDays:  4,
			wantStreak:  5,
			wantNewDay:  true,
		},
		{
			name:        "late yesterday still counts as yesterday",
			lastCheckIn: daysAgo(1, 23),
			streakDays:  1,
			wantStreak:  2,
			wantNewDay:  true,
		},
		{
			name:        "two day gap resets",
			lastCheckIn: daysAgo(2, 9),
			streakDays:  12,
			wantStreak:  1,
			wantNewDay:  true,
		},
		{
			name:        "week gap resets",
			lastCheckIn: daysAgo(7, 9),
			streakDays:  30,
			wantStreak:  1,
			wantNewDay:  true,
		},
		{
			name:        "same day resubmission is a no-op",
			lastCheckIn: daysAgo(0, 8),
			streakDays:  6,
			wantStreak:  6,
			wantNewDay:  false,
		},
		{
			name:        "same day later hour is still same day",
			lastCheckIn: daysAgo(0, 14),
			streakDays:  1,
			wantStreak:  1,
			wantNewDay:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeStreak(tc.lastCheckIn, tc.streakDays, now)
			if got.StreakDays != tc.wantStreak {
				t.Errorf("StreakDays = %d, want %d", got.StreakDays, tc.wantStreak)
			}
			if got.NewDay != tc.wantNewDay {
				t.Errorf("NewDay = %v, want %v", got.NewDay, tc.wantNewDay)
			}
		})
	}
}

func TestComputeStreakMonthBoundary(t *testing.T) {
	// Mar 1 check-in after Feb 28 check-in (non-leap year) is consecutive.
	last := time.Date(2025, 2, 28, 22, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC)

	got := ComputeStreak(&last, 3, now)
	if got.StreakDays != 4 || !got.NewDay {
		t.Fatalf("ComputeStreak() = %+v, want streak 4 on a new day", got)
	}
}

func TestSubmitRequestValidate(t *testing.T) {
	intp := func(v int) *int { return &v }

	tests := []struct {
		name    string
		req     SubmitRequest
		wantErr bool
	}{
		{
			name: "all required present",
			req:  SubmitRequest{Mood: intp(7), Connection: intp(8), Communication: intp(6)},
		},
		{
			name:    "missing mood",
			req:     SubmitRequest{Connection: intp(8), Communication: intp(6)},
			wantErr: true,
		},
		{
			name:    "missing connection",
			req:     SubmitRequest{Mood: intp(7), Communication: intp(6)},
			wantErr: true,
		},
		{
			name:    "missing communication",
			req:     SubmitRequest{Mood: intp(7), Connection: intp(8)},
			wantErr: true,
		},
		{
			name:    "mood out of range",
			req:     SubmitRequest{Mood: intp(11), Connection: intp(8), Communication: intp(6)},
			wantErr: true,
		},
		{
			name:    "zero is out of range",
			req:     SubmitRequest{Mood: intp(5), Connection: intp(0), Communication: intp(6)},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
