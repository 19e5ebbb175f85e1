package models

import "testing"

func TestMilestoneTypeValid(t *testing.T) {
	tests := []struct {
		typ  MilestoneType
		want bool
	}{
		{MilestonePositive, true},
		{MilestoneNeutral, true},
		{MilestoneChallenging, true},
		{MilestoneNegative, true},
		{MilestoneType(""), false},
		{MilestoneType("bogus"), false},
		{MilestoneType("Positive"), false},
	}

	for _, tt := range tests {
		if got := tt.typ.Valid(); got != tt.want {
			t.Errorf("MilestoneType(%q).Valid() = %v, want %v", tt.typ, got, tt.want)
		}
	}
}
