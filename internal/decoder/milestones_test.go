package decoder

import (
	"strings"
	"testing"
	"time"

	"github.com/bonesy512/situationship/internal/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAnalyzeMilestonesTrajectory(t *testing.T) {
	p := models.MilestonePositive
	n := models.MilestoneNegative
	c := models.MilestoneChallenging
	u := models.MilestoneNeutral

	ms := func(types ...models.MilestoneType) []models.Milestone {
		milestones := make([]models.Milestone, len(types))
		for i, typ := range types {
			milestones[i] = models.Milestone{
				Date: date(2024, time.January, 1+i),
				Type: typ,
			}
		}
		return milestones
	}

	tests := []struct {
		name string
		in   []models.Milestone
		want Trajectory
	}{
		{
			name: "positive dominant with positive recent is upward",
			in:   ms(p, p, p, p, n),
			want: TrajectoryUpward,
		},
		{
			name: "positive dominant with challenging recent is plateau",
			in:   ms(p, p, p, c, n),
			want: TrajectoryPlateau,
		},
		{
			name: "negative dominant with positive recent is recovering",
			in:   ms(n, n, n, p, p),
			want: TrajectoryRecovering,
		},
		{
			name: "negative dominant and still negative is downward",
			in:   ms(n, p, n, n, n),
			want: TrajectoryDownward,
		},
		{
			name: "balanced with recent challenging dominant is transformative",
			in:   ms(p, p, n, c, c),
			want: TrajectoryTransformative,
		},
		{
			name: "balanced otherwise is fluctuating",
			in:   ms(p, n, u, p, n),
			want: TrajectoryFluctuating,
		},
		{
			name: "tie between positive and the rest falls to balanced",
			in:   ms(p, p, n, c),
			want: TrajectoryFluctuating,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, insight := analyzeMilestones(tc.in)
			if got != tc.want {
				t.Errorf("trajectory = %q, want %q", got, tc.want)
			}
			if insight == "" {
				t.Error("expected a timeline insight for a non-empty milestone list")
			}
		})
	}
}

func TestAnalyzeMilestonesEmpty(t *testing.T) {
	trajectory, insight := analyzeMilestones(nil)
	if trajectory != "" || insight != "" {
		t.Errorf("analyzeMilestones(nil) = (%q, %q), want empty", trajectory, insight)
	}
}

func TestAnalyzeMilestonesSortsAndFormatsDates(t *testing.T) {
	milestones := []models.Milestone{
		{Date: date(2024, time.June, 9), Type: models.MilestonePositive},
		{Date: date(2023, time.December, 24), Type: models.MilestonePositive},
		{Date: date(2024, time.March, 2), Type: models.MilestonePositive},
	}

	_, insight := analyzeMilestones(milestones)
	if !strings.Contains(insight, "from Dec 24, 2023 to Jun 9, 2024") {
		t.Errorf("timeline dates not sorted or formatted: %q", insight)
	}
}
