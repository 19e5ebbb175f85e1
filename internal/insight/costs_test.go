package insight

import (
	"testing"

	"github.com/bonesy512/situationship/internal/models"
)

func TestCostForType(t *testing.T) {
	tests := []struct {
		insightType models.InsightType
		want        int64
	}{
		{models.InsightDaily, 1},
		{models.InsightWeekly, 3},
		{models.InsightCommunication, 2},
		{models.InsightMilestone, 2},
		{models.InsightType("horoscope"), 1},
		{models.InsightType(""), 1},
	}

	for _, tc := range tests {
		t.Run(string(tc.insightType), func(t *testing.T) {
			if got := CostForType(tc.insightType); got != tc.want {
				t.Errorf("CostForType(%q) = %d, want %d", tc.insightType, got, tc.want)
			}
		})
	}
}
