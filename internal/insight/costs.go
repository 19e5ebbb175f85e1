package insight

import "github.com/bonesy512/situationship/internal/models"

// defaultTokenCost applies to insight types outside the known table.
const defaultTokenCost = 1

var tokenCosts = map[models.InsightType]int64{
	models.InsightDaily:         1,
	models.InsightWeekly:        3,
	models.InsightCommunication: 2,
	models.InsightMilestone:     2,
}

// CostForType returns the token price of generating one insight.
func CostForType(t models.InsightType) int64 {
	if cost, ok := tokenCosts[t]; ok {
		return cost
	}
	return defaultTokenCost
}
