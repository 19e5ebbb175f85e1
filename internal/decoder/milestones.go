package decoder

import (
	"fmt"
	"sort"

	"github.com/bonesy512/situationship/internal/models"
)

type Trajectory string

const (
	TrajectoryUpward         Trajectory = "upward"
	TrajectoryPlateau        Trajectory = "plateau"
	TrajectoryRecovering     Trajectory = "recovering"
	TrajectoryDownward       Trajectory = "downward"
	TrajectoryTransformative Trajectory = "transformative"
	TrajectoryFluctuating    Trajectory = "fluctuating"
)

func countTypes(milestones []models.Milestone) (positive, negative, challenging int) {
	for _, m := range milestones {
		switch m.Type {
		case models.MilestonePositive:
			positive++
		case models.MilestoneNegative:
			negative++
		case models.MilestoneChallenging:
			challenging++
		}
	}
	return
}

// analyzeMilestones classifies the relationship trajectory from the dated
// event list and produces the timeline paragraph for the narrative.
// Dominance comparisons are strict; ties land in the balanced branch.
func analyzeMilestones(milestones []models.Milestone) (Trajectory, string) {
	if len(milestones) == 0 {
		return "", ""
	}

	sorted := make([]models.Milestone, len(milestones))
	copy(sorted, milestones)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	first := sorted[0]
	last := sorted[len(sorted)-1]
	positive, negative, challenging := countTypes(sorted)

	recent := sorted
	if len(sorted) > 3 {
		recent = sorted[len(sorted)-3:]
	}
	recentPositive, recentNegative, recentChallenging := countTypes(recent)

	insight := fmt.Sprintf(
		"\n\nRelationship Timeline Analysis: Your relationship journey from %s to %s reveals important patterns. ",
		first.Date.Format("Jan 2, 2006"),
		last.Date.Format("Jan 2, 2006"),
	)

	var trajectory Trajectory
	switch {
	case positive > negative+challenging:
		insight += "Your relationship demonstrates resilience and a predominantly positive trajectory, which research associates with relationship longevity. "
		if recentPositive > recentNegative+recentChallenging {
			trajectory = TrajectoryUpward
			insight += "The recent positive events suggest continued growth and deepening connection."
		} else {
			trajectory = TrajectoryPlateau
			insight += "While your foundation is strong, recent challenges suggest a need for renewed attention to nurturing your connection."
		}
	case negative > positive:
		insight += "Your relationship history shows recurring negative patterns that may be creating emotional distance. "
		if recentPositive > recentNegative {
			trajectory = TrajectoryRecovering
			insight += "However, recent positive developments suggest potential for healing and renewal if you continue this momentum."
		} else {
			trajectory = TrajectoryDownward
			insight += "The continued negative experiences suggest a need for significant intervention, possibly including professional support."
		}
	default:
		insight += "Your relationship shows a mix of positive moments and challenges, reflecting normal relationship complexity. "
		if recentChallenging > recentPositive && recentChallenging > recentNegative {
			trajectory = TrajectoryTransformative
			insight += "Recent challenges appear to be catalysts for growth rather than signs of deterioration, suggesting potential for transformation."
		} else {
			trajectory = TrajectoryFluctuating
			insight += "The fluctuating nature of your experiences suggests a need for more intentional relationship maintenance."
		}
	}

	return trajectory, insight
}
