package insight

import (
	"fmt"
	"strings"

	"github.com/bonesy512/situationship/internal/models"
)

// promptData is the slice of user history a prompt template may reference.
type promptData struct {
	CheckIns   []*models.CheckIn
	Milestones []models.Milestone
}

func buildPrompt(insightType models.InsightType, data promptData) string {
	switch insightType {
	case models.InsightWeekly:
		return fmt.Sprintf(`Analyze the user's relationship patterns over the past week.
Look for trends in mood, connection, and communication.
%s
Identify areas of strength and opportunities for growth.
Provide 3 specific, actionable recommendations to improve their relationship.
Keep your response under 300 words and make it personal and empathetic.`,
			summarizeCheckIns(data.CheckIns))

	case models.InsightCommunication:
		return fmt.Sprintf(`Based on the user's check-ins, provide specific communication tips tailored to their relationship.
%s
Focus on improving their communication style, addressing challenges, and building stronger connection.
Provide 3-4 practical communication techniques they can implement immediately.
Keep your response under 250 words and make it personal and empathetic.`,
			summarizeCheckIns(data.CheckIns))

	case models.InsightMilestone:
		return fmt.Sprintf(`Analyze the user's relationship milestones and provide insights on their relationship journey.
%s
Identify patterns in their milestone types (positive, challenging, etc.).
Comment on the progression of their relationship based on these milestones.
Provide guidance on how to create more positive milestones moving forward.
Keep your response under 250 words and make it personal and empathetic.`,
			summarizeMilestones(data.Milestones))

	default:
		// Unknown types fall back to the daily template, mirroring the
		// permissive cost table.
		return dailyPrompt(data.CheckIns)
	}
}

func dailyPrompt(checkIns []*models.CheckIn) string {
	mood, connection, communication := "N/A", "N/A", "N/A"
	highlight, challenge := "None", "None"
	if len(checkIns) > 0 {
		latest := checkIns[0]
		mood = fmt.Sprintf("%d", latest.Mood)
		connection = fmt.Sprintf("%d", latest.Connection)
		communication = fmt.Sprintf("%d", latest.Communication)
		if latest.Highlight != nil && *latest.Highlight != "" {
			highlight = *latest.Highlight
		}
		if latest.Challenge != nil && *latest.Challenge != "" {
			challenge = *latest.Challenge
		}
	}

	return fmt.Sprintf(`Based on the user's recent check-ins, provide a thoughtful insight about their relationship.
Focus on patterns in mood (%s), connection (%s), and communication (%s).
Recent highlight: %q
Recent challenge: %q
Provide specific, actionable advice tailored to their situation.
Keep your response under 200 words and make it personal and empathetic.`,
		mood, connection, communication, highlight, challenge)
}

func summarizeCheckIns(checkIns []*models.CheckIn) string {
	if len(checkIns) == 0 {
		return "The user has no recorded check-ins yet."
	}

	var b strings.Builder
	b.WriteString("Recent check-ins (most recent first):")
	for _, ci := range checkIns {
		fmt.Fprintf(&b, "\n- %s: mood %d/10, connection %d/10, communication %d/10",
			ci.CreatedAt.Format("Jan 2"), ci.Mood, ci.Connection, ci.Communication)
		if ci.Highlight != nil && *ci.Highlight != "" {
			fmt.Fprintf(&b, ", highlight: %q", *ci.Highlight)
		}
		if ci.Challenge != nil && *ci.Challenge != "" {
			fmt.Fprintf(&b, ", challenge: %q", *ci.Challenge)
		}
	}
	return b.String()
}

func summarizeMilestones(milestones []models.Milestone) string {
	if len(milestones) == 0 {
		return "The user has no recorded milestones yet."
	}

	var b strings.Builder
	b.WriteString("Milestones (oldest first):")
	for _, m := range milestones {
		fmt.Fprintf(&b, "\n- %s (%s): %s", m.Date.Format("Jan 2, 2006"), m.Type, m.Description)
	}
	return b.String()
}
