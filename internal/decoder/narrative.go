package decoder

import (
	"fmt"
	"strings"
)

var attachmentTexts = map[AttachmentStyle]string{
	AttachmentSecure:             "Secure attachment style, characterized by comfort with intimacy and independence. This creates a stable foundation for emotional connection and mutual growth.",
	AttachmentAnxiousAvoidant:    "Anxious-avoidant attachment pattern, marked by difficulty trusting and fear of vulnerability. This creates a push-pull dynamic that can be emotionally exhausting for both partners.",
	AttachmentDismissiveAvoidant: "Dismissive-avoidant attachment tendencies, characterized by emotional distance and self-reliance. This creates challenges in developing deep emotional intimacy.",
	AttachmentMixed:              "Mixed attachment patterns that fluctuate based on circumstances. This suggests potential for growth toward more secure attachment through consistent positive interactions.",
}

var communicationTexts = map[CommunicationPattern]string{
	CommunicationDirectConstructive: "Direct and constructive communication pattern that facilitates understanding and problem-solving. Your ability to address issues face-to-face strengthens your connection.",
	CommunicationAvoidant:           "Avoidant communication pattern that may prevent deeper understanding. Text-based communication can mask emotional nuances and lead to misinterpretations.",
	CommunicationMixed:              "Mixed communication style that varies in effectiveness. Consider establishing communication agreements about how and when to discuss important matters.",
}

var powerTexts = map[PowerDynamics]string{
	PowerImbalanced: "Imbalanced power dynamic with potential controlling behaviors. Healthy relationships require mutual respect for boundaries and personal autonomy.",
	PowerBalanced:   "Balanced power dynamic characterized by mutual respect and autonomy. This equilibrium creates space for both individual and relationship growth.",
	PowerEvolving:   "Evolving power dynamic that may shift based on circumstances. Consider discussing how decisions are made and how boundaries are established.",
}

var growthTexts = map[Tier]string{
	TierStrong:    "Strong foundation for continued growth and deepening intimacy. Your relationship demonstrates key elements of healthy attachment and communication.",
	TierPotential: "Moderate potential for growth with focused attention on key areas. Consider relationship education resources to strengthen your connection.",
	TierUncertain: "Significant work needed to establish healthy relationship patterns. Consider whether this relationship meets your core emotional needs.",
}

type messageInput struct {
	answers          *Answers
	percentage       int
	strengths        []string
	challenges       []string
	attachment       AttachmentStyle
	communication    CommunicationPattern
	power            PowerDynamics
	tier             Tier
	milestoneInsight string
}

func composeMessage(in messageInput) string {
	var b strings.Builder

	switch in.tier {
	case TierStrong:
		b.WriteString("Your connection exhibits the hallmarks of a committed relationship with secure attachment tendencies. The consistency in behavior, emotional availability, and mutual respect create a foundation for lasting intimacy.")
		if len(in.strengths) > 0 {
			fmt.Fprintf(&b, " Your relationship's greatest strengths include %s, which research links to relationship satisfaction and longevity.",
				strings.Join(firstN(in.strengths, 3), ", "))
		}
	case TierPotential:
		b.WriteString("Your relationship is in a developmental phase with elements of both secure and insecure attachment. There's evidence of emotional investment and connection, alongside areas that would benefit from greater clarity and consistency.")
		if len(in.strengths) > 0 {
			fmt.Fprintf(&b, " Your connection's strengths include %s, providing a foundation to build upon.",
				strings.Join(firstN(in.strengths, 2), " and "))
		}
		if len(in.challenges) > 0 {
			fmt.Fprintf(&b, " Focusing on %s would help establish greater security in your attachment.",
				strings.Join(firstN(in.challenges, 2), " and "))
		}
	default:
		b.WriteString("Your connection currently exists in an ambiguous territory characterized by attachment insecurity. The inconsistency in expectations, behaviors, and emotional availability creates an unstable foundation that may be causing anxiety or avoidance patterns.")
		if len(in.challenges) > 0 {
			fmt.Fprintf(&b, " The primary areas requiring attention include %s, which are essential for establishing relationship security.",
				strings.Join(firstN(in.challenges, 3), ", "))
		}
		b.WriteString(" A direct conversation about relationship needs and boundaries would provide clarity about whether this connection can evolve into something more defined and secure.")
	}

	fmt.Fprintf(&b, "\n\nAttachment Analysis: %s\n\nCommunication Pattern: %s\n\nPower Dynamics: %s\n\nGrowth Potential: %s",
		attachmentTexts[in.attachment],
		communicationTexts[in.communication],
		powerTexts[in.power],
		growthTexts[in.tier])

	if in.milestoneInsight != "" {
		b.WriteString(in.milestoneInsight)
	}

	if in.answers.UserBirthday != "" && in.answers.PartnerBirthday != "" {
		userSign := ZodiacSign(in.answers.UserBirthday)
		partnerSign := ZodiacSign(in.answers.PartnerBirthday)
		if userSign != "" && partnerSign != "" {
			fmt.Fprintf(&b, "\n\nAstrological Insight: As a %s and %s, your signs are %s. %s tends to be %s, while %s is often %s. This combination can create %s.",
				userSign, partnerSign,
				SignCompatibility(userSign, partnerSign),
				userSign, signTrait(userSign),
				partnerSign, signTrait(partnerSign),
				signDynamic(userSign, partnerSign))
		}
	}

	if in.answers.AdditionalContext != "" {
		b.WriteString("\n\nYour additional context provides important nuance to this analysis. Remember that every relationship is unique and follows its own developmental trajectory. Trust your intuition while considering these insights.")
	}

	return b.String()
}
