package decoder

import (
	"fmt"
	"math"
	"strings"

	"github.com/bonesy512/situationship/internal/models"
)

type AttachmentStyle string

const (
	AttachmentSecure             AttachmentStyle = "secure"
	AttachmentAnxiousAvoidant    AttachmentStyle = "anxious-avoidant"
	AttachmentDismissiveAvoidant AttachmentStyle = "dismissive-avoidant"
	AttachmentMixed              AttachmentStyle = "mixed"
)

type CommunicationPattern string

const (
	CommunicationDirectConstructive CommunicationPattern = "direct-constructive"
	CommunicationAvoidant           CommunicationPattern = "avoidant"
	CommunicationMixed              CommunicationPattern = "mixed"
)

type PowerDynamics string

const (
	PowerBalanced   PowerDynamics = "balanced"
	PowerImbalanced PowerDynamics = "imbalanced"
	PowerEvolving   PowerDynamics = "evolving"
)

type Tier string

const (
	TierStrong    Tier = "strong"
	TierPotential Tier = "potential"
	TierUncertain Tier = "uncertain"
)

// Result is the full decode output returned to the client.
type Result struct {
	Message              string               `json:"message"`
	Tier                 Tier                 `json:"tier"`
	RelationshipType     string               `json:"relationship_type"`
	PositivePercentage   int                  `json:"positive_percentage"`
	Strengths            []string             `json:"strengths"`
	Challenges           []string             `json:"challenges"`
	AttachmentStyle      AttachmentStyle      `json:"attachment_style"`
	CommunicationPattern CommunicationPattern `json:"communication_pattern"`
	PowerDynamics        PowerDynamics        `json:"power_dynamics"`
	GrowthPotential      string               `json:"growth_potential"`
	Trajectory           Trajectory           `json:"trajectory,omitempty"`
}

// Validate checks the eight basic fields are answered and that every
// answered field carries a value from its option list.
func (a *Answers) Validate() error {
	for _, f := range requiredBasics {
		if a.answerOf(f) == "" {
			return fmt.Errorf("%w: missing required field %q", models.ErrInvalidInput, f)
		}
	}
	for _, f := range scoredFields {
		answer := a.answerOf(f)
		if answer == "" {
			continue
		}
		if !contains(Options[f], answer) {
			return fmt.Errorf("%w: %q is not a valid answer for %q", models.ErrInvalidInput, answer, f)
		}
	}
	return nil
}

func contains(options []string, answer string) bool {
	for _, option := range options {
		if option == answer {
			return true
		}
	}
	return false
}

// Score is a pure function of its inputs: no I/O, fully deterministic.
func Score(answers *Answers, milestones []models.Milestone) (*Result, error) {
	if err := answers.Validate(); err != nil {
		return nil, err
	}

	positiveCount := 0
	totalFields := 0
	for _, f := range scoredFields {
		answer := answers.answerOf(f)
		if answer == "" {
			continue
		}
		totalFields++
		if isPositive(f, answer) {
			positiveCount++
		}
	}
	percentage := int(math.Round(float64(positiveCount) / float64(totalFields) * 100))

	strengths := collectStrengths(answers)
	challenges := collectChallenges(answers)
	attachment := classifyAttachment(answers)
	communication := classifyCommunication(answers)
	power := classifyPower(answers)
	trajectory, milestoneInsight := analyzeMilestones(milestones)
	tier, relationshipType, growth := classifyTier(percentage)

	message := composeMessage(messageInput{
		answers:          answers,
		percentage:       percentage,
		strengths:        strengths,
		challenges:       challenges,
		attachment:       attachment,
		communication:    communication,
		power:            power,
		tier:             tier,
		milestoneInsight: milestoneInsight,
	})

	return &Result{
		Message:              message,
		Tier:                 tier,
		RelationshipType:     relationshipType,
		PositivePercentage:   percentage,
		Strengths:            firstN(strengths, 3),
		Challenges:           firstN(challenges, 3),
		AttachmentStyle:      attachment,
		CommunicationPattern: communication,
		PowerDynamics:        power,
		GrowthPotential:      firstSentence(growth),
		Trajectory:           trajectory,
	}, nil
}

// strengthChecks and challengeChecks are fixed and ordered; only the first
// three findings surface in the result.
var strengthChecks = []struct {
	field Field
	label string
}{
	{FieldEmotionalSupport, "emotional support"},
	{FieldTrustLevel, "trust"},
	{FieldConflictResolution, "conflict resolution"},
	{FieldBoundaries, "healthy boundaries"},
	{FieldEmpathy, "empathy"},
}

var challengeChecks = []struct {
	field Field
	label string
}{
	{FieldCommunication, "communication"},
	{FieldExpectations, "alignment of expectations"},
	{FieldBehaviors, "consistency"},
	{FieldFutureDiscussions, "future planning"},
	{FieldTransparency, "transparency"},
}

func collectStrengths(a *Answers) []string {
	var strengths []string
	for _, check := range strengthChecks {
		if isPositive(check.field, a.answerOf(check.field)) {
			strengths = append(strengths, check.label)
		}
	}
	return strengths
}

func collectChallenges(a *Answers) []string {
	var challenges []string
	for _, check := range challengeChecks {
		if !isPositive(check.field, a.answerOf(check.field)) {
			challenges = append(challenges, check.label)
		}
	}
	return challenges
}

func classifyAttachment(a *Answers) AttachmentStyle {
	switch {
	case a.TrustLevel == "Complete trust" && a.Vulnerability == "Completely open and vulnerable":
		return AttachmentSecure
	case a.TrustLevel == "No trust" || a.TrustLevel == "Very little trust":
		return AttachmentAnxiousAvoidant
	case a.Vulnerability == "Cannot be vulnerable" || a.Vulnerability == "Rarely vulnerable":
		return AttachmentDismissiveAvoidant
	default:
		return AttachmentMixed
	}
}

func classifyCommunication(a *Answers) CommunicationPattern {
	switch {
	case a.Communication == "In-person" && isPositive(FieldConflictResolution, a.ConflictResolution):
		return CommunicationDirectConstructive
	case a.Communication == "Texting" && a.ConflictResolution == "Never resolve conflicts":
		return CommunicationAvoidant
	default:
		return CommunicationMixed
	}
}

func classifyPower(a *Answers) PowerDynamics {
	switch {
	case a.PersonalSpace == "No personal space" && a.Boundaries == "No boundaries respected":
		return PowerImbalanced
	case a.PersonalSpace == "Perfect balance of togetherness and independence" && a.Boundaries == "All boundaries respected":
		return PowerBalanced
	default:
		return PowerEvolving
	}
}

func classifyTier(percentage int) (Tier, string, string) {
	switch {
	case percentage >= 70:
		return TierStrong, "Committed Relationship", growthTexts[TierStrong]
	case percentage >= 50:
		return TierPotential, "Evolving Relationship", growthTexts[TierPotential]
	default:
		return TierUncertain, "Undefined Situationship", growthTexts[TierUncertain]
	}
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func firstSentence(text string) string {
	if i := strings.Index(text, "."); i >= 0 {
		return text[:i]
	}
	return text
}
