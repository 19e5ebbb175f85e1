package decoder

// Field identifies one questionnaire question. The set is closed: every
// scored field appears in scoredFields and answerOf switches over all of
// them, so a new field cannot be added without wiring both.
type Field string

const (
	FieldDuration           Field = "duration"
	FieldFrequency          Field = "frequency"
	FieldCommunication      Field = "communication"
	FieldEmotionalIntensity Field = "emotionalIntensity"
	FieldExpectations       Field = "expectations"
	FieldBehaviors          Field = "behaviors"
	FieldFeelings           Field = "feelings"
	FieldPhysicalIntimacy   Field = "physicalIntimacy"
	FieldTrustLevel         Field = "trustLevel"
	FieldJealousy           Field = "jealousy"
	FieldTransparency       Field = "transparency"
	FieldEmotionalSupport   Field = "emotionalSupport"
	FieldVulnerability      Field = "vulnerability"
	FieldEmpathy            Field = "empathy"
	FieldFutureDiscussions  Field = "futureDiscussions"
	FieldLifeGoals          Field = "lifeGoals"
	FieldCommitmentLevel    Field = "commitmentLevel"
	FieldConflictFrequency  Field = "conflictFrequency"
	FieldConflictResolution Field = "conflictResolution"
	FieldAfterConflict      Field = "afterConflict"
	FieldPersonalSpace      Field = "personalSpace"
	FieldSocialDynamics     Field = "socialDynamics"
	FieldBoundaries         Field = "boundaries"
)

// Answers is one questionnaire submission. Transient: it exists only for
// the duration of a single scoring computation.
type Answers struct {
	Duration           string `json:"duration"`
	Frequency          string `json:"frequency"`
	Communication      string `json:"communication"`
	EmotionalIntensity string `json:"emotionalIntensity"`
	Expectations       string `json:"expectations"`
	Behaviors          string `json:"behaviors"`
	Feelings           string `json:"feelings"`
	PhysicalIntimacy   string `json:"physicalIntimacy"`

	TrustLevel   string `json:"trustLevel"`
	Jealousy     string `json:"jealousy"`
	Transparency string `json:"transparency"`

	EmotionalSupport string `json:"emotionalSupport"`
	Vulnerability    string `json:"vulnerability"`
	Empathy          string `json:"empathy"`

	FutureDiscussions string `json:"futureDiscussions"`
	LifeGoals         string `json:"lifeGoals"`
	CommitmentLevel   string `json:"commitmentLevel"`

	ConflictFrequency  string `json:"conflictFrequency"`
	ConflictResolution string `json:"conflictResolution"`
	AfterConflict      string `json:"afterConflict"`

	PersonalSpace  string `json:"personalSpace"`
	SocialDynamics string `json:"socialDynamics"`
	Boundaries     string `json:"boundaries"`

	AdditionalContext string `json:"additionalContext,omitempty"`
	UserBirthday      string `json:"userBirthday,omitempty"`
	PartnerBirthday   string `json:"partnerBirthday,omitempty"`
}

func (a *Answers) answerOf(f Field) string {
	switch f {
	case FieldDuration:
		return a.Duration
	case FieldFrequency:
		return a.Frequency
	case FieldCommunication:
		return a.Communication
	case FieldEmotionalIntensity:
		return a.EmotionalIntensity
	case FieldExpectations:
		return a.Expectations
	case FieldBehaviors:
		return a.Behaviors
	case FieldFeelings:
		return a.Feelings
	case FieldPhysicalIntimacy:
		return a.PhysicalIntimacy
	case FieldTrustLevel:
		return a.TrustLevel
	case FieldJealousy:
		return a.Jealousy
	case FieldTransparency:
		return a.Transparency
	case FieldEmotionalSupport:
		return a.EmotionalSupport
	case FieldVulnerability:
		return a.Vulnerability
	case FieldEmpathy:
		return a.Empathy
	case FieldFutureDiscussions:
		return a.FutureDiscussions
	case FieldLifeGoals:
		return a.LifeGoals
	case FieldCommitmentLevel:
		return a.CommitmentLevel
	case FieldConflictFrequency:
		return a.ConflictFrequency
	case FieldConflictResolution:
		return a.ConflictResolution
	case FieldAfterConflict:
		return a.AfterConflict
	case FieldPersonalSpace:
		return a.PersonalSpace
	case FieldSocialDynamics:
		return a.SocialDynamics
	case FieldBoundaries:
		return a.Boundaries
	}
	return ""
}

// scoredFields is the fixed iteration order for the percentage computation.
var scoredFields = []Field{
	FieldDuration,
	FieldFrequency,
	FieldCommunication,
	FieldEmotionalIntensity,
	FieldExpectations,
	FieldBehaviors,
	FieldFeelings,
	FieldPhysicalIntimacy,
	FieldTrustLevel,
	FieldJealousy,
	FieldTransparency,
	FieldEmotionalSupport,
	FieldVulnerability,
	FieldEmpathy,
	FieldFutureDiscussions,
	FieldLifeGoals,
	FieldCommitmentLevel,
	FieldConflictFrequency,
	FieldConflictResolution,
	FieldAfterConflict,
	FieldPersonalSpace,
	FieldSocialDynamics,
	FieldBoundaries,
}

// requiredBasics must all be answered before scoring runs.
var requiredBasics = []Field{
	FieldDuration,
	FieldFrequency,
	FieldCommunication,
	FieldEmotionalIntensity,
	FieldExpectations,
	FieldBehaviors,
	FieldFeelings,
	FieldPhysicalIntimacy,
}

// Options enumerates the allowed answers per field, in questionnaire order.
var Options = map[Field][]string{
	FieldDuration:  {"Less than a month", "1-3 months", "3-6 months", "6-12 months", "More than a year"},
	FieldFrequency: {"Rarely", "Monthly", "Weekly", "Daily", "Multiple times a day"},
	FieldCommunication: {
		"Social media", "Texting", "Calling", "Video calls", "In-person",
	},
	FieldEmotionalIntensity: {
		"Very casual", "Casual", "Friendly", "Warm", "Affectionate", "Passionate", "Intense",
	},
	FieldExpectations: {
		"Casual fun", "Friends with benefits", "Exploring possibilities", "Potential relationship",
		"In a relationship", "Committed partnership", "Engaged", "Married",
	},
	FieldBehaviors: {
		"Ghosting", "Breadcrumbing", "Mixed signals", "Occasionally inconsistent",
		"Mostly consistent", "Consistent and reliable",
	},
	FieldFeelings: {
		"Unhappy", "Indifferent", "Confused", "Anxious", "Frustrated",
		"Hopeful", "Content", "Happy", "Very happy",
	},
	FieldPhysicalIntimacy: {
		"None", "Minimal (holding hands, hugging)", "Light (kissing, cuddling)",
		"Moderate (making out, some touching)", "Intimate (sexual activity)",
		"Very intimate (regular sexual activity)",
	},
	FieldTrustLevel: {
		"No trust", "Very little trust", "Some trust with reservations",
		"Moderate trust", "High trust", "Complete trust",
	},
	FieldJealousy: {
		"Extreme jealousy", "Frequent jealousy", "Occasional jealousy", "Rare jealousy", "No jealousy",
	},
	FieldTransparency: {
		"No transparency", "Limited transparency", "Selective transparency",
		"Mostly transparent", "Completely transparent",
	},
	FieldEmotionalSupport: {
		"No support", "Minimal support", "Occasional support", "Regular support", "Consistent strong support",
	},
	FieldVulnerability: {
		"Cannot be vulnerable", "Rarely vulnerable", "Sometimes vulnerable",
		"Often vulnerable", "Completely open and vulnerable",
	},
	FieldEmpathy: {
		"No empathy shown", "Little empathy", "Selective empathy", "Good empathy",
		"Strong empathy and understanding",
	},
	FieldFutureDiscussions: {
		"Never discuss future", "Rarely discuss future", "Sometimes discuss future",
		"Often discuss future", "Regularly plan for future together",
	},
	FieldLifeGoals: {
		"Completely misaligned", "Mostly different goals", "Some shared goals",
		"Many shared goals", "Completely aligned life goals",
	},
	FieldCommitmentLevel: {
		"No commitment", "Very low commitment", "Moderate commitment", "Strong commitment", "Full commitment",
	},
	FieldConflictFrequency: {
		"Constant conflicts", "Frequent conflicts", "Occasional conflicts", "Rare conflicts", "Almost never conflict",
	},
	FieldConflictResolution: {
		"Never resolve conflicts", "Poorly resolve conflicts", "Sometimes resolve conflicts",
		"Usually resolve conflicts well", "Always resolve conflicts healthily",
	},
	FieldAfterConflict: {
		"Relationship worsens", "Lingering tension", "Return to normal",
		"Better understanding", "Stronger relationship",
	},
	FieldPersonalSpace: {
		"No personal space", "Little personal space", "Some personal space", "Good balance",
		"Perfect balance of togetherness and independence",
	},
	FieldSocialDynamics: {
		"Completely separate social lives", "Rarely interact with each other's friends",
		"Sometimes socialize together", "Often socialize together", "Fully integrated social lives",
	},
	FieldBoundaries: {
		"No boundaries respected", "Few boundaries respected", "Some boundaries respected",
		"Most boundaries respected", "All boundaries respected",
	},
}

// positiveOptions is the per-field subset of answers counted as favorable.
var positiveOptions = map[Field][]string{
	FieldDuration:           {"6-12 months", "More than a year"},
	FieldFrequency:          {"Daily", "Multiple times a day"},
	FieldCommunication:      {"In-person", "Video calls"},
	FieldEmotionalIntensity: {"Affectionate", "Passionate", "Intense"},
	FieldExpectations:       {"In a relationship", "Committed partnership", "Engaged", "Married"},
	FieldBehaviors:          {"Mostly consistent", "Consistent and reliable"},
	FieldFeelings:           {"Hopeful", "Content", "Happy", "Very happy"},
	FieldPhysicalIntimacy: {
		"Moderate (making out, some touching)",
		"Intimate (sexual activity)",
		"Very intimate (regular sexual activity)",
	},
	FieldTrustLevel:         {"High trust", "Complete trust"},
	FieldJealousy:           {"Rare jealousy", "No jealousy"},
	FieldTransparency:       {"Mostly transparent", "Completely transparent"},
	FieldEmotionalSupport:   {"Regular support", "Consistent strong support"},
	FieldVulnerability:      {"Often vulnerable", "Completely open and vulnerable"},
	FieldEmpathy:            {"Good empathy", "Strong empathy and understanding"},
	FieldFutureDiscussions:  {"Often discuss future", "Regularly plan for future together"},
	FieldLifeGoals:          {"Many shared goals", "Completely aligned life goals"},
	FieldCommitmentLevel:    {"Strong commitment", "Full commitment"},
	FieldConflictFrequency:  {"Rare conflicts", "Almost never conflict"},
	FieldConflictResolution: {"Usually resolve conflicts well", "Always resolve conflicts healthily"},
	FieldAfterConflict:      {"Better understanding", "Stronger relationship"},
	FieldPersonalSpace:      {"Good balance", "Perfect balance of togetherness and independence"},
	FieldSocialDynamics:     {"Often socialize together", "Fully integrated social lives"},
	FieldBoundaries:         {"Most boundaries respected", "All boundaries respected"},
}

func isPositive(f Field, answer string) bool {
	for _, option := range positiveOptions[f] {
		if option == answer {
			return true
		}
	}
	return false
}
