package model

// Level classifies a risk assessment.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons. The String() method provides human-readable
// output when needed.
type Level int

const (
	// LevelSafe indicates no significant risk language was found.
	LevelSafe Level = iota

	// LevelRisky indicates the risk score crossed the risky threshold.
	LevelRisky

	// LevelAnalyzing is the transient state shown while an analysis is in
	// flight. The scorer never returns it; it exists so display layers can
	// share one enum for all three states.
	LevelAnalyzing
)

// String returns a human-readable representation of the level.
func (l Level) String() string {
	switch l {
	case LevelSafe:
		return "SAFE"
	case LevelRisky:
		return "RISKY"
	case LevelAnalyzing:
		return "ANALYZING"
	default:
		return "UNKNOWN"
	}
}

// RiskAssessment is the pure derived result of scoring a text against the
// risk and positive phrase sets. It is recomputed on every call and has no
// persisted identity.
type RiskAssessment struct {
	// RiskScore is the raw score: +1 per distinct risk phrase, -0.5 per
	// distinct positive phrase. It is never clamped and can go negative.
	RiskScore float64 `json:"risk_score"`

	// Level is LevelRisky when RiskScore >= 1, otherwise LevelSafe.
	Level Level `json:"level"`

	// LevelText is the string form of Level, for serialized output.
	LevelText string `json:"level_text"`

	// Description is the human-readable classification summary.
	Description string `json:"description"`

	// FoundRisks lists matched risk phrases in keyword-set order.
	// Unlike the page report lists, it is not capped.
	FoundRisks []string `json:"found_risks,omitempty"`

	// FoundPositives lists matched positive phrases in keyword-set order.
	FoundPositives []string `json:"found_positives,omitempty"`
}
