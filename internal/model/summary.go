package model

// Stage identifies which summary pipeline tier produced the final text.
// Tracking the producing stage keeps the fallback chain testable.
type Stage int

const (
	// StageCondensed means the condense provider's output was final.
	StageCondensed Stage = iota

	// StageReframed means the reframe provider's output was final.
	StageReframed

	// StagePolished means the polish provider's output was final.
	StagePolished

	// StageHeuristic means every optional stage was absent or failed and
	// the deterministic word-count sentence was used.
	StageHeuristic
)

// String returns a human-readable representation of the stage.
func (s Stage) String() string {
	switch s {
	case StageCondensed:
		return "condensed"
	case StageReframed:
		return "reframed"
	case StagePolished:
		return "polished"
	case StageHeuristic:
		return "heuristic"
	default:
		return "unknown"
	}
}

// SummaryResult is the outcome of the summary pipeline.
// Text is guaranteed non-empty: the heuristic terminal stage always
// produces output even when every optional provider is unavailable.
type SummaryResult struct {
	// Text is the final summary text.
	Text string `json:"text"`

	// Stage records which pipeline tier supplied Text.
	Stage Stage `json:"stage"`

	// StageText is the string form of Stage, for serialized output.
	StageText string `json:"stage_text"`
}
