package risk

import (
	"github.com/nao1215/fineprint/internal/keywords"
	"github.com/nao1215/fineprint/internal/model"
	"github.com/nao1215/fineprint/internal/scanner"
)

// Scoring weights and classification thresholds.
// The score is never clamped: a text full of positive phrases and free of
// risk phrases scores negative, which still classifies as safe.
const (
	// riskWeight is added per distinct matched risk phrase.
	riskWeight = 1.0

	// positiveWeight is subtracted per distinct matched positive phrase.
	positiveWeight = 0.5

	// riskyThreshold is the score at which a text is classified risky.
	riskyThreshold = 1.0

	// severeThreshold is the score at which the description escalates.
	severeThreshold = 3.0
)

// Classification descriptions shown to the user.
const (
	// DescriptionSevere is used when the score reaches severeThreshold.
	DescriptionSevere = "multiple risk factors, review carefully"

	// DescriptionConcerning is used for scores in [riskyThreshold, severeThreshold).
	DescriptionConcerning = "some concerning terms found"

	// DescriptionSafe is used below riskyThreshold.
	DescriptionSafe = "no major red flags"
)

// Assess scores text against the risk and positive phrase sets and
// classifies the result. The returned assessment is a pure derived value;
// callers own it and may recompute it at will.
func Assess(text string) model.RiskAssessment {
	risks := scanner.ScanText(text, keywords.RiskPhrases)
	positives := scanner.ScanText(text, keywords.PositivePhrases)

	score := float64(len(risks))*riskWeight - float64(len(positives))*positiveWeight

	level := model.LevelSafe
	description := DescriptionSafe
	switch {
	case score >= severeThreshold:
		level = model.LevelRisky
		description = DescriptionSevere
	case score >= riskyThreshold:
		level = model.LevelRisky
		description = DescriptionConcerning
	}

	return model.RiskAssessment{
		RiskScore:      score,
		Level:          level,
		LevelText:      level.String(),
		Description:    description,
		FoundRisks:     risks,
		FoundPositives: positives,
	}
}
