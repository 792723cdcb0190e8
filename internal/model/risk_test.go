package model

import "testing"

func TestLevelString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level Level
		want  string
	}{
		{name: "safe", level: LevelSafe, want: "SAFE"},
		{name: "risky", level: LevelRisky, want: "RISKY"},
		{name: "analyzing", level: LevelAnalyzing, want: "ANALYZING"},
		{name: "unknown", level: Level(99), want: "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
			}
		})
	}
}

func TestStageString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stage Stage
		want  string
	}{
		{name: "condensed", stage: StageCondensed, want: "condensed"},
		{name: "reframed", stage: StageReframed, want: "reframed"},
		{name: "polished", stage: StagePolished, want: "polished"},
		{name: "heuristic", stage: StageHeuristic, want: "heuristic"},
		{name: "unknown", stage: Stage(99), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.stage.String(); got != tt.want {
				t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.want)
			}
		})
	}
}
