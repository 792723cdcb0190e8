package summary

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nao1215/fineprint/internal/model"
	"github.com/nao1215/fineprint/internal/provider"
)

// stubProvider returns a fixed output or error and records its last input.
type stubProvider struct {
	name      string
	output    string
	err       error
	lastInput string
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Transform(_ context.Context, input string) (string, error) {
	p.lastInput = input
	if p.err != nil {
		return "", p.err
	}
	return p.output, nil
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	text := "We may share your information with partners for advertising purposes."

	t.Run("all stages succeed yields polished output", func(t *testing.T) {
		t.Parallel()

		providers := provider.Set{
			Condense: &stubProvider{name: "condense", output: "condensed"},
			Reframe:  &stubProvider{name: "reframe", output: "reframed"},
			Polish:   &stubProvider{name: "polish", output: "polished"},
		}

		got := Summarize(context.Background(), text, model.RiskAssessment{}, providers)
		if got.Text != "polished" {
			t.Errorf("Text = %q, want %q", got.Text, "polished")
		}
		if got.Stage != model.StagePolished {
			t.Errorf("Stage = %v, want %v", got.Stage, model.StagePolished)
		}
	})

	t.Run("polish failure falls back to reframed output", func(t *testing.T) {
		t.Parallel()

		providers := provider.Set{
			Condense: &stubProvider{name: "condense", output: "condensed"},
			Reframe:  &stubProvider{name: "reframe", output: "reframed"},
			Polish:   &stubProvider{name: "polish", err: errors.New("unavailable")},
		}

		got := Summarize(context.Background(), text, model.RiskAssessment{}, providers)
		if got.Text != "reframed" {
			t.Errorf("Text = %q, want %q", got.Text, "reframed")
		}
		if got.Stage != model.StageReframed {
			t.Errorf("Stage = %v, want %v", got.Stage, model.StageReframed)
		}
	})

	t.Run("reframe failure falls back to condensed output", func(t *testing.T) {
		t.Parallel()

		providers := provider.Set{
			Condense: &stubProvider{name: "condense", output: "condensed"},
			Reframe:  &stubProvider{name: "reframe", err: errors.New("unavailable")},
		}

		got := Summarize(context.Background(), text, model.RiskAssessment{}, providers)
		if got.Text != "condensed" {
			t.Errorf("Text = %q, want %q", got.Text, "condensed")
		}
		if got.Stage != model.StageCondensed {
			t.Errorf("Stage = %v, want %v", got.Stage, model.StageCondensed)
		}
	})

	t.Run("reframe works on raw text when condense is absent", func(t *testing.T) {
		t.Parallel()

		reframe := &stubProvider{name: "reframe", output: "reframed"}
		providers := provider.Set{Reframe: reframe}

		got := Summarize(context.Background(), text, model.RiskAssessment{}, providers)
		if got.Stage != model.StageReframed {
			t.Errorf("Stage = %v, want %v", got.Stage, model.StageReframed)
		}
		if reframe.lastInput != text {
			t.Errorf("reframe input = %q, want raw text", reframe.lastInput)
		}
	})

	t.Run("reframe input carries the detected risk terms", func(t *testing.T) {
		t.Parallel()

		reframe := &stubProvider{name: "reframe", output: "reframed"}
		providers := provider.Set{
			Condense: &stubProvider{name: "condense", output: "condensed"},
			Reframe:  reframe,
		}
		assessment := model.RiskAssessment{FoundRisks: []string{"sell your data", "third parties"}}

		Summarize(context.Background(), text, assessment, providers)
		want := "condensed\n\nDetected risk terms: sell your data, third parties"
		if reframe.lastInput != want {
			t.Errorf("reframe input = %q, want %q", reframe.lastInput, want)
		}
	})

	t.Run("polish alone is never attempted", func(t *testing.T) {
		t.Parallel()

		polish := &stubProvider{name: "polish", output: "polished"}
		providers := provider.Set{Polish: polish}

		got := Summarize(context.Background(), text, model.RiskAssessment{}, providers)
		if got.Stage != model.StageHeuristic {
			t.Errorf("Stage = %v, want %v", got.Stage, model.StageHeuristic)
		}
		if polish.lastInput != "" {
			t.Error("polish should not run without prior stage output")
		}
	})

	t.Run("no providers yields the heuristic sentence", func(t *testing.T) {
		t.Parallel()

		got := Summarize(context.Background(), "one two three four five", model.RiskAssessment{}, provider.Set{})
		want := "Policy contains 5 words. Analysis based on risk keyword detection."
		if got.Text != want {
			t.Errorf("Text = %q, want %q", got.Text, want)
		}
		if got.Stage != model.StageHeuristic {
			t.Errorf("Stage = %v, want %v", got.Stage, model.StageHeuristic)
		}
	})

	t.Run("all providers failing yields the heuristic sentence", func(t *testing.T) {
		t.Parallel()

		providers := provider.Set{
			Condense: &stubProvider{name: "condense", err: errors.New("down")},
			Reframe:  &stubProvider{name: "reframe", err: errors.New("down")},
			Polish:   &stubProvider{name: "polish", err: errors.New("down")},
		}

		got := Summarize(context.Background(), text, model.RiskAssessment{}, providers)
		if got.Stage != model.StageHeuristic {
			t.Errorf("Stage = %v, want %v", got.Stage, model.StageHeuristic)
		}
		if got.Text == "" {
			t.Error("summary text must never be empty")
		}
	})

	t.Run("blank provider output is treated as failure", func(t *testing.T) {
		t.Parallel()

		providers := provider.Set{
			Condense: &stubProvider{name: "condense", output: "   "},
		}

		got := Summarize(context.Background(), text, model.RiskAssessment{}, providers)
		if got.Stage != model.StageHeuristic {
			t.Errorf("Stage = %v, want %v", got.Stage, model.StageHeuristic)
		}
	})

	t.Run("text is non-empty for every provider combination", func(t *testing.T) {
		t.Parallel()

		// Exhaust all 3^3 combinations of absent, failing, and succeeding
		// providers; the non-empty guarantee must hold for each.
		build := func(mode int, name string) provider.Provider {
			switch mode {
			case 0:
				return nil
			case 1:
				return &stubProvider{name: name, err: errors.New("down")}
			default:
				return &stubProvider{name: name, output: name + " output"}
			}
		}

		for c := 0; c < 3; c++ {
			for r := 0; r < 3; r++ {
				for p := 0; p < 3; p++ {
					providers := provider.Set{
						Condense: build(c, "condense"),
						Reframe:  build(r, "reframe"),
						Polish:   build(p, "polish"),
					}

					got := Summarize(context.Background(), text, model.RiskAssessment{}, providers)
					if got.Text == "" {
						t.Errorf("empty text for combination c=%d r=%d p=%d", c, r, p)
					}
				}
			}
		}
	})
}

func TestHeuristicSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		words int
	}{
		{name: "simple", text: "one two three", words: 3},
		{name: "extra whitespace", text: "  one\t\ttwo\nthree  ", words: 3},
		{name: "empty", text: "", words: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			want := fmt.Sprintf("Policy contains %d words. Analysis based on risk keyword detection.", tt.words)
			if got := HeuristicSummary(tt.text); got != want {
				t.Errorf("HeuristicSummary() = %q, want %q", got, want)
			}
		})
	}
}
