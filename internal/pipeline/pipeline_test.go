package pipeline

import (
	"context"
	"errors"
	"testing"
)

// recordStep appends its name to a shared slice when executed.
type recordStep struct {
	name string
	err  error
	log  *[]string
}

func (s *recordStep) Name() string { return s.name }

func (s *recordStep) Do(_ context.Context, _ *Job) error {
	*s.log = append(*s.log, s.name)
	return s.err
}

func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("runs steps in order", func(t *testing.T) {
		t.Parallel()

		var log []string
		p := New()
		p.AddSteps(
			&recordStep{name: "first", log: &log},
			&recordStep{name: "second", log: &log},
			&recordStep{name: "third", log: &log},
		)

		job := NewJob("https://example.com")
		if err := p.Execute(context.Background(), job); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		want := []string{"first", "second", "third"}
		if len(log) != len(want) {
			t.Fatalf("executed %v, want %v", log, want)
		}
		for i, name := range want {
			if log[i] != name {
				t.Errorf("log[%d] = %q, want %q", i, log[i], name)
			}
		}
		if len(job.PerformedSteps) != 3 {
			t.Errorf("PerformedSteps = %v, want 3 entries", job.PerformedSteps)
		}
	})

	t.Run("stops on first error by default", func(t *testing.T) {
		t.Parallel()

		var log []string
		stepErr := errors.New("fetch failed")
		p := New()
		p.AddSteps(
			&recordStep{name: "first", err: stepErr, log: &log},
			&recordStep{name: "second", log: &log},
		)

		job := NewJob("https://example.com")
		err := p.Execute(context.Background(), job)
		if !errors.Is(err, stepErr) {
			t.Errorf("Execute() error = %v, want %v", err, stepErr)
		}
		if len(log) != 1 {
			t.Errorf("executed %v, want only first step", log)
		}
		if !errors.Is(job.Err, stepErr) {
			t.Errorf("job.Err = %v, want %v", job.Err, stepErr)
		}
	})

	t.Run("continues past errors when configured", func(t *testing.T) {
		t.Parallel()

		var log []string
		stepErr := errors.New("save failed")
		p := New(WithContinueOnError(true))
		p.AddSteps(
			&recordStep{name: "first", err: stepErr, log: &log},
			&recordStep{name: "second", log: &log},
		)

		job := NewJob("https://example.com")
		if err := p.Execute(context.Background(), job); err != nil {
			t.Fatalf("Execute() error = %v, want nil", err)
		}
		if len(log) != 2 {
			t.Errorf("executed %v, want both steps", log)
		}
		if !errors.Is(job.Err, stepErr) {
			t.Errorf("job.Err = %v, want %v", job.Err, stepErr)
		}
	})

	t.Run("respects cancellation", func(t *testing.T) {
		t.Parallel()

		var log []string
		p := New()
		p.AddStep(&recordStep{name: "first", log: &log})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := p.Execute(ctx, NewJob("https://example.com"))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Execute() error = %v, want context.Canceled", err)
		}
		if len(log) != 0 {
			t.Errorf("executed %v, want no steps", log)
		}
	})
}

func TestPipelineStepNames(t *testing.T) {
	t.Parallel()

	var log []string
	p := New()
	p.AddSteps(
		&recordStep{name: "fetch", log: &log},
		&recordStep{name: "analyze", log: &log},
	)

	if p.StepCount() != 2 {
		t.Errorf("StepCount() = %d, want 2", p.StepCount())
	}
	names := p.StepNames()
	if len(names) != 2 || names[0] != "fetch" || names[1] != "analyze" {
		t.Errorf("StepNames() = %v", names)
	}
}
