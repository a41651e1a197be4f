package app

import (
	stderrors "errors"

	"github.com/pkg/errors"

	"rnlauncher/internal/domain"
)

// Step names recorded in a Report.
const (
	StepAndroid       = "android"
	StepAndroidRound  = "android-round"
	StepIOS           = "ios"
	StepManifest      = "manifest"
	StepManifestRound = "manifest-round"
)

// StepResult is the outcome of one pipeline step.
type StepResult struct {
	Step    string
	Outputs []domain.Output
	Err     error
}

// Report collects step outcomes of a run in execution order.
type Report struct {
	ConfigCreated bool
	Steps         []StepResult
}

func (r *Report) add(s StepResult) { r.Steps = append(r.Steps, s) }

// Step returns the result of the named step.
func (r Report) Step(name string) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Step == name {
			return s, true
		}
	}
	return StepResult{}, false
}

// Failed returns the steps that ended in error.
func (r Report) Failed() []StepResult {
	var out []StepResult
	for _, s := range r.Steps {
		if s.Err != nil {
			out = append(out, s)
		}
	}
	return out
}

// Err joins the errors of failed steps, each prefixed with its step name, or
// returns nil when every step succeeded. errors.Is matches any step's cause.
func (r Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	errs := make([]error, 0, len(failed))
	for _, s := range failed {
		errs = append(errs, errors.WithMessage(s.Err, s.Step))
	}
	return errors.WithMessagef(stderrors.Join(errs...), "%d step(s) failed", len(failed))
}
