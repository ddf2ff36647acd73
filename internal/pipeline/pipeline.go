package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/nao1215/charschema/internal/model"
)

// Step adds content to a lesson.
type Step interface {
	// Do appends the step's sections to lesson.
	Do(lesson *model.Lesson) error

	// Name identifies the step in logs and errors.
	Name() string
}

// StepFunc adapts a function to the Step interface.
type StepFunc struct {
	name string
	fn   func(*model.Lesson) error
}

// NewStep creates a named step from fn.
func NewStep(name string, fn func(*model.Lesson) error) StepFunc {
	return StepFunc{name: name, fn: fn}
}

// Do calls the wrapped function.
func (s StepFunc) Do(lesson *model.Lesson) error {
	return s.fn(lesson)
}

// Name returns the step name.
func (s StepFunc) Name() string {
	return s.name
}

// Pipeline executes steps in the order they were added.
type Pipeline struct {
	steps []Step

	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger for step progress. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates an empty pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends several steps in order.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs every step against lesson. It stops at the first failing
// step and returns its error prefixed with the step name. Reporting the
// error is left to the caller.
func (p *Pipeline) Execute(lesson *model.Lesson) error {
	for _, step := range p.steps {
		p.logger.Debug("executing step", "step", step.Name())

		if err := step.Do(lesson); err != nil {
			p.logger.Debug("step failed",
				"step", step.Name(),
				"error", err,
			)
			return fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	p.logger.Debug("pipeline completed",
		"steps", len(p.steps),
		"sections", len(lesson.Sections),
	)
	return nil
}

// StepCount returns the number of steps.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the step names in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
