// Package engine runs the ordered action pipeline that produces a project tree.
package engine

import (
	"log/slog"

	"github.com/cpcf/clickstart/scaffold"
)

// Action is a single pipeline step: a total function over the tree and the
// generation options. Actions never mutate their inputs; they return the
// next tree and options.
type Action func(tree scaffold.Tree, opts scaffold.Options) (scaffold.Tree, scaffold.Options, error)

// Step pairs an action with a stable name used in logs and errors.
type Step struct {
	Name string
	Run  Action
}

// Extension augments an externally owned ordered step list. Implementations
// must return a new list and keep all state out of package scope so several
// extensions can register independently.
type Extension interface {
	Activate(steps []Step) []Step
}

type Engine struct {
	logger *slog.Logger
	steps  []Step
}

func New(opts ...Option) *Engine {
	e := &Engine{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Steps returns the engine's current ordered step list.
func (e *Engine) Steps() []Step {
	return e.steps
}

// Register hands the step list to an extension and adopts the augmented
// list it returns.
func (e *Engine) Register(ext Extension) {
	e.steps = ext.Activate(e.steps)
}

// Run executes every step in order. The first failing step aborts the run;
// there is no partial-tree recovery, callers discard the output on error.
func (e *Engine) Run(tree scaffold.Tree, opts scaffold.Options) (scaffold.Tree, scaffold.Options, error) {
	for _, step := range e.steps {
		e.logger.Debug("running pipeline step", "step", step.Name)

		next, nextOpts, err := step.Run(tree, opts)
		if err != nil {
			return nil, nil, &StepError{Step: step.Name, Err: err}
		}
		tree, opts = next, nextOpts
	}
	return tree, opts, nil
}
