package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cpcf/clickstart/scaffold"
)

func addFileStep(name, path string) Step {
	return Step{
		Name: name,
		Run: func(tree scaffold.Tree, opts scaffold.Options) (scaffold.Tree, scaffold.Options, error) {
			return scaffold.Put(tree, path, scaffold.File(name, scaffold.Overwrite)), opts, nil
		},
	}
}

func TestEngine_RunsStepsInOrder(t *testing.T) {
	var order []string
	step := func(name string) Step {
		return Step{Name: name, Run: func(tree scaffold.Tree, opts scaffold.Options) (scaffold.Tree, scaffold.Options, error) {
			order = append(order, name)
			return tree, opts, nil
		}}
	}

	e := New(WithSteps([]Step{step("first"), step("second"), step("third")}))
	if _, _, err := e.Run(scaffold.Tree{}, scaffold.Options{}); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []string{"first", "second", "third"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestEngine_ThreadsTreeThroughSteps(t *testing.T) {
	e := New(WithSteps([]Step{
		addFileStep("a", "a.txt"),
		addFileStep("b", "sub/b.txt"),
	}))

	tree, _, err := e.Run(scaffold.Tree{}, scaffold.Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, ok := scaffold.Lookup(tree, "a.txt"); !ok {
		t.Error("first step's file missing")
	}
	if _, ok := scaffold.Lookup(tree, "sub/b.txt"); !ok {
		t.Error("second step's file missing")
	}
}

func TestEngine_FirstErrorAbortsRun(t *testing.T) {
	cause := fmt.Errorf("content required")
	var laterRan bool

	e := New(WithSteps([]Step{
		{Name: "patch-config", Run: func(scaffold.Tree, scaffold.Options) (scaffold.Tree, scaffold.Options, error) {
			return nil, nil, cause
		}},
		{Name: "later", Run: func(tree scaffold.Tree, opts scaffold.Options) (scaffold.Tree, scaffold.Options, error) {
			laterRan = true
			return tree, opts, nil
		}},
	}))

	tree, _, err := e.Run(scaffold.Tree{}, scaffold.Options{})
	if err == nil {
		t.Fatal("expected error")
	}
	if tree != nil {
		t.Error("partial tree returned on failure")
	}
	if laterRan {
		t.Error("step ran after failure")
	}

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("error type = %T", err)
	}
	if stepErr.Step != "patch-config" {
		t.Errorf("failing step = %q", stepErr.Step)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not wrapped")
	}
}

type appendExtension struct {
	step Step
}

func (a appendExtension) Activate(steps []Step) []Step {
	return append(steps, a.step)
}

func TestEngine_RegisterAugmentsSteps(t *testing.T) {
	e := New(WithSteps([]Step{addFileStep("default", "default.txt")}))
	e.Register(appendExtension{step: addFileStep("plugin", "plugin.txt")})

	steps := e.Steps()
	if len(steps) != 2 {
		t.Fatalf("len(steps) = %d", len(steps))
	}
	if steps[0].Name != "default" || steps[1].Name != "plugin" {
		t.Errorf("step order = %s, %s", steps[0].Name, steps[1].Name)
	}
}
