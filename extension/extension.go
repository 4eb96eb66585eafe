// Package extension implements the clickstart generator as a pipeline
// extension: it injects the CLI application templates into a freshly
// generated project tree and rewrites the host defaults to match the
// clickstart conventions.
package extension

import (
	"github.com/cpcf/clickstart/engine"
	"github.com/cpcf/clickstart/patch"
	"github.com/cpcf/clickstart/render"
	"github.com/cpcf/clickstart/scaffold"
	"github.com/cpcf/clickstart/templates"
)

// Layout selects the packaging format of the generated project.
type Layout int

const (
	// Modern projects are configured entirely through pyproject.toml.
	Modern Layout = iota
	// Legacy projects keep a patched setup.cfg. Retained for backward
	// compatibility only.
	Legacy
)

// Clickstart is the extension registered into the generation pipeline.
type Clickstart struct {
	Layout Layout
}

// Activate returns the step list augmented with the clickstart steps in
// their fixed order. Rejection steps run last so every default they remove
// is already in the tree.
func (c *Clickstart) Activate(steps []engine.Step) []engine.Step {
	return append(steps,
		engine.Step{Name: "clickstart:add-files", Run: c.addFiles},
		engine.Step{Name: "clickstart:add-templates", Run: c.addTemplates},
		engine.Step{Name: "clickstart:amend-tests", Run: c.amendTests},
		engine.Step{Name: "clickstart:patch-gitignore", Run: c.patchGitignore},
		engine.Step{Name: "clickstart:reject-defaults", Run: c.rejectDefaults},
	)
}

func deferred(templateName string, policy scaffold.Policy) (scaffold.Leaf, error) {
	text, err := templates.Get(templateName)
	if err != nil {
		return scaffold.Leaf{}, err
	}
	return scaffold.Leaf{Content: scaffold.Deferred(render.Producer(text)), Policy: policy}, nil
}

// addFiles injects the CLI, API, runner, and test scaffold templates, and
// patches setup.cfg in place when the host created one.
func (c *Clickstart) addFiles(tree scaffold.Tree, opts scaffold.Options) (scaffold.Tree, scaffold.Options, error) {
	cli, err := deferred("cli.py", scaffold.NoOverwrite)
	if err != nil {
		return nil, nil, err
	}
	api, err := deferred("api.py", scaffold.NoOverwrite)
	if err != nil {
		return nil, nil, err
	}
	runner, err := deferred("main.py", scaffold.NoOverwrite)
	if err != nil {
		return nil, nil, err
	}
	conftest, err := deferred("conftest.py", scaffold.NoOverwrite)
	if err != nil {
		return nil, nil, err
	}

	files := scaffold.Tree{
		"src": scaffold.Tree{
			opts.Package(): scaffold.Tree{
				"cli.py": cli,
				"api.py": api,
			},
		},
		"__main__.py": runner,
		"tests":       scaffold.Tree{"conftest.py": conftest},
	}

	if leaf, ok := scaffold.Lookup(tree, "setup.cfg"); ok {
		patched, err := patch.SetupCfg(leaf, opts)
		if err != nil {
			return nil, nil, err
		}
		files["setup.cfg"] = patched
	}

	return scaffold.Merge(tree, files), opts, nil
}

// addTemplates adds the rendered build files of the modern layout: Makefile,
// pyproject.toml, and the pre-commit configuration. The pyproject manifest
// is rendered eagerly so it can be validated before it enters the tree.
func (c *Clickstart) addTemplates(tree scaffold.Tree, opts scaffold.Options) (scaffold.Tree, scaffold.Options, error) {
	if c.Layout != Modern {
		return tree, opts, nil
	}

	makefile, err := deferred("Makefile", scaffold.NoOverwrite)
	if err != nil {
		return nil, nil, err
	}
	precommit, err := deferred("pre-commit-config.yaml", scaffold.NoOverwrite)
	if err != nil {
		return nil, nil, err
	}

	pyprojectText, err := templates.Get("pyproject.toml")
	if err != nil {
		return nil, nil, err
	}
	pyproject, err := patch.ValidatePyproject(render.Substitute(pyprojectText, opts), opts)
	if err != nil {
		return nil, nil, err
	}

	files := scaffold.Tree{
		"Makefile":                makefile,
		"pyproject.toml":          scaffold.File(pyproject, scaffold.NoOverwrite),
		".pre-commit-config.yaml": precommit,
	}
	return scaffold.Merge(tree, files), opts, nil
}

// patchGitignore guarantees the version-file ignore entry appears exactly
// once. A missing .gitignore is created from scratch.
func (c *Clickstart) patchGitignore(tree scaffold.Tree, opts scaffold.Options) (scaffold.Tree, scaffold.Options, error) {
	policy := scaffold.Overwrite
	content := ""

	if leaf, ok := scaffold.Lookup(tree, ".gitignore"); ok {
		resolved, err := leaf.Content.Resolve(opts)
		if err != nil {
			return nil, nil, err
		}
		content, policy = resolved, leaf.Policy
	}

	patched, err := patch.Gitignore(content, opts)
	if err != nil {
		return nil, nil, err
	}
	return scaffold.Put(tree, ".gitignore", scaffold.File(patched, policy)), opts, nil
}

// rejectDefaults removes host defaults superseded by clickstart: the
// skeleton stub always, and the legacy manifest when the project is
// configured through pyproject.toml alone.
func (c *Clickstart) rejectDefaults(tree scaffold.Tree, opts scaffold.Options) (scaffold.Tree, scaffold.Options, error) {
	tree = scaffold.Reject(tree, "src/"+opts.Package()+"/skeleton.py")
	if c.Layout == Modern {
		tree = scaffold.Reject(tree, "setup.cfg")
	}
	return tree, opts, nil
}
