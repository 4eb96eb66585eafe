package extension

import (
	"github.com/cpcf/clickstart/engine"
	"github.com/cpcf/clickstart/render"
	"github.com/cpcf/clickstart/scaffold"
)

// Baseline content the host scaffolding engine produces before any
// extension runs. Rejection steps rely on these files being in the tree
// first, so the defaults step always sits at the head of the pipeline.

const defaultGitignore = `# Byte-compiled / optimized files
__pycache__/
*.py[cod]

# Distribution / packaging
build/
dist/
*.egg-info/

# Environments
.env
.venv/
`

const defaultSkeleton = `"""Default skeleton generated by the host tool."""


def fib(n):
    assert n > 0
    a, b = 1, 1
    for _i in range(n - 1):
        a, b = b, a + b
    return a
`

const defaultSkeletonTest = `from {{package}}.skeleton import fib


def test_fib():
    assert fib(7) == 13
`

const defaultSetupCfg = `[metadata]
name = {{ project_name }}
description = Add a short description here!

[options]
zip_safe = False
packages = find_namespace:
package_dir =
    =src
install_requires =
    importlib-metadata; python_version<"3.8"

[options.packages.find]
where = src
exclude =
    tests
`

const defaultReadme = `# {{ project_name }}

Add a short description here!
`

// DefaultSteps returns the host-equivalent baseline pipeline for the given
// layout: the files every fresh project starts from.
func DefaultSteps(layout Layout) []engine.Step {
	return []engine.Step{
		{Name: "host:init-structure", Run: func(tree scaffold.Tree, opts scaffold.Options) (scaffold.Tree, scaffold.Options, error) {
			pkg := opts.Package()

			defaults := scaffold.Tree{
				"README.md":  scaffold.Leaf{Content: scaffold.Deferred(render.Producer(defaultReadme)), Policy: scaffold.NoOverwrite},
				".gitignore": scaffold.File(defaultGitignore, scaffold.NoOverwrite),
				"src": scaffold.Tree{
					pkg: scaffold.Tree{
						"__init__.py": scaffold.File("", scaffold.NoOverwrite),
						"skeleton.py": scaffold.Leaf{Content: scaffold.Deferred(render.Producer(defaultSkeleton)), Policy: scaffold.NoOverwrite},
					},
				},
				"tests": scaffold.Tree{
					"test_skeleton.py": scaffold.Leaf{Content: scaffold.Deferred(render.Producer(defaultSkeletonTest)), Policy: scaffold.NoOverwrite},
				},
			}
			if layout == Legacy {
				defaults["setup.cfg"] = scaffold.Leaf{
					Content: scaffold.Deferred(render.Producer(defaultSetupCfg)),
					Policy:  scaffold.NoOverwrite,
				}
			}

			return scaffold.Merge(tree, defaults), opts, nil
		}},
	}
}
