package extension

import (
	"fmt"

	"github.com/cpcf/clickstart/scaffold"
)

// amendTests reshapes the generated tests directory: the host's default
// skeleton test goes away and the split unit/integration layout takes its
// place. The stubs use skip-on-update so later regeneration runs never
// clobber tests the user has grown.
func (c *Clickstart) amendTests(tree scaffold.Tree, opts scaffold.Options) (scaffold.Tree, scaffold.Options, error) {
	tree = scaffold.Reject(tree, "tests/test_skeleton.py")

	additions := scaffold.Tree{
		"tests": scaffold.Tree{
			"README.md": scaffold.Leaf{
				Content: scaffold.Deferred(testsReadme),
				Policy:  scaffold.NoOverwrite,
			},
			"unit": scaffold.Tree{
				"test_import.py": scaffold.Leaf{
					Content: scaffold.Deferred(unitTestImport),
					Policy:  scaffold.SkipOnUpdate,
				},
			},
			"integration": scaffold.Tree{
				"test_layout.py": scaffold.Leaf{
					Content: scaffold.Deferred(integrationTestLayout),
					Policy:  scaffold.SkipOnUpdate,
				},
			},
		},
	}

	return scaffold.Merge(tree, additions), opts, nil
}

func testsReadme(scaffold.Options) (string, error) {
	return `# Tests

- ` + "`tests/unit/`" + `: fast import/smoke tests
- ` + "`tests/integration/`" + `: tests that touch the filesystem or run external tools

Run:
- ` + "`pytest`" + ` (all)
- ` + "`pytest -m \"not integration\"`" + ` (unit only)
- ` + "`pytest -m integration`" + ` (integration only)
`, nil
}

func unitTestImport(opts scaffold.Options) (string, error) {
	return fmt.Sprintf(`"""Unit smoke tests (fast)."""

import importlib


def test_package_importable():
    importlib.import_module("%s")
`, opts.Package()), nil
}

func integrationTestLayout(opts scaffold.Options) (string, error) {
	return fmt.Sprintf(`"""Integration smoke tests (filesystem/layout)."""

from pathlib import Path

import pytest


@pytest.mark.integration
def test_project_layout_exists():
    root = Path(__file__).resolve().parents[2]
    assert (root / "pyproject.toml").exists()
    assert (root / "src" / "%s").exists()
`, opts.Package()), nil
}
