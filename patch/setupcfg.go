package patch

import (
	"errors"
	"fmt"

	"github.com/cpcf/clickstart/configfile"
	"github.com/cpcf/clickstart/scaffold"
)

// Runtime dependencies pinned into generated projects that still use the
// legacy setup.cfg layout.
var Dependencies = []string{
	"click>=8.1",
	"pytest>=8",
	"pytest-cov>=5",
}

const (
	pythonRequiresComment = "# Minimum Python Version 3.12 required"
	pythonRequiresRange   = ">=3.12,<3.13"
)

// ErrContentRequired is returned when a patch target that must exist
// resolves to empty content.
var ErrContentRequired = errors.New("content required")

// SetupCfgChain returns the fixed patch sequence applied to setup.cfg:
// dependency injection, python version pinning, console entry point.
func SetupCfgChain() *Chain {
	return NewChain(
		PatchFunc(InstallRequires),
		PatchFunc(PythonRequires),
		PatchFunc(EntryPoint),
	)
}

// SetupCfg resolves and patches a setup.cfg leaf, keeping its write policy.
// A leaf whose content resolves to nothing is a fatal error: the file must
// exist before it can be patched.
func SetupCfg(leaf scaffold.Leaf, opts scaffold.Options) (scaffold.Leaf, error) {
	content, err := leaf.Content.Resolve(opts)
	if err != nil {
		return scaffold.Leaf{}, fmt.Errorf("resolving setup.cfg: %w", err)
	}
	if content == "" {
		return scaffold.Leaf{}, fmt.Errorf("setup.cfg: %w", ErrContentRequired)
	}

	patched, err := SetupCfgChain().Apply(content, opts)
	if err != nil {
		return scaffold.Leaf{}, fmt.Errorf("patching setup.cfg: %w", err)
	}

	return scaffold.Leaf{Content: scaffold.Text(patched), Policy: leaf.Policy}, nil
}

// InstallRequires replaces the [options] install_requires value list with
// the pinned dependency set. Replacement is total, so re-application yields
// the same document.
func InstallRequires(content string, _ scaffold.Options) (string, error) {
	doc, err := configfile.Parse(content)
	if err != nil {
		return "", err
	}
	sec, ok := doc.Section("options")
	if !ok {
		return "", fmt.Errorf("setup.cfg has no [options] section")
	}
	sec.SetValues("install_requires", Dependencies)
	return doc.String(), nil
}

// PythonRequires pins the supported interpreter range directly above
// install_requires, preceded by an explanatory comment. If the option is
// already present the document is returned unchanged.
func PythonRequires(content string, _ scaffold.Options) (string, error) {
	doc, err := configfile.Parse(content)
	if err != nil {
		return "", err
	}
	sec, ok := doc.Section("options")
	if !ok {
		return "", fmt.Errorf("setup.cfg has no [options] section")
	}
	if sec.HasOption("python_requires") {
		return content, nil
	}
	sec.InsertCommentBefore("install_requires", pythonRequiresComment)
	sec.InsertOptionBefore("install_requires", "python_requires", pythonRequiresRange)
	return doc.String(), nil
}

// EntryPoint ensures [options.entry_points] exists directly after [options]
// and sets console_scripts, as the section's first option, to the package's
// cli mapping.
func EntryPoint(content string, opts scaffold.Options) (string, error) {
	doc, err := configfile.Parse(content)
	if err != nil {
		return "", err
	}

	const section = "options.entry_points"
	sec, ok := doc.Section(section)
	if !ok {
		sec = doc.AddSectionAfter("options", section)
	}

	pkg := opts.Package()
	sec.EnsureOptionFirst("console_scripts")
	sec.SetValues("console_scripts", []string{fmt.Sprintf("%s = %s.cli:cli", pkg, pkg)})
	return doc.String(), nil
}
