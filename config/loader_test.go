package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpcf/clickstart/scaffold"
)

func TestLoad_DefaultsFile(t *testing.T) {
	yamlContent := `
project: my-cool-project
package: my_cool_package
layout: modern
extra:
  author: Jane Doe
`
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, DefaultFileName)
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var d Defaults
	if err := Load(path, &d); err != nil {
		t.Fatalf("load: %v", err)
	}

	if d.Project != "my-cool-project" {
		t.Errorf("project = %q", d.Project)
	}
	if d.Package != "my_cool_package" {
		t.Errorf("package = %q", d.Package)
	}
	if d.Layout != "modern" {
		t.Errorf("layout = %q", d.Layout)
	}
	if d.Extra["author"] != "Jane Doe" {
		t.Errorf("extra = %v", d.Extra)
	}
}

func TestLoad_MissingFileIsErrNotFound(t *testing.T) {
	var d Defaults
	err := Load(filepath.Join(t.TempDir(), DefaultFileName), &d)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadString_InvalidYAML(t *testing.T) {
	var d Defaults
	if err := LoadString("project: [unclosed", &d); err == nil {
		t.Fatal("expected YAML parse error")
	}
}

func TestDefaults_ValidateLayout(t *testing.T) {
	tests := []struct {
		layout string
		ok     bool
	}{
		{"", true},
		{"modern", true},
		{"legacy", true},
		{"ancient", false},
	}

	for _, tt := range tests {
		var d Defaults
		err := LoadString("layout: "+tt.layout, &d)
		if tt.ok && err != nil {
			t.Errorf("layout %q rejected: %v", tt.layout, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("layout %q accepted", tt.layout)
		}
	}
}

func TestDefaults_ValidateRejectsHyphenatedPackage(t *testing.T) {
	var d Defaults
	if err := LoadString("package: my-package", &d); err == nil {
		t.Fatal("hyphenated package accepted")
	}
}

func TestDefaults_ApplyDoesNotOverrideExplicitOptions(t *testing.T) {
	d := Defaults{Project: "from-config", Extra: map[string]string{"author": "Jane"}}
	opts := scaffold.Options{"project": "from-flags"}

	d.Apply(opts)

	if opts.Project() != "from-flags" {
		t.Errorf("project = %q, explicit value lost", opts.Project())
	}
	if author, _ := opts.String("author"); author != "Jane" {
		t.Errorf("author = %q", author)
	}
}
