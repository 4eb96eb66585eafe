package render

import (
	"testing"

	"github.com/cpcf/clickstart/scaffold"
)

var nameOpts = scaffold.Options{"project": "my-project", "package": "my_package"}

func TestSubstitute_PlaceholderSpellings(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"project_name spaced", "Project: {{ project_name }}", "Project: my-project"},
		{"project_name compact", "Project: {{project_name}}", "Project: my-project"},
		{"package_name spaced", "Package: {{ package_name }}", "Package: my_package"},
		{"package_name compact", "Package: {{package_name}}", "Package: my_package"},
		{"ProjectName both forms", "{{ ProjectName }} {{ProjectName}}", "my-project my-project"},
		{"PackageName both forms", "{{ PackageName }} {{PackageName}}", "my_package my_package"},
		{"short package form", "import {{package}}", "import my_package"},
		{"multiple families in one text", "{{ project_name }} uses {{ package_name }}", "my-project uses my_package"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substitute(tt.text, nameOpts); got != tt.want {
				t.Errorf("Substitute(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSubstitute_NoPlaceholdersUnchanged(t *testing.T) {
	text := "No placeholders here, {not even this} or {{ unknown_var }}"
	if got := Substitute(text, nameOpts); got != text {
		t.Errorf("text changed: %q", got)
	}
}

func TestSubstitute_UnrecognizedTokenVerbatim(t *testing.T) {
	text := "{{ project_name }} and {{ other_thing }}"
	want := "my-project and {{ other_thing }}"
	if got := Substitute(text, nameOpts); got != want {
		t.Errorf("Substitute = %q, want %q", got, want)
	}
}

func TestSubstitute_FallbackKeys(t *testing.T) {
	tests := []struct {
		name string
		opts scaffold.Options
		text string
		want string
	}{
		{"project_name key", scaffold.Options{"project_name": "alt-project"}, "{{ project_name }}", "alt-project"},
		{"name key", scaffold.Options{"name": "named-project"}, "{{ project_name }}", "named-project"},
		{"package_name key", scaffold.Options{"project": "my-project", "package_name": "alt_pkg"}, "{{ package_name }}", "alt_pkg"},
		{"package derived from project", scaffold.Options{"project": "my-project"}, "{{ package_name }}", "my_project"},
		{"empty options fall back", scaffold.Options{}, "{{ project_name }} {{ package_name }}", "project project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substitute(tt.text, tt.opts); got != tt.want {
				t.Errorf("Substitute = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubstitute_SpecialCharactersInNames(t *testing.T) {
	opts := scaffold.Options{"project": "my_project-123", "package": "my_package_123"}
	if got := Substitute("{{ project_name }}", opts); got != "my_project-123" {
		t.Errorf("Substitute = %q", got)
	}
}

func TestSubstitute_NoCrossTokenInterference(t *testing.T) {
	// A project value containing brace-like text must not be re-expanded.
	opts := scaffold.Options{"project": "{{ package_name }}", "package": "pkg"}
	want := "{{ package_name }} pkg"
	if got := Substitute("{{ project_name }} {{ package_name }}", opts); got != want {
		t.Errorf("Substitute = %q, want %q", got, want)
	}
}

func TestProducer_ResolvesWithOptions(t *testing.T) {
	content := scaffold.Deferred(Producer("from .api import {{package}}_api"))
	got, err := content.Resolve(scaffold.Options{"project": "my-cool-project"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "from .api import my_cool_project_api" {
		t.Errorf("resolved = %q", got)
	}
}
