package scaffold

import "testing"

func TestOptions_ProjectResolutionOrder(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"explicit project key", Options{"project": "my-proj", "name": "other"}, "my-proj"},
		{"project_name fallback", Options{"project_name": "alt-project"}, "alt-project"},
		{"name fallback", Options{"name": "named-project"}, "named-project"},
		{"empty options", Options{}, "project"},
		{"non-string value ignored", Options{"project": 42, "name": "real"}, "real"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Project(); got != tt.want {
				t.Errorf("Project() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptions_PackageResolutionOrder(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"explicit package key", Options{"project": "my-proj", "package": "my_pkg"}, "my_pkg"},
		{"package_name fallback", Options{"project": "my-proj", "package_name": "alt_pkg"}, "alt_pkg"},
		{"derived from project", Options{"project": "my-proj"}, "my_proj"},
		{"derived from name key", Options{"name": "my-cool-project"}, "my_cool_project"},
		{"empty options", Options{}, "project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Package(); got != tt.want {
				t.Errorf("Package() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDerivePackage(t *testing.T) {
	tests := []struct {
		project string
		want    string
	}{
		{"my-cool-project", "my_cool_project"},
		{"already_clean", "already_clean"},
		{"mixed-name_123", "mixed_name_123"},
	}

	for _, tt := range tests {
		if got := DerivePackage(tt.project); got != tt.want {
			t.Errorf("DerivePackage(%q) = %q, want %q", tt.project, got, tt.want)
		}
	}
}

func TestDerivePackage_Idempotent(t *testing.T) {
	once := DerivePackage("my-cool-project")
	if twice := DerivePackage(once); twice != once {
		t.Errorf("second derivation changed %q to %q", once, twice)
	}
}
