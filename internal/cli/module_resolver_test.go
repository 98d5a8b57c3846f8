package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveAPIGroup_CustomWins(t *testing.T) {
	group, err := NewModuleResolver().ResolveAPIGroup("billing")
	if err != nil {
		t.Fatalf("ResolveAPIGroup: %v", err)
	}
	if group != "billing" {
		t.Errorf("group = %q, want %q", group, "billing")
	}
}

func TestResolveAPIGroup_FromGoMod(t *testing.T) {
	dir := t.TempDir()
	goMod := "module github.com/acme/shop\n\ngo 1.25\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(goMod), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	group, err := NewModuleResolver().ResolveAPIGroup("")
	if err != nil {
		t.Fatalf("ResolveAPIGroup: %v", err)
	}
	if group != "shop" {
		t.Errorf("group = %q, want %q", group, "shop")
	}
}

func TestResolveAPIGroup_WalksUpToGoMod(t *testing.T) {
	dir := t.TempDir()
	goMod := "module example.com/platform\n\ngo 1.25\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(goMod), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(dir, "internal", "api")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	chdir(t, nested)

	group, err := NewModuleResolver().ResolveAPIGroup("")
	if err != nil {
		t.Fatalf("ResolveAPIGroup: %v", err)
	}
	if group != "platform" {
		t.Errorf("group = %q, want %q", group, "platform")
	}
}

func TestResolveAPIGroup_BareModulePath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module shop\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	group, err := NewModuleResolver().ResolveAPIGroup("")
	if err != nil {
		t.Fatalf("ResolveAPIGroup: %v", err)
	}
	if group != "shop" {
		t.Errorf("group = %q, want %q", group, "shop")
	}
}

func TestResolveAPIGroup_MissingModuleDeclaration(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("go 1.25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	if _, err := NewModuleResolver().ResolveAPIGroup(""); err == nil {
		t.Error("expected an error for a go.mod without a module line")
	}
}
