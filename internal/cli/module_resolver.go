package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/veltran/tsbridge/internal/errors"
)

// ModuleResolver resolves the API group name stamped onto every RouteFile.
// Policy: an explicit --group value wins; otherwise the group is the last
// path element of the module path read from the nearest go.mod.
type ModuleResolver struct{}

// NewModuleResolver creates a new module resolver
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{}
}

// ResolveAPIGroup returns the API group name for this run
func (r *ModuleResolver) ResolveAPIGroup(custom string) (string, error) {
	if custom != "" {
		return custom, nil
	}
	modulePath, err := r.readModulePath()
	if err != nil {
		return "", errors.WrapConfigurationError("API group name (consider using --group)", err)
	}
	if idx := strings.LastIndex(modulePath, "/"); idx >= 0 {
		return modulePath[idx+1:], nil
	}
	return modulePath, nil
}

// readModulePath finds go.mod in the working directory or a parent and
// parses the module declaration
func (r *ModuleResolver) readModulePath() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	for {
		goModPath := filepath.Join(currentDir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return r.parseModulePath(goModPath)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}
	return "", fmt.Errorf("go.mod file not found")
}

func (r *ModuleResolver) parseModulePath(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod file: %w", err)
	}
	file, err := modfile.ParseLax(path, data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse go.mod file: %w", err)
	}
	if file.Module == nil || file.Module.Mod.Path == "" {
		return "", fmt.Errorf("module declaration not found in go.mod")
	}
	return file.Module.Mod.Path, nil
}
