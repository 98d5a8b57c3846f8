// Package generator renders the routing IR into TypeScript client units.
// Generation is a pure function of the IR: the same input always produces
// byte-identical output.
package generator

import (
	"path"

	"github.com/veltran/tsbridge/internal/models"
)

const (
	// DefaultRuntimeImport is the conventional module specifier for the
	// shared dispatch function and request options type
	DefaultRuntimeImport = "../runtime"

	// DefaultTypesImport is the conventional module specifier for shared
	// model type declarations
	DefaultTypesImport = "../types"

	// clientFileSuffix is appended to the base file name of every unit
	clientFileSuffix = ".client.ts"
)

// Config controls the fixed import specifiers of generated units
type Config struct {
	RuntimeImport string
	TypesImport   string
}

// Generator emits TypeScript client files from extracted RouteFiles
type Generator struct {
	config Config
}

// GeneratedUnit is one rendered output file. Path is relative to the
// caller-supplied output root.
type GeneratedUnit struct {
	Path    string
	Content []byte
}

// New creates a generator, applying conventional defaults for unset imports
func New(config Config) *Generator {
	if config.RuntimeImport == "" {
		config.RuntimeImport = DefaultRuntimeImport
	}
	if config.TypesImport == "" {
		config.TypesImport = DefaultTypesImport
	}
	return &Generator{config: config}
}

// GenerateAll renders every RouteFile in order
func (g *Generator) GenerateAll(files []models.RouteFile) ([]GeneratedUnit, error) {
	units := make([]GeneratedUnit, 0, len(files))
	for _, file := range files {
		unit, err := g.Generate(file)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, nil
}

// Generate renders one RouteFile into its client unit at
// <APIGroupName>/<BaseFileName>.client.ts
func (g *Generator) Generate(file models.RouteFile) (GeneratedUnit, error) {
	tree := buildClientFile(file, g.config)
	return GeneratedUnit{
		Path:    path.Join(file.APIGroupName, file.BaseFileName+clientFileSuffix),
		Content: emit(tree),
	}, nil
}
