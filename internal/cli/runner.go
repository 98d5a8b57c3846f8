package cli

import (
	"github.com/veltran/tsbridge/internal/errors"
	"github.com/veltran/tsbridge/internal/extractor"
	"github.com/veltran/tsbridge/internal/generator"
	"github.com/veltran/tsbridge/internal/source"
	"github.com/veltran/tsbridge/internal/utils"
)

// Runner coordinates one generation run: scan, load, extract, generate, write
type Runner struct {
	scanner     *DirectoryScanner
	resolver    *ModuleResolver
	diagnostics *utils.DiagnosticSystem
	summary     Summary
}

// Summary reports what a run scanned and produced
type Summary struct {
	DirectoriesScanned int
	ControllersFound   int
	RoutesFound        int
	GeneratedFiles     []string
}

// NewRunner creates a runner reporting through the given diagnostics
func NewRunner(diagnostics *utils.DiagnosticSystem) *Runner {
	return &Runner{
		scanner:     NewDirectoryScanner(),
		resolver:    NewModuleResolver(),
		diagnostics: diagnostics,
	}
}

// Summary returns the summary of the last run
func (r *Runner) Summary() Summary {
	return r.summary
}

// Run executes the full pipeline for the given configuration. Extraction
// failures abort the run before anything is generated or written.
func (r *Runner) Run(config Config) error {
	r.summary = Summary{}

	apiGroup, err := r.resolver.ResolveAPIGroup(config.APIGroup)
	if err != nil {
		return err
	}
	r.diagnostics.Verbose("API group: %s", apiGroup)

	dirs, err := r.scanner.ScanDirectories(config.Directories)
	if err != nil {
		return err
	}
	r.summary.DirectoriesScanned = len(dirs)

	var units []extractor.Unit
	for _, dir := range dirs {
		r.diagnostics.Verbose("Loading %s", dir)
		pkg, err := source.LoadDirectory(dir)
		if err != nil {
			return err
		}
		if pkg != nil {
			units = append(units, pkg.Units...)
		}
	}

	ext := extractor.New(extractor.Options{APIGroupName: apiGroup})
	routeFiles, err := ext.Extract(units)
	if err != nil {
		return err
	}
	for _, file := range routeFiles {
		r.summary.ControllersFound += len(file.RouteClasses)
		for _, class := range file.RouteClasses {
			r.summary.RoutesFound += len(class.Routes)
		}
	}
	if len(routeFiles) == 0 {
		r.diagnostics.Warn("No annotated controllers found")
		return nil
	}

	gen := generator.New(generator.Config{RuntimeImport: config.RuntimeImport})
	generated, err := gen.GenerateAll(routeFiles)
	if err != nil {
		return errors.WrapGenerateError("client files", err)
	}

	writer := NewWriter(config.OutputDir)
	for _, unit := range generated {
		written, err := writer.Write(unit)
		if err != nil {
			return err
		}
		r.diagnostics.Verbose("Wrote %s", written)
		r.summary.GeneratedFiles = append(r.summary.GeneratedFiles, written)
	}
	return nil
}
