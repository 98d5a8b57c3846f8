package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/veltran/tsbridge/internal/cli"
	"github.com/veltran/tsbridge/internal/generator"
	"github.com/veltran/tsbridge/internal/utils"
)

func main() {
	var (
		outFlag     = flag.String("out", "./client", "Output root for generated TypeScript client files")
		groupFlag   = flag.String("group", "", "API group name (defaults to the go.mod module name)")
		runtimeFlag = flag.String("runtime-import", generator.DefaultRuntimeImport, "Module specifier for the shared dispatch runtime")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output")
		quietFlag   = flag.Bool("quiet", false, "Only show errors")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "tsbridge TypeScript Client Generator\n")
		fmt.Fprintf(os.Stderr, "Scans directories for Go files with tsbridge:: annotations and generates typed TypeScript clients.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  directory-paths    One or more directories containing annotated controllers\n")
		fmt.Fprintf(os.Stderr, "                     Supports Go-style patterns like './...' for recursive scanning\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./...                                  # Scan everything recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --out ./web/src/rpc ./internal/...     # Custom output directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --group billing ./internal/billing     # Explicit API group name\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	var diagnostics *utils.DiagnosticSystem
	switch {
	case *quietFlag:
		diagnostics = utils.NewQuietDiagnostics()
	case *verboseFlag:
		diagnostics = utils.NewVerboseDiagnostics()
	default:
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	diagnostics.Section("tsbridge Client Generator")

	runner := cli.NewRunner(diagnostics)
	err := runner.Run(cli.Config{
		Directories:   args,
		OutputDir:     *outFlag,
		APIGroup:      *groupFlag,
		RuntimeImport: *runtimeFlag,
		Verbose:       *verboseFlag,
	})
	if err != nil {
		diagnostics.Error("Generation failed: %v", err)
		os.Exit(1)
	}

	summary := runner.Summary()
	diagnostics.Summary("Generation Complete", map[string]interface{}{
		"Directories scanned": summary.DirectoriesScanned,
		"Controllers found":   summary.ControllersFound,
		"Routes found":        summary.RoutesFound,
		"Files generated":     len(summary.GeneratedFiles),
	})
	if *verboseFlag {
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}
}
