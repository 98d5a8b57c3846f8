package utils

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// DiagnosticLevel represents the level of diagnostic output
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticWarn
	DiagnosticInfo
	DiagnosticVerbose
	DiagnosticDebug
)

// DiagnosticSystem provides structured, user-friendly CLI output
type DiagnosticSystem struct {
	level    DiagnosticLevel
	output   io.Writer
	errorOut io.Writer
}

var (
	errorLabel   = color.New(color.FgRed, color.Bold).SprintFunc()
	warnLabel    = color.New(color.FgYellow).SprintFunc()
	infoLabel    = color.New(color.FgBlue).SprintFunc()
	successLabel = color.New(color.FgGreen, color.Bold).SprintFunc()
	verboseLabel = color.New(color.FgHiBlack).SprintFunc()
	debugLabel   = color.New(color.FgMagenta).SprintFunc()
	sectionStyle = color.New(color.Bold, color.Underline).SprintFunc()
)

// NewDiagnosticSystem creates a diagnostic system at the given level
func NewDiagnosticSystem(level DiagnosticLevel) *DiagnosticSystem {
	return &DiagnosticSystem{
		level:    level,
		output:   os.Stdout,
		errorOut: os.Stderr,
	}
}

// NewQuietDiagnostics creates a diagnostic system that only shows errors
func NewQuietDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticError)
}

// NewVerboseDiagnostics creates a diagnostic system with full output
func NewVerboseDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticVerbose)
}

// Error outputs error messages (always shown unless silent)
func (d *DiagnosticSystem) Error(format string, args ...interface{}) {
	if d.level >= DiagnosticError {
		fmt.Fprintf(d.errorOut, "%s %s\n", errorLabel("ERROR"), fmt.Sprintf(format, args...))
	}
}

// Warn outputs warning messages
func (d *DiagnosticSystem) Warn(format string, args ...interface{}) {
	if d.level >= DiagnosticWarn {
		fmt.Fprintf(d.output, "%s %s\n", warnLabel("WARN"), fmt.Sprintf(format, args...))
	}
}

// Info outputs informational messages
func (d *DiagnosticSystem) Info(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "%s %s\n", infoLabel("INFO"), fmt.Sprintf(format, args...))
	}
}

// Success outputs success messages with emphasis
func (d *DiagnosticSystem) Success(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "%s %s\n", successLabel("SUCCESS"), fmt.Sprintf(format, args...))
	}
}

// Verbose outputs detailed messages (verbose mode only)
func (d *DiagnosticSystem) Verbose(format string, args ...interface{}) {
	if d.level >= DiagnosticVerbose {
		fmt.Fprintf(d.output, "%s %s\n", verboseLabel("VERBOSE"), fmt.Sprintf(format, args...))
	}
}

// Debug outputs debug messages (highest verbosity)
func (d *DiagnosticSystem) Debug(format string, args ...interface{}) {
	if d.level >= DiagnosticDebug {
		fmt.Fprintf(d.output, "%s %s\n", debugLabel("DEBUG"), fmt.Sprintf(format, args...))
	}
}

// Section prints a titled section header
func (d *DiagnosticSystem) Section(title string) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "\n%s\n", sectionStyle(title))
	}
}

// List prints one indented list entry
func (d *DiagnosticSystem) List(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "  - %s\n", fmt.Sprintf(format, args...))
	}
}

// Summary prints a titled block of key/value statistics
func (d *DiagnosticSystem) Summary(title string, stats map[string]interface{}) {
	if d.level < DiagnosticInfo {
		return
	}
	d.Section(title)

	keys := make([]string, 0, len(stats))
	width := 0
	for key := range stats {
		keys = append(keys, key)
		if len(key) > width {
			width = len(key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		padding := strings.Repeat(" ", width-len(key))
		fmt.Fprintf(d.output, "  %s:%s %v\n", key, padding, stats[key])
	}
}
