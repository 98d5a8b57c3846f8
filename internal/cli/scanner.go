package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/veltran/tsbridge/internal/errors"
)

// DirectoryScanner resolves directory arguments into the set of package
// directories to load. Arguments ending in /... are walked recursively.
type DirectoryScanner struct{}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// ScanDirectories expands the given roots into directories that contain Go
// files, sorted for deterministic processing order
func (s *DirectoryScanner) ScanDirectories(rootDirs []string) ([]string, error) {
	seen := make(map[string]struct{})
	var result []string

	add := func(dir string) {
		if _, ok := seen[dir]; ok {
			return
		}
		seen[dir] = struct{}{}
		result = append(result, dir)
	}

	for _, rootDir := range rootDirs {
		recursive := false
		if strings.HasSuffix(rootDir, "/...") {
			recursive = true
			rootDir = strings.TrimSuffix(rootDir, "/...")
			if rootDir == "" {
				rootDir = "."
			}
		}

		cleanPath, err := filepath.Abs(rootDir)
		if err != nil {
			return nil, errors.WrapFileSystemError("resolve", rootDir, err)
		}

		if !recursive {
			ok, err := hasGoFiles(cleanPath)
			if err != nil {
				return nil, err
			}
			if ok {
				add(cleanPath)
			}
			continue
		}

		err = filepath.WalkDir(cleanPath, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() {
				return nil
			}
			name := entry.Name()
			if path != cleanPath && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
				name == "vendor" || name == "testdata" || name == "node_modules") {
				return filepath.SkipDir
			}
			ok, err := hasGoFiles(path)
			if err != nil {
				return err
			}
			if ok {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.WrapFileSystemError("scan", cleanPath, err)
		}
	}

	sort.Strings(result)
	return result, nil
}

func hasGoFiles(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, errors.WrapFileSystemError("read", dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		return true, nil
	}
	return false, nil
}
