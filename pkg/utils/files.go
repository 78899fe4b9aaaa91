// =============================================================================
// Automated Data Analysis - File Utilities
// =============================================================================
//
// This module resolves the command-line inputs into the list of files to
// analyze:
//   - A file argument is used as given (unsupported extensions are reported
//     later by the loader, not silently dropped here)
//   - A directory argument expands to the supported files directly inside it
//
// Directory scanning is not recursive. Expanded files are sorted by name so
// runs are reproducible.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ExpandInputs turns file and directory arguments into a list of files.
//
// PARAMETERS:
//   - args: File or directory paths.
//   - extensions: Extensions (with dot) accepted when scanning directories.
//
// RETURNS:
//   - The files to analyze, in argument order, without duplicates.
//   - An error if an argument does not exist or a directory cannot be read.
func ExpandInputs(args []string, extensions []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		clean := filepath.Clean(path)
		if !seen[clean] {
			seen[clean] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to access input %s: %w", arg, err)
		}

		if !info.IsDir() {
			add(arg)
			continue
		}

		found, err := DiscoverInputFiles(arg, extensions)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}

	return files, nil
}

// DiscoverInputFiles lists the files directly inside dir whose extension is
// one of extensions (case-insensitive).
func DiscoverInputFiles(dir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}

	var result []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsSupported(entry.Name(), extensions) {
			result = append(result, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(result)
	return result, nil
}

// IsSupported reports whether path has one of the given extensions.
func IsSupported(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
