package testhelpers

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// WriteLogFile writes a plain log file with one terminator per line.
func WriteLogFile(t *testing.T, dir, name string, lines []string) {
	t.Helper()
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write log file %s: %v", name, err)
	}
}

// WriteGzipLogFile writes a gzip-compressed log file with one terminator per
// line. The name should carry the .gz suffix for the CLI to decompress it.
func WriteGzipLogFile(t *testing.T, dir, name string, lines []string) {
	t.Helper()
	file, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("Failed to create gzip log file %s: %v", name, err)
	}
	gz := gzip.NewWriter(file)
	content := strings.Join(lines, "\n") + "\n"
	if _, err := gz.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write gzip log file %s: %v", name, err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("Failed to close gzip writer for %s: %v", name, err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("Failed to close gzip log file %s: %v", name, err)
	}
}

// ReadOutputLines returns the lines of an output file without terminators.
// A missing file fails the test.
func ReadOutputLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file %s: %v", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// CollectSortedOutputLines gathers the lines of all given output files and
// returns them sorted, for multiset comparisons against the inputs.
func CollectSortedOutputLines(t *testing.T, paths ...string) []string {
	t.Helper()
	var all []string
	for _, path := range paths {
		all = append(all, ReadOutputLines(t, path)...)
	}
	sort.Strings(all)
	return all
}
