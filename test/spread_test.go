package cmd_test

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"logspread/test/testhelpers"
)

// runSpread invokes the spread command with every flag pinned so state from
// earlier in-process runs cannot leak in.
func runSpread(t *testing.T, logArg, n, outDir string) (string, error) {
	t.Helper()
	return testhelpers.RunCLICommand([]string{
		"spread", logArg, n,
		"--seed", "7",
		"--check-order=false",
		"--out-dir", outDir,
	})
}

func TestSpreadCommand(t *testing.T) {
	logDir := t.TempDir()
	outDir := t.TempDir()
	testhelpers.WriteLogFile(t, logDir, "app.log", []string{"banana", "apple"})
	testhelpers.WriteLogFile(t, logDir, "app.log.1", []string{"date"})
	testhelpers.WriteGzipLogFile(t, logDir, "app.log.2.gz", []string{"cherry", "elderberry"})
	testhelpers.WriteLogFile(t, logDir, "other.log", []string{"excluded"})

	output, err := runSpread(t, filepath.Join(logDir, "app.log"), "2", outDir)
	if err != nil {
		t.Fatalf("spread failed: %v\nOutput:\n%s", err, output)
	}

	testhelpers.AssertOutputContains(t, output,
		"reading "+filepath.Join(logDir, "app.log")+"\n",
		"reading "+filepath.Join(logDir, "app.log.1")+"\n",
		"reading "+filepath.Join(logDir, "app.log.2.gz")+"\n",
		"divided 5 lines across 2 files:",
		"app.log.a: ",
		"app.log.b: ",
	)
	if strings.Contains(output, "other.log") {
		t.Fatalf("Expected other.log to be excluded. Output:\n%s", output)
	}

	// Multiset equality across all outputs.
	got := testhelpers.CollectSortedOutputLines(t,
		filepath.Join(outDir, "app.log.a"),
		filepath.Join(outDir, "app.log.b"))
	want := []string{"apple", "banana", "cherry", "date", "elderberry"}
	sort.Strings(want)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Output lines mismatch.\nExpected: %v\nActual:   %v", want, got)
	}
}

func TestSpreadCommandSingleOutput(t *testing.T) {
	logDir := t.TempDir()
	outDir := t.TempDir()
	testhelpers.WriteLogFile(t, logDir, "app.log", []string{"one", "two", "three"})

	output, err := runSpread(t, filepath.Join(logDir, "app.log"), "1", outDir)
	if err != nil {
		t.Fatalf("spread failed: %v\nOutput:\n%s", err, output)
	}
	testhelpers.AssertOutputContains(t, output,
		"divided 3 lines across 1 files:",
		"app.log.a: 3 lines",
	)

	// A single output receives every line, in sorted order.
	data, err := os.ReadFile(filepath.Join(outDir, "app.log.a"))
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if string(data) != "one\nthree\ntwo\n" {
		t.Fatalf("Unexpected output content: %q", string(data))
	}
}

func TestSpreadCommandRejectsBadCount(t *testing.T) {
	logDir := t.TempDir()
	testhelpers.WriteLogFile(t, logDir, "app.log", []string{"one"})

	for _, n := range []string{"0", "-1", "27", "zz"} {
		outDir := t.TempDir()
		output, err := runSpread(t, filepath.Join(logDir, "app.log"), n, outDir)
		if err == nil {
			t.Fatalf("Expected spread to fail for n=%s. Output:\n%s", n, output)
		}

		// The config error fires before any output file is created.
		entries, readErr := os.ReadDir(outDir)
		if readErr != nil {
			t.Fatalf("Failed to read output dir: %v", readErr)
		}
		if len(entries) != 0 {
			t.Fatalf("Expected no output files for n=%s, found %d", n, len(entries))
		}
	}
}

func TestSpreadCommandWrongArgCount(t *testing.T) {
	output, err := testhelpers.RunCLICommand([]string{"spread", "app.log"})
	if err == nil {
		t.Fatalf("Expected spread to fail without n-files. Output:\n%s", output)
	}
	testhelpers.AssertOutputContains(t, output, "Usage:")
}

func TestSpreadCommandMissingLogDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	output, err := runSpread(t, filepath.Join(missing, "app.log"), "2", t.TempDir())
	if err == nil {
		t.Fatalf("Expected spread to fail for a missing log directory. Output:\n%s", output)
	}
}

func TestSpreadCommandCorruptArchive(t *testing.T) {
	logDir := t.TempDir()
	testhelpers.WriteLogFile(t, logDir, "app.log", []string{"fine"})
	// A gzip-suffixed file that is not a gzip stream aborts the run.
	testhelpers.WriteLogFile(t, logDir, "app.log.1.gz", []string{"not gzip at all"})

	output, err := runSpread(t, filepath.Join(logDir, "app.log"), "2", t.TempDir())
	if err == nil {
		t.Fatalf("Expected spread to fail on a corrupt archive. Output:\n%s", output)
	}
}

func TestSpreadCommandCheckOrder(t *testing.T) {
	logDir := t.TempDir()
	outDir := t.TempDir()
	testhelpers.WriteLogFile(t, logDir, "app.log", []string{"beta", "alpha"})

	output, err := testhelpers.RunCLICommand([]string{
		"spread", filepath.Join(logDir, "app.log"), "1",
		"--seed", "7",
		"--check-order=true",
		"--out-dir", outDir,
	})
	if err != nil {
		t.Fatalf("spread failed: %v\nOutput:\n%s", err, output)
	}
	testhelpers.AssertOutputContains(t, output, "lines are not in order")
}
