package testhelpers

import (
	"strings"
	"testing"
)

// AssertCLIOutput compares the actual output with the expected lines.
// If they don't match, it fails the test with a detailed message.
func AssertCLIOutput(t *testing.T, actual string, expectedLines []string) {
	t.Helper()
	expectedOutput := strings.Join(expectedLines, "\n") + "\n"
	if actual != expectedOutput {
		actualLines := strings.Split(strings.TrimSpace(actual), "\n")
		expectedStr := strings.Join(expectedLines, "\n")
		actualStr := strings.Join(actualLines, "\n")
		t.Fatalf("CLI output mismatch.\nExpected output:\n%s\nActual output:\n%s", expectedStr, actualStr)
	}
}

// AssertOutputContains fails the test when the output is missing any of the
// wanted substrings.
func AssertOutputContains(t *testing.T, actual string, wanted ...string) {
	t.Helper()
	for _, want := range wanted {
		if !strings.Contains(actual, want) {
			t.Fatalf("Expected output to contain %q. Output:\n%s", want, actual)
		}
	}
}
