package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	// Create a buffer to capture output
	buf := &bytes.Buffer{}
	log := NewLoggerWithOutput(buf)

	// Test Info logging
	log.Info("Reading source file", String("file", "/var/log/app.log"), Int("lines", 42))
	output := buf.String()
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected INFO in output, got: %s", output)
	}
	if !strings.Contains(output, "Reading source file") {
		t.Errorf("Expected message in output, got: %s", output)
	}
	if !strings.Contains(output, "file=/var/log/app.log") {
		t.Errorf("Expected file field in output, got: %s", output)
	}
	if !strings.Contains(output, "lines=42") {
		t.Errorf("Expected lines=42 in output, got: %s", output)
	}

	// Clear buffer
	buf.Reset()

	// Test Error logging
	testErr := errors.New("test error")
	log.Error("Failed to open archive", testErr, String("file", "app.log.2.gz"))
	output = buf.String()
	if !strings.Contains(output, "ERROR") {
		t.Errorf("Expected ERROR in output, got: %s", output)
	}
	if !strings.Contains(output, "error=test error") {
		t.Errorf("Expected error=test error in output, got: %s", output)
	}
	if !strings.Contains(output, "file=app.log.2.gz") {
		t.Errorf("Expected file field in output, got: %s", output)
	}

	// Clear buffer
	buf.Reset()

	// Test WithFields
	logWithFields := log.WithFields(String("command", "spread"))
	logWithFields.Info("Partition complete", Int("outputs", 3))
	output = buf.String()
	if !strings.Contains(output, "command=spread") {
		t.Errorf("Expected command=spread in output, got: %s", output)
	}
	if !strings.Contains(output, "outputs=3") {
		t.Errorf("Expected outputs=3 in output, got: %s", output)
	}
}
