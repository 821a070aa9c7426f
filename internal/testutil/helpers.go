package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// NewTestLogger returns a logger that records every entry down to trace level
func NewTestLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	return logger, hook
}

// AssertLogged checks that an entry with level and a message containing substring was logged
func AssertLogged(t *testing.T, hook *test.Hook, level logrus.Level, substring string) {
	t.Helper()

	for _, entry := range hook.AllEntries() {
		if entry.Level == level && strings.Contains(entry.Message, substring) {
			return
		}
	}

	var got []string
	for _, entry := range hook.AllEntries() {
		got = append(got, entry.Level.String()+": "+entry.Message)
	}
	t.Errorf("Expected %s log containing %q, got %v", level, substring, got)
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}

// CaptureOutput captures stdout/stderr during test execution
func CaptureOutput(t *testing.T, f func()) (stdout, stderr string) {
	t.Helper()

	// Save current stdout/stderr
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	// Create pipes
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()

	// Redirect stdout/stderr
	os.Stdout = wOut
	os.Stderr = wErr

	outCh := make(chan string)
	errCh := make(chan string)
	go func() {
		b, _ := io.ReadAll(rOut)
		outCh <- string(b)
	}()
	go func() {
		b, _ := io.ReadAll(rErr)
		errCh <- string(b)
	}()

	// Run function
	f()

	// Close writers
	wOut.Close()
	wErr.Close()

	stdout, stderr = <-outCh, <-errCh

	// Restore stdout/stderr
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	return stdout, stderr
}
