package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/veckit/pkg/vecfile"
)

// testRecord is the fixed-size record type behind generated test fixtures.
type testRecord struct {
	ID    uint32
	Value uint32
}

// writeVectorFixture creates a vector file holding n records and returns its path.
func writeVectorFixture(t *testing.T, dir string, n int) string {
	t.Helper()
	path := filepath.Join(dir, "fixture.vec")
	f, err := vecfile.Open[testRecord](path)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	for i := 0; i < n; i++ {
		if err := f.Push(testRecord{ID: uint32(i), Value: uint32(i * 3)}); err != nil {
			t.Fatalf("failed to push fixture record: %v", err)
		}
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close fixture: %v", err)
	}
	return path
}

// corruptMagic flips the first signature byte of the file at path.
func corruptMagic(t *testing.T, path string) {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	raw[0] ^= 0xFF
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("failed to rewrite fixture: %v", err)
	}
}

// resetFlags restores the global flag state between test cases.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	dumpRecordSize = 0
	dumpLimit = 0
	dumpOffset = 0
	verifyRecordSize = 0
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
