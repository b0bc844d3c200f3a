package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestVerifyCommand(t *testing.T) {
	tests := []struct {
		name        string
		records     int
		recordSize  int
		corrupt     bool
		wantErr     bool
		wantJSON    bool
		wantContain []string
	}{
		{
			name:        "valid file",
			records:     5,
			wantContain: []string{"Signature valid", "Result: ✓ VALID"},
		},
		{
			name:        "valid with pinned record size",
			records:     5,
			recordSize:  8,
			wantContain: []string{"Holds 8-byte records", "Result: ✓ VALID"},
		},
		{
			name:        "wrong pinned record size",
			records:     5,
			recordSize:  24,
			wantErr:     true,
			wantContain: []string{"Corruption", "Result: ✗ INVALID", "Recreate it or restore a backup"},
		},
		{
			name:        "corrupt magic",
			records:     5,
			corrupt:     true,
			wantErr:     true,
			wantContain: []string{"Corruption", "Result: ✗ INVALID"},
		},
		{
			name:        "corrupt magic json",
			records:     5,
			corrupt:     true,
			wantErr:     true,
			wantJSON:    true,
			wantContain: []string{`"valid": false`, `"kind": "corruption"`},
		},
		{
			name:        "valid json",
			records:     5,
			wantJSON:    true,
			wantContain: []string{`"valid": true`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON
			verifyRecordSize = tt.recordSize

			path := writeVectorFixture(t, t.TempDir(), tt.records)
			if tt.corrupt {
				corruptMagic(t, path)
			}

			output, err := captureOutput(t, func() error {
				return runVerify([]string{path})
			})

			if tt.wantErr && err == nil {
				t.Fatalf("expected error, got output: %s", output)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestVerifyMissingFileIsIOKind(t *testing.T) {
	resetFlags()
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runVerify([]string{filepath.Join(t.TempDir(), "absent.vec")})
	})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	assertJSON(t, output)
	assertContains(t, output, []string{`"kind": "io"`, `"valid": false`})
}

func TestVerifyTruncatedFile(t *testing.T) {
	resetFlags()

	path := writeVectorFixture(t, t.TempDir(), 5)
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	// Chop mid-record: the byte length no longer matches the header.
	if err := os.WriteFile(path, raw[:len(raw)-3], 0o644); err != nil {
		t.Fatalf("failed to truncate fixture: %v", err)
	}

	output, err := captureOutput(t, func() error {
		return runVerify([]string{path})
	})
	if err == nil {
		t.Fatal("expected error for truncated file")
	}
	assertContains(t, output, []string{"Corruption"})
}
