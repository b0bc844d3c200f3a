package main

import (
	"path/filepath"
	"testing"
)

func TestInfoCommand(t *testing.T) {
	tests := []struct {
		name        string
		records     int
		corrupt     bool
		wantErr     bool
		wantJSON    bool
		wantContain []string
	}{
		{
			name:        "empty vector",
			records:     0,
			wantContain: []string{"Records: 0", "Capacity: 0 slots", "Header valid"},
		},
		{
			name:        "populated vector",
			records:     5,
			wantContain: []string{"Records: 5", "Capacity: 8 slots", "Record size: 8 bytes", "62.5%"},
		},
		{
			name:        "json output",
			records:     5,
			wantJSON:    true,
			wantContain: []string{`"length": 5`, `"capacity": 8`, `"record_size": 8`},
		},
		{
			name:    "corrupt file",
			records: 3,
			corrupt: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON

			path := writeVectorFixture(t, t.TempDir(), tt.records)
			if tt.corrupt {
				corruptMagic(t, path)
			}

			output, err := captureOutput(t, func() error {
				return runInfo([]string{path})
			})

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got output: %s", output)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestInfoMissingFile(t *testing.T) {
	resetFlags()
	_, err := captureOutput(t, func() error {
		return runInfo([]string{filepath.Join(t.TempDir(), "absent.vec")})
	})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestInfoQuietSuppressesOutput(t *testing.T) {
	resetFlags()
	quiet = true

	path := writeVectorFixture(t, t.TempDir(), 3)
	output, err := captureOutput(t, func() error {
		return runInfo([]string{path})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "" {
		t.Errorf("quiet mode must print nothing, got: %s", output)
	}
}
