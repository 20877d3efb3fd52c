package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeInput(t *testing.T) {
	tmpDir := t.TempDir()

	filePath := filepath.Join(tmpDir, "scan.h5")
	if err := os.WriteFile(filePath, []byte("data"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	tests := []struct {
		name  string
		input string
		want  PathSpec
	}{
		{
			name:  "existing directory",
			input: tmpDir,
			want:  PathSpec{Raw: tmpDir, Exists: true, IsDir: true},
		},
		{
			name:  "existing file",
			input: filePath,
			want:  PathSpec{Raw: filePath, Exists: true, IsFile: true},
		},
		{
			name:  "nonexistent path",
			input: filepath.Join(tmpDir, "missing"),
			want:  PathSpec{Raw: filepath.Join(tmpDir, "missing")},
		},
		{
			name:  "wildcard pattern",
			input: filepath.Join(tmpDir, "*.h5"),
			want:  PathSpec{Raw: filepath.Join(tmpDir, "*.h5"), ContainsWildcard: true},
		},
		{
			name:  "double star pattern",
			input: filepath.Join(tmpDir, "**", "*.h5"),
			want:  PathSpec{Raw: filepath.Join(tmpDir, "**", "*.h5"), ContainsWildcard: true},
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "  " + tmpDir + "\t",
			want:  PathSpec{Raw: tmpDir, Exists: true, IsDir: true},
		},
		{
			name:  "question mark counts as wildcard",
			input: filepath.Join(tmpDir, "run?"),
			want:  PathSpec{Raw: filepath.Join(tmpDir, "run?"), ContainsWildcard: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeInput(tt.input)
			if err != nil {
				t.Fatalf("NormalizeInput() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("NormalizeInput() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeInput_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := NormalizeInput(input)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("NormalizeInput(%q) error = %v, want ErrInvalidInput", input, err)
		}
	}
}
