package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	content := `inputs:
  files:
    - code/helloworld.py
    - data/names.txt
  directories:
    - workflow/cwl
  parameters:
    greeting: hello
workflow:
  file: flow.json
outputs:
  files:
    - results/greetings.txt
`
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(m.Inputs.Files) != 2 || m.Inputs.Files[0] != "code/helloworld.py" {
		t.Errorf("unexpected input files: %v", m.Inputs.Files)
	}
	if len(m.Inputs.Directories) != 1 || m.Inputs.Directories[0] != "workflow/cwl" {
		t.Errorf("unexpected input directories: %v", m.Inputs.Directories)
	}
	if m.Workflow.File != "flow.json" {
		t.Errorf("unexpected workflow file: %q", m.Workflow.File)
	}
	if len(m.Outputs.Files) != 1 || m.Outputs.Files[0] != "results/greetings.txt" {
		t.Errorf("unexpected output files: %v", m.Outputs.Files)
	}

	paths := m.InputPaths()
	want := []string{"code/helloworld.py", "data/names.txt", "workflow/cwl"}
	if len(paths) != len(want) {
		t.Fatalf("expected %d input paths, got %d", len(want), len(paths))
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path %d: expected %q, got %q", i, want[i], paths[i])
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	if err == nil {
		t.Fatal("expected error for missing manifest")
	}
	// Вызывающие отличают отсутствующий манифест от сломанного
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte("inputs: [unclosed"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed manifest")
	}
}
