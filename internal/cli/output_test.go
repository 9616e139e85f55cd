package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shaiso/automata-workspace/internal/domain"
)

// --- Output Tests ---

func TestOutputTable(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput(false, &buf, &buf)

	out.Table([]string{"NAME", "SIZE"}, [][]string{
		{"data/names.txt", "20"},
		{"results/plot.png", "4096"},
	})

	got := buf.String()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), got)
	}

	if !strings.HasPrefix(lines[0], "NAME") || !strings.Contains(lines[0], "SIZE") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "----") {
		t.Errorf("separator = %q", lines[1])
	}
	if !strings.Contains(lines[2], "data/names.txt") || !strings.Contains(lines[2], "20") {
		t.Errorf("row = %q", lines[2])
	}
	if !strings.Contains(lines[3], "results/plot.png") || !strings.Contains(lines[3], "4096") {
		t.Errorf("row = %q", lines[3])
	}
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput(true, &buf, &buf)

	out.JSON([]domain.FileRecord{
		{
			Name:         "data/names.txt",
			LastModified: "2021-06-14T10:20:14",
			Size:         domain.Size{Raw: 20, HumanReadable: "20 Bytes"},
		},
	})

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 record, got %d", len(decoded))
	}
	if decoded[0]["name"] != "data/names.txt" {
		t.Errorf("name = %v", decoded[0]["name"])
	}
	// Имена полей сохраняют дефис сервера
	if decoded[0]["last-modified"] != "2021-06-14T10:20:14" {
		t.Errorf("last-modified = %v", decoded[0]["last-modified"])
	}
}

func TestOutputJSONNilSlice(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput(true, &buf, &buf)

	var records []domain.FileRecord
	out.JSON(records)

	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("expected [], got %q", got)
	}
}

func TestOutputPrintModes(t *testing.T) {
	var buf bytes.Buffer

	// JSON-режим игнорирует табличное представление
	out := NewOutput(true, &buf, &buf)
	out.Print([]string{"NAME"}, [][]string{{"a.txt"}}, []string{"a.txt"})
	if got := strings.TrimSpace(buf.String()); got != "[\n  \"a.txt\"\n]" {
		t.Errorf("json mode output = %q", got)
	}

	buf.Reset()
	out = NewOutput(false, &buf, &buf)
	out.Print([]string{"NAME"}, [][]string{{"a.txt"}}, nil)
	if !strings.Contains(buf.String(), "a.txt") {
		t.Errorf("table mode output = %q", buf.String())
	}
}

func TestOutputLines(t *testing.T) {
	var stdout, stderr bytes.Buffer
	out := NewOutput(false, &stdout, &stderr)

	out.Lines([]string{"http://a/1", "http://a/2"})

	if got := stdout.String(); got != "http://a/1\nhttp://a/2\n" {
		t.Errorf("lines = %q", got)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
}

func TestOutputMessages(t *testing.T) {
	var stdout, stderr bytes.Buffer
	out := NewOutput(false, &stdout, &stderr)

	out.Success("file1.txt was successfully deleted.")
	out.Error("No files matching filter criteria.")

	if stdout.Len() != 0 {
		t.Errorf("messages must go to stderr, stdout = %q", stdout.String())
	}

	got := stderr.String()
	if !strings.Contains(got, "file1.txt was successfully deleted.") {
		t.Errorf("missing success message: %q", got)
	}
	if !strings.Contains(got, "Error: No files matching filter criteria.") {
		t.Errorf("missing error message: %q", got)
	}
}
