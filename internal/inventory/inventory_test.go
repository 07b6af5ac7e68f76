package inventory

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tokenizer.json"), 100)
	writeFile(t, filepath.Join(root, "config.json"), 50)
	writeFile(t, filepath.Join(root, "weights", "model-00001.safetensors"), 300)

	entries, err := Collect(root)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []Entry{
		{Path: "config.json", Size: 50},
		{Path: "tokenizer.json", Size: 100},
		{Path: "weights/model-00001.safetensors", Size: 300},
	}
	if len(entries) != len(want) {
		t.Fatalf("Collect() returned %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, e, want[i])
		}
	}

	s := Summarize(entries)
	if s.Files != 3 || s.Bytes != 450 {
		t.Errorf("Summarize() = %+v, want 3 files / 450 bytes", s)
	}
}

func TestCollectEmptyDir(t *testing.T) {
	entries, err := Collect(t.TempDir())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Collect() = %v, want empty", entries)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0.0 KB"},
		{512, "0.5 KB"},
		{500 * 1024, "500.0 KB"},
		{1024*1024 - 1, "1024.0 KB"},
		{1024 * 1024, "1.0 MB"},
		{2 * 1024 * 1024, "2.0 MB"},
		{1536 * 1024, "1.5 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatSize(tt.bytes); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatGB(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0.00 GB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{int64(2.5 * 1024 * 1024 * 1024), "2.50 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatGB(tt.bytes); got != tt.want {
				t.Errorf("FormatGB(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "config.json"), 1024*1024)
	writeFile(t, filepath.Join(root, "weights", "model.safetensors"), 2*1024*1024)

	var buf bytes.Buffer
	if err := Tree(&buf, root); err != nil {
		t.Fatalf("Tree() error = %v", err)
	}

	got := buf.String()
	wantLines := []string{
		"config.json (1.0 MB)",
		"weights/",
		"  model.safetensors (2.0 MB)",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("Tree() output missing %q\n%s", line, got)
		}
	}

	if strings.Index(got, "config.json") > strings.Index(got, "weights/") {
		t.Errorf("Tree() output not sorted:\n%s", got)
	}
}
