package convert

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func quietBatch(dir string) *Batch {
	return NewBatch(BatchConfig{
		Dir:    dir,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"input-circuit.tex", "output-circuit.json"},
		{"drawing.tex", "drawing.json"},
		{filepath.Join("docs", "input-a.tex"), filepath.Join("docs", "output-a.json")},
	}
	for _, tt := range tests {
		if got := OutputName(tt.in); got != tt.want {
			t.Errorf("OutputName(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestBatchRun(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "input-a.tex", `\begin{circuitikz}
	\node[ground] at (0, 0){};
	\draw (0,0) -- (1,0);
\end{circuitikz}`)
	writeInput(t, dir, "input-b.tex", `\documentclass{article}`)

	written, err := quietBatch(dir).Run()
	if err != nil {
		t.Fatalf("Failed to run batch: %v", err)
	}
	if written != 2 {
		t.Errorf("Expected 2 outputs written, got %d", written)
	}

	a := readOutput(t, dir, "output-a.json")
	if !strings.Contains(a, `"version": "0.1"`) {
		t.Errorf("Expected scene document, got:\n%s", a)
	}
	if !strings.Contains(a, `"id": "ground"`) {
		t.Errorf("Expected ground device in output, got:\n%s", a)
	}

	b := readOutput(t, dir, "output-b.json")
	want := `{
  "error": "No valid \\begin{circuitikz} block found."
}
`
	if b != want {
		t.Errorf("Unexpected error document:\n%s\nwant:\n%s", b, want)
	}
}

func TestBatchRunReplacesStaleOutput(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "input-a.tex", `\begin{circuitikz}
\end{circuitikz}`)
	writeInput(t, dir, "output-a.json", "stale result")

	written, err := quietBatch(dir).Run()
	if err != nil {
		t.Fatalf("Failed to run batch: %v", err)
	}
	if written != 1 {
		t.Errorf("Expected 1 output written, got %d", written)
	}
	out := readOutput(t, dir, "output-a.json")
	if strings.Contains(out, "stale") {
		t.Errorf("Expected stale output replaced, got:\n%s", out)
	}
	if !strings.Contains(out, `"components": []`) {
		t.Errorf("Expected empty components list, got:\n%s", out)
	}
}

func TestBatchRunPattern(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "input-a.tex", `\begin{circuitikz}
\end{circuitikz}`)
	writeInput(t, dir, "notes.tex", `\begin{circuitikz}
\end{circuitikz}`)

	batch := NewBatch(BatchConfig{
		Dir:     dir,
		Pattern: "input-*.tex",
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	written, err := batch.Run()
	if err != nil {
		t.Fatalf("Failed to run batch: %v", err)
	}
	if written != 1 {
		t.Errorf("Expected 1 output written, got %d", written)
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.json")); !os.IsNotExist(err) {
		t.Error("Expected notes.tex left alone by the narrowed pattern")
	}
}

func TestBatchRunNoInputs(t *testing.T) {
	written, err := quietBatch(t.TempDir()).Run()
	if err != nil {
		t.Fatalf("Failed to run batch: %v", err)
	}
	if written != 0 {
		t.Errorf("Expected nothing written, got %d", written)
	}
}

func writeInput(t *testing.T, dir, name, text string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func readOutput(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("Failed to read %s: %v", name, err)
	}
	return string(data)
}
