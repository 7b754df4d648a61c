package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/scene"
)

// BatchConfig controls a batch run over a directory of markup documents.
type BatchConfig struct {
	// Dir is the directory scanned for inputs. Empty means the current
	// directory.
	Dir string
	// Pattern is the glob matched against file names. Empty means *.tex.
	Pattern string
	// Logger receives run diagnostics. Nil means slog.Default.
	Logger *slog.Logger
	// Converter configures the per-document conversion. The zero value
	// uses the calibrated defaults.
	Converter Config
}

// Batch converts every matching document in a directory, one output per
// input. Each run carries a unique id in its log records so interleaved
// runs stay distinguishable.
type Batch struct {
	cfg  BatchConfig
	conv *Converter
	log  *slog.Logger
}

// NewBatch returns a Batch for the given configuration.
func NewBatch(cfg BatchConfig) *Batch {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Pattern == "" {
		cfg.Pattern = "*.tex"
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("run", uuid.New().String())
	if cfg.Converter.Logger == nil {
		cfg.Converter.Logger = log
	}
	return &Batch{cfg: cfg, conv: New(cfg.Converter), log: log}
}

// OutputName maps an input file name to its output name: the input- prefix
// convention becomes output-, and the .tex extension becomes .json.
func OutputName(input string) string {
	dir, base := filepath.Split(input)
	base = strings.ReplaceAll(base, "input-", "output-")
	base = strings.ReplaceAll(base, ".tex", ".json")
	return filepath.Join(dir, base)
}

// Run converts every matching document and reports how many outputs were
// written, error documents included. Unreadable inputs are skipped with a
// warning; filesystem failures around outputs abort the run, since a stale
// output masquerading as current is worse than a missing one.
func (b *Batch) Run() (int, error) {
	inputs, err := filepath.Glob(filepath.Join(b.cfg.Dir, b.cfg.Pattern))
	if err != nil {
		return 0, fmt.Errorf("bad input pattern %q: %w", b.cfg.Pattern, err)
	}
	if len(inputs) == 0 {
		b.log.Warn("no input documents found", "dir", b.cfg.Dir, "pattern", b.cfg.Pattern)
		return 0, nil
	}
	b.log.Info("converting documents", "count", len(inputs))

	written := 0
	for _, input := range inputs {
		output := OutputName(input)
		if err := removeStale(output); err != nil {
			return written, err
		}
		text, err := os.ReadFile(input)
		if err != nil {
			b.log.Warn("input not readable, skipping", "file", input, "err", err)
			continue
		}
		if err := b.convertFile(input, output, string(text)); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func (b *Batch) convertFile(input, output, text string) error {
	doc, err := b.conv.Convert(text)
	if errors.Is(err, ErrNoDrawingBlock) {
		b.log.Warn("no drawing block found, writing error document", "file", input)
		return writeJSON(output, &scene.ErrorDocument{Error: scene.NoBlockMessage})
	}
	if err != nil {
		return fmt.Errorf("converting %s: %w", input, err)
	}
	if err := writeJSON(output, doc); err != nil {
		return err
	}
	b.log.Info("document converted",
		"input", input, "output", output, "components", len(doc.Components))
	return nil
}

// removeStale deletes a prior output and verifies it is gone, so a write
// failure later cannot leave an old result that looks current.
func removeStale(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking old output %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting old output %s: %w", path, err)
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("old output %s still exists after delete", path)
	}
	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := scene.EncodeJSON(f, v); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
