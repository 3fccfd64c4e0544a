package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joonwoolee/subweave/internal/srt"
)

// ShiftAll rewrites the timing of every source file, shifting blocks
// whose index is at or past fromIndex by offsetSeconds. Each result is
// written beside the source as <name>_shifted.srt; sources are never
// overwritten.
func (p *Pipeline) ShiftAll(ctx context.Context, fromIndex int, offsetSeconds float64) (Summary, error) {
	files, err := p.sourceFiles()
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	summary.Total = len(files)

	for _, name := range files {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}
		if err := p.shiftFile(name, fromIndex, offsetSeconds); err != nil {
			p.log.Errorw("Shift failed", "file", name, "error", err)
			p.quarantine(name)
			summary.Failed++
			continue
		}
		summary.Succeeded++
	}

	return summary, nil
}

func (p *Pipeline) shiftFile(name string, fromIndex int, offsetSeconds float64) error {
	content, err := os.ReadFile(filepath.Join(p.cfg.Dir, name))
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	blocks := srt.ShiftAll(srt.ParseBlocks(string(content)), fromIndex, offsetSeconds)

	ext := filepath.Ext(name)
	outName := strings.TrimSuffix(name, ext) + "_shifted" + ext
	outPath := filepath.Join(p.cfg.Dir, outName)

	if err := os.WriteFile(outPath, []byte(srt.FormatBlocks(blocks)), 0644); err != nil {
		return fmt.Errorf("write shifted file: %w", err)
	}
	return nil
}
