package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/joonwoolee/subweave/internal/logging"
	"github.com/joonwoolee/subweave/internal/srt"
	"github.com/joonwoolee/subweave/internal/translate"
)

// directory names under the working folder, kept compatible with the
// layout earlier versions of the tool produced
const (
	DefaultTimeDir       = "txtWithTime"
	DefaultSentenceDir   = "txtWithSentence"
	DefaultOutputDir     = "updatedSrt"
	DefaultQuarantineDir = "failed_srt"
)

type Config struct {
	Dir             string // folder holding the source .srt files
	TimeDir         string
	SentenceDir     string
	OutputDir       string
	QuarantineDir   string
	LegacyHourShift bool // subtract one hour from block 2 onward while splitting
	Concurrency     int
}

func (c Config) withDefaults() Config {
	if c.TimeDir == "" {
		c.TimeDir = DefaultTimeDir
	}
	if c.SentenceDir == "" {
		c.SentenceDir = DefaultSentenceDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.QuarantineDir == "" {
		c.QuarantineDir = DefaultQuarantineDir
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 1
	}
	return c
}

// Pipeline drives the split, translate, and merge stages over a folder
// of subtitle files. The runner may be nil for split/merge-only use.
type Pipeline struct {
	cfg    Config
	runner *translate.Runner
	log    *logging.Logger
}

func New(cfg Config, runner *translate.Runner, log *logging.Logger) *Pipeline {
	if log == nil {
		log = logging.NewNop()
	}
	return &Pipeline{cfg: cfg.withDefaults(), runner: runner, log: log}
}

// Summary counts per-file outcomes of one batch operation.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

// SplitAll splits every .srt in the folder into its time and sentence
// streams. A failed file is quarantined and the batch continues.
func (p *Pipeline) SplitAll(ctx context.Context) (Summary, error) {
	files, err := p.sourceFiles()
	if err != nil {
		return Summary{}, err
	}
	if err := p.ensureDirs(p.timeDir(), p.sentenceDir()); err != nil {
		return Summary{}, err
	}

	var summary Summary
	summary.Total = len(files)

	for _, name := range files {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}
		if err := p.splitFile(name); err != nil {
			p.log.Errorw("Split failed", "file", name, "error", err)
			p.quarantine(name)
			summary.Failed++
			continue
		}
		summary.Succeeded++
	}

	return summary, nil
}

// TranslateAll runs the translation attempts over every sentence file.
func (p *Pipeline) TranslateAll(ctx context.Context) (Summary, error) {
	if p.runner == nil {
		return Summary{}, fmt.Errorf("no translation runner configured")
	}

	entries, err := os.ReadDir(p.sentenceDir())
	if err != nil {
		return Summary{}, fmt.Errorf("read sentence dir: %w", err)
	}

	var summary Summary
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		summary.Total++

		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		if err := p.translateFile(ctx, entry.Name()); err != nil {
			p.log.Errorw("Translation failed", "file", entry.Name(), "error", err)
			p.quarantine(srtName(entry.Name()))
			summary.Failed++
			continue
		}
		summary.Succeeded++
	}

	return summary, nil
}

// MergeAll recombines every time/sentence pair into an output SRT.
func (p *Pipeline) MergeAll(ctx context.Context) (Summary, error) {
	entries, err := os.ReadDir(p.sentenceDir())
	if err != nil {
		return Summary{}, fmt.Errorf("read sentence dir: %w", err)
	}
	if err := p.ensureDirs(p.outputDir()); err != nil {
		return Summary{}, err
	}

	var summary Summary
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		summary.Total++

		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		if err := p.mergeFile(entry.Name()); err != nil {
			p.log.Errorw("Merge failed", "file", entry.Name(), "error", err)
			p.quarantine(srtName(entry.Name()))
			summary.Failed++
			continue
		}
		summary.Succeeded++
	}

	return summary, nil
}

// RunAll processes every source file end to end: split, translate,
// merge. Files are handled independently on a bounded worker pool, so
// one file's failure or cancellation never aborts the rest.
func (p *Pipeline) RunAll(ctx context.Context) (Summary, error) {
	if p.runner == nil {
		return Summary{}, fmt.Errorf("no translation runner configured")
	}

	files, err := p.sourceFiles()
	if err != nil {
		return Summary{}, err
	}
	if err := p.ensureDirs(p.timeDir(), p.sentenceDir(), p.outputDir()); err != nil {
		return Summary{}, err
	}

	workers := p.cfg.Concurrency
	if workers > len(files) {
		workers = len(files)
	}

	work := make(chan string)
	results := make(chan error, len(files))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range work {
				results <- p.processFile(ctx, name)
			}
		}()
	}

	go func() {
		defer close(work)
		for _, name := range files {
			select {
			case <-ctx.Done():
				return
			case work <- name:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var summary Summary
	summary.Total = len(files)
	for err := range results {
		if err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
	}

	return summary, ctx.Err()
}

func (p *Pipeline) processFile(ctx context.Context, name string) error {
	p.log.Infow("Processing file", "file", name)

	if err := p.splitFile(name); err != nil {
		p.quarantine(name)
		p.log.Errorw("Split failed", "file", name, "error", err)
		return err
	}

	txtName := txtName(name)
	if err := p.translateFile(ctx, txtName); err != nil {
		p.quarantine(name)
		p.log.Errorw("Translation failed", "file", name, "error", err)
		return err
	}

	if err := p.mergeFile(txtName); err != nil {
		p.quarantine(name)
		p.log.Errorw("Merge failed", "file", name, "error", err)
		return err
	}

	p.log.Infow("File complete", "file", name)
	return nil
}

func (p *Pipeline) splitFile(name string) error {
	content, err := os.ReadFile(filepath.Join(p.cfg.Dir, name))
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	blocks := srt.ParseBlocks(string(content))
	if p.cfg.LegacyHourShift {
		blocks = srt.ShiftAll(blocks, srt.LegacyShiftFromIndex, srt.LegacyShiftSeconds)
	}

	times, sentences := srt.SplitEntries(blocks)

	txt := txtName(name)
	if err := os.WriteFile(
		filepath.Join(p.timeDir(), txt),
		[]byte(srt.EncodeTimeStream(times)),
		0644,
	); err != nil {
		return fmt.Errorf("write time stream: %w", err)
	}
	if err := os.WriteFile(
		filepath.Join(p.sentenceDir(), txt),
		[]byte(srt.EncodeSentenceStream(sentences)),
		0644,
	); err != nil {
		return fmt.Errorf("write sentence stream: %w", err)
	}

	return nil
}

func (p *Pipeline) translateFile(ctx context.Context, txtName string) error {
	path := filepath.Join(p.sentenceDir(), txtName)

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read sentence stream: %w", err)
	}
	if strings.TrimSpace(string(content)) == "" {
		p.log.Warnw("Sentence file is empty, skipping", "file", txtName)
		return nil
	}

	result, attempts, err := p.runner.Run(ctx, string(content))
	if err != nil {
		return err
	}

	p.log.Infow("Translation accepted",
		"file", txtName,
		"attempts", len(attempts),
		"profile", attempts[len(attempts)-1].Profile.String(),
	)

	if err := os.WriteFile(path, []byte(result), 0644); err != nil {
		return fmt.Errorf("write translated stream: %w", err)
	}
	return nil
}

func (p *Pipeline) mergeFile(txtName string) error {
	timePath := filepath.Join(p.timeDir(), txtName)
	sentencePath := filepath.Join(p.sentenceDir(), txtName)

	timeContent, err := os.ReadFile(timePath)
	if err != nil {
		return fmt.Errorf("read time stream: %w", err)
	}
	sentenceContent, err := os.ReadFile(sentencePath)
	if err != nil {
		return fmt.Errorf("read sentence stream: %w", err)
	}

	merged := srt.Merge(string(timeContent), string(sentenceContent))

	base := strings.TrimSuffix(txtName, filepath.Ext(txtName))
	outPath := filepath.Join(p.outputDir(), base+"_updated.srt")

	if err := os.WriteFile(outPath, []byte(merged), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (p *Pipeline) sourceFiles() ([]string, error) {
	entries, err := os.ReadDir(p.cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("read source dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".srt") {
			continue
		}
		// _shifted copies are outputs of a previous shift run
		base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if strings.HasSuffix(base, "_shifted") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no .srt files in %s", p.cfg.Dir)
	}
	return files, nil
}

func (p *Pipeline) ensureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

func (p *Pipeline) timeDir() string     { return filepath.Join(p.cfg.Dir, p.cfg.TimeDir) }
func (p *Pipeline) sentenceDir() string { return filepath.Join(p.cfg.Dir, p.cfg.SentenceDir) }
func (p *Pipeline) outputDir() string   { return filepath.Join(p.cfg.Dir, p.cfg.OutputDir) }

func txtName(srtName string) string {
	return strings.TrimSuffix(srtName, filepath.Ext(srtName)) + ".txt"
}

func srtName(txtName string) string {
	return strings.TrimSuffix(txtName, filepath.Ext(txtName)) + ".srt"
}
