package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// quarantine copies the original source file into the quarantine
// folder so a failed run never loses input. An existing copy is left
// alone: the first preserved original wins.
func (p *Pipeline) quarantine(name string) {
	src := filepath.Join(p.cfg.Dir, name)
	if _, err := os.Stat(src); err != nil {
		return
	}

	dir := filepath.Join(p.cfg.Dir, p.cfg.QuarantineDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		p.log.Errorw("Quarantine dir creation failed", "error", err)
		return
	}

	dst := filepath.Join(dir, name)
	if _, err := os.Stat(dst); err == nil {
		return
	}

	if err := copyFile(src, dst); err != nil {
		p.log.Errorw("Quarantine copy failed", "file", name, "error", err)
		return
	}

	p.log.Warnw("Source file quarantined", "file", name, "dir", dir)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create copy: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}
