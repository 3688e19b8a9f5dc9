package display

import (
	"fmt"
	"io"

	"github.com/perez987/XMLFolderStructure/internal/logger"
	"github.com/perez987/XMLFolderStructure/internal/xmltree"
)

// WalkProgress renders in-place progress for a running tree walk.
// Observations arrive over the build's progress channel; each render
// overwrites the previous line with a carriage return.
type WalkProgress struct {
	writer io.Writer
	bar    *logger.ProgressBar
}

// NewWalkProgress creates a progress display for a walk of total entries.
func NewWalkProgress(w io.Writer, total int, colorEnabled bool) *WalkProgress {
	return &WalkProgress{
		writer: w,
		bar:    logger.NewProgressBar(total, 30, colorEnabled),
	}
}

// Observe renders one progress observation.
func (p *WalkProgress) Observe(prog xmltree.Progress) {
	p.bar.Update(prog.Processed)
	fmt.Fprintf(p.writer, "\r%s", p.bar.Render())
}

// Finish terminates the in-place line and prints a completion mark.
func (p *WalkProgress) Finish(processed int) {
	fmt.Fprintf(p.writer, "\r%s\n", p.bar.Render())
	fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m Processed %d entries\n", processed)
}
