package xmltree

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/collate"
)

// Options configures a Builder.
type Options struct {
	// IncludeMetadata adds size and modified attributes to file elements.
	// When false, files render as <file name="..." /> only.
	IncludeMetadata bool

	// Now supplies the fallback instant for entries whose modification time
	// could not be read. Defaults to time.Now.
	Now func() time.Time
}

// Builder serializes a directory tree into one XML document. A Builder is
// reusable across builds but must not run two builds concurrently.
type Builder struct {
	opts Options
	col  *collate.Collator
}

// NewBuilder creates a Builder with the given options.
func NewBuilder(opts Options) *Builder {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Builder{
		opts: opts,
		col:  newCollator(),
	}
}

// Build walks root depth-first and returns the complete XML document.
// It fails with a *ReadError if any descended-into directory cannot be
// listed; no partial document is returned on error.
func (b *Builder) Build(root string) (string, error) {
	return b.build(root, nil, nil)
}

// BuildWithProgress is Build with a per-entry progress callback. The total
// is pre-scanned over the same non-hidden entry set the walk traverses, so a
// completed walk always reports fraction 1.0 (when the tree is non-empty).
// Output is identical to Build.
func (b *Builder) BuildWithProgress(root string, fn ProgressFunc) (string, error) {
	if fn == nil {
		return b.Build(root)
	}
	return b.build(root, newTracker(CountItems(root)), fn)
}

// BuildAsync runs the walk on its own goroutine. Progress observations are
// delivered over the returned unbuffered channel; each send suspends the
// walk until the consumer receives it, which keeps large walks responsive
// without changing output order or content. The progress channel is closed
// when the walk ends, after which the result channel yields exactly one
// value.
func (b *Builder) BuildAsync(root string) (<-chan Progress, <-chan Result) {
	progress := make(chan Progress)
	result := make(chan Result, 1)

	go func() {
		xml, err := b.BuildWithProgress(root, func(p Progress) {
			progress <- p
		})
		close(progress)
		result <- Result{XML: xml, Err: err}
		close(result)
	}()

	return progress, result
}

// build emits the root element and recurses over its children.
func (b *Builder) build(root string, tr *tracker, fn ProgressFunc) (string, error) {
	var sb strings.Builder

	sb.WriteString(`<root name="`)
	sb.WriteString(EscapeText(filepath.Base(root)))
	sb.WriteString(`" text="Root directory">` + "\n")

	if err := b.writeChildren(&sb, root, 1, tr, fn); err != nil {
		return "", err
	}

	sb.WriteString("</root>\n")
	return sb.String(), nil
}

// writeChildren lists, sorts and emits the children of dir at the given
// indentation depth, recursing into subdirectories. Progress is reported
// once per entry, after the entry (folder subtree included) has been fully
// emitted.
func (b *Builder) writeChildren(sb *strings.Builder, dir string, depth int, tr *tracker, fn ProgressFunc) error {
	entries, err := ListChildren(dir, b.opts.IncludeMetadata)
	if err != nil {
		return err
	}
	SortEntries(entries, b.col)

	indent := strings.Repeat("  ", depth)
	for _, e := range entries {
		if e.IsDir {
			sb.WriteString(indent)
			sb.WriteString(`<folder name="`)
			sb.WriteString(EscapeText(e.Name))
			sb.WriteString("\">\n")

			if err := b.writeChildren(sb, e.Path, depth+1, tr, fn); err != nil {
				return err
			}

			sb.WriteString(indent)
			sb.WriteString("</folder>\n")
		} else {
			sb.WriteString(indent)
			sb.WriteString(b.fileElement(e))
		}

		if fn != nil {
			fn(tr.step())
		}
	}

	return nil
}

// fileElement renders one self-closing file element. Attribute order is
// fixed: name, then size, then modified.
func (b *Builder) fileElement(e Entry) string {
	if !b.opts.IncludeMetadata {
		return fmt.Sprintf("<file name=\"%s\" />\n", EscapeText(e.Name))
	}
	return fmt.Sprintf("<file name=\"%s\" size=\"%s\" modified=\"%s\" />\n",
		EscapeText(e.Name),
		FormatByteCount(e.SizeBytes),
		FormatModifiedDate(e.ModifiedAt, b.opts.Now),
	)
}
