package cmd

import (
	"bufio"
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"gitlab.com/NebulousLabs/errors"
)

// mergeCursor is one source file's position in the merge: its reader and
// the line currently at the front.
type mergeCursor struct {
	name    string
	reader  *bufio.Reader
	closer  io.Closer
	current []byte
}

// advance loads the cursor's next line, reporting false once the source is
// exhausted.
func (c *mergeCursor) advance() (bool, error) {
	line, err := c.reader.ReadBytes('\n')
	if len(line) == 0 && err == io.EOF {
		return false, nil
	}
	if err != nil && err != io.EOF {
		return false, errors.AddContext(err, "unable to read "+c.name)
	}
	c.current = line
	return true, nil
}

// cursorHeap is a min-heap of cursors keyed on their current line bytes.
type cursorHeap []*mergeCursor

func (h cursorHeap) Len() int { return len(h) }

func (h cursorHeap) Less(i, j int) bool {
	return bytes.Compare(h[i].current, h[j].current) < 0
}

func (h cursorHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *cursorHeap) Push(x any) { *h = append(*h, x.(*mergeCursor)) }

func (h *cursorHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return c
}

// Merger streams the byte-ordered union of all matching source files to a
// single writer. Each source is expected to be internally ordered; lines
// keep their terminators.
type Merger struct {
	config *MergeConfig
	merged io.Writer
	report io.Writer
}

// NewMerger creates a merger. Merged lines go to merged, progress and the
// final summary to report, so merging to stdout stays pipeable.
func NewMerger(config *MergeConfig, merged, report io.Writer) *Merger {
	return &Merger{
		config: config,
		merged: merged,
		report: report,
	}
}

// Run discovers the source files and streams their merged lines.
func (m *Merger) Run() error {
	files, err := DiscoverLogFiles(m.config.LogDir, m.config.LogName)
	if err != nil {
		return err
	}

	cursors := make(cursorHeap, 0, len(files))
	defer func() {
		for _, c := range cursors {
			c.closer.Close()
		}
	}()

	for _, file := range files {
		fmt.Fprintf(m.report, "reading %s\n", file.Path)
		r, err := file.Open()
		if err != nil {
			return err
		}
		c := &mergeCursor{name: file.Path, reader: bufio.NewReader(r), closer: r}
		ok, err := c.advance()
		if err != nil {
			return errors.Compose(err, r.Close())
		}
		if !ok {
			// Empty source, nothing to merge from it.
			if err := r.Close(); err != nil {
				return errors.AddContext(err, "unable to close "+file.Path)
			}
			continue
		}
		cursors = append(cursors, c)
	}
	heap.Init(&cursors)

	total := 0
	for cursors.Len() > 0 {
		c := cursors[0]
		if _, err := m.merged.Write(c.current); err != nil {
			return errors.AddContext(err, "unable to write merged output")
		}
		total++

		ok, err := c.advance()
		if err != nil {
			return err
		}
		if !ok {
			heap.Pop(&cursors)
			if err := c.closer.Close(); err != nil {
				return errors.AddContext(err, "unable to close "+c.name)
			}
			continue
		}
		heap.Fix(&cursors, 0)
	}

	fmt.Fprintf(m.report, "\nmerged %d lines from %d files\n", total, len(files))
	return nil
}
