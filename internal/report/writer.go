// Package report writes file-listing reports in a fixed plain-text
// record format: a Name line, a Download URL line, and a separator
// line per entry.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tacogips/hublist/internal/debug"
)

// Separator is the literal line terminating each record.
const Separator = "-----"

// Entry is one (file name, download URL) pair to report.
type Entry struct {
	// Name is the file's path relative to the repository root.
	Name string
	// URL is the constructed download URL for the file.
	URL string
}

// Writer emits report records to an underlying io.Writer.
type Writer struct {
	w     io.Writer
	count int
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteEntry writes one record: the name line, the URL line, and the
// separator, with no blank line between records.
func (w *Writer) WriteEntry(e Entry) error {
	if _, err := fmt.Fprintf(w.w, "Name: %s\nDownload URL: %s\n%s\n", e.Name, e.URL, Separator); err != nil {
		return err
	}
	w.count++
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int {
	return w.count
}

// WriteFile writes all entries to path, fully replacing any existing
// content. The report is written to a temporary file in the target
// directory and renamed over the destination, so a failed run never
// leaves a partially written report at path. An empty entry slice
// still produces the (empty) file. Returns the number of records
// written.
func WriteFile(path string, entries []Entry) (int, error) {
	debug.Debug("[report] Writing report: %s (%d entries)", path, len(entries))

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, NewWriteError(path, "failed to create parent directory", err)
		}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return 0, NewWriteError(path, "failed to create temporary file", err)
	}
	tmpName := tmp.Name()

	bw := bufio.NewWriter(tmp)
	w := NewWriter(bw)
	for _, e := range entries {
		if err := w.WriteEntry(e); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
			return 0, NewWriteError(path, "failed to write report entry", err)
		}
	}

	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return 0, NewWriteError(path, "failed to flush report", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return 0, NewWriteError(path, "failed to close temporary file", err)
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return 0, NewWriteError(path, "failed to set report permissions", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return 0, NewWriteError(path, "failed to rename temporary file", err)
	}

	debug.Debug("[report] Report written: %s (%d records)", path, w.Count())
	return w.Count(), nil
}
