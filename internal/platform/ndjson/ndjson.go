// Package ndjson streams newline-delimited JSON records.
// One record per line; blank lines are skipped on read
package ndjson

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	perr "maidata/internal/platform/errors"
)

const maxScanTokenSize = 32 * 1024 * 1024

// Reader decodes records line by line
type Reader struct {
	sc   *bufio.Scanner
	line int
	err  error
}

// NewReader creates a Reader over r with a large line buffer
// PR diffs embedded in records can run to megabytes per line
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 512*1024)
	sc.Buffer(buf, maxScanTokenSize)
	return &Reader{sc: sc}
}

// Next decodes the next non-blank line into v; returns io.EOF when done
// A malformed line yields a JSON-coded error carrying the line number;
// the reader stays usable so callers can skip and continue
func (r *Reader) Next(v any) error {
	if r.err != nil {
		return r.err
	}
	for {
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				r.err = err
				return err
			}
			r.err = io.EOF
			return io.EOF
		}
		r.line++
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			continue
		}
		if err := json.Unmarshal([]byte(line), v); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeJSON, "ndjson: bad record at line %d", r.line)
		}
		return nil
	}
}

// Line returns the number of the last line read (1-based)
func (r *Reader) Line() int { return r.line }

// Writer encodes one record per line
type Writer struct {
	bw    *bufio.Writer
	count int
}

// NewWriter creates a buffered Writer over w
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Write appends v as a single JSON line
func (w *Writer) Write(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "ndjson: marshal record")
	}
	if _, err := w.bw.Write(b); err != nil {
		return err
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	w.count++
	return nil
}

// Count returns the number of records written
func (w *Writer) Count() int { return w.count }

// Flush flushes buffered output
func (w *Writer) Flush() error { return w.bw.Flush() }
