// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fasta

import "io"

var newline = []byte{'\n'}

// Writer is a FASTA file writer.  Sequences are written on a single line,
// without wrapping.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter constructs a new FASTA writer that writes entries to the
// underlying writer w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes one entry, a header line followed by a sequence line.  Once a
// write fails, Write returns the same error without touching w again.
func (w *Writer) Write(name string, seq []byte) error {
	w.writeHeader(name)
	w.writeln(seq)
	return w.err
}

// Err returns the first error encountered by the writer.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) writeHeader(name string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, ">")
	if w.err == nil {
		_, w.err = io.WriteString(w.w, name)
	}
	if w.err == nil {
		_, w.err = w.w.Write(newline)
	}
}

func (w *Writer) writeln(line []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(line)
	if w.err == nil {
		_, w.err = w.w.Write(newline)
	}
}
