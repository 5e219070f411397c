// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package samfasta

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/samfasta/encoding/fasta"
	"github.com/grailbio/samfasta/pairwise"
	"github.com/klauspost/compress/gzip"
)

// Sink receives reconstructed pairs in input order.
type Sink interface {
	Write(p *pairwise.Pair) error
}

// PairWriter writes each pair as two FASTA entries: the reference block named
// after the contig, then the read block named after the read.
type PairWriter struct {
	w *fasta.Writer
}

// NewPairWriter creates a PairWriter that writes to w.
func NewPairWriter(w io.Writer) *PairWriter {
	return &PairWriter{w: fasta.NewWriter(w)}
}

// Write implements Sink.  After the first failure, every call returns the same
// error.
func (w *PairWriter) Write(p *pairwise.Pair) error {
	if err := w.w.Write(p.RefName, p.Ref); err != nil {
		return err
	}
	return w.w.Write(p.ReadName, p.Read)
}

// Output is a PairWriter backed by a file.
type Output struct {
	*PairWriter
	ctx  context.Context
	path string
	out  file.File
	buf  *bufio.Writer
	gz   *gzip.Writer
}

// CreateOutput creates or truncates the file at path.  If path ends in ".gz",
// the output is gzip compressed.
func CreateOutput(ctx context.Context, path string) (*Output, error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return nil, errors.E(err, "create output", path)
	}
	o := &Output{ctx: ctx, path: path, out: out}
	var w io.Writer = out.Writer(ctx)
	if strings.HasSuffix(path, ".gz") {
		o.gz = gzip.NewWriter(w)
		w = o.gz
	}
	o.buf = bufio.NewWriterSize(w, 1<<20)
	o.PairWriter = NewPairWriter(o.buf)
	return o, nil
}

// Write implements Sink.
func (o *Output) Write(p *pairwise.Pair) error {
	if err := o.PairWriter.Write(p); err != nil {
		return errors.E(err, "write", o.path)
	}
	return nil
}

// Close flushes buffered pairs and closes the file.  The file is closed even
// when flushing fails.
func (o *Output) Close() error {
	err := errors.Once{}
	err.Set(o.buf.Flush())
	if o.gz != nil {
		err.Set(o.gz.Close())
	}
	err.Set(o.out.Close(o.ctx))
	if e := err.Err(); e != nil {
		return errors.E(e, "write", o.path)
	}
	return nil
}
