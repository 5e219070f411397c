// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package samio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/hts/sam"
)

// FileType represents the container type of an alignment file.
type FileType int

const (
	// Unknown is a sentinel.
	Unknown FileType = iota
	// SAM is the text container.
	SAM
	// BAM is the binary container.  It is recognized but cannot be read.
	BAM
)

// String implements fmt.Stringer.
func (t FileType) String() string {
	switch t {
	case SAM:
		return "sam"
	case BAM:
		return "bam"
	default:
		return "unknown"
	}
}

// GuessFileType returns the file type from the path extension, ignoring case.
func GuessFileType(path string) FileType {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".sam"):
		return SAM
	case strings.HasSuffix(lower, ".bam"):
		return BAM
	default:
		return Unknown
	}
}

// CheckFileType returns an error of kind errors.NotSupported unless path
// names a container that Open can read.
func CheckFileType(path string) error {
	switch GuessFileType(path) {
	case SAM:
		return nil
	case BAM:
		return errors.E(errors.NotSupported, fmt.Sprintf("BAM input is not supported yet: %s", path))
	default:
		return errors.E(errors.NotSupported, fmt.Sprintf("input must end in .sam or .bam, found %s", path))
	}
}

// Iterator iterates over the sam.Records of one input, in file order.
// Thread compatible.
type Iterator interface {
	// Header returns the header of the input.  The caller must not modify it.
	Header() *sam.Header

	// Scan reports whether there are any records remaining, and if so,
	// advances to the next record.  If an error occurs, Scan returns false and
	// the error can be retrieved by calling Err.
	Scan() bool

	// Record returns the current record.  Valid only after Scan returns true.
	Record() *sam.Record

	// Err returns the error encountered during iteration, or nil.  An io.EOF
	// is translated to nil.
	Err() error

	// Close must be called exactly once.  It returns the value of Err, or an
	// error closing the underlying file.
	Close() error
}

type samIterator struct {
	ctx  context.Context
	path string
	in   file.File
	r    *sam.Reader
	rec  *sam.Record
	n    int
	done bool
	err  error
}

// Open opens the alignment file at path and parses its header.  Only SAM is
// supported; other containers fail with errors.NotSupported.
func Open(ctx context.Context, path string) (Iterator, error) {
	if err := CheckFileType(path); err != nil {
		return nil, err
	}
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "open input", path)
	}
	r, err := sam.NewReader(in.Reader(ctx))
	if err != nil {
		_ = in.Close(ctx)
		return nil, errors.E(err, "read SAM header", path)
	}
	return &samIterator{ctx: ctx, path: path, in: in, r: r}, nil
}

// Header implements Iterator.
func (i *samIterator) Header() *sam.Header {
	return i.r.Header()
}

// Scan implements Iterator.
func (i *samIterator) Scan() bool {
	if i.done {
		return false
	}
	rec, err := i.r.Read()
	if err != nil {
		i.done = true
		i.rec = nil
		if err != io.EOF {
			i.err = errors.E(err, fmt.Sprintf("%s: failed to read record %d", i.path, i.n))
		}
		return false
	}
	i.rec = rec
	i.n++
	return true
}

// Record implements Iterator.
func (i *samIterator) Record() *sam.Record {
	return i.rec
}

// Err implements Iterator.
func (i *samIterator) Err() error {
	return i.err
}

// Close implements Iterator.
func (i *samIterator) Close() error {
	err := i.Err()
	if e := i.in.Close(i.ctx); e != nil && err == nil {
		err = errors.E(e, "close input", i.path)
	}
	return err
}
