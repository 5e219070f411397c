// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package reference holds the reference contigs that reads are aligned to.
package reference

import (
	"context"
	"io"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/samfasta/encoding/fasta"
)

// Store maps contig names to their full base sequences.  A Store is
// read-only once built and is safe for concurrent reads.
type Store struct {
	seqs  map[string][]byte
	names []string
}

// Load reads every contig of the FASTA file at path.  Compressed files
// (gzip, bzip2, zstd) are decompressed transparently.
func Load(ctx context.Context, path string) (s *Store, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "open reference", path)
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = errors.E(e, "close reference", path)
		}
	}()
	r, _ := compress.NewReader(in.Reader(ctx))
	defer func() {
		if e := r.Close(); e != nil && err == nil {
			err = errors.E(e, "close reference", path)
		}
	}()
	if s, err = Read(r); err != nil {
		return nil, errors.E(err, "read reference", path)
	}
	return s, nil
}

// Read builds a Store from FASTA data.  When a contig name repeats, the
// later sequence replaces the earlier one.
func Read(r io.Reader) (*Store, error) {
	s := &Store{seqs: make(map[string][]byte)}
	sc := fasta.NewScanner(r)
	for sc.Scan() {
		e := sc.Entry()
		if _, ok := s.seqs[e.Name]; ok {
			log.Debug.Printf("reference: contig %s appears more than once, keeping the last", e.Name)
		} else {
			s.names = append(s.names, e.Name)
		}
		s.seqs[e.Name] = e.Seq
	}
	if err := sc.Err(); err != nil {
		return nil, errors.E(errors.Invalid, err)
	}
	return s, nil
}

// Get returns the bases of the named contig.  The caller must not modify the
// returned slice.
func (s *Store) Get(name string) ([]byte, bool) {
	seq, ok := s.seqs[name]
	return seq, ok
}

// ContigLen returns the length of the named contig.
func (s *Store) ContigLen(name string) (int, bool) {
	seq, ok := s.seqs[name]
	return len(seq), ok
}

// Len returns the number of distinct contigs.
func (s *Store) Len() int {
	return len(s.seqs)
}

// Names returns the contig names in order of first appearance.
func (s *Store) Names() []string {
	return s.names
}
