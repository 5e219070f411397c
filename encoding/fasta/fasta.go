// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fasta contains code for reading and writing FASTA files.  FASTA
// files consist of a number of named sequences that may be interrupted by
// newlines.  For example:
//
// >chr7
// ACGTAC
// GAGGAC
// GCG
// >chr8
// ACGT
//
// Note: Sequence names are defined to be the stretch of characters excluding
// spaces immediately after '>'.  Any text appear after a space are ignored.
// For example, '>chr1 A viral sequence' becomes 'chr1'.
package fasta

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

const (
	bufferInitSize = 1024 * 1024 * 300 // 300 MB
)

// Entry is one named sequence.
type Entry struct {
	Name string
	Seq  []byte
}

// Scanner iterates over the entries of FASTA data, one sequence at a time.
// Sequence lines of an entry are concatenated.  Scanners are not threadsafe.
//
// Scanner performs some validation: sequence data must be preceded by a
// header line, and a header must carry a non-empty name.  An entry with a
// header but no sequence lines yields an empty Seq.
type Scanner struct {
	b       *bufio.Scanner
	err     error
	entry   Entry
	pending string // name of the next entry, if its header was already read.
	started bool
	done    bool
}

// NewScanner constructs a Scanner that reads FASTA data from r.
func NewScanner(r io.Reader) *Scanner {
	b := bufio.NewScanner(r)
	b.Buffer(nil, bufferInitSize)
	return &Scanner{b: b}
}

// Scan advances to the next entry and reports whether there is one.  Once
// Scan returns false, it never returns true again.  The caller should then
// check Err to tell a clean end of input from a failure.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.done {
		return false
	}
	var seq bytes.Buffer
	name, haveName := s.pending, s.started
	for s.b.Scan() {
		line := bytes.TrimRight(s.b.Bytes(), "\r")
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' { // Start a new sequence.
			next, err := parseName(line)
			if err != nil {
				s.err = err
				return false
			}
			if !haveName {
				name, haveName = next, true
				s.started = true
				continue
			}
			s.pending = next
			s.entry = Entry{Name: name, Seq: seq.Bytes()}
			return true
		}
		if !haveName {
			s.err = errors.Errorf("malformed FASTA file: sequence data before the first header")
			return false
		}
		seq.Write(line)
	}
	if s.b.Err() != nil {
		s.err = errors.Wrap(s.b.Err(), "couldn't read FASTA data")
		return false
	}
	s.done = true
	if !haveName {
		return false
	}
	s.entry = Entry{Name: name, Seq: seq.Bytes()}
	return true
}

// Entry returns the entry read by the last successful call to Scan.  The
// returned value is not reused by later calls.
func (s *Scanner) Entry() Entry {
	return s.entry
}

// Err returns the first error encountered by the scanner, or nil if the input
// was consumed cleanly.
func (s *Scanner) Err() error {
	return s.err
}

func parseName(line []byte) (string, error) {
	fields := bytes.Fields(line[1:])
	if len(fields) == 0 {
		return "", errors.Errorf("malformed FASTA file: empty sequence name")
	}
	return string(fields[0]), nil
}
