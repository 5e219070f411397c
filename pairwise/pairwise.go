// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pairwise materializes the alignment encoded by a SAM record as two
// gap-padded sequences of equal length: the reference bases spanned by the
// alignment, and the read bases placed against them.
//
// For reference ACGTACGT, a read ACGTNNACGT aligned at position 1 with CIGAR
// 4M2I4M becomes
//
//   ACGT--ACGT
//   ACGTNNACGT
//
// With Opts.FullReference, the reference block covers the whole contig and
// the read block is padded with gaps outside the aligned span.
package pairwise

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/hts/sam"
)

// GapChar pads one block wherever the other consumed bases with no
// counterpart.
const GapChar = '-'

// Reference looks up contig bases by name.  *reference.Store implements it.
type Reference interface {
	Get(name string) ([]byte, bool)
}

// Opts controls Reconstruct.
type Opts struct {
	// FullReference extends the reference block to the whole contig, padding
	// the read block with gaps before and after the aligned span.
	FullReference bool
}

// Pair is a reconstructed alignment.  len(Ref)==len(Read) always holds.
type Pair struct {
	RefName  string
	Ref      []byte
	ReadName string
	Read     []byte
}

// Status tells whether a record could be reconstructed, and if not, why.
type Status int

const (
	// OK means the record was reconstructed.
	OK Status = iota
	// NoReference means the record has no reference name (unmapped).
	NoReference
	// UnknownReference means the reference name is not a loaded contig.
	UnknownReference
	// NoSequence means the record's sequence is "*".
	NoSequence
	// NoPosition means the record has no alignment start.
	NoPosition
)

var statusNames = [...]string{
	OK:               "ok",
	NoReference:      "no-reference",
	UnknownReference: "unknown-reference",
	NoSequence:       "no-sequence",
	NoPosition:       "no-position",
}

// String returns a short lowercase name, e.g. "unknown-reference".
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusNames[s]
}

// Gap returns a run of n gap characters.
func Gap(n int) []byte {
	return appendGap(make([]byte, 0, n), n)
}

func appendGap(b []byte, n int) []byte {
	for i := 0; i < n; i++ {
		b = append(b, GapChar)
	}
	return b
}

// Eligibility runs the precondition chain of Reconstruct without walking the
// CIGAR.  On OK it also returns the contig bases.
func Eligibility(rec *sam.Record, refs Reference) (Status, []byte) {
	if rec.Ref == nil {
		return NoReference, nil
	}
	contig, ok := refs.Get(rec.Ref.Name())
	if !ok {
		return UnknownReference, nil
	}
	if rec.Seq.Length == 0 {
		return NoSequence, nil
	}
	if rec.Pos < 0 {
		return NoPosition, nil
	}
	return OK, contig
}

// Reconstruct walks the CIGAR of rec against its contig.  A record that is
// not eligible yields a non-OK status and a nil error.
//
// Reconstruct fails with kind errors.NotSupported when the CIGAR contains an
// operation other than M, I, D, S or H, and with kind errors.Integrity when
// an operation would run past the end of the contig or of the read.
func Reconstruct(rec *sam.Record, refs Reference, opts Opts) (Pair, Status, error) {
	status, contig := Eligibility(rec, refs)
	if status != OK {
		return Pair{}, status, nil
	}
	w := walker{
		rec:    rec,
		contig: contig,
		read:   rec.Seq.Expand(),
		refPos: rec.Pos, // 0-based index of the first aligned reference base.
	}
	if err := w.walk(opts); err != nil {
		return Pair{}, OK, err
	}
	return Pair{
		RefName:  rec.Ref.Name(),
		Ref:      w.refOut,
		ReadName: rec.Name,
		Read:     w.readOut,
	}, OK, nil
}

type walker struct {
	rec     *sam.Record
	contig  []byte
	read    []byte
	refPos  int
	readPos int
	refOut  []byte
	readOut []byte
}

// outputLen computes the final block length so that each block is allocated
// once.  It also rejects unsupported operations before any output is built.
func (w *walker) outputLen(full bool) (int, error) {
	var n, inserted int
	for _, op := range w.rec.Cigar {
		switch op.Type() {
		case sam.CigarMatch, sam.CigarDeletion:
			n += op.Len()
		case sam.CigarInsertion:
			inserted += op.Len()
		case sam.CigarSoftClipped, sam.CigarHardClipped:
		default:
			return 0, errors.E(errors.NotSupported,
				fmt.Sprintf("read %s: unsupported CIGAR operation %v", w.rec.Name, op))
		}
	}
	if full {
		// The prefix, the mapped span and the suffix tile the whole contig.
		return len(w.contig) + inserted, nil
	}
	return n + inserted, nil
}

func (w *walker) walk(opts Opts) error {
	if w.refPos > len(w.contig) {
		return w.refBoundsError(w.refPos, 0)
	}
	n, err := w.outputLen(opts.FullReference)
	if err != nil {
		return err
	}
	w.refOut = make([]byte, 0, n)
	w.readOut = make([]byte, 0, n)

	if opts.FullReference {
		w.refOut = append(w.refOut, w.contig[:w.refPos]...)
		w.readOut = appendGap(w.readOut, w.refPos)
	}
	for _, op := range w.rec.Cigar {
		length := op.Len()
		switch op.Type() {
		case sam.CigarMatch:
			if err := w.checkRef(length); err != nil {
				return err
			}
			if err := w.checkRead(length); err != nil {
				return err
			}
			w.refOut = append(w.refOut, w.contig[w.refPos:w.refPos+length]...)
			w.readOut = append(w.readOut, w.read[w.readPos:w.readPos+length]...)
			w.refPos += length
			w.readPos += length
		case sam.CigarInsertion:
			if err := w.checkRead(length); err != nil {
				return err
			}
			w.refOut = appendGap(w.refOut, length)
			w.readOut = append(w.readOut, w.read[w.readPos:w.readPos+length]...)
			w.readPos += length
		case sam.CigarDeletion:
			if err := w.checkRef(length); err != nil {
				return err
			}
			w.refOut = append(w.refOut, w.contig[w.refPos:w.refPos+length]...)
			w.readOut = appendGap(w.readOut, length)
			w.refPos += length
		case sam.CigarSoftClipped:
			w.readPos += length
		case sam.CigarHardClipped:
			// Hard-clipped bases are not in the sequence.
		}
	}
	if opts.FullReference {
		remaining := len(w.contig) - w.refPos
		w.refOut = append(w.refOut, w.contig[w.refPos:]...)
		w.readOut = appendGap(w.readOut, remaining)
	}
	return nil
}

func (w *walker) checkRef(n int) error {
	if w.refPos+n > len(w.contig) {
		return w.refBoundsError(w.refPos, n)
	}
	return nil
}

func (w *walker) checkRead(n int) error {
	if w.readPos+n > len(w.read) {
		return errors.E(errors.Integrity, fmt.Sprintf(
			"read %s: CIGAR %v consumes read bases [%d,%d) but the sequence has %d bases",
			w.rec.Name, w.rec.Cigar, w.readPos, w.readPos+n, len(w.read)))
	}
	return nil
}

func (w *walker) refBoundsError(pos, n int) error {
	return errors.E(errors.Integrity, fmt.Sprintf(
		"read %s: alignment at %s:%d with CIGAR %v consumes reference bases [%d,%d) past contig length %d",
		w.rec.Name, w.rec.Ref.Name(), w.rec.Pos+1, w.rec.Cigar, pos, pos+n, len(w.contig)))
}
