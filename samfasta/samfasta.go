// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package samfasta

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/hts/sam"
	"github.com/grailbio/samfasta/encoding/samio"
	"github.com/grailbio/samfasta/pairwise"
	"github.com/grailbio/samfasta/reference"
)

// Opts defines a conversion run.
type Opts struct {
	// Input is the SAM file of reads already aligned to Reference.
	Input string
	// Reference is the FASTA file the reads were aligned to.  It may hold
	// any number of contigs, and may be compressed.
	Reference string
	// Output is the FASTA file to create.  A ".gz" suffix compresses it.
	Output string
	// FullReference pads every read block with gaps out to both ends of its
	// contig.
	FullReference bool
}

// Validate checks that all paths are set.
func (o Opts) Validate() error {
	var missing []string
	if o.Input == "" {
		missing = append(missing, "input")
	}
	if o.Reference == "" {
		missing = append(missing, "ref")
	}
	if o.Output == "" {
		missing = append(missing, "output")
	}
	if len(missing) > 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("missing required flags: %s", strings.Join(missing, ", ")))
	}
	return nil
}

// Stats counts what happened to the input records.
type Stats struct {
	// Records is the number of records read.
	Records int
	// Written is the number of pairs written.
	Written int
	// Skipped counts ineligible records by reason.
	Skipped map[pairwise.Status]int
}

// String returns a one-line summary, e.g.
// "records: 10, written: 7, skipped: no-reference=2 no-sequence=1".
func (s Stats) String() string {
	var reasons []string
	for status, n := range s.Skipped {
		reasons = append(reasons, fmt.Sprintf("%v=%d", status, n))
	}
	sort.Strings(reasons)
	summary := fmt.Sprintf("records: %d, written: %d", s.Records, s.Written)
	if len(reasons) > 0 {
		summary += ", skipped: " + strings.Join(reasons, " ")
	}
	return summary
}

// Process reconstructs every record of iter against refs and writes the
// eligible ones to sink, in input order.  Ineligible records are counted and
// skipped.  The first reconstruction, write or read error stops processing.
//
// Process does not close iter.
func Process(iter samio.Iterator, refs pairwise.Reference, sink Sink, opts pairwise.Opts) (Stats, error) {
	stats := Stats{Skipped: map[pairwise.Status]int{}}
	for iter.Scan() {
		rec := iter.Record()
		stats.Records++
		p, status, err := pairwise.Reconstruct(rec, refs, opts)
		if err != nil {
			return stats, errors.E(err, fmt.Sprintf("record %d", stats.Records-1))
		}
		if status != pairwise.OK {
			log.Debug.Printf("skipping %s: %v", rec.Name, status)
			stats.Skipped[status]++
			continue
		}
		if err := sink.Write(&p); err != nil {
			return stats, err
		}
		stats.Written++
	}
	return stats, iter.Err()
}

// CheckHeader logs every @SQ line of header whose length disagrees with the
// loaded contig of the same name.  It returns the number of disagreements.
func CheckHeader(header *sam.Header, refs *reference.Store) int {
	if header == nil {
		return 0
	}
	var n int
	for _, ref := range header.Refs() {
		contigLen, ok := refs.ContigLen(ref.Name())
		if !ok {
			log.Debug.Printf("%s: not in the reference, its reads will be skipped", ref.Name())
			continue
		}
		if ref.Len() != contigLen {
			log.Error.Printf("%s: SAM header length %d differs from reference length %d",
				ref.Name(), ref.Len(), contigLen)
			n++
		}
	}
	return n
}

// Run converts opts.Input to pairwise FASTA in opts.Output.
func Run(ctx context.Context, opts Opts) (stats Stats, err error) {
	if err = opts.Validate(); err != nil {
		return
	}
	if err = samio.CheckFileType(opts.Input); err != nil {
		return
	}

	out, err := CreateOutput(ctx, opts.Output)
	if err != nil {
		return
	}
	e := errors.Once{}
	defer func() {
		e.Set(err)
		e.Set(out.Close())
		err = e.Err()
	}()

	log.Printf("Loading reference sequences from %s...", opts.Reference)
	refs, err := reference.Load(ctx, opts.Reference)
	if err != nil {
		return
	}
	log.Printf("Loaded %d reference sequences...", refs.Len())

	log.Printf("Processing reads from %s...", opts.Input)
	iter, err := samio.Open(ctx, opts.Input)
	if err != nil {
		return
	}
	CheckHeader(iter.Header(), refs)
	stats, err = Process(iter, refs, out, pairwise.Opts{FullReference: opts.FullReference})
	if cerr := iter.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err == nil {
		log.Printf("%s: %v", opts.Input, stats)
	}
	return
}
