// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package samio

import (
	"github.com/grailbio/hts/sam"
)

// recordIterator yields records held in memory.
type recordIterator struct {
	header *sam.Header
	recs   []*sam.Record
	rec    *sam.Record
}

// NewRecordIterator creates an Iterator that returns "header" from Header and
// yields recs in order.  It is mostly useful in tests.
func NewRecordIterator(header *sam.Header, recs []*sam.Record) Iterator {
	return &recordIterator{header: header, recs: recs}
}

// Header implements the Iterator interface.
func (i *recordIterator) Header() *sam.Header {
	return i.header
}

// Scan implements the Iterator interface.
func (i *recordIterator) Scan() bool {
	if len(i.recs) == 0 {
		i.rec = nil
		return false
	}
	i.rec = i.recs[0]
	i.recs = i.recs[1:]
	return true
}

// Record implements the Iterator interface.
func (i *recordIterator) Record() *sam.Record {
	return i.rec
}

// Err implements the Iterator interface.
func (i *recordIterator) Err() error {
	return nil
}

// Close implements the Iterator interface.
func (i *recordIterator) Close() error {
	return nil
}
