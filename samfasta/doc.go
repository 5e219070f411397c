// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*Package samfasta converts SAM records aligned to a reference into pairwise
  FASTA alignments.

  For every mapped read with a sequence and an alignment position, the output
  holds four lines:

    >chr1
    ACGT--ACGT
    >read1
    ACGTNNACGT

  The first entry is the stretch of the contig covered by the alignment, the
  second is the read.  Both have the same length: insertions are padded with
  '-' on the reference side and deletions with '-' on the read side.
  Soft-clipped and hard-clipped bases are left out.

  Records that are unmapped, whose contig is missing from the reference, whose
  sequence is "*", or that lack a position are skipped.  Any CIGAR operation
  other than M, I, D, S or H stops the run, as does an alignment that runs
  past the end of its contig.

  Records are processed one at a time, and pairs are written in input order.
*/
package samfasta
