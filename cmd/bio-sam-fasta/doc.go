// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*
bio-sam-fasta converts aligned reads in a SAM file into pairwise FASTA
alignments against the reference they were aligned to.

Usage:

  bio-sam-fasta -input reads.sam -ref ref.fa -output pairs.fa [-full_reference]

For every mapped read with a sequence, the output holds two entries: the
reference block, named after the contig, followed by the read block, named
after the read. Both blocks have the same length. Insertions put '-' in the
reference block, deletions put '-' in the read block, and soft-clipped bases
are dropped. With -full_reference (or -f), the reference block is the whole
contig and the read block is padded with '-' on both sides.

Unmapped reads, reads on contigs missing from -ref, reads without a sequence
and reads without a position are skipped. An unsupported CIGAR operation, or a
CIGAR that runs off the end of its contig, aborts the run after the pairs
written so far. BAM input is recognized but not supported yet.

The reference may be gzip compressed. The output is gzip compressed if its
name ends in ".gz".
*/
package main
