// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package samio opens alignment files and iterates over their records.
//
// The container is chosen from the file extension, without regard to case:
// ".sam" files are read with github.com/grailbio/hts/sam.  ".bam" files are
// recognized but rejected, as is any other extension.
//
// Example:
//   iter, err := samio.Open(ctx, "foo.sam")
//   if err != nil {
//     ...
//   }
//   for iter.Scan() {
//     rec := iter.Record()
//     ...
//   }
//   if err := iter.Close(); err != nil {
//     ...
//   }
package samio
