// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

// See doc.go for documentation.

import (
	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/samfasta/samfasta"
	"v.io/x/lib/cmdline"
)

func newCmdRoot() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "bio-sam-fasta",
		Short:    "Convert a SAM file to a pairwise FASTA alignment, given a reference",
		LookPath: false,
	}
	opts := samfasta.Opts{}
	cmd.Flags.StringVar(&opts.Input, "input", "", "An input SAM file containing reads already aligned to the reference. Required.")
	cmd.Flags.StringVar(&opts.Reference, "ref", "", "The reference FASTA the reads were aligned to. It may hold multiple contigs. Required.")
	cmd.Flags.StringVar(&opts.Output, "output", "", "The FASTA alignment output file. Created or truncated. Required.")
	fullHelp := "Output the full alignment, i.e. pad the read with gaps from the beginning of the contig to its end"
	cmd.Flags.BoolVar(&opts.FullReference, "full_reference", false, fullHelp)
	cmd.Flags.BoolVar(&opts.FullReference, "f", false, "Shorthand for -full_reference")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return env.UsageErrorf("bio-sam-fasta takes no arguments, but got %v", argv)
		}
		_, err := samfasta.Run(vcontext.Background(), opts)
		return err
	})
	return cmd
}

func main() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newCmdRoot())
}
