package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"v.io/x/lib/cmdline"
)

const (
	testRef = ">chr1 test contig\nACGT\nACGT\n"
	testSAM = "@SQ\tSN:chr1\tLN:8\n" +
		"r1\t0\tchr1\t2\t60\t1S2M1I1D1M\t*\t0\t0\tXCGTT\t*\n"
)

func runCmd(args ...string) error {
	return cmdline.ParseAndRun(newCmdRoot(), cmdline.EnvFromOS(), args)
}

func TestMain(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	refPath := filepath.Join(tempDir, "ref.fa")
	samPath := filepath.Join(tempDir, "in.sam")
	assert.NoError(t, ioutil.WriteFile(refPath, []byte(testRef), 0644))
	assert.NoError(t, ioutil.WriteFile(samPath, []byte(testSAM), 0644))

	tests := []struct {
		flags []string
		want  string
	}{
		{nil, ">chr1\nCG-TA\n>r1\nCGT-T\n"},
		{[]string{"-full_reference"}, ">chr1\nACG-TACGT\n>r1\n-CGT-T---\n"},
		{[]string{"-f"}, ">chr1\nACG-TACGT\n>r1\n-CGT-T---\n"},
	}
	for i, tt := range tests {
		outPath := filepath.Join(tempDir, "out.fa")
		args := append([]string{"-input", samPath, "-ref", refPath, "-output", outPath}, tt.flags...)
		assert.NoError(t, runCmd(args...), "test %d", i)
		got, err := ioutil.ReadFile(outPath)
		assert.NoError(t, err)
		expect.EQ(t, string(got), tt.want, "test %d", i)
	}
}

func TestMainUsageErrors(t *testing.T) {
	expect.NotNil(t, runCmd("-input", "in.sam"))
	expect.NotNil(t, runCmd("-input", "in.sam", "-ref", "ref.fa", "-output", "out.fa", "extra"))
	expect.NotNil(t, runCmd("-input", "in.bam", "-ref", "ref.fa", "-output", "out.fa"))
}
