package reference_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/samfasta/reference"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/klauspost/compress/gzip"
)

const refData = ">chr1 first contig\nACGTA\nCGT\n>chr2\nGGGG\n"

func TestRead(t *testing.T) {
	s, err := reference.Read(strings.NewReader(refData))
	assert.NoError(t, err)
	expect.EQ(t, s.Len(), 2)
	expect.EQ(t, s.Names(), []string{"chr1", "chr2"})

	seq, ok := s.Get("chr1")
	expect.True(t, ok)
	expect.EQ(t, string(seq), "ACGTACGT")
	n, ok := s.ContigLen("chr2")
	expect.True(t, ok)
	expect.EQ(t, n, 4)

	_, ok = s.Get("chr3")
	expect.False(t, ok)
}

func TestReadDuplicateLastWins(t *testing.T) {
	s, err := reference.Read(strings.NewReader(">chr1\nAAAA\n>chr2\nCC\n>chr1\nTT\n"))
	assert.NoError(t, err)
	expect.EQ(t, s.Len(), 2)
	expect.EQ(t, s.Names(), []string{"chr1", "chr2"})
	seq, _ := s.Get("chr1")
	expect.EQ(t, string(seq), "TT")
}

func TestReadMalformed(t *testing.T) {
	_, err := reference.Read(strings.NewReader("ACGT\n>chr1\nACGT\n"))
	expect.True(t, errors.Is(errors.Invalid, err), "err: %v", err)
}

func TestLoad(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := vcontext.Background()

	plain := filepath.Join(tempDir, "ref.fa")
	assert.NoError(t, ioutil.WriteFile(plain, []byte(refData), 0644))

	gzPath := filepath.Join(tempDir, "ref.fa.gz")
	f, err := os.Create(gzPath)
	assert.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(refData))
	assert.NoError(t, err)
	assert.NoError(t, zw.Close())
	assert.NoError(t, f.Close())

	for _, path := range []string{plain, gzPath} {
		s, err := reference.Load(ctx, path)
		assert.NoError(t, err)
		seq, ok := s.Get("chr2")
		expect.True(t, ok, "path: %s", path)
		expect.EQ(t, string(seq), "GGGG", "path: %s", path)
	}

	_, err = reference.Load(ctx, filepath.Join(tempDir, "missing.fa"))
	expect.True(t, err != nil)
	expect.True(t, strings.Contains(err.Error(), "missing.fa"), "err: %v", err)
}
