package fasta_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/grailbio/samfasta/encoding/fasta"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

var fastaData = ">seq1\n" + "ACGTA\nCGTAC\nGT\n" + ">seq2 A viral sequence\n" + "ACGT\n" + "ACGT\n"

func scanAll(t *testing.T, data string) ([]fasta.Entry, error) {
	s := fasta.NewScanner(strings.NewReader(data))
	var entries []fasta.Entry
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	return entries, s.Err()
}

func TestScan(t *testing.T) {
	tests := []struct {
		data  string
		names []string
		seqs  []string
	}{
		{fastaData, []string{"seq1", "seq2"}, []string{"ACGTACGTACGT", "ACGTACGT"}},
		{">a\nAC\n\n>b\n\nGG\n", []string{"a", "b"}, []string{"AC", "GG"}},
		{">a\r\nAC\r\nGT\r\n", []string{"a"}, []string{"ACGT"}},
		{">a\n>b\nTT", []string{"a", "b"}, []string{"", "TT"}},
		{">dup\nAA\n>dup\nCC\n", []string{"dup", "dup"}, []string{"AA", "CC"}},
		{"", nil, nil},
	}
	for _, tt := range tests {
		entries, err := scanAll(t, tt.data)
		assert.NoError(t, err)
		var names, seqs []string
		for _, e := range entries {
			names = append(names, e.Name)
			seqs = append(seqs, string(e.Seq))
		}
		expect.EQ(t, names, tt.names, "data: %q", tt.data)
		expect.EQ(t, seqs, tt.seqs, "data: %q", tt.data)
	}
}

func TestScanMalformed(t *testing.T) {
	for _, data := range []string{
		"ACGT\n>seq1\nACGT\n",
		">seq1\nACGT\n>\nACGT\n",
		"> \nACGT\n",
	} {
		_, err := scanAll(t, data)
		expect.True(t, err != nil, "data: %q", data)
	}
}

func TestScanStopsAfterError(t *testing.T) {
	s := fasta.NewScanner(strings.NewReader("ACGT\n>seq1\nACGT\n"))
	expect.False(t, s.Scan())
	expect.False(t, s.Scan())
	expect.True(t, s.Err() != nil)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	w := fasta.NewWriter(&buf)
	assert.NoError(t, w.Write("chr1", []byte("ACGT--ACGT")))
	assert.NoError(t, w.Write("read1", []byte("ACGTNNACGT")))
	expect.EQ(t, buf.String(), ">chr1\nACGT--ACGT\n>read1\nACGTNNACGT\n")

	// Written output scans back to the same entries.
	entries, err := scanAll(t, buf.String())
	assert.NoError(t, err)
	expect.EQ(t, len(entries), 2)
	expect.EQ(t, string(entries[1].Seq), "ACGTNNACGT")
}

type failingWriter struct {
	n int
}

var errFull = errors.New("device full")

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, errFull
	}
	f.n--
	return len(p), nil
}

func TestWriteStickyError(t *testing.T) {
	fw := &failingWriter{n: 2}
	w := fasta.NewWriter(fw)
	expect.EQ(t, w.Write("chr1", []byte("ACGT")), errFull)
	expect.EQ(t, w.Write("chr2", []byte("ACGT")), errFull)
	expect.EQ(t, w.Err(), errFull)
	expect.EQ(t, fw.n, 0)
}
