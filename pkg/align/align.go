// 13 Mar 2026

// Package align reads a codon level multiple sequence alignment from
// a fasta file and hands out codon columns. Sequences begin their
// lives in fasta format, with the organism bookkeeping packed into the
// comment line as "uid=..;" and "tax_id=.." tokens. We pull those out
// once, at read time, so nothing downstream ever looks at the comment
// string again.
package align

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/edsrzf/mmap-go"
)

const cmmtChar byte = '>' // introduces comments in fasta format

// Seq is one aligned sequence. The nucleotide string keeps its gap
// characters, so it has the same length as every other sequence in
// the alignment. A Seq is never modified after the alignment has been
// read.
type Seq struct {
	cmmt  string // fasta comment, without the ">"
	UID   string // sequence identifier, from "uid=..;"
	TaxID string // NCBI taxonomy ID, from "tax_id=.."
	seq   []byte
}

// GetSeq returns the gapped nucleotide sequence.
func (s *Seq) GetSeq() []byte { return s.seq }

// GetCmmt returns the comment, without the leading ">".
func (s *Seq) GetCmmt() string { return s.cmmt }

// Len
func (s *Seq) Len() int { return len(s.seq) }

// upper uppercases a sequence in place. It only knows about bytes
// that can occur in biological sequences.
func (s *Seq) upper() {
	const diff = 'a' - 'A'
	for i, c := range s.seq {
		if 'a' <= c && c <= 'z' {
			s.seq[i] = c - diff
		}
	}
}

var (
	uidPat = regexp.MustCompile(`uid=(\S+?);`)
	taxPat = regexp.MustCompile(`tax_id=(\d+)`)
)

// parseMeta fills in the UID and TaxID fields from the comment. A
// comment without both tokens makes the whole alignment unusable, so
// this is an error, not a warning.
func (s *Seq) parseMeta() error {
	m := uidPat.FindStringSubmatch(s.cmmt)
	if m == nil {
		return fmt.Errorf("no uid= token in comment %q", trimStr(s.cmmt, 40))
	}
	s.UID = m[1]
	if m = taxPat.FindStringSubmatch(s.cmmt); m == nil {
		return fmt.Errorf("no tax_id= token in comment %q", trimStr(s.cmmt, 40))
	}
	s.TaxID = m[1]
	return nil
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Alignment is an ordered set of equal length, codon aligned
// sequences.
type Alignment struct {
	seqs []Seq
}

// NSeq returns the number of sequences.
func (aln *Alignment) NSeq() int { return len(aln.seqs) }

// Len returns the common nucleotide length of the sequences.
func (aln *Alignment) Len() int { return len(aln.seqs[0].seq) }

// NCodons returns the number of codon columns.
func (aln *Alignment) NCodons() int { return aln.Len() / 3 }

// Seqs returns the slice of sequences.
func (aln *Alignment) Seqs() []Seq { return aln.seqs }

// Column returns one codon per sequence at nucleotide offset i, which
// must be a codon boundary. The codons are sub-slices of the original
// sequences, not copies.
func (aln *Alignment) Column(i int) [][]byte {
	col := make([][]byte, len(aln.seqs))
	for j := range aln.seqs {
		col[j] = aln.seqs[j].seq[i : i+3]
	}
	return col
}

// check enforces the invariants everything downstream relies on:
// at least one sequence, all the same length, and a length that is a
// multiple of three. Column index arithmetic assumes all of this.
func (aln *Alignment) check() error {
	if len(aln.seqs) == 0 {
		return errors.New("no sequences found")
	}
	want := len(aln.seqs[0].seq)
	for i := range aln.seqs {
		if n := len(aln.seqs[i].seq); n != want {
			return fmt.Errorf(
				"sequence lengths differ. First is %d, but %q has %d",
				want, trimStr(aln.seqs[i].cmmt, 40), n)
		}
	}
	if want%3 != 0 {
		return fmt.Errorf("alignment length %d is not a multiple of 3", want)
	}
	return nil
}

// parseFasta turns a buffer of fasta text into sequences. The buffer
// may be a mapped file, so sequence bytes are copied out, never
// aliased.
func parseFasta(buf []byte) ([]Seq, error) {
	var seqs []Seq
	var cur *Seq
	for _, line := range bytes.Split(buf, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if line[0] == cmmtChar {
			seqs = append(seqs, Seq{cmmt: string(bytes.TrimSpace(line[1:]))})
			cur = &seqs[len(seqs)-1]
			continue
		}
		if cur == nil {
			return nil, errors.New("sequence data before the first \">\" line")
		}
		cur.seq = append(cur.seq, line...)
	}
	if len(seqs) == 0 {
		return nil, errors.New("no sequences found")
	}
	for i := range seqs {
		if len(seqs[i].seq) == 0 {
			return nil, errors.New("zero length sequence after " + trimStr(seqs[i].cmmt, 40))
		}
	}
	return seqs, nil
}

// ReadFile reads a codon alignment from a fasta file. The file is
// mapped rather than read, which saves a copy on the big alignments
// the ortholog pipeline produces.
func ReadFile(fname string) (*Alignment, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()

	seqs, err := parseFasta(mm)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	for i := range seqs {
		seqs[i].upper()
		if err := seqs[i].parseMeta(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", fname, err)
		}
	}
	aln := &Alignment{seqs: seqs}
	if err := aln.check(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	return aln, nil
}

// Str2Alignment takes nucleotide strings and returns them as an
// alignment. Sequences are named s0, s1, ... and all get the given
// taxonomy ID. It is for testing, so it panics rather than returning
// an error if the strings do not line up.
func Str2Alignment(sIn []string, taxID string) *Alignment {
	aln := new(Alignment)
	for i, s := range sIn {
		uid := fmt.Sprint("s", i)
		f := Seq{
			cmmt:  fmt.Sprintf("uid=%s; tax_id=%s", uid, taxID),
			UID:   uid,
			TaxID: taxID,
			seq:   []byte(s),
		}
		aln.seqs = append(aln.seqs, f)
	}
	if err := aln.check(); err != nil {
		panic(err)
	}
	return aln
}
