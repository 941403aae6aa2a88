// 18 Mar 2026

// Package disorder turns per residue predictions from an external
// disorder predictor into tracks indexed by codon column. The fiddly
// part is bookkeeping, not prediction. The predictor only accepts a
// gapless amino acid sequence, but the scorer works in the gapped
// codon index space of the alignment, so every prediction has to be
// shifted back past the gaps it never saw. Get that wrong by one and
// every column after the first gap is scored with the wrong residue.
package disorder

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/andrew-torda/matrix"

	"github.com/lowrymj/Codon-Usage-IDRs/pkg/align"
	"github.com/lowrymj/Codon-Usage-IDRs/pkg/codon"
)

const (
	DisorderSym byte = 'D' // classification letter meaning disordered

	// Sentinels stored at bad codon positions. They are outside the
	// range of anything a predictor returns, and the scorer never
	// reads them because bad rows are skipped first.
	NoLetter   byte    = '-'
	NoStrength float32 = -1

	// Stop and readthrough codes are not valid predictor input. They
	// are swapped for alanine, which is structurally as neutral as it
	// gets, purely so the predictor accepts the sequence.
	neutralAA byte = 'A'
)

// An Annotator predicts disorder for a gapless amino acid sequence.
// It returns a strength and a classification letter per residue, both
// slices the same length as the input.
type Annotator interface {
	Annotate(aa []byte) (strength []float64, letter []byte, err error)
}

// Func lets a plain function act as an Annotator.
type Func func(aa []byte) ([]float64, []byte, error)

func (f Func) Annotate(aa []byte) ([]float64, []byte, error) { return f(aa) }

// Tracks holds the realigned disorder output for a whole alignment.
// Strength.Mat[j][c] and Letter[j][c] refer to sequence j at codon
// column c. Built once per run, read only afterwards.
type Tracks struct {
	Strength *matrix.FMatrix2d
	Letter   [][]byte
}

// gapless translates a gapped nucleotide sequence for the predictor.
// It returns the amino acid sequence with stop/readthrough codes
// neutralised, plus the codon offsets that held bad codons.
func gapless(s []byte) (aa []byte, bad []int, err error) {
	for i := 0; i < len(s); i += 3 {
		c := s[i : i+3]
		if codon.IsBad(c) {
			bad = append(bad, i/3)
			continue
		}
		a, err := codon.Translate(c)
		if err != nil {
			return nil, nil, err
		}
		switch a {
		case codon.Stop, codon.Amber, codon.Opal:
			a = neutralAA
		}
		aa = append(aa, a)
	}
	return aa, bad, nil
}

// buildTrack annotates one sequence and spreads the result back out
// over the codon columns, dropping sentinels where the bad codons
// were. strength and letter are the caller's rows, already sized to
// the number of codon columns.
func buildTrack(s *align.Seq, ann Annotator, strength []float32, letter []byte) error {
	aa, bad, err := gapless(s.GetSeq())
	if err != nil {
		return fmt.Errorf("sequence %s: %w", s.UID, err)
	}
	var st []float64
	var lt []byte
	if len(aa) > 0 {
		if st, lt, err = ann.Annotate(aa); err != nil {
			return fmt.Errorf("annotating %s: %w", s.UID, err)
		}
		if len(st) != len(aa) || len(lt) != len(aa) {
			return fmt.Errorf(
				"annotating %s: predictor returned %d scores and %d letters for %d residues",
				s.UID, len(st), len(lt), len(aa))
		}
	}

	k, b := 0, 0 // k walks the predictor output, b the bad offsets
	for j := range strength {
		if b < len(bad) && bad[b] == j {
			strength[j] = NoStrength
			letter[j] = NoLetter
			b++
			continue
		}
		strength[j] = float32(st[k])
		letter[j] = lt[k]
		k++
	}
	return nil
}

// BuildTracks annotates every sequence in the alignment, one
// goroutine per sequence. The predictor calls are independent and
// usually the slowest part of a run.
func BuildTracks(aln *align.Alignment, ann Annotator) (*Tracks, error) {
	nseq, ncodon := aln.NSeq(), aln.NCodons()
	tracks := &Tracks{
		Strength: matrix.NewFMatrix2d(nseq, ncodon),
		Letter:   make([][]byte, nseq),
	}
	errs := make([]error, nseq)
	var wg sync.WaitGroup
	seqs := aln.Seqs()
	for j := 0; j < nseq; j++ {
		tracks.Letter[j] = make([]byte, ncodon)
		wg.Add(1)
		go func(j int) {
			defer wg.Done()
			errs[j] = buildTrack(&seqs[j], ann, tracks.Strength.Mat[j], tracks.Letter[j])
		}(j)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return tracks, nil
}

// CmdAnnotator runs an external predictor binary. The predictor gets
// the amino acid sequence on standard input and writes one line per
// residue: position, residue, strength and optionally a
// classification letter. Lines starting with "#" are skipped. If the
// predictor gives no letter column, residues at or above Threshold
// are classified disordered.
type CmdAnnotator struct {
	Cmd       string
	Args      []string
	Threshold float64
}

// Annotate runs the predictor once for the given sequence.
func (ca *CmdAnnotator) Annotate(aa []byte) ([]float64, []byte, error) {
	cmd := exec.Command(ca.Cmd, ca.Args...)
	cmd.Stdin = bytes.NewReader(append(append([]byte{}, aa...), '\n'))
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return nil, nil, fmt.Errorf("%s: %v: %s", ca.Cmd, err, bytes.TrimSpace(ee.Stderr))
		}
		return nil, nil, fmt.Errorf("%s: %w", ca.Cmd, err)
	}
	return ca.parse(out, len(aa))
}

// parse reads the predictor output. nres is how many residues we sent
// and how many lines we insist on getting back.
func (ca *CmdAnnotator) parse(out []byte, nres int) ([]float64, []byte, error) {
	strength := make([]float64, 0, nres)
	letter := make([]byte, 0, nres)
	scnr := bufio.NewScanner(bytes.NewReader(out))
	for scnr.Scan() {
		line := strings.TrimSpace(scnr.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 3 {
			return nil, nil, fmt.Errorf("%s: short output line %q", ca.Cmd, line)
		}
		v, err := strconv.ParseFloat(f[2], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: bad strength in %q", ca.Cmd, line)
		}
		strength = append(strength, v)
		switch {
		case len(f) > 3 && len(f[3]) == 1:
			letter = append(letter, f[3][0])
		case v >= ca.Threshold:
			letter = append(letter, DisorderSym)
		default:
			letter = append(letter, 'O')
		}
	}
	if err := scnr.Err(); err != nil {
		return nil, nil, err
	}
	if len(strength) != nres {
		return nil, nil, fmt.Errorf(
			"%s: %d residues in, %d predictions out", ca.Cmd, nres, len(strength))
	}
	return strength, letter, nil
}
