// 20 Mar 2026

// Package score is the analysis engine. It takes a codon alignment,
// the disorder tracks and a codon usage provider and produces one row
// of scores per codon column. Each column is scored by an explicit
// fold over its rows into a column local accumulator, so columns
// share nothing and can be scored in any order.
package score

import (
	"math"

	"github.com/lowrymj/Codon-Usage-IDRs/pkg/align"
	"github.com/lowrymj/Codon-Usage-IDRs/pkg/blosum"
	"github.com/lowrymj/Codon-Usage-IDRs/pkg/codon"
	"github.com/lowrymj/Codon-Usage-IDRs/pkg/disorder"
	"github.com/lowrymj/Codon-Usage-IDRs/pkg/usage"
)

// Row is the aggregate record for one codon column, in the order the
// report writes it. An Identity of zero means the whole row is the
// placeholder; NaN in any float field renders as the placeholder
// token.
type Row struct {
	Identity             byte
	PercentID            float64
	BlosumAvg            float64
	AvgFreqScore         float64
	AvgExpFreqScore      float64
	LogAvgFreqScoreRatio float64
	AvgLogFreqRatio      float64
	AvgLogExpFreqRatio   float64
	RelativeDiff         float64
	Difference           float64
	FractionAligned      float64
	FractionDisordered   float64
	AvgDisorderStrength  float64
}

// PlaceholderRow is what a column with no usable codons gets.
func PlaceholderRow() Row {
	nan := math.NaN()
	return Row{
		PercentID: nan, BlosumAvg: nan,
		AvgFreqScore: nan, AvgExpFreqScore: nan, LogAvgFreqScoreRatio: nan,
		AvgLogFreqRatio: nan, AvgLogExpFreqRatio: nan,
		RelativeDiff: nan, Difference: nan,
		FractionAligned: nan, FractionDisordered: nan, AvgDisorderStrength: nan,
	}
}

// tally counts amino acid occurrences in insertion order, so ties are
// broken by whichever was counted first. The error bucket is seeded
// first, which means an all-tied column between the error bucket and
// a real amino acid goes to the error bucket.
type aaCount struct {
	aa byte
	n  int
}

type tally []aaCount

func newTally() tally { return tally{{aa: codon.ErrAA}} }

func (t *tally) add(aa byte) {
	for i := range *t {
		if (*t)[i].aa == aa {
			(*t)[i].n++
			return
		}
	}
	*t = append(*t, aaCount{aa: aa, n: 1})
}

// argmax returns the first entry with the highest count.
func (t tally) argmax() aaCount {
	best := t[0]
	for _, e := range t[1:] {
		if e.n > best.n {
			best = e
		}
	}
	return best
}

// argmaxAA is argmax restricted to real amino acids.
func (t tally) argmaxAA() aaCount {
	var best aaCount
	for _, e := range t {
		if e.aa != codon.ErrAA && e.n > best.n {
			best = e
		}
	}
	return best
}

// freqScore is 1 if the observed frequency is at least what a uniform
// distribution over the synonym group would give, else 0.
func freqScore(observed float64, nsyn int) float64 {
	if observed >= 1/float64(nsyn) {
		return 1
	}
	return 0
}

// goodRow is one non-bad row of a column.
type goodRow struct {
	j  int    // row index in the alignment
	aa byte   // translated amino acid
	c  string // the codon itself
}

// scoreColumn scores the column of codons at codon offset colIdx.
// col has one codon per sequence, seqs supplies the taxonomy IDs and
// tracks the precomputed disorder output.
//
// Frequency ratio note: rather than the raw frequency, we accumulate
// ln(nsyn * freq), the observed frequency relative to the uniform
// null model for that synonym group. That keeps amino acids with two
// synonymous codons comparable to those with six. A codon missing
// from the distribution has frequency zero and the logarithm goes to
// -Inf, which is propagated, not masked.
func scoreColumn(col [][]byte, colIdx int, seqs []align.Seq,
	tracks *disorder.Tracks, prov usage.Provider) (Row, error) {

	counts := newTally()
	var good []goodRow
	for j, c := range col {
		if codon.IsBad(c) {
			counts.add(codon.ErrAA)
			continue
		}
		aa, err := codon.Translate(c)
		if err != nil {
			return Row{}, err
		}
		counts.add(aa)
		good = append(good, goodRow{j: j, aa: aa, c: string(c)})
	}

	// A column of nothing but gaps, or one where the error bucket
	// wins the count, carries no information. Hard early exit.
	if len(good) == 0 || counts.argmax().aa == codon.ErrAA {
		return PlaceholderRow(), nil
	}

	var (
		disorderCount int
		disorderSum   float64
		obsFreqSum    float64
		expFreqSum    float64
		logObsSum     float64
		logExpSum     float64
		blosumSum     float64
	)

	for n, g := range good {
		if tracks.Letter[g.j][colIdx] == disorder.DisorderSym {
			disorderCount++
		}
		disorderSum += float64(tracks.Strength.Mat[g.j][colIdx])

		dist, err := prov.Dist(seqs[g.j].TaxID)
		if err != nil {
			return Row{}, err
		}
		nsyn := codon.NumSyn(g.aa)
		observed := dist[g.c]
		obsFreqSum += freqScore(observed, nsyn)

		// Expectation of the frequency score under the organism's
		// full distribution, and the sum of squared frequencies for
		// the expected ratio.
		var expected, sumsq float64
		for _, syn := range codon.Synonyms(g.aa) {
			f := dist[syn]
			expected += freqScore(f, nsyn) * f
			sumsq += f * f
		}
		expFreqSum += expected
		logObsSum += math.Log(float64(nsyn) * observed)
		logExpSum += math.Log(float64(nsyn) * sumsq)

		for _, h := range good[n+1:] {
			s, err := blosum.Score(g.aa, h.aa)
			if err != nil {
				return Row{}, err
			}
			blosumSum += s
		}
	}

	goodn := float64(len(good))
	ident := counts.argmaxAA()
	row := Row{
		Identity:            ident.aa,
		PercentID:           float64(ident.n) / goodn,
		FractionAligned:     goodn / float64(len(col)),
		FractionDisordered:  float64(disorderCount) / goodn,
		AvgDisorderStrength: disorderSum / goodn,
		AvgFreqScore:        obsFreqSum / goodn,
		AvgExpFreqScore:     expFreqSum / goodn,
		AvgLogFreqRatio:     logObsSum / goodn,
		AvgLogExpFreqRatio:  logExpSum / goodn,
	}
	if len(good) > 1 {
		row.BlosumAvg = blosumSum / (goodn * (goodn - 1) / 2)
	} else {
		row.BlosumAvg = math.NaN() // no pairs to compare
	}
	row.LogAvgFreqScoreRatio = math.Log(row.AvgFreqScore / row.AvgExpFreqScore)
	row.Difference = row.AvgLogFreqRatio - row.AvgLogExpFreqRatio
	// A column of pure methionine (or anything else with a single
	// codon synonym group) has both ratios exactly 1, so both logs
	// are exactly 0 and the relative difference is defined to be 0
	// rather than 0/0.
	if row.AvgLogExpFreqRatio == 0 && row.AvgLogFreqRatio == 0 {
		row.RelativeDiff = 0
	} else {
		row.RelativeDiff = row.Difference / row.AvgLogExpFreqRatio
	}
	return row, nil
}
