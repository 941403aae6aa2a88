// 21 Mar 2026

package score_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lowrymj/Codon-Usage-IDRs/pkg/align"
	"github.com/lowrymj/Codon-Usage-IDRs/pkg/disorder"
	. "github.com/lowrymj/Codon-Usage-IDRs/pkg/score"
	"github.com/lowrymj/Codon-Usage-IDRs/pkg/usage"
)

// mapProv serves distributions straight from a map, no files.
type mapProv map[string]usage.Dist

func (m mapProv) Dist(taxID string) (usage.Dist, error) {
	d, ok := m[taxID]
	if !ok {
		return nil, fmt.Errorf("no distribution for tax_id %s", taxID)
	}
	return d, nil
}

// constAnn marks every residue disordered with the given strength.
func constAnn(strength float64) disorder.Func {
	return func(aa []byte) ([]float64, []byte, error) {
		st := make([]float64, len(aa))
		lt := make([]byte, len(aa))
		for i := range aa {
			st[i] = strength
			lt[i] = disorder.DisorderSym
		}
		return st, lt, nil
	}
}

func approxEqual(x, y float64) bool {
	const eps = 0.000001
	d := x - y
	return d < eps && d > -eps
}

// mustRows builds tracks and scores the alignment or dies.
func mustRows(t *testing.T, aln *align.Alignment, prov usage.Provider, nworker int) []Row {
	t.Helper()
	tracks, err := disorder.BuildTracks(aln, constAnn(0.8))
	if err != nil {
		t.Fatal(err)
	}
	rows, err := ScoreAlignment(aln, tracks, prov, nworker)
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

// ecoli is the distribution used in most tests. Frequencies within
// each synonym group sum to 1.
var ecoli = mapProv{"83333": usage.Dist{
	"ATG": 1.0,
	"ATA": 0.2, "ATC": 0.5, "ATT": 0.3,
	"GCA": 0.4, "GCC": 0.3, "GCG": 0.2, "GCT": 0.1,
	"CTG": 0.5, "CTA": 0.1, "CTC": 0.1, "CTT": 0.1, "TTA": 0.1, "TTG": 0.1,
}}

// TestOneColumn is the worked scenario: codons ATG, ATG, ATA and a
// gap. Methionine wins the column with 2 of 3 good rows.
func TestOneColumn(t *testing.T) {
	aln := align.Str2Alignment([]string{"ATG", "ATG", "ATA", "---"}, "83333")
	rows := mustRows(t, aln, ecoli, 1)
	if len(rows) != 1 {
		t.Fatal("expected 1 row, got", len(rows))
	}
	r := rows[0]
	if r.Identity != 'M' {
		t.Fatalf("identity %c, want M", r.Identity)
	}
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"percent id", r.PercentID, 2. / 3},
		{"fraction aligned", r.FractionAligned, 3. / 4},
		// pairs (M,M)=5, (M,I)=1, (M,I)=1 over 3 comparisons
		{"blosum avg", r.BlosumAvg, 7. / 3},
		// the two ATG rows score 1, the rare ATA row 0
		{"avg freq score", r.AvgFreqScore, 2. / 3},
		// M expects 1, I expects 0.5 (only ATC is frequent)
		{"avg expected freq score", r.AvgExpFreqScore, 2.5 / 3},
		{"log avg freq score ratio", r.LogAvgFreqScoreRatio, math.Log((2. / 3) / (2.5 / 3))},
		{"avg freq ratio", r.AvgLogFreqRatio, math.Log(3*0.2) / 3},
		{"avg expected freq ratio", r.AvgLogExpFreqRatio, math.Log(3*0.38) / 3},
		{"fraction disordered", r.FractionDisordered, 1},
		{"avg disorder strength", r.AvgDisorderStrength, 0.8},
	}
	for _, c := range checks {
		if !approxEqual(c.got, c.want) {
			t.Errorf("%s got %g want %g", c.name, c.got, c.want)
		}
	}
	if !approxEqual(r.Difference, r.AvgLogFreqRatio-r.AvgLogExpFreqRatio) {
		t.Error("difference", r.Difference)
	}
	if !approxEqual(r.RelativeDiff, r.Difference/r.AvgLogExpFreqRatio) {
		t.Error("relative difference", r.RelativeDiff)
	}
}

// TestMethionine: a 100% methionine column sits exactly on the
// uniform null model, so both log ratios are exactly zero and the
// relative difference is defined to be zero, not 0/0.
func TestMethionine(t *testing.T) {
	aln := align.Str2Alignment([]string{"ATG", "ATG"}, "83333")
	r := mustRows(t, aln, ecoli, 1)[0]
	if r.AvgLogFreqRatio != 0 || r.AvgLogExpFreqRatio != 0 {
		t.Fatal("log ratios should be exactly 0:", r.AvgLogFreqRatio, r.AvgLogExpFreqRatio)
	}
	if r.RelativeDiff != 0 {
		t.Fatal("relative difference should be exactly 0, got", r.RelativeDiff)
	}
	if r.BlosumAvg != 5 || r.PercentID != 1 {
		t.Fatal("blosum", r.BlosumAvg, "percent id", r.PercentID)
	}
}

// TestPlaceholder covers the degenerate column policy.
func TestPlaceholder(t *testing.T) {
	// all gaps
	aln := align.Str2Alignment([]string{"---ATG", "NNNATG"}, "83333")
	rows := mustRows(t, aln, ecoli, 1)
	if rows[0].Identity != 0 || !math.IsNaN(rows[0].FractionAligned) {
		t.Fatal("all-gap column should be the placeholder row", rows[0])
	}
	if rows[1].Identity != 'M' {
		t.Fatal("second column should still be scored")
	}

	// error bucket ties with methionine, first counted wins
	aln = align.Str2Alignment([]string{"ATG", "ATG", "---", "..."}, "83333")
	if r := mustRows(t, aln, ecoli, 1)[0]; r.Identity != 0 {
		t.Fatal("tie with the error bucket should give a placeholder row, got", r)
	}
}

// TestSingleGoodRow: one good row means no pairwise comparisons, so
// the substitution average has no value rather than dividing by zero.
func TestSingleGoodRow(t *testing.T) {
	aln := align.Str2Alignment([]string{"ATG"}, "83333")
	r := mustRows(t, aln, ecoli, 1)[0]
	if !math.IsNaN(r.BlosumAvg) {
		t.Fatal("blosum average should be the placeholder for a single row")
	}
	if r.PercentID != 1 || r.FractionAligned != 1 {
		t.Fatal("percent id", r.PercentID, "fraction aligned", r.FractionAligned)
	}
}

// TestRowOrderInvariance: the substitution average must not depend
// on the order of rows within the column.
func TestRowOrderInvariance(t *testing.T) {
	fwd := align.Str2Alignment([]string{"ATG", "ATA", "ATT", "CTG"}, "83333")
	rev := align.Str2Alignment([]string{"CTG", "ATT", "ATA", "ATG"}, "83333")
	r1 := mustRows(t, fwd, ecoli, 1)[0]
	r2 := mustRows(t, rev, ecoli, 1)[0]
	if r1.BlosumAvg != r2.BlosumAvg {
		t.Fatal("blosum average depends on row order:", r1.BlosumAvg, r2.BlosumAvg)
	}
	if r1.Identity != r2.Identity || r1.Identity != 'I' {
		t.Fatalf("identity %c vs %c, want I", r1.Identity, r2.Identity)
	}
}

// TestDeterminism: scoring with a pool of workers must give exactly
// the rows that a single worker gives, in column order.
func TestDeterminism(t *testing.T) {
	seqs := []string{
		"ATGGCACTG---ATAGCC",
		"ATGGCCCTANNNATTGCG",
		"ATG---CTG...ATCGCT",
		"ATGGCGTTA---ATAGCA",
	}
	aln := align.Str2Alignment(seqs, "83333")
	want := mustRows(t, aln, ecoli, 1)
	for _, nworker := range []int{2, 4, 8} {
		got := mustRows(t, aln, ecoli, nworker)
		if d := cmp.Diff(want, got, cmpopts.EquateNaNs()); d != "" {
			t.Fatalf("workers=%d rows differ:\n%s", nworker, d)
		}
	}
}

// TestFatalLookups: a broken usage tree or a stop codon in a pairwise
// comparison aborts the run rather than producing a half report.
func TestFatalLookups(t *testing.T) {
	aln := align.Str2Alignment([]string{"ATG", "ATG"}, "666")
	tracks, err := disorder.BuildTracks(aln, constAnn(0))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ScoreAlignment(aln, tracks, ecoli, 1); err == nil {
		t.Fatal("expected an error for an unknown tax_id")
	}

	// TAA translates to the stop code which has no substitution score
	stops := align.Str2Alignment([]string{"TAA", "ATG"}, "83333")
	tracks, err = disorder.BuildTracks(stops, constAnn(0))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ScoreAlignment(stops, tracks, ecoli, 1); err == nil {
		t.Fatal("expected an error for a stop codon pair")
	}
}
