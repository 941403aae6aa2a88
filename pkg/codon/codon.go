// 11 Mar 2026

// Package codon holds the translation table used for scoring codon
// alignments. It is NCBI table 11 with the stop codons given their own
// one letter codes, so TAA is '_', TAG is 'O' (amber readthrough,
// pyrrolysine) and TGA is 'U' (opal readthrough, selenocysteine).
// The inverse table groups codons by the amino acid they encode. The
// size of a group is what the frequency scoring calls the number of
// synonymous codons.
package codon

import (
	"fmt"
	"sort"
)

// One letter codes that do not code for one of the twenty common
// amino acids.
const (
	Stop  byte = '_' // TAA
	Amber byte = 'O' // TAG, pyrrolysine on readthrough
	Opal  byte = 'U' // TGA, selenocysteine on readthrough
	ErrAA byte = 'x' // bucket for gap/ambiguous codons when counting
)

var table = map[string]byte{
	"ATA": 'I', "ATC": 'I', "ATT": 'I', "ATG": 'M',
	"ACA": 'T', "ACC": 'T', "ACG": 'T', "ACT": 'T',
	"AAC": 'N', "AAT": 'N', "AAA": 'K', "AAG": 'K',
	"AGC": 'S', "AGT": 'S', "AGA": 'R', "AGG": 'R',
	"CTA": 'L', "CTC": 'L', "CTG": 'L', "CTT": 'L',
	"CCA": 'P', "CCC": 'P', "CCG": 'P', "CCT": 'P',
	"CAC": 'H', "CAT": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGA": 'R', "CGC": 'R', "CGG": 'R', "CGT": 'R',
	"GTA": 'V', "GTC": 'V', "GTG": 'V', "GTT": 'V',
	"GCA": 'A', "GCC": 'A', "GCG": 'A', "GCT": 'A',
	"GAC": 'D', "GAT": 'D', "GAA": 'E', "GAG": 'E',
	"GGA": 'G', "GGC": 'G', "GGG": 'G', "GGT": 'G',
	"TCA": 'S', "TCC": 'S', "TCG": 'S', "TCT": 'S',
	"TTC": 'F', "TTT": 'F', "TTA": 'L', "TTG": 'L',
	"TAC": 'Y', "TAT": 'Y', "TAA": Stop, "TAG": Amber,
	"TGC": 'C', "TGT": 'C', "TGA": Opal, "TGG": 'W',
}

// flip is the inverse of table. The codon slices are sorted, so
// anybody summing over a synonym group visits codons in a fixed
// order and gets bit for bit reproducible floating point sums.
var flip = flipTable()

func flipTable() map[byte][]string {
	f := make(map[byte][]string)
	for c, aa := range table {
		f[aa] = append(f[aa], c)
	}
	for aa := range f {
		sort.Strings(f[aa])
	}
	return f
}

// badCodons are codon positions that carry no information. They are
// filtered out before anything gets near the translation table.
var badCodons = map[string]bool{"...": true, "---": true, "NNN": true}

// IsBad says whether a codon is one of the gap/ambiguous sentinels.
func IsBad(c []byte) bool { return badCodons[string(c)] }

// Translate maps a codon to its one letter amino acid code. Bad codons
// must be filtered out beforehand, so a miss here means the input was
// not checked and we treat it as a programming error worth reporting.
func Translate(c []byte) (byte, error) {
	aa, ok := table[string(c)]
	if !ok {
		return 0, fmt.Errorf("codon %q not in translation table", c)
	}
	return aa, nil
}

// Synonyms returns the codons coding for amino acid aa, in a fixed
// order. The slice is shared, so callers must not scribble on it.
func Synonyms(aa byte) []string { return flip[aa] }

// NumSyn returns the number of codons synonymous for aa. Zero means
// aa is not an amino acid we know about.
func NumSyn(aa byte) int { return len(flip[aa]) }
