// 12 Mar 2026

// Package blosum provides the BLOSUM62 substitution scores used for
// the pairwise part of column scoring. The table is stored as a half
// matrix, keyed by an amino acid pair in one order only. Score tries
// the mirrored key before giving up, so callers do not have to care
// which ordering is stored.
package blosum

import "fmt"

// pair keys the half matrix. Only one of (a,b) and (b,a) is present.
type pair [2]byte

// blosum62, lower triangle, residue order ARNDCQEGHILKMFPSTWYVBZX.
var blosum62 = map[pair]float64{
	{'A', 'A'}: 4,
	{'R', 'A'}: -1, {'R', 'R'}: 5,
	{'N', 'A'}: -2, {'N', 'R'}: 0, {'N', 'N'}: 6,
	{'D', 'A'}: -2, {'D', 'R'}: -2, {'D', 'N'}: 1, {'D', 'D'}: 6,
	{'C', 'A'}: 0, {'C', 'R'}: -3, {'C', 'N'}: -3, {'C', 'D'}: -3, {'C', 'C'}: 9,
	{'Q', 'A'}: -1, {'Q', 'R'}: 1, {'Q', 'N'}: 0, {'Q', 'D'}: 0, {'Q', 'C'}: -3,
	{'Q', 'Q'}: 5,
	{'E', 'A'}: -1, {'E', 'R'}: 0, {'E', 'N'}: 0, {'E', 'D'}: 2, {'E', 'C'}: -4,
	{'E', 'Q'}: 2, {'E', 'E'}: 5,
	{'G', 'A'}: 0, {'G', 'R'}: -2, {'G', 'N'}: 0, {'G', 'D'}: -1, {'G', 'C'}: -3,
	{'G', 'Q'}: -2, {'G', 'E'}: -2, {'G', 'G'}: 6,
	{'H', 'A'}: -2, {'H', 'R'}: 0, {'H', 'N'}: 1, {'H', 'D'}: -1, {'H', 'C'}: -3,
	{'H', 'Q'}: 0, {'H', 'E'}: 0, {'H', 'G'}: -2, {'H', 'H'}: 8,
	{'I', 'A'}: -1, {'I', 'R'}: -3, {'I', 'N'}: -3, {'I', 'D'}: -3, {'I', 'C'}: -1,
	{'I', 'Q'}: -3, {'I', 'E'}: -3, {'I', 'G'}: -4, {'I', 'H'}: -3, {'I', 'I'}: 4,
	{'L', 'A'}: -1, {'L', 'R'}: -2, {'L', 'N'}: -3, {'L', 'D'}: -4, {'L', 'C'}: -1,
	{'L', 'Q'}: -2, {'L', 'E'}: -3, {'L', 'G'}: -4, {'L', 'H'}: -3, {'L', 'I'}: 2,
	{'L', 'L'}: 4,
	{'K', 'A'}: -1, {'K', 'R'}: 2, {'K', 'N'}: 0, {'K', 'D'}: -1, {'K', 'C'}: -3,
	{'K', 'Q'}: 1, {'K', 'E'}: 1, {'K', 'G'}: -2, {'K', 'H'}: -1, {'K', 'I'}: -3,
	{'K', 'L'}: -2, {'K', 'K'}: 5,
	{'M', 'A'}: -1, {'M', 'R'}: -1, {'M', 'N'}: -2, {'M', 'D'}: -3, {'M', 'C'}: -1,
	{'M', 'Q'}: 0, {'M', 'E'}: -2, {'M', 'G'}: -3, {'M', 'H'}: -2, {'M', 'I'}: 1,
	{'M', 'L'}: 2, {'M', 'K'}: -1, {'M', 'M'}: 5,
	{'F', 'A'}: -2, {'F', 'R'}: -3, {'F', 'N'}: -3, {'F', 'D'}: -3, {'F', 'C'}: -2,
	{'F', 'Q'}: -3, {'F', 'E'}: -3, {'F', 'G'}: -3, {'F', 'H'}: -1, {'F', 'I'}: 0,
	{'F', 'L'}: 0, {'F', 'K'}: -3, {'F', 'M'}: 0, {'F', 'F'}: 6,
	{'P', 'A'}: -1, {'P', 'R'}: -2, {'P', 'N'}: -2, {'P', 'D'}: -1, {'P', 'C'}: -3,
	{'P', 'Q'}: -1, {'P', 'E'}: -1, {'P', 'G'}: -2, {'P', 'H'}: -2, {'P', 'I'}: -3,
	{'P', 'L'}: -3, {'P', 'K'}: -1, {'P', 'M'}: -2, {'P', 'F'}: -4, {'P', 'P'}: 7,
	{'S', 'A'}: 1, {'S', 'R'}: -1, {'S', 'N'}: 1, {'S', 'D'}: 0, {'S', 'C'}: -1,
	{'S', 'Q'}: 0, {'S', 'E'}: 0, {'S', 'G'}: 0, {'S', 'H'}: -1, {'S', 'I'}: -2,
	{'S', 'L'}: -2, {'S', 'K'}: 0, {'S', 'M'}: -1, {'S', 'F'}: -2, {'S', 'P'}: -1,
	{'S', 'S'}: 4,
	{'T', 'A'}: 0, {'T', 'R'}: -1, {'T', 'N'}: 0, {'T', 'D'}: -1, {'T', 'C'}: -1,
	{'T', 'Q'}: -1, {'T', 'E'}: -1, {'T', 'G'}: -2, {'T', 'H'}: -2, {'T', 'I'}: -1,
	{'T', 'L'}: -1, {'T', 'K'}: -1, {'T', 'M'}: -1, {'T', 'F'}: -2, {'T', 'P'}: -1,
	{'T', 'S'}: 1, {'T', 'T'}: 5,
	{'W', 'A'}: -3, {'W', 'R'}: -3, {'W', 'N'}: -4, {'W', 'D'}: -4, {'W', 'C'}: -2,
	{'W', 'Q'}: -2, {'W', 'E'}: -3, {'W', 'G'}: -2, {'W', 'H'}: -2, {'W', 'I'}: -3,
	{'W', 'L'}: -2, {'W', 'K'}: -3, {'W', 'M'}: -1, {'W', 'F'}: 1, {'W', 'P'}: -4,
	{'W', 'S'}: -3, {'W', 'T'}: -2, {'W', 'W'}: 11,
	{'Y', 'A'}: -2, {'Y', 'R'}: -2, {'Y', 'N'}: -2, {'Y', 'D'}: -3, {'Y', 'C'}: -2,
	{'Y', 'Q'}: -1, {'Y', 'E'}: -2, {'Y', 'G'}: -3, {'Y', 'H'}: 2, {'Y', 'I'}: -1,
	{'Y', 'L'}: -1, {'Y', 'K'}: -2, {'Y', 'M'}: -1, {'Y', 'F'}: 3, {'Y', 'P'}: -3,
	{'Y', 'S'}: -2, {'Y', 'T'}: -2, {'Y', 'W'}: 2, {'Y', 'Y'}: 7,
	{'V', 'A'}: 0, {'V', 'R'}: -3, {'V', 'N'}: -3, {'V', 'D'}: -3, {'V', 'C'}: -1,
	{'V', 'Q'}: -2, {'V', 'E'}: -2, {'V', 'G'}: -3, {'V', 'H'}: -3, {'V', 'I'}: 3,
	{'V', 'L'}: 1, {'V', 'K'}: -2, {'V', 'M'}: 1, {'V', 'F'}: -1, {'V', 'P'}: -2,
	{'V', 'S'}: -2, {'V', 'T'}: 0, {'V', 'W'}: -3, {'V', 'Y'}: -1, {'V', 'V'}: 4,
	{'B', 'A'}: -2, {'B', 'R'}: -1, {'B', 'N'}: 3, {'B', 'D'}: 4, {'B', 'C'}: -3,
	{'B', 'Q'}: 0, {'B', 'E'}: 1, {'B', 'G'}: -1, {'B', 'H'}: 0, {'B', 'I'}: -3,
	{'B', 'L'}: -4, {'B', 'K'}: 0, {'B', 'M'}: -3, {'B', 'F'}: -3, {'B', 'P'}: -2,
	{'B', 'S'}: 0, {'B', 'T'}: -1, {'B', 'W'}: -4, {'B', 'Y'}: -3, {'B', 'V'}: -3,
	{'B', 'B'}: 4,
	{'Z', 'A'}: -1, {'Z', 'R'}: 0, {'Z', 'N'}: 0, {'Z', 'D'}: 1, {'Z', 'C'}: -3,
	{'Z', 'Q'}: 3, {'Z', 'E'}: 4, {'Z', 'G'}: -2, {'Z', 'H'}: 0, {'Z', 'I'}: -3,
	{'Z', 'L'}: -3, {'Z', 'K'}: 1, {'Z', 'M'}: -1, {'Z', 'F'}: -3, {'Z', 'P'}: -1,
	{'Z', 'S'}: 0, {'Z', 'T'}: -1, {'Z', 'W'}: -3, {'Z', 'Y'}: -2, {'Z', 'V'}: -2,
	{'Z', 'B'}: 1, {'Z', 'Z'}: 4,
	{'X', 'A'}: 0, {'X', 'R'}: -1, {'X', 'N'}: -1, {'X', 'D'}: -1, {'X', 'C'}: -2,
	{'X', 'Q'}: -1, {'X', 'E'}: -1, {'X', 'G'}: -1, {'X', 'H'}: -1, {'X', 'I'}: -1,
	{'X', 'L'}: -1, {'X', 'K'}: -1, {'X', 'M'}: -1, {'X', 'F'}: -1, {'X', 'P'}: -2,
	{'X', 'S'}: 0, {'X', 'T'}: 0, {'X', 'W'}: -2, {'X', 'Y'}: -1, {'X', 'V'}: -1,
	{'X', 'B'}: -1, {'X', 'Z'}: -1, {'X', 'X'}: -1,
}

// Score returns the similarity score for amino acids a and b. The
// result is the same whichever way round the arguments are given.
// An amino acid outside the table means the caller let a stop or
// readthrough code slip into a pairwise comparison.
func Score(a, b byte) (float64, error) {
	if s, ok := blosum62[pair{a, b}]; ok {
		return s, nil
	}
	if s, ok := blosum62[pair{b, a}]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("no substitution score for pair %c,%c", a, b)
}
