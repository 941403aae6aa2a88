// 20 Mar 2026

package score

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lowrymj/Codon-Usage-IDRs/pkg/common"
)

// header names the thirteen fields, in the order downstream plotting
// scripts expect. No field is ever omitted; a value we could not
// compute is written as the placeholder token.
var header = []string{
	"Identity",
	"Percent Identity",
	"Avg Blosum62 Score",
	"Avg Frequency Score",
	"Avg Expected Frequency Score",
	"Log Avg Frequency Score Ratio",
	"Avg Frequency Ratio",
	"Avg Expected Frequency Ratio",
	"Relative Difference",
	"Difference",
	"Fraction Aligned",
	"Fraction Disordered",
	"Avg Disorder Strength",
}

// Writer emits the report, one line per codon column.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Header writes the column name line.
func (wr *Writer) Header() error {
	_, err := fmt.Fprintln(wr.w, strings.Join(header, ","))
	return err
}

// fmtScore formats one value. NaN is the internal marker for "no
// value here", so it becomes the placeholder token. Infinities from
// the log of a zero frequency are written as they are; hiding them
// would hide the data problem that caused them.
func fmtScore(v float64) string {
	if math.IsNaN(v) {
		return common.Placeholder
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteRow writes one row in header order.
func (wr *Writer) WriteRow(r *Row) error {
	ident := common.Placeholder
	if r.Identity != 0 {
		ident = string(r.Identity)
	}
	fields := []string{
		ident,
		fmtScore(r.PercentID),
		fmtScore(r.BlosumAvg),
		fmtScore(r.AvgFreqScore),
		fmtScore(r.AvgExpFreqScore),
		fmtScore(r.LogAvgFreqScoreRatio),
		fmtScore(r.AvgLogFreqRatio),
		fmtScore(r.AvgLogExpFreqRatio),
		fmtScore(r.RelativeDiff),
		fmtScore(r.Difference),
		fmtScore(r.FractionAligned),
		fmtScore(r.FractionDisordered),
		fmtScore(r.AvgDisorderStrength),
	}
	_, err := fmt.Fprintln(wr.w, strings.Join(fields, ","))
	return err
}
