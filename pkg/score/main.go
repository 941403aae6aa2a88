// 21 Mar 2026

package score

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/lowrymj/Codon-Usage-IDRs/pkg/align"
	"github.com/lowrymj/Codon-Usage-IDRs/pkg/disorder"
	"github.com/lowrymj/Codon-Usage-IDRs/pkg/usage"
)

// CmdFlag is literally command line flags after parsing.
type CmdFlag struct {
	Predictor     string   // disorder predictor command
	PredictorArgs []string // extra arguments for the predictor
	Threshold     float64  // disorder cutoff if the predictor gives no letters
	Workers       int      // column scoring goroutines, <1 means one per CPU
}

// ScoreAlignment scores every codon column. Columns are independent
// once the tracks exist, so they are farmed out to a fixed pool of
// workers. Rows land in a slice indexed by column, which keeps the
// output in column order no matter how the scheduler runs things.
func ScoreAlignment(aln *align.Alignment, tracks *disorder.Tracks,
	prov usage.Provider, nworker int) ([]Row, error) {

	if nworker < 1 {
		nworker = runtime.GOMAXPROCS(0)
	}
	ncodon := aln.NCodons()
	seqs := aln.Seqs()
	rows := make([]Row, ncodon)
	errs := make([]error, ncodon)

	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < nworker; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range idx {
				rows[c], errs[c] = scoreColumn(aln.Column(3*c), c, seqs, tracks, prov)
			}
		}()
	}
	for c := 0; c < ncodon; c++ {
		idx <- c
	}
	close(idx)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// warnExists checks if a filename exists and prints a warning
// if we will trash a file. It does not return an error.
func warnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		log.Warn("trashing old version of ", fname)
	}
}

// OutName is the report path for an alignment: the uid of the first
// sequence, which has been the gene of interest by pipeline
// convention, plus a fixed suffix.
func OutName(outDir, uid string) string {
	return filepath.Join(outDir, uid+"_ortholog_msa_scores.csv")
}

// Mymain is the main function for scoring an alignment and writing
// the report. Fatal errors (unreadable alignment, broken codon usage
// directory, a predictor that will not run) come back to the caller;
// degenerate columns do not, they just get placeholder rows.
func Mymain(flags *CmdFlag, alignFile, usageRoot, outDir string) error {
	aln, err := align.ReadFile(alignFile)
	if err != nil {
		return fmt.Errorf("reading alignment: %w", err)
	}
	log.Infof("%d sequences, %d codon columns", aln.NSeq(), aln.NCodons())

	ann := &disorder.CmdAnnotator{
		Cmd:       flags.Predictor,
		Args:      flags.PredictorArgs,
		Threshold: flags.Threshold,
	}
	tracks, err := disorder.BuildTracks(aln, ann)
	if err != nil {
		return fmt.Errorf("disorder annotation: %w", err)
	}

	rows, err := ScoreAlignment(aln, tracks, usage.NewDir(usageRoot), flags.Workers)
	if err != nil {
		return err
	}

	var nSkipped, nPartial int
	for i := range rows {
		switch {
		case rows[i].Identity == 0:
			nSkipped++
		case rows[i].FractionAligned < 1:
			nPartial++
		}
	}
	if nSkipped > 0 || nPartial > 0 {
		log.Infof("%d columns without data, %d partially aligned", nSkipped, nPartial)
	}

	outname := OutName(outDir, aln.Seqs()[0].UID)
	warnExists(outname)
	fp, err := os.Create(outname)
	if err != nil {
		return fmt.Errorf("report file: %w", err)
	}
	wr := NewWriter(fp)
	if err := wr.Header(); err != nil {
		fp.Close()
		return err
	}
	for i := range rows {
		if err := wr.WriteRow(&rows[i]); err != nil {
			fp.Close()
			return err
		}
	}
	if err := fp.Close(); err != nil {
		return err
	}
	log.Info("wrote ", outname)
	return nil
}
