// 22 Mar 2026
// Score the columns of a codon level ortholog alignment.

package main

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lowrymj/Codon-Usage-IDRs/pkg/common"
	"github.com/lowrymj/Codon-Usage-IDRs/pkg/config"
	"github.com/lowrymj/Codon-Usage-IDRs/pkg/score"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "scoremsa alignment.fasta usage_dir out_dir",
	Short: "Score the columns of a codon level ortholog alignment",
	Long: `scoremsa reads a codon aligned multiple sequence alignment of
orthologs, looks up each organism's codon usage distribution under
usage_dir/<tax_id>/, runs a disorder predictor once per sequence
and writes one csv row of scores per codon column.

Every sequence comment must carry "uid=..;" and "tax_id=.." tokens.
The report goes to out_dir, named after the first sequence's uid.`,
	Args:          cobra.ExactArgs(3),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	config.SetDefaults()

	rootCmd.Flags().StringP("predictor", "p", "", "disorder predictor command, run once per sequence")
	rootCmd.Flags().StringSlice("predictor-args", nil, "extra arguments passed to the predictor")
	rootCmd.Flags().Float64P("threshold", "d", 0.5, "disorder cutoff if the predictor gives no classification letters")
	rootCmd.Flags().IntP("workers", "w", 0, "column scoring goroutines, 0 means one per CPU")
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "settings file (default ./scoremsa.yaml)")
	rootCmd.Flags().BoolP("verbose", "v", false, "chatty progress output")

	viper.BindPFlag("predictor", rootCmd.Flags().Lookup("predictor"))
	viper.BindPFlag("predictor-args", rootCmd.Flags().Lookup("predictor-args"))
	viper.BindPFlag("threshold", rootCmd.Flags().Lookup("threshold"))
	viper.BindPFlag("workers", rootCmd.Flags().Lookup("workers"))
}

func run(cmd *cobra.Command, args []string) error {
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		log.SetLevel(log.DebugLevel)
	}
	conf := config.Load(cfgFile)
	if conf.Predictor == "" {
		return errors.New("no disorder predictor given (-p or \"predictor\" in the settings file)")
	}
	flags := &score.CmdFlag{
		Predictor:     conf.Predictor,
		PredictorArgs: conf.PredictorArgs,
		Threshold:     conf.Threshold,
		Workers:       conf.Workers,
	}
	return score.Mymain(flags, args[0], args[1], args[2])
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
