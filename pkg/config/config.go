// 22 Mar 2026

// Package config is for app wide settings that are unmarshalled
// from viper: command line flags bound over an optional scoremsa.yaml
// settings file.
package config

import (
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the root-level settings struct.
type Config struct {
	// disorder predictor command to run once per sequence
	Predictor string `mapstructure:"predictor"`

	// extra arguments for the predictor
	PredictorArgs []string `mapstructure:"predictor-args"`

	// strength cutoff for calling a residue disordered when the
	// predictor does not emit classification letters itself
	Threshold float64 `mapstructure:"threshold"`

	// number of column scoring goroutines
	Workers int `mapstructure:"workers"`
}

// SetDefaults installs the defaults for every setting that has one.
// It must run before flags are bound so that flag values win.
func SetDefaults() {
	viper.SetDefault("threshold", 0.5)
	viper.SetDefault("workers", runtime.GOMAXPROCS(0))
}

// Load reads the optional settings file and returns the populated
// Config. An explicitly named file must exist; the default search
// (scoremsa.yaml in the working directory) may quietly find nothing.
func Load(cfgFile string) Config {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("settings file: %v", err)
		}
	} else {
		viper.SetConfigName("scoremsa")
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				log.Fatalf("settings file: %v", err)
			}
		}
	}
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings, %v", err)
	}
	return c
}
