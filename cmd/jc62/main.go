// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/jc62/config"
	"github.com/ezrec/jc62/session"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "jc62",
	Short:         "jc62 single accumulator machine simulator",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
}

// loadConfig reads the settings file, or the defaults if none is given.
func loadConfig() (cfg *config.Config, err error) {
	if len(configPath) == 0 {
		cfg = config.Default()
	} else {
		cfg, err = config.Load(configPath)
		if err != nil {
			return
		}
	}

	if verbose {
		cfg.Verbose = true
	}

	return
}

// newSession loads a source listing into a reset session.
func newSession(cfg *config.Config, path string) (ses *session.Session, err error) {
	ses = session.NewSession()
	ses.Verbose = cfg.Verbose
	ses.MaxSteps = cfg.MaxSteps
	ses.Predefines = cfg.Defines
	ses.Presets = cfg.Presets()

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	err = ses.Load(inf)
	if err != nil {
		return
	}

	err = ses.Reset()

	return
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
