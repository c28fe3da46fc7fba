package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ezrec/jc62/session"
)

var definesCmd = &cobra.Command{
	Use:   "defines",
	Short: "List the predefined assembler equates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := loadConfig()
		if err != nil {
			return
		}

		ses := session.NewSession()
		ses.Predefines = cfg.Defines

		defines := maps.Collect(ses.Assembler().Defines())
		for _, name := range slices.Sorted(maps.Keys(defines)) {
			fmt.Fprintf(cmd.OutOrStdout(), "%v = %v\n", name, defines[name])
		}

		return
	},
}

func init() {
	rootCmd.AddCommand(definesCmd)
}
