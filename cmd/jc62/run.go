package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/jc62/machine"
	"github.com/ezrec/jc62/session"
	"github.com/ezrec/jc62/trace"
)

var (
	runTrace    bool
	runFormat   string
	runMaxSteps int
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Assemble and run a program to completion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := loadConfig()
		if err != nil {
			return
		}

		if cmd.Flags().Changed("format") {
			cfg.Format, err = trace.ParseFormat(runFormat)
			if err != nil {
				return
			}
		}
		if cmd.Flags().Changed("max-steps") {
			cfg.MaxSteps = runMaxSteps
			err = cfg.Validate()
			if err != nil {
				return
			}
		}

		ses, err := newSession(cfg, args[0])
		if err != nil {
			return fmt.Errorf("%v: %w", args[0], err)
		}

		tape := &trace.Tape{Output: cmd.OutOrStdout(), Format: cfg.Format}
		err = runProgram(ses, tape, runTrace)
		if err != nil {
			return fmt.Errorf("%v: %w", args[0], err)
		}

		return
	},
}

// runProgram runs a session to completion. Every snapshot is recorded as it
// happens when every is set, otherwise only the final state is.
func runProgram(ses *session.Session, tape *trace.Tape, every bool) (err error) {
	var each func(snap machine.Snapshot) error
	if every {
		each = tape.Record
	}

	_, run_err := ses.RunEach(each)

	if !every {
		err = tape.Record(ses.GetState())
		if err != nil {
			return
		}
	}

	return run_err
}

func init() {
	runCmd.Flags().BoolVarP(&runTrace, "trace", "t", false, "Record every step, not only the final state")
	runCmd.Flags().StringVarP(&runFormat, "format", "f", string(trace.FORMAT_TEXT), "Trace format (text or json)")
	runCmd.Flags().IntVarP(&runMaxSteps, "max-steps", "n", 0, "Step budget, 0 for none")
	rootCmd.AddCommand(runCmd)
}
