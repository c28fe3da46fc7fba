package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/jc62/session"
	"github.com/ezrec/jc62/trace"
)

var stepCmd = &cobra.Command{
	Use:   "step FILE",
	Short: "Step through a program interactively",
	Long: `Step through a program interactively.

Commands:
  s, <enter>           step one instruction
  m ADDR LABEL VALUE   set a memory cell
  p                    print the machine state
  r                    reset the machine
  q                    quit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := loadConfig()
		if err != nil {
			return
		}

		ses, err := newSession(cfg, args[0])
		if err != nil {
			return fmt.Errorf("%v: %w", args[0], err)
		}

		prompt := term.IsTerminal(int(os.Stdin.Fd()))

		st := &stepper{
			Session: ses,
			Tape:    &trace.Tape{Output: cmd.OutOrStdout(), Format: cfg.Format},
			Output:  cmd.OutOrStdout(),
			Prompt:  prompt,
		}

		return st.Run(cmd.InOrStdin())
	},
}

func init() {
	rootCmd.AddCommand(stepCmd)
}

// stepper is the interactive stepping loop.
type stepper struct {
	*session.Session
	Tape   *trace.Tape
	Output io.Writer
	Prompt bool
}

// Run reads commands until quit or end of input.
func (st *stepper) Run(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	for {
		if st.Prompt {
			fmt.Fprintf(st.Output, "%02d> ", st.Ic+1)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		var quit bool
		quit, err = st.command(strings.Fields(scanner.Text()))
		if err != nil || quit {
			return
		}
	}
}

// command performs one interactive command.
// Mistakes are reported and do not end the session.
func (st *stepper) command(words []string) (quit bool, err error) {
	cmd := "s"
	if len(words) != 0 {
		cmd = words[0]
	}

	switch cmd {
	case "s":
		snap, step_err := st.Step()
		if step_err != nil {
			fmt.Fprintln(st.Output, step_err)
			return
		}
		err = st.Tape.Record(snap)
	case "m":
		if len(words) < 3 || len(words) > 4 {
			fmt.Fprintln(st.Output, "m ADDR LABEL VALUE")
			return
		}
		value := ""
		if len(words) == 4 {
			value = words[3]
		}
		set_err := st.SetMemoryCell(words[1], words[2], value)
		if set_err != nil {
			fmt.Fprintln(st.Output, set_err)
		}
	case "p":
		err = st.Tape.Record(st.GetState())
	case "r":
		err = st.Reset()
		st.Tape.Rewind()
	case "q":
		quit = true
	default:
		fmt.Fprintf(st.Output, "%v: unknown command\n", cmd)
	}

	return
}
