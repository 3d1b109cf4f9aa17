package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/devconf/internal/application/port"
	"github.com/bnema/devconf/internal/cli/styles"
)

var (
	signalTTL      time.Duration
	signalNoExpiry bool
	signalExitCode bool
)

var errSignalNotRaised = errors.New("signal not raised")

var signalCmd = &cobra.Command{
	Use:   "signal",
	Short: "Manage named inter-process signals",
	Long: `Named signals are flag files shared between processes. They are unrelated
to document locks.`,
}

var signalCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Raise a signal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if err := a.Signals.Create(a.Ctx(), args[0]); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), styles.NewDocumentRenderer(a.Theme).RenderSuccess("raised "+args[0]))
		return nil
	},
}

var signalCheckCmd = &cobra.Command{
	Use:   "check <name>",
	Short: "Report whether a signal is raised",
	Long: `Report whether a signal is raised.

By default the check consumes the signal. With --ttl the signal stays until it
is older than the given duration, and with --no-expiry it never expires.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		ttl := signalTTL
		if signalNoExpiry {
			ttl = port.SignalNoExpiry
		}
		raised, err := a.Signals.Check(a.Ctx(), args[0], ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), raised)
		if signalExitCode && !raised {
			return errSignalNotRaised
		}
		return nil
	},
}

var signalClearCmd = &cobra.Command{
	Use:   "clear <prefix>",
	Short: "Remove every signal starting with or scoped to a prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		n, err := a.Signals.Clear(a.Ctx(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), styles.NewDocumentRenderer(a.Theme).RenderInfo(styles.IconFlag, fmt.Sprintf("cleared %d signals", n)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(signalCmd)
	signalCmd.AddCommand(signalCreateCmd, signalCheckCmd, signalClearCmd)

	signalCheckCmd.Flags().DurationVar(&signalTTL, "ttl", port.SignalSingleUse, "signal lifetime; 0 consumes it")
	signalCheckCmd.Flags().BoolVar(&signalNoExpiry, "no-expiry", false, "never expire the signal")
	signalCheckCmd.Flags().BoolVar(&signalExitCode, "exit-code", false, "exit with status 1 when the signal is not raised")
}
