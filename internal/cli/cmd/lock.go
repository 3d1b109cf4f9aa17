package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/devconf/internal/cli/styles"
	"github.com/bnema/devconf/internal/infrastructure/filelock"
)

var lockStaleAfter time.Duration

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Inspect and recover document locks",
}

var lockStatusCmd = &cobra.Command{
	Use:   "status [document]...",
	Short: "Show which documents are locked",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		names, err := documentNames(args)
		if err != nil {
			return err
		}
		r := styles.NewDocumentRenderer(a.Theme)
		for _, name := range names {
			store, err := a.Store(name)
			if err != nil {
				return err
			}
			if filelock.Held(store.File().Path()) {
				fmt.Fprint(cmd.OutOrStdout(), r.RenderInfo(styles.IconLock, name+" is locked"))
			} else {
				fmt.Fprint(cmd.OutOrStdout(), r.RenderInfo(styles.IconUnlock, name+" is free"))
			}
		}
		return nil
	},
}

var lockCleanCmd = &cobra.Command{
	Use:   "clean [document]...",
	Short: "Remove lock markers left behind by processes that died",
	Long: `Remove lock markers older than --stale-after (default from settings).

A marker younger than that may belong to a live writer and is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		maxAge := lockStaleAfter
		if maxAge == 0 {
			maxAge = a.Settings.Lock.StaleAfter
		}
		names, err := documentNames(args)
		if err != nil {
			return err
		}

		r := styles.NewDocumentRenderer(a.Theme)
		removed := 0
		for _, name := range names {
			store, err := a.Store(name)
			if err != nil {
				return err
			}
			ok, err := a.Locker.CleanStale(store.File().Path(), maxAge)
			if err != nil {
				return err
			}
			if ok {
				removed++
				fmt.Fprint(cmd.OutOrStdout(), r.RenderInfo(styles.IconTrash, "removed stale lock of "+name))
			}
		}
		fmt.Fprint(cmd.OutOrStdout(), r.RenderSuccess(fmt.Sprintf("%d stale locks removed", removed)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lockCmd)
	lockCmd.AddCommand(lockStatusCmd, lockCleanCmd)
	lockCleanCmd.Flags().DurationVar(&lockStaleAfter, "stale-after", 0, "minimum marker age (default from settings)")
}

func documentNames(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	return app.Registry.Names()
}
