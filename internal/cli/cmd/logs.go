package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/devconf/internal/application/port"
	"github.com/bnema/devconf/internal/cli/styles"
)

var (
	logsDir         string
	logsArchiveName string
	logsRetain      time.Duration
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Archive and prune service logs",
}

var logsArchiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Move the current *.log files into a timestamped archive directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		return archiveLogs(a.Ctx(), a.Archiver, styles.NewDocumentRenderer(a.Theme), cmd.OutOrStdout(),
			resolveLogDir(), logsArchiveName)
	},
}

var logsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove log archives older than the retention period",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		retain := logsRetain
		if retain == 0 {
			retain = a.Settings.LogRetention()
		}
		return pruneLogs(a.Ctx(), a.Archiver, styles.NewDocumentRenderer(a.Theme), cmd.OutOrStdout(),
			resolveLogDir(), retain)
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsArchiveCmd, logsPruneCmd)

	logsCmd.PersistentFlags().StringVarP(&logsDir, "dir", "d", "", "log directory (default from settings)")
	logsArchiveCmd.Flags().StringVarP(&logsArchiveName, "name", "n", "", "archive directory name (default: logs--<timestamp>)")
	logsPruneCmd.Flags().DurationVar(&logsRetain, "retain", 0, "keep archives younger than this (default from settings)")
}

func archiveLogs(ctx context.Context, archiver port.LogArchiver, r *styles.DocumentRenderer, w io.Writer, logDir, name string) error {
	dir, err := archiver.Archive(ctx, logDir, name)
	if err != nil {
		return err
	}
	if dir == "" {
		fmt.Fprint(w, r.RenderInfo(styles.IconLogs, "no log directory, nothing to archive"))
		return nil
	}
	fmt.Fprint(w, r.RenderSuccess("archived logs to "+dir))
	return nil
}

func pruneLogs(ctx context.Context, archiver port.LogArchiver, r *styles.DocumentRenderer, w io.Writer, logDir string, retain time.Duration) error {
	removed, err := archiver.Prune(ctx, logDir, retain)
	if err != nil {
		return err
	}
	for _, dir := range removed {
		fmt.Fprint(w, r.RenderInfo(styles.IconTrash, dir))
	}
	fmt.Fprint(w, r.RenderSuccess(fmt.Sprintf("removed %d archives", len(removed))))
	return nil
}

func resolveLogDir() string {
	if logsDir != "" {
		return logsDir
	}
	return app.Settings.LogDir
}
