// Package cmd provides Cobra CLI commands for devconf.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/devconf/internal/cli"
	"github.com/bnema/devconf/internal/cli/styles"
	"github.com/bnema/devconf/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootOpts  cli.Options
	rootCmd   = &cobra.Command{
		Use:   "devconf",
		Short: "Shared device configuration store",
		Long: `devconf - inspect and maintain the configuration documents shared by the
voice, skills and bus services of a device.

Every document is a commented YAML file. Writes from any number of processes
are serialized with a lock marker next to the file and land atomically, so a
reader never sees a half-written document. Documents are created from shipped
templates on first use, relocated out of deprecated file names, and kept
reconciled with their template as software versions change.

Use 'devconf list' to see the known documents, and 'devconf get' or
'devconf show' to read them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(rootOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			app.WithContext(cmd.Context())
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "devconf %s (%s, built %s, %s)\n%s\n",
			buildInfo.Version, buildInfo.Commit, buildInfo.BuildDate, buildInfo.GoVersion, build.RepoURL())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootOpts.SettingsFile, "settings", "", "settings file (default: $XDG_CONFIG_HOME/devconf/settings.toml)")
	rootCmd.PersistentFlags().StringVarP(&rootOpts.ConfigDir, "config-dir", "C", "", "directory holding the documents (overrides settings)")
	rootCmd.PersistentFlags().BoolVarP(&rootOpts.Verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context so that long-running commands such as watch exit cleanly.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}

	theme := styles.NewTheme()
	if app != nil {
		theme = app.Theme
	}
	fmt.Fprint(os.Stderr, styles.NewDocumentRenderer(theme).RenderError(err))
	os.Exit(1)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, errors.New("app not initialized")
	}
	return app, nil
}
