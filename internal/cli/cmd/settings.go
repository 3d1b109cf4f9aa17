package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/devconf/internal/application/usecase"
	"github.com/bnema/devconf/internal/cli/styles"
	"github.com/bnema/devconf/internal/infrastructure/config"
)

var (
	schemaJSON       bool
	schemaJSONSchema bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect the settings of devconf itself",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		source := a.SettingsFile
		if source == "" {
			source = "defaults and environment"
		}
		fmt.Fprint(cmd.OutOrStdout(), styles.NewDocumentRenderer(a.Theme).RenderHeader("settings", source))

		out, err := toml.Marshal(a.Settings)
		if err != nil {
			return fmt.Errorf("encode settings: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var settingsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Describe every settings key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if schemaJSONSchema {
			raw, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return err
		}

		uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
		out, err := uc.Execute(a.Ctx(), usecase.GetConfigSchemaInput{})
		if err != nil {
			return err
		}
		r := styles.NewConfigSchemaRenderer(a.Theme)
		if schemaJSON {
			text, err := r.RenderJSON(out.Keys)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), r.Render(out.Keys))
		return nil
	},
}

var settingsInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a settings file holding the defaults",
	Long:  `Write the default settings to path (default: the XDG settings file). An existing file is never overwritten.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else if path, err = config.GetSettingsFile(); err != nil {
			return err
		}
		if err := config.WriteSettingsOrdered(config.DefaultSettings(), path); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), styles.NewDocumentRenderer(a.Theme).RenderSuccess("wrote "+path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSchemaCmd, settingsInitCmd)
	settingsSchemaCmd.Flags().BoolVar(&schemaJSON, "json", false, "print the key list as JSON")
	settingsSchemaCmd.Flags().BoolVar(&schemaJSONSchema, "jsonschema", false, "print the JSON Schema of the settings file")
}
