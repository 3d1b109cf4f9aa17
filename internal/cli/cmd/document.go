package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/devconf/internal/application/usecase"
	"github.com/bnema/devconf/internal/cli/styles"
	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/infrastructure/filelock"
)

var (
	getJSON      bool
	setString    bool
	setNoWrite   bool
	showJSON     bool
	exportOutput string
	exportFormat string
	profileJSON  bool
)

var getCmd = &cobra.Command{
	Use:   "get <document> <key.path>",
	Short: "Print one value of a document",
	Long: `Print the value stored at a dotted key path.

Scalars are printed as-is; mappings and sequences are printed as YAML, or as
JSON with --json.

Examples:
  devconf get ngi_local_conf listener.sample_rate
  devconf get ngi_user_info speech --json`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

var setCmd = &cobra.Command{
	Use:   "set <document> <key.path> <value>",
	Short: "Set one value and write the document",
	Long: `Set the value at a dotted key path and write the document under its lock.

The value is parsed as a YAML scalar or flow collection, so "8000" is stored
as a number and "[a, b]" as a list. Use --string to store the text verbatim.

Examples:
  devconf set ngi_local_conf listener.sample_rate 8000
  devconf set ngi_user_info user.first_name Ada
  devconf set ngi_local_conf devVars.version 22.04 --string`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

var showCmd = &cobra.Command{
	Use:   "show <document>",
	Short: "Print a whole document",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var exportCmd = &cobra.Command{
	Use:   "export <document>",
	Short: "Write a plain JSON or TOML copy of a document",
	Long: `Write a derived copy of a document for consumers that cannot read YAML.

Without --output the copy is written next to the document as <document>.json
(or .toml with --format toml).`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <document> <file>",
	Short: "Replace a document with the content of a JSON, TOML or YAML file",
	Long: `Replace the whole content of a document and write it under its lock.

JSON files may contain whole-line // and # comments, as deprecated .conf
files do.`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

var deleteKeysCmd = &cobra.Command{
	Use:   "delete-keys <document> <key>...",
	Short: "Remove keys by name at any depth and write the document",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runDeleteKeys,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List known documents",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var profileCmd = &cobra.Command{
	Use:   "profile [document]",
	Short: "Print the flattened user preference profile",
	Long: `Print the speech, user, brands, location and units sections of the user
document merged into one flat map.

With --default the profile is built from the shipped template instead, with
unset preferences reported as -1.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(getCmd, setCmd, showCmd, exportCmd, importCmd, deleteKeysCmd, listCmd, profileCmd)

	getCmd.Flags().BoolVar(&getJSON, "json", false, "print collections as JSON")
	setCmd.Flags().BoolVar(&setString, "string", false, "store the value as a string")
	setCmd.Flags().BoolVar(&setNoWrite, "dry-run", false, "print the resulting document without writing it")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print as JSON")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "json or toml (default from settings)")
	profileCmd.Flags().BoolVar(&profileJSON, "json", false, "print as JSON")
	profileCmd.Flags().Bool("default", false, "build the profile from the shipped template")
}

func runGet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	store, err := a.Store(args[0])
	if err != nil {
		return err
	}

	path := document.ParseKeyPath(args[1])
	doc, err := store.Content(a.Ctx())
	if err != nil {
		return err
	}
	node, ok := doc.Lookup(path)
	if !ok {
		return fmt.Errorf("%s: key %q not found", args[0], path)
	}
	if node.Kind == yaml.ScalarNode {
		v, _ := doc.Get(path)
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	}
	return printDocument(cmd, document.Wrap(document.CloneNode(node)), getJSON)
}

func runSet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	store, err := a.Store(args[0])
	if err != nil {
		return err
	}

	value, err := parseValue(args[2], setString)
	if err != nil {
		return err
	}
	path := document.ParseKeyPath(args[1])
	ctx := a.Ctx()

	if setNoWrite {
		if err := store.Set(ctx, path, value); err != nil {
			return err
		}
		doc, err := store.Content(ctx)
		if err != nil {
			return err
		}
		return printDocument(cmd, doc, false)
	}

	if err := store.Update(ctx, path, value, true); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewDocumentRenderer(a.Theme).RenderSuccess(fmt.Sprintf("%s %s updated", args[0], path)))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	store, err := a.Store(args[0])
	if err != nil {
		return err
	}
	doc, err := store.Content(a.Ctx())
	if err != nil {
		return err
	}
	return printDocument(cmd, doc, showJSON)
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	store, err := a.Store(args[0])
	if err != nil {
		return err
	}

	output := exportOutput
	if output == "" {
		format := exportFormat
		if format == "" {
			format = a.Settings.Export.Format
		}
		if format == "toml" {
			output = strings.TrimSuffix(store.File().ExportPath(), ".json") + ".toml"
		}
	}
	path, err := store.Export(a.Ctx(), output)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewDocumentRenderer(a.Theme).RenderSuccess("Exported to "+path))
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	store, err := a.Store(args[0])
	if err != nil {
		return err
	}
	if err := store.ImportFile(a.Ctx(), args[1]); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewDocumentRenderer(a.Theme).RenderSuccess(
		fmt.Sprintf("Imported %s into %s", args[1], store.File().Path())))
	return nil
}

func runDeleteKeys(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	store, err := a.Store(args[0])
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	if err := store.DeleteKeys(ctx, args[1:]); err != nil {
		return err
	}
	if err := store.Write(ctx); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewDocumentRenderer(a.Theme).RenderSuccess(
		fmt.Sprintf("Removed %s from %s", strings.Join(args[1:], ", "), args[0])))
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	names, err := a.Registry.Names()
	if err != nil {
		return err
	}

	entries := make([]styles.ListEntry, 0, len(names))
	for _, name := range names {
		store, err := a.Store(name)
		if err != nil {
			return err
		}
		path := store.File().Path()
		entries = append(entries, styles.ListEntry{
			Name:   name,
			Exists: a.Repo.Exists(path),
			Locked: filelock.Held(path),
		})
	}

	r := styles.NewDocumentRenderer(a.Theme)
	fmt.Fprint(cmd.OutOrStdout(), r.RenderHeader("documents", a.Registry.Dir()))
	fmt.Fprint(cmd.OutOrStdout(), r.RenderList(entries))
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	name := "ngi_user_info"
	if len(args) == 1 {
		name = args[0]
	}

	var profile map[string]any
	if useDefault, _ := cmd.Flags().GetBool("default"); useDefault {
		template, ok := a.Templates.Template(name)
		if !ok {
			return fmt.Errorf("%s has no template", name)
		}
		profile, err = usecase.BuildDefaultUserProfile(template)
	} else {
		var store *usecase.ConfigStore
		store, err = a.Store(name)
		if err != nil {
			return err
		}
		profile, err = usecase.UserProfile(a.Ctx(), store)
	}
	if err != nil {
		return err
	}

	doc, err := document.FromMap(profile)
	if err != nil {
		return err
	}
	return printDocument(cmd, doc, profileJSON)
}

// parseValue reads a command-line value as YAML so that numbers, booleans
// and flow collections keep their type.
func parseValue(raw string, asString bool) (any, error) {
	if asString {
		return raw, nil
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("parse value %q: %w", raw, err)
	}
	if v == nil && raw != "~" && raw != "null" {
		return raw, nil
	}
	return v, nil
}

func printDocument(cmd *cobra.Command, doc *document.Document, asJSON bool) error {
	var (
		out []byte
		err error
	)
	if asJSON {
		out, err = doc.MarshalIndentJSON()
	} else {
		out, err = doc.Marshal()
	}
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
