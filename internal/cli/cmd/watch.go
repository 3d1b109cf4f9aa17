package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/devconf/internal/cli/styles"
	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/logging"
)

var watchKey string

var watchCmd = &cobra.Command{
	Use:   "watch <document>",
	Short: "Print a document whenever another process changes it",
	Long: `Follow a document and print it (or one key with --key) each time another
process writes it. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchKey, "key", "k", "", "only print this dotted key")
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	store, err := a.Store(args[0])
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	r := styles.NewDocumentRenderer(a.Theme)
	w := cmd.OutOrStdout()
	log := logging.FromContext(ctx)

	fmt.Fprint(w, r.RenderInfo(styles.IconEye, "watching "+store.File().Path()))
	return store.Watch(ctx, func(doc *document.Document) {
		fmt.Fprintf(w, "\n%s\n", a.Theme.Subtle.Render(time.Now().Format(time.TimeOnly)))
		if watchKey == "" {
			if err := printDocument(cmd, doc, false); err != nil {
				log.Warn().Err(err).Msg("failed to print document")
			}
			return
		}
		v, ok := doc.Get(document.ParseKeyPath(watchKey))
		if !ok {
			fmt.Fprintf(w, "%s: <unset>\n", watchKey)
			return
		}
		fmt.Fprintf(w, "%s: %v\n", watchKey, v)
	})
}
