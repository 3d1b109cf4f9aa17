package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/devconf/internal/application/usecase"
	"github.com/bnema/devconf/internal/cli"
	"github.com/bnema/devconf/internal/cli/styles"
	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/domain/entity"
	"github.com/bnema/devconf/internal/domain/merge"
)

var (
	reconcileYes      bool
	reconcilePolicy   string
	reconcileTemplate string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [document]...",
	Short: "Create, relocate and reconcile documents",
	Long: `Bring documents up to date. Without arguments every known document is
processed.

A missing document is created from the first deprecated file found (which is
left untouched) or from its shipped template. An existing document is then
reconciled with its template: device-local documents strictly (keys not in
the template are removed), user documents additively (missing keys are added,
nothing is removed). Running migrate twice writes nothing the second time.`,
	RunE: runMigrate,
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile <document>",
	Short: "Preview and apply a reconciliation with a template",
	Long: `Compare a document with a template and apply the differences.

The shipped template and the document's registered policy are used unless
--template or --policy say otherwise. Strict reconciliation removes keys, so
it asks for confirmation before writing unless --yes is given.

Examples:
  devconf reconcile ngi_local_conf
  devconf reconcile ngi_user_info --policy strict
  devconf reconcile skills_conf --template ./skills_conf.yml --policy additive -y`,
	Args: cobra.ExactArgs(1),
	RunE: runReconcile,
}

func init() {
	rootCmd.AddCommand(migrateCmd, reconcileCmd)
	reconcileCmd.Flags().BoolVarP(&reconcileYes, "yes", "y", false, "skip confirmation prompt")
	reconcileCmd.Flags().StringVarP(&reconcilePolicy, "policy", "p", "", "strict or additive (default: the document's policy)")
	reconcileCmd.Flags().StringVarP(&reconcileTemplate, "template", "t", "", "template file (default: the shipped template)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	names := args
	if len(names) == 0 {
		if names, err = a.Registry.Names(); err != nil {
			return err
		}
	}

	r := styles.NewDocumentRenderer(a.Theme)
	w := cmd.OutOrStdout()
	fmt.Fprint(w, r.RenderHeader("migrate", a.Registry.Dir()))
	for _, name := range names {
		store, err := a.Store(name)
		if err != nil {
			return err
		}
		out, err := a.Migrator.Execute(a.Ctx(), usecase.MigrateConfigInput{File: store.File()})
		if err != nil {
			return err
		}
		renderMigration(w, r, name, store.File().Path(), out)
	}
	return nil
}

func renderMigration(w io.Writer, r *styles.DocumentRenderer, name, path string, out *usecase.MigrateConfigOutput) {
	switch {
	case out.Created:
		fmt.Fprint(w, r.RenderCreated(path, out.LegacySource))
		for _, section := range out.Transformed {
			fmt.Fprint(w, r.RenderInfo(styles.IconInfo, "moved legacy section "+section))
		}
	case len(out.Changes) > 0:
		fmt.Fprint(w, r.RenderChanges(out.Changes))
		fmt.Fprint(w, r.RenderApplied(len(out.Changes), path))
	default:
		fmt.Fprint(w, r.RenderUpToDate(name))
	}
}

func runReconcile(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	store, err := a.Store(args[0])
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	if err := store.Ensure(ctx); err != nil {
		return err
	}

	policy, err := resolvePolicy(a, store.File().Name)
	if err != nil {
		return err
	}
	template, err := resolveTemplate(a, store.File().Name)
	if err != nil {
		return err
	}

	changes, err := previewReconcile(ctx, a, store, template, policy)
	if err != nil {
		return err
	}

	r := styles.NewDocumentRenderer(a.Theme)
	w := cmd.OutOrStdout()
	fmt.Fprint(w, r.RenderHeader(store.File().Name, store.File().Path()))
	if len(changes) == 0 {
		fmt.Fprint(w, r.RenderUpToDate(store.File().Name))
		return nil
	}
	fmt.Fprint(w, r.RenderChanges(changes))

	if policy == entity.PolicyStrict && !reconcileYes {
		ok, err := styles.RunConfirm(a.Theme, fmt.Sprintf("Apply %d changes with strict reconciliation?", len(changes)),
			a.Theme.Subtle.Render("Keys missing from the template will be removed."))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprint(w, r.RenderCanceled())
			return nil
		}
	}

	if err := store.Reconcile(ctx, template, policy); err != nil {
		return err
	}
	fmt.Fprint(w, r.RenderApplied(len(changes), store.File().Path()))
	return nil
}

func resolvePolicy(a *cli.App, name string) (entity.ReconcilePolicy, error) {
	if reconcilePolicy == "" {
		policy := a.Templates.Profile(name).Policy
		if policy == entity.PolicyNone {
			return entity.PolicyAdditive, nil
		}
		return policy, nil
	}
	policy, ok := entity.ParseReconcilePolicy(reconcilePolicy)
	if !ok || policy == entity.PolicyNone {
		return entity.PolicyNone, fmt.Errorf("unknown policy %q (use: strict, additive)", reconcilePolicy)
	}
	return policy, nil
}

// resolveTemplate returns the --template file, or else the shipped template.
func resolveTemplate(a *cli.App, name string) (*document.Document, error) {
	if reconcileTemplate != "" {
		return a.Repo.Import(reconcileTemplate)
	}
	template, ok := a.Templates.Template(name)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, entity.ErrMissingTemplate)
	}
	return template, nil
}

func previewReconcile(
	ctx context.Context,
	a *cli.App,
	store *usecase.ConfigStore,
	template *document.Document,
	policy entity.ReconcilePolicy,
) ([]merge.Change, error) {
	if reconcileTemplate == "" {
		out, err := a.Migrator.DetectChanges(ctx, usecase.DetectChangesInput{File: store.File(), Policy: policy})
		if err != nil {
			return nil, err
		}
		return out.Changes, nil
	}

	current, err := store.Content(ctx)
	if err != nil {
		return nil, err
	}
	var after *document.Document
	if policy == entity.PolicyStrict {
		after = merge.ReconcileStrict(current, template)
	} else {
		after = merge.ReconcileAdditive(current, template)
	}
	return merge.Diff(current, after), nil
}
