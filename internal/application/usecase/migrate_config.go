package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/bnema/devconf/internal/application/port"
	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/domain/entity"
	"github.com/bnema/devconf/internal/domain/merge"
	"github.com/bnema/devconf/internal/logging"
)

// DefaultLockTimeout bounds lock acquisition when no timeout is configured.
const DefaultLockTimeout = 10 * time.Second

// MigrateConfigInput holds the input for migrating a document.
type MigrateConfigInput struct {
	File entity.ConfigFile
}

// MigrateConfigOutput holds the result of the migration.
type MigrateConfigOutput struct {
	// Document is the canonical content after migration.
	Document *document.Document
	// Created is true when the canonical file did not exist before.
	Created bool
	// LegacySource is the deprecated file the data was imported from, if any.
	LegacySource string
	// Transformed lists legacy sections moved to their current location.
	Transformed []string
	// Changes lists what reconciliation changed on disk.
	Changes []merge.Change
}

// DetectChangesInput holds the input for previewing a reconciliation.
type DetectChangesInput struct {
	File entity.ConfigFile
	// Policy overrides the document's registered policy when not PolicyNone.
	Policy entity.ReconcilePolicy
}

// DetectChangesOutput holds the result of change detection.
type DetectChangesOutput struct {
	// HasChanges is true if any changes were detected.
	HasChanges bool
	// Changes contains all detected changes.
	Changes []merge.Change
	// DiffText is a formatted diff-like string representation.
	DiffText string
}

// MigrateConfigUseCase creates documents on first use, relocates data out of
// deprecated files and keeps documents reconciled with their templates.
type MigrateConfigUseCase struct {
	repo          port.DocumentRepository
	locker        port.FileLock
	templates     port.TemplateProvider
	transformer   port.ConfigTransformer
	diffFormatter port.DiffFormatter
	lockTimeout   time.Duration
	legacyDirs    []string
}

// MigrateOption configures a MigrateConfigUseCase.
type MigrateOption func(*MigrateConfigUseCase)

// WithLockTimeout sets how long persist steps wait for the document lock.
func WithLockTimeout(d time.Duration) MigrateOption {
	return func(uc *MigrateConfigUseCase) {
		if d > 0 {
			uc.lockTimeout = d
		}
	}
}

// WithLegacyDirs adds directories searched for deprecated files, after the
// document's own directory.
func WithLegacyDirs(dirs ...string) MigrateOption {
	return func(uc *MigrateConfigUseCase) {
		uc.legacyDirs = append(uc.legacyDirs, dirs...)
	}
}

// NewMigrateConfigUseCase creates a new migrate config use case.
func NewMigrateConfigUseCase(
	repo port.DocumentRepository,
	locker port.FileLock,
	templates port.TemplateProvider,
	transformer port.ConfigTransformer,
	diffFormatter port.DiffFormatter,
	opts ...MigrateOption,
) *MigrateConfigUseCase {
	uc := &MigrateConfigUseCase{
		repo:          repo,
		locker:        locker,
		templates:     templates,
		transformer:   transformer,
		diffFormatter: diffFormatter,
		lockTimeout:   DefaultLockTimeout,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// LockTimeout returns the lock acquisition budget shared with the stores.
func (uc *MigrateConfigUseCase) LockTimeout() time.Duration {
	return uc.lockTimeout
}

// Ensure brings the document up to date and returns its canonical content.
func (uc *MigrateConfigUseCase) Ensure(ctx context.Context, file entity.ConfigFile) (*document.Document, error) {
	out, err := uc.Execute(ctx, MigrateConfigInput{File: file})
	if err != nil {
		return nil, err
	}
	return out.Document, nil
}

// Execute creates the canonical file when it is missing, then reconciles it
// with the current template. A second run against the same template writes
// nothing and takes no lock.
func (uc *MigrateConfigUseCase) Execute(ctx context.Context, in MigrateConfigInput) (*MigrateConfigOutput, error) {
	file := in.File
	path := file.Path()
	ctx = logging.WithDocument(ctx, file.Name, path)
	log := logging.FromContext(ctx)
	out := &MigrateConfigOutput{}

	if !uc.repo.Exists(path) {
		if err := uc.locker.WithLock(ctx, path, uc.lockTimeout, func() error {
			return uc.create(ctx, file, out)
		}); err != nil {
			return nil, fmt.Errorf("create %s: %w", file.Name, err)
		}
	}

	loaded, err := uc.repo.Load(path)
	if err != nil {
		return nil, err
	}

	profile := uc.templates.Profile(file.Name)
	template, ok := uc.templates.Template(file.Name)
	if !ok || profile.Policy == entity.PolicyNone {
		out.Document = loaded
		return out, nil
	}

	if reconcile(loaded, template, profile.Policy).Equal(loaded) {
		log.Debug().Str("policy", profile.Policy.String()).Msg("document is up to date")
		out.Document = loaded
		return out, nil
	}

	// Another process may have written since the unlocked read: redo the
	// read-reconcile step under the lock before persisting.
	err = uc.locker.WithLock(ctx, path, uc.lockTimeout, func() error {
		current, err := uc.repo.Load(path)
		if err != nil {
			return err
		}
		reconciled := reconcile(current, template, profile.Policy)
		out.Document = reconciled
		if reconciled.Equal(current) {
			return nil
		}
		out.Changes = merge.Diff(current, reconciled)
		return uc.repo.Persist(path, reconciled)
	})
	if err != nil {
		return nil, fmt.Errorf("reconcile %s: %w", file.Name, err)
	}

	if len(out.Changes) > 0 {
		log.Info().
			Str("policy", profile.Policy.String()).
			Int("changes", len(out.Changes)).
			Msg("document reconciled with template")
	}
	return out, nil
}

// create writes the first canonical version of file. It runs under the lock
// and re-checks existence because another process may have won the race.
func (uc *MigrateConfigUseCase) create(ctx context.Context, file entity.ConfigFile, out *MigrateConfigOutput) error {
	path := file.Path()
	if uc.repo.Exists(path) {
		return nil
	}
	log := logging.FromContext(ctx)

	doc, source, err := uc.importLegacy(file)
	if err != nil {
		return err
	}
	if doc != nil {
		out.LegacySource = source
		out.Transformed = uc.transformer.TransformLegacy(file.Name, doc)
		log.Info().
			Str("legacy", source).
			Strs("transformed", out.Transformed).
			Msg("relocating document from deprecated file")
	} else if template, ok := uc.templates.Template(file.Name); ok {
		doc = template
		log.Info().Msg("creating document from template")
	} else {
		doc = document.New()
		log.Info().Msg("creating empty document")
	}

	if err := uc.repo.Persist(path, doc); err != nil {
		return err
	}
	out.Created = true
	return nil
}

// importLegacy returns the content of the first deprecated file found, or a
// nil document when there is none. A deprecated file that cannot be read is
// an error, never a reason to fall back to the template.
func (uc *MigrateConfigUseCase) importLegacy(file entity.ConfigFile) (*document.Document, string, error) {
	legacy := uc.templates.Profile(file.Name).LegacyFiles
	if len(legacy) == 0 {
		return nil, "", nil
	}
	for _, dir := range uc.searchDirs(file) {
		for _, name := range legacy {
			candidate := filepath.Join(dir, name)
			if candidate == file.Path() || !uc.repo.Exists(candidate) {
				continue
			}
			doc, err := uc.repo.Import(candidate)
			if err != nil {
				return nil, candidate, fmt.Errorf("import deprecated file: %w", err)
			}
			return doc, candidate, nil
		}
	}
	return nil, "", nil
}

func (uc *MigrateConfigUseCase) searchDirs(file entity.ConfigFile) []string {
	dirs := []string{file.Dir}
	for _, d := range uc.legacyDirs {
		if d != "" && !slices.Contains(dirs, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// DetectChanges previews what reconciling the document would change without
// writing anything.
func (uc *MigrateConfigUseCase) DetectChanges(ctx context.Context, in DetectChangesInput) (*DetectChangesOutput, error) {
	log := logging.FromContext(ctx)

	template, ok := uc.templates.Template(in.File.Name)
	if !ok {
		return nil, fmt.Errorf("%s: %w", in.File.Name, entity.ErrMissingTemplate)
	}
	policy := in.Policy
	if policy == entity.PolicyNone {
		policy = uc.templates.Profile(in.File.Name).Policy
	}

	current, err := uc.repo.Load(in.File.Path())
	if err != nil {
		return nil, err
	}

	changes := merge.Diff(current, reconcile(current, template, policy))
	if len(changes) == 0 {
		log.Debug().Str("name", in.File.Name).Msg("no document changes detected")
		return &DetectChangesOutput{DiffText: uc.diffFormatter.FormatChanges(nil)}, nil
	}

	log.Debug().Str("name", in.File.Name).Int("changes", len(changes)).Msg("document changes detected")
	return &DetectChangesOutput{
		HasChanges: true,
		Changes:    changes,
		DiffText:   uc.diffFormatter.FormatChanges(changes),
	}, nil
}

// reconcile applies policy; PolicyNone returns an unchanged copy.
func reconcile(doc, template *document.Document, policy entity.ReconcilePolicy) *document.Document {
	switch policy {
	case entity.PolicyStrict:
		return merge.ReconcileStrict(doc, template)
	case entity.PolicyAdditive:
		return merge.ReconcileAdditive(doc, template)
	default:
		return doc.Clone()
	}
}
