package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/devconf/internal/domain/merge"
)

// DocumentRenderer renders configuration document status messages.
type DocumentRenderer struct {
	theme *Theme
}

// NewDocumentRenderer creates a new document renderer with the given theme.
func NewDocumentRenderer(theme *Theme) *DocumentRenderer {
	return &DocumentRenderer{theme: theme}
}

// RenderHeader renders the document name and path.
func (r *DocumentRenderer) RenderHeader(name, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("\n  %s %s %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Title.Render(name),
		r.theme.Subtle.Render(path),
	)
}

// RenderChanges renders a reconciliation preview, one line per change.
func (r *DocumentRenderer) RenderChanges(changes []merge.Change) string {
	if len(changes) == 0 {
		return ""
	}

	added := lipgloss.NewStyle().Foreground(r.theme.Success)
	removed := lipgloss.NewStyle().Foreground(r.theme.Error)
	changed := lipgloss.NewStyle().Foreground(r.theme.Warning)
	keyStyle := r.theme.Highlight

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  Pending changes (%d):\n", len(changes)))
	for _, c := range changes {
		switch c.Type {
		case merge.ChangeAdded:
			sb.WriteString(fmt.Sprintf("    %s %s = %s\n", added.Render(IconPlus), keyStyle.Render(c.Key), c.NewValue))
		case merge.ChangeRemoved:
			sb.WriteString(fmt.Sprintf("    %s %s = %s\n", removed.Render(IconMinus), keyStyle.Render(c.Key), r.theme.Subtle.Render(c.OldValue)))
		case merge.ChangeModified:
			sb.WriteString(fmt.Sprintf("    %s %s: %s %s %s\n", changed.Render(IconChange), keyStyle.Render(c.Key),
				r.theme.Subtle.Render(c.OldValue), IconCursor, c.NewValue))
		}
	}
	return sb.String()
}

// RenderApplied renders the summary after changes were written.
func (r *DocumentRenderer) RenderApplied(count int, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Applied %s changes to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(fmt.Sprintf("%d", count)),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderUpToDate renders the "document matches its template" message.
func (r *DocumentRenderer) RenderUpToDate(name string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("  %s %s is up to date\n", iconStyle.Render(IconCheck), r.theme.Title.Render(name))
}

// RenderCreated renders the outcome of a first-time migration.
func (r *DocumentRenderer) RenderCreated(path, legacySource string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	from := "template"
	if legacySource != "" {
		from = legacySource
	}
	return fmt.Sprintf("  %s Created %s from %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(filepath.Base(path)),
		r.theme.Subtle.Render(from),
	)
}

// RenderSuccess renders a one-line success message.
func (r *DocumentRenderer) RenderSuccess(msg string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("  %s %s\n", iconStyle.Render(IconCheck), msg)
}

// RenderInfo renders a one-line informational message.
func (r *DocumentRenderer) RenderInfo(icon, msg string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("  %s %s\n", iconStyle.Render(icon), msg)
}

// RenderCanceled renders the message shown when a confirmation is declined.
func (r *DocumentRenderer) RenderCanceled() string {
	return "  " + r.theme.Subtle.Render("Canceled, nothing written.") + "\n"
}

// RenderError renders an error message.
func (r *DocumentRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %v\n", iconStyle.Render(IconX), err)
}

// RenderList renders document names with their on-disk state.
func (r *DocumentRenderer) RenderList(entries []ListEntry) string {
	if len(entries) == 0 {
		return "  " + r.theme.Subtle.Render("No documents found.") + "\n"
	}

	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Name))
	}

	var sb strings.Builder
	for _, e := range entries {
		state := r.theme.SuccessStyle.Render("present")
		if !e.Exists {
			state = r.theme.Subtle.Render("not created")
		}
		if e.Locked {
			state += " " + r.theme.WarningStyle.Render(IconLock+" locked")
		}
		sb.WriteString(fmt.Sprintf("  %s %-*s  %s\n", IconCursor, width, e.Name, state))
	}
	return sb.String()
}

// ListEntry is one row of RenderList.
type ListEntry struct {
	Name   string
	Exists bool
	Locked bool
}
