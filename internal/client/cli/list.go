package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/passkeeper/internal/client/i18n"
	"github.com/dmitrijs2005/passkeeper/internal/client/view"
)

// formatList renders v as numbered lines.
func formatList(tr *i18n.Translator, v view.View) string {
	if v.Empty {
		return "🔐 " + tr.T(i18n.EmptyTitle) + "\n   " + tr.T(i18n.EmptyHint)
	}

	var sb strings.Builder
	for i, it := range v.Items {
		marker := "▶"
		if it.Expanded {
			marker = "▼"
		}
		fmt.Fprintf(&sb, "%2d. [%s] %s %s\n", i+1, it.Icon, it.Service, marker)
		if it.Expanded {
			fmt.Fprintf(&sb, "      %s: %s\n", tr.T(i18n.FieldLogin), it.Login)
			fmt.Fprintf(&sb, "      %s: %s\n", tr.T(i18n.FieldPassword), it.Password)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// resolve maps a 1-based list position to a record id.
func (a *App) resolve(arg string) (string, bool) {
	items := a.ctrl.View().Items
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(items) {
		printlnFn(a.tr.T(i18n.ReplBadIndex, map[string]any{"Index": arg}))
		return "", false
	}
	return items[n-1].Id, true
}

// List prints the current list.
func (a *App) List(ctx context.Context) error {
	printlnFn(formatList(a.tr, a.ctrl.View()))
	return nil
}

// Open expands or collapses entry n and reprints the list.
func (a *App) Open(ctx context.Context, arg string) error {
	id, ok := a.resolve(arg)
	if !ok {
		return errBadIndex
	}
	if err := a.ctrl.ToggleExpanded(id); err != nil {
		a.log.Error(ctx, "toggle expanded failed", "id", id, "error", err)
		return err
	}
	return a.List(ctx)
}

// Reveal shows or hides the password of entry n. A collapsed entry is
// expanded first so the change is visible.
func (a *App) Reveal(ctx context.Context, arg string) error {
	id, ok := a.resolve(arg)
	if !ok {
		return errBadIndex
	}
	if !a.ctrl.State().Flags[id].Expanded {
		if err := a.ctrl.ToggleExpanded(id); err != nil {
			return err
		}
	}
	if err := a.ctrl.ToggleRevealed(id); err != nil {
		a.log.Error(ctx, "toggle revealed failed", "id", id, "error", err)
		return err
	}
	return a.List(ctx)
}
