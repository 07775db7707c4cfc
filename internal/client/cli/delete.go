package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/passkeeper/internal/client/i18n"
)

var errBadIndex = errors.New("bad index")

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "д", "да":
		return true
	}
	return false
}

// Delete asks for confirmation and deletes entry n.
func (a *App) Delete(ctx context.Context, arg string) error {
	id, ok := a.resolve(arg)
	if !ok {
		return errBadIndex
	}

	req, err := a.ctrl.RequestDelete(id)
	if err != nil {
		a.log.Error(ctx, "delete request failed", "id", id, "error", err)
		return err
	}

	answer, err := GetSimpleText(a.reader, a.tr.T(i18n.ConfirmDelete)+" ["+req.Service+"] "+a.tr.T(i18n.ReplConfirm), a.out)
	if err != nil || !isYes(answer) {
		a.ctrl.CancelDelete()
		return err
	}

	if err := a.ctrl.ConfirmDelete(ctx, req); err != nil {
		return err
	}
	return a.List(ctx)
}
