package cli

import (
	"context"

	"github.com/dmitrijs2005/passkeeper/internal/client/i18n"
	"github.com/dmitrijs2005/passkeeper/internal/client/view"
)

// readFormPassword reads the password field, without echo unless input
// visibility is on or stdin is not a terminal.
func (a *App) readFormPassword() (string, error) {
	label := a.tr.T(i18n.FieldPassword)
	if a.ctrl.InputVisible() || !stdinIsTerminal() {
		return GetFieldText(a.reader, label, a.out)
	}
	pw, err := GetPassword(label, a.out)
	if err != nil {
		return "", err
	}
	defer wipe(pw)
	return string(pw), nil
}

// Add prompts for the form fields and saves a new entry. An empty password
// answer keeps a password already placed in the form by "use".
func (a *App) Add(ctx context.Context) error {
	form := a.ctrl.Form()

	service, err := GetFieldText(a.reader, a.tr.T(i18n.FieldService), a.out)
	if err != nil {
		return err
	}
	login, err := GetFieldText(a.reader, a.tr.T(i18n.FieldLogin), a.out)
	if err != nil {
		return err
	}
	password, err := a.readFormPassword()
	if err != nil {
		a.log.Error(ctx, "password input failed", "error", err)
		return err
	}
	if password == "" {
		password = form.Password
	}

	a.ctrl.SetForm(view.Form{Service: service, Login: login, Password: password})
	if _, err := a.ctrl.SubmitForm(ctx); err != nil {
		return err
	}
	return a.List(ctx)
}
