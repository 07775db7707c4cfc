package cli

import (
	"context"

	"github.com/dmitrijs2005/passkeeper/internal/client/generator"
	"github.com/dmitrijs2005/passkeeper/internal/client/i18n"
)

// Gen generates a password. Optional arguments set the length and the
// class letters (l, u, d, s) before generating; they stick for later runs.
func (a *App) Gen(ctx context.Context, args []string) error {
	if len(args) > 2 {
		printlnFn(a.tr.T(i18n.ReplUsage, map[string]any{"Usage": "gen [length] [luds]"}))
		return nil
	}
	if len(args) >= 1 {
		n, err := generator.ParseLength(args[0])
		if err != nil {
			printlnFn(a.tr.T(i18n.NoticeError, map[string]any{"Error": err.Error()}))
			return err
		}
		if err := a.ctrl.SetLength(n); err != nil {
			return err
		}
	}
	if len(args) == 2 {
		c, err := generator.ParseClasses(args[1])
		if err != nil {
			printlnFn(a.tr.T(i18n.NoticeError, map[string]any{"Error": err.Error()}))
			return err
		}
		a.ctrl.SetClasses(c)
	}

	p, err := a.ctrl.Generate()
	if err != nil {
		printlnFn(a.tr.T(i18n.NoticeError, map[string]any{"Error": err.Error()}))
		return err
	}
	printlnFn(a.tr.T(i18n.GeneratorSettings, map[string]any{
		"Length": a.ctrl.Length(), "Classes": a.ctrl.Classes().String(),
	}))
	printlnFn(a.tr.T(i18n.GeneratorGenerated, map[string]any{"Password": p}))
	return nil
}

// Use puts the generated password into the add form.
func (a *App) Use(ctx context.Context) error {
	a.ctrl.AdoptGenerated()
	return nil
}

// Copy copies the generated password to the clipboard.
func (a *App) Copy(ctx context.Context) error {
	return a.ctrl.CopyGenerated()
}

// Mask toggles echo of the password prompt used by add.
func (a *App) Mask(ctx context.Context) error {
	if a.ctrl.ToggleInputVisibility() {
		printlnFn(a.tr.T(i18n.NoticeInputShown))
	} else {
		printlnFn(a.tr.T(i18n.NoticeInputHidden))
	}
	return nil
}
