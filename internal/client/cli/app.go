package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/dmitrijs2005/passkeeper/internal/client/i18n"
	"github.com/dmitrijs2005/passkeeper/internal/client/view"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
)

// App is the line-oriented frontend. It owns no credential state; all of it
// lives behind the controller.
type App struct {
	ctrl   *view.Controller
	tr     *i18n.Translator
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

// NewApp wires an App to ctrl and registers it as the controller's notifier.
func NewApp(ctrl *view.Controller, in io.Reader, out io.Writer, log logging.Logger) *App {
	if log == nil {
		log = logging.Nop()
	}
	a := &App{
		ctrl:   ctrl,
		tr:     ctrl.Translator(),
		reader: bufio.NewReader(in),
		out:    out,
		log:    log.With("component", "repl"),
	}
	ctrl.SetNotifier(view.NotifierFunc(a.notify))
	return a
}

func (a *App) notify(n view.Notice) {
	printlnFn(n.Text)
}

// Run prints the title and the list, then serves commands until the input
// ends or the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn(a.tr.T(i18n.AppTitle))
	_ = a.List(ctx)
	printlnFn(a.tr.T(i18n.GeneratorGenerated, map[string]any{"Password": a.ctrl.Generated()}))

	runREPL(ctx, a, a.tr, a.reader)
	a.log.Debug(ctx, "repl finished")
}
