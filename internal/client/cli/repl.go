package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/passkeeper/internal/client/i18n"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Open(ctx context.Context, arg string) error
	Reveal(ctx context.Context, arg string) error
	Add(ctx context.Context) error
	Delete(ctx context.Context, arg string) error
	Gen(ctx context.Context, args []string) error
	Use(ctx context.Context) error
	Copy(ctx context.Context) error
	Mask(ctx context.Context) error
}

// argOrUsage returns the single argument of a command, or prints its usage.
func argOrUsage(tr *i18n.Translator, args []string, usage string) (string, bool) {
	if len(args) != 1 {
		printlnFn(tr.T(i18n.ReplUsage, map[string]any{"Usage": usage}))
		return "", false
	}
	return args[0], true
}

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, tr *i18n.Translator, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn("pk> ")
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help", "?":
			printlnFn(tr.T(i18n.ReplHelp))

		case "l", "list":
			_ = a.List(ctx)

		case "open", "toggle":
			if n, ok := argOrUsage(tr, args, "open <n>"); ok {
				_ = a.Open(ctx, n)
			}

		case "reveal", "show":
			if n, ok := argOrUsage(tr, args, "reveal <n>"); ok {
				_ = a.Reveal(ctx, n)
			}

		case "add":
			_ = a.Add(ctx)

		case "delete", "rm":
			if n, ok := argOrUsage(tr, args, "delete <n>"); ok {
				_ = a.Delete(ctx, n)
			}

		case "gen", "generate":
			_ = a.Gen(ctx, args)

		case "use":
			_ = a.Use(ctx)

		case "copy":
			_ = a.Copy(ctx)

		case "mask":
			_ = a.Mask(ctx)

		case "exit", "quit":
			printlnFn(tr.T(i18n.ReplBye))
			return

		default:
			printlnFn(tr.T(i18n.ReplUnknown, map[string]any{"Command": cmd}))
		}

		if err != nil {
			// last line had no newline
			return
		}
	}
}
