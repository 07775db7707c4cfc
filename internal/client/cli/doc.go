// Package cli provides the line-oriented passkeeper client.
//
// App reads commands from an input stream, applies them through a
// view.Controller and prints the rendered list and notices. Entries are
// addressed by their 1-based position in the list as last printed.
//
// Commands:
//
//	list (l)              print the list
//	open <n>              expand or collapse entry n
//	reveal <n>            show or hide the password of entry n
//	add                   prompt for service, login and password and save
//	delete <n>            delete entry n after a y/N confirmation
//	gen [length] [luds]   generate a password
//	use                   put the generated password into the add form
//	copy                  copy the generated password to the clipboard
//	mask                  toggle echo of the password prompt
//	help                  list commands
//	exit | quit           leave
//
// The REPL is started via App.Run(ctx), which blocks until the input ends or
// the user exits.
package cli
