// Package view holds the presentation state of the credential list and the
// pure function that turns records plus that state into something a
// frontend can draw.
package view

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/passkeeper/internal/client/generator"
	"github.com/dmitrijs2005/passkeeper/internal/client/models"
)

// Mask is shown in place of a password that is not revealed. Its length does
// not depend on the password.
const Mask = "••••••••"

// Flags are the per-record display toggles.
type Flags struct {
	Expanded bool
	Revealed bool
}

// Form is the add-password form.
type Form struct {
	Service  string
	Login    string
	Password string
}

// State is everything the list and its panels need besides the records.
type State struct {
	Flags        map[string]Flags
	InputVisible bool
	Form         Form

	Length    int
	Classes   generator.Class
	Generated string

	Pending *DeleteRequest
}

// ItemView describes one row of the list. Login and Password are only set
// when the row is expanded.
type ItemView struct {
	Id       string
	Icon     string
	Service  string
	Expanded bool
	Revealed bool
	Login    string
	Password string
}

// View is the result of Render.
type View struct {
	Items []ItemView
	Empty bool

	InputVisible bool
	Form         Form

	Length    int
	Classes   generator.Class
	Generated string

	Pending *DeleteRequest
}

// Icon returns the first character of service in upper case, or "?".
func Icon(service string) string {
	r, size := utf8.DecodeRuneInString(service)
	if size == 0 || r == utf8.RuneError {
		return "?"
	}
	return strings.ToUpper(string(r))
}

// Render builds a View. It does not modify records or st.
func Render(records []models.Credential, st *State) View {
	v := View{
		Items:        make([]ItemView, 0, len(records)),
		Empty:        len(records) == 0,
		InputVisible: st.InputVisible,
		Form:         st.Form,
		Length:       st.Length,
		Classes:      st.Classes,
		Generated:    st.Generated,
	}
	if !st.InputVisible {
		v.Form.Password = strings.Repeat("•", utf8.RuneCountInString(st.Form.Password))
	}
	if st.Pending != nil {
		p := *st.Pending
		v.Pending = &p
	}

	for _, r := range records {
		f := st.Flags[r.Id]
		item := ItemView{
			Id:       r.Id,
			Icon:     Icon(r.Service),
			Service:  r.Service,
			Expanded: f.Expanded,
		}
		if f.Expanded {
			item.Login = r.Login
			item.Revealed = f.Revealed
			item.Password = Mask
			if f.Revealed {
				item.Password = r.Password
			}
		}
		v.Items = append(v.Items, item)
	}

	return v
}
