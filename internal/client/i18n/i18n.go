// Package i18n translates user-facing strings. Messages live in embedded
// YAML files under locales/, one file per language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Message ids.
const (
	AppTitle = "app.title"

	EmptyTitle = "empty.title"
	EmptyHint  = "empty.hint"

	FieldService  = "field.service"
	FieldLogin    = "field.login"
	FieldPassword = "field.password"
	FieldLength   = "field.length"

	ClassLowercase = "class.lowercase"
	ClassUppercase = "class.uppercase"
	ClassDigits    = "class.digits"
	ClassSymbols   = "class.symbols"

	ActionShow   = "action.show"
	ActionHide   = "action.hide"
	ActionDelete = "action.delete"

	ConfirmDelete = "confirm.delete"

	NoticeSaved       = "notice.saved"
	NoticeDeleted     = "notice.deleted"
	NoticeCancelled   = "notice.cancelled"
	NoticeAdopted     = "notice.adopted"
	NoticeCopied      = "notice.copied"
	NoticeCopyFailed  = "notice.copy_failed" // {{.Password}}
	NoticeError       = "notice.error"       // {{.Error}}
	NoticeRecovered   = "notice.recovered"   // {{.Key}}
	NoticeInputShown  = "notice.input_shown"
	NoticeInputHidden = "notice.input_hidden"

	GeneratorTitle     = "generator.title"
	GeneratorGenerated = "generator.generated" // {{.Password}}
	GeneratorSettings  = "generator.settings"  // {{.Length}} {{.Classes}}

	ReplHelp     = "repl.help"
	ReplUnknown  = "repl.unknown"   // {{.Command}}
	ReplBadIndex = "repl.bad_index" // {{.Index}}
	ReplUsage    = "repl.usage"     // {{.Usage}}
	ReplConfirm  = "repl.confirm"
	ReplBye      = "repl.bye"

	TuiHelpList      = "tui.help_list"
	TuiHelpForm      = "tui.help_form"
	TuiHelpGenerator = "tui.help_generator"
	TuiHelpConfirm   = "tui.help_confirm"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

// Translator resolves message ids for one language, falling back to English.
type Translator struct {
	lang      string
	localizer *i18n.Localizer
}

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile(path.Join("locales", f.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", f.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", f.Name(), err)
		}
	}
	return bundle, nil
}

// New loads the embedded locales and returns a Translator for lang.
// An unparsable lang is an error; a well-formed but unshipped one falls
// back to English.
func New(lang string) (*Translator, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	if _, err := language.Parse(lang); err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}

	return &Translator{
		lang:      lang,
		localizer: i18n.NewLocalizer(bundle, lang, DefaultLanguage),
	}, nil
}

// Lang returns the requested language tag.
func (t *Translator) Lang() string { return t.lang }

// T translates id, filling template fields from data. Unknown ids are
// returned unchanged.
func (t *Translator) T(id string, data ...map[string]any) string {
	cfg := &i18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	msg, err := t.localizer.Localize(cfg)
	if err != nil {
		return id
	}
	return msg
}

// Supported lists the languages shipped in locales/.
func Supported() []string {
	files, _ := fs.ReadDir(localeFS, "locales")
	out := make([]string, 0, len(files))
	for _, f := range files {
		name := f.Name()
		out = append(out, name[:len(name)-len(path.Ext(name))])
	}
	return out
}
