package view

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/client/clipboard"
	"github.com/dmitrijs2005/passkeeper/internal/client/generator"
	"github.com/dmitrijs2005/passkeeper/internal/client/i18n"
	"github.com/dmitrijs2005/passkeeper/internal/client/models"
	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
)

// Store is the part of services.CredentialStore the controller uses.
type Store interface {
	Add(ctx context.Context, service, login, password string) (models.Credential, error)
	Delete(ctx context.Context, id string) (bool, error)
	List() []models.Credential
	Get(id string) (models.Credential, bool)
}

// DeleteRequest is the first half of a two-step delete. Only the most
// recently issued request can be confirmed.
type DeleteRequest struct {
	Id      string
	Service string
	seq     uint64
}

const (
	DefaultLength        = 12
	DefaultNoticeTTL     = 3 * time.Second
	DefaultCopyNoticeTTL = 2 * time.Second
)

// Options configures a Controller. Zero values select defaults.
type Options struct {
	Translator *i18n.Translator
	Notifier   Notifier
	Clipboard  clipboard.Copier
	Generator  *generator.Generator
	Logger     logging.Logger

	Length  int
	Classes generator.Class

	NoticeTTL     time.Duration
	CopyNoticeTTL time.Duration
}

// Controller applies user actions to the store and the view state and
// reports their outcome through a Notifier.
type Controller struct {
	store     Store
	tr        *i18n.Translator
	notifier  Notifier
	clipboard clipboard.Copier
	gen       *generator.Generator
	log       logging.Logger

	noticeTTL     time.Duration
	copyNoticeTTL time.Duration

	state State
	seq   uint64
}

// NewController returns a Controller over store with a freshly generated
// password already in the generator panel.
func NewController(store Store, opts Options) (*Controller, error) {
	c := &Controller{
		store:         store,
		tr:            opts.Translator,
		notifier:      opts.Notifier,
		clipboard:     opts.Clipboard,
		gen:           opts.Generator,
		log:           opts.Logger,
		noticeTTL:     opts.NoticeTTL,
		copyNoticeTTL: opts.CopyNoticeTTL,
		state: State{
			Flags:   make(map[string]Flags),
			Length:  opts.Length,
			Classes: opts.Classes,
		},
	}

	if c.tr == nil {
		tr, err := i18n.New(i18n.DefaultLanguage)
		if err != nil {
			return nil, err
		}
		c.tr = tr
	}
	if c.notifier == nil {
		c.notifier = NotifierFunc(func(Notice) {})
	}
	if c.clipboard == nil {
		c.clipboard = clipboard.NewSystem()
	}
	if c.gen == nil {
		c.gen = generator.New(nil)
	}
	if c.log == nil {
		c.log = logging.Nop()
	}
	if c.state.Length == 0 {
		c.state.Length = DefaultLength
	}
	if c.noticeTTL == 0 {
		c.noticeTTL = DefaultNoticeTTL
	}
	if c.copyNoticeTTL == 0 {
		c.copyNoticeTTL = DefaultCopyNoticeTTL
	}
	c.log = c.log.With("component", "view_controller")

	if err := c.SetLength(c.state.Length); err != nil {
		return nil, err
	}
	if _, err := c.Generate(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetNotifier replaces the notice sink.
func (c *Controller) SetNotifier(n Notifier) { c.notifier = n }

// Translator returns the translator notices are rendered with.
func (c *Controller) Translator() *i18n.Translator { return c.tr }

// View renders the current records and state.
func (c *Controller) View() View {
	return Render(c.store.List(), &c.state)
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	st := c.state
	st.Flags = make(map[string]Flags, len(c.state.Flags))
	for k, v := range c.state.Flags {
		st.Flags[k] = v
	}
	if c.state.Pending != nil {
		p := *c.state.Pending
		st.Pending = &p
	}
	return st
}

func (c *Controller) notify(level Level, ttl time.Duration, id string, data ...map[string]any) {
	c.notifier.Notify(Notice{Text: c.tr.T(id, data...), Level: level, TTL: ttl})
}

func (c *Controller) notifyError(err error) {
	c.notify(LevelError, c.noticeTTL, i18n.NoticeError, map[string]any{"Error": err.Error()})
}

// Announce sends a translated informational notice.
func (c *Controller) Announce(id string, data ...map[string]any) {
	c.notify(LevelInfo, c.noticeTTL, id, data...)
}

// prune drops flags and a pending delete that refer to records no longer
// in the store.
func (c *Controller) prune() {
	live := make(map[string]struct{})
	for _, r := range c.store.List() {
		live[r.Id] = struct{}{}
	}
	for id := range c.state.Flags {
		if _, ok := live[id]; !ok {
			delete(c.state.Flags, id)
		}
	}
	if c.state.Pending != nil {
		if _, ok := live[c.state.Pending.Id]; !ok {
			c.state.Pending = nil
		}
	}
}

func (c *Controller) mustExist(id string) error {
	if _, ok := c.store.Get(id); !ok {
		return fmt.Errorf("credential %q: %w", id, common.ErrorNotFound)
	}
	return nil
}

// ToggleExpanded opens or closes the details of a record.
func (c *Controller) ToggleExpanded(id string) error {
	if err := c.mustExist(id); err != nil {
		return err
	}
	f := c.state.Flags[id]
	f.Expanded = !f.Expanded
	c.state.Flags[id] = f
	return nil
}

// ToggleRevealed switches a record's password between the mask and the
// literal text. The text only shows while the record is expanded.
func (c *Controller) ToggleRevealed(id string) error {
	if err := c.mustExist(id); err != nil {
		return err
	}
	f := c.state.Flags[id]
	f.Revealed = !f.Revealed
	c.state.Flags[id] = f
	return nil
}

// ToggleInputVisibility switches the form password between masked and
// literal and returns the new setting.
func (c *Controller) ToggleInputVisibility() bool {
	c.state.InputVisible = !c.state.InputVisible
	return c.state.InputVisible
}

// InputVisible reports whether the form password is shown literally.
func (c *Controller) InputVisible() bool { return c.state.InputVisible }

// SetForm replaces the form contents.
func (c *Controller) SetForm(f Form) { c.state.Form = f }

// Form returns the form contents unmasked.
func (c *Controller) Form() Form { return c.state.Form }

// SubmitForm adds a record from the form. On success the form is cleared;
// on failure it is left as is.
func (c *Controller) SubmitForm(ctx context.Context) (models.Credential, error) {
	f := c.state.Form
	rec, err := c.store.Add(ctx, f.Service, f.Login, f.Password)
	if err != nil {
		c.log.Error(ctx, "add failed", "error", err)
		c.notifyError(err)
		return models.Credential{}, err
	}

	c.state.Form = Form{}
	c.prune()
	c.notify(LevelSuccess, c.noticeTTL, i18n.NoticeSaved)
	return rec, nil
}

// RequestDelete starts deleting id. The returned request supersedes any
// earlier one.
func (c *Controller) RequestDelete(id string) (DeleteRequest, error) {
	rec, ok := c.store.Get(id)
	if !ok {
		return DeleteRequest{}, fmt.Errorf("credential %q: %w", id, common.ErrorNotFound)
	}
	c.seq++
	req := DeleteRequest{Id: rec.Id, Service: rec.Service, seq: c.seq}
	c.state.Pending = &req
	return req, nil
}

// Pending returns the outstanding delete request, if any.
func (c *Controller) Pending() (DeleteRequest, bool) {
	if c.state.Pending == nil {
		return DeleteRequest{}, false
	}
	return *c.state.Pending, true
}

// ConfirmDelete commits req. It fails with common.ErrNoPendingDelete when
// req is not the outstanding request.
func (c *Controller) ConfirmDelete(ctx context.Context, req DeleteRequest) error {
	p := c.state.Pending
	if p == nil || p.seq != req.seq || p.Id != req.Id {
		return common.ErrNoPendingDelete
	}
	c.state.Pending = nil

	removed, err := c.store.Delete(ctx, req.Id)
	if err != nil {
		c.log.Error(ctx, "delete failed", "id", req.Id, "error", err)
		c.notifyError(err)
		return err
	}

	c.prune()
	if removed {
		c.notify(LevelSuccess, c.noticeTTL, i18n.NoticeDeleted)
	}
	return nil
}

// CancelDelete drops the outstanding request.
func (c *Controller) CancelDelete() {
	if c.state.Pending == nil {
		return
	}
	c.state.Pending = nil
	c.notify(LevelInfo, c.noticeTTL, i18n.NoticeCancelled)
}

// Length is the generator length setting.
func (c *Controller) Length() int { return c.state.Length }

// Classes is the generator class setting.
func (c *Controller) Classes() generator.Class { return c.state.Classes }

// Generated is the last generated password.
func (c *Controller) Generated() string { return c.state.Generated }

// SetLength changes the generator length without generating.
func (c *Controller) SetLength(n int) error {
	if n < 1 || n > generator.MaxLength {
		return fmt.Errorf("%w: %d (want 1..%d)", generator.ErrInvalidLength, n, generator.MaxLength)
	}
	c.state.Length = n
	return nil
}

// ToggleClass flips one or more character classes.
func (c *Controller) ToggleClass(cl generator.Class) {
	c.state.Classes = c.state.Classes.Toggle(cl)
}

// SetClasses replaces the class set.
func (c *Controller) SetClasses(cl generator.Class) { c.state.Classes = cl }

// Generate draws a new password with the current settings and keeps it as
// the last generated one. It is not stored anywhere else.
func (c *Controller) Generate() (string, error) {
	p, err := c.gen.Generate(c.state.Length, c.state.Classes)
	if err != nil {
		c.log.Error(context.Background(), "generate failed", "error", err)
		return "", err
	}
	c.state.Generated = p
	return p, nil
}

// AdoptGenerated puts the last generated password into the form.
func (c *Controller) AdoptGenerated() {
	c.state.Form.Password = c.state.Generated
	c.notify(LevelSuccess, c.noticeTTL, i18n.NoticeAdopted)
}

// CopyGenerated puts the last generated password on the clipboard. When
// that is impossible the password is shown in the notice instead and the
// error wraps clipboard.ErrUnavailable.
func (c *Controller) CopyGenerated() error {
	err := c.clipboard.Copy(c.state.Generated)
	if err == nil {
		c.notify(LevelSuccess, c.copyNoticeTTL, i18n.NoticeCopied)
		return nil
	}

	c.log.Warn(context.Background(), "clipboard copy failed", "error", err)
	if !errors.Is(err, clipboard.ErrUnavailable) {
		err = fmt.Errorf("%w: %w", clipboard.ErrUnavailable, err)
	}
	c.notify(LevelError, c.noticeTTL, i18n.NoticeCopyFailed, map[string]any{"Password": c.state.Generated})
	return err
}
