package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/passkeeper/internal/client/generator"
	"github.com/dmitrijs2005/passkeeper/internal/client/i18n"
	"github.com/dmitrijs2005/passkeeper/internal/client/view"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeGenerator
	modeConfirm
)

const (
	inputService = iota
	inputLogin
	inputPassword
	inputCount
)

// clearNoticeMsg hides the status line unless a newer notice replaced it.
type clearNoticeMsg struct{ seq int }

// Model is the root bubbletea model.
type Model struct {
	ctx   context.Context
	ctrl  *view.Controller
	tr    *i18n.Translator
	inbox *view.Inbox
	log   logging.Logger

	mode   mode
	cursor int

	inputs [inputCount]textinput.Model
	focus  int

	notice    *view.Notice
	noticeSeq int
}

// New builds the model and registers its inbox as the controller's
// notifier. Notices already emitted are shown on the first frame.
func New(ctx context.Context, ctrl *view.Controller, log logging.Logger) Model {
	if log == nil {
		log = logging.Nop()
	}
	m := Model{
		ctx:   ctx,
		ctrl:  ctrl,
		tr:    ctrl.Translator(),
		inbox: &view.Inbox{},
		log:   log.With("component", "tui"),
	}
	ctrl.SetNotifier(m.inbox)

	for i := range m.inputs {
		t := textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 256
		t.Width = 40
		m.inputs[i] = t
	}
	m.inputs[inputService].Prompt = m.tr.T(i18n.FieldService) + ": "
	m.inputs[inputLogin].Prompt = m.tr.T(i18n.FieldLogin) + ": "
	m.inputs[inputPassword].Prompt = m.tr.T(i18n.FieldPassword) + ": "
	m.inputs[inputPassword].EchoCharacter = '•'
	m.inputs[inputPassword].CharLimit = generator.MaxLength
	m.syncEchoMode()

	return m
}

// Run starts the program for m and blocks until the user quits or ctx ends.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return flushMsg{} })
}

// flushMsg shows notices emitted before the program started.
type flushMsg struct{}

// takeNotices moves buffered notices to the status line and schedules its
// expiry.
func (m *Model) takeNotices() tea.Cmd {
	notices := m.inbox.Drain()
	if len(notices) == 0 {
		return nil
	}
	n := notices[len(notices)-1]
	m.notice = &n
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(n.TTL, func(time.Time) tea.Msg { return clearNoticeMsg{seq: seq} })
}

func (m *Model) syncEchoMode() {
	if m.ctrl.InputVisible() {
		m.inputs[inputPassword].EchoMode = textinput.EchoNormal
	} else {
		m.inputs[inputPassword].EchoMode = textinput.EchoPassword
	}
}

func (m *Model) clampCursor() {
	n := len(m.ctrl.View().Items)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selectedID() (string, bool) {
	items := m.ctrl.View().Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return "", false
	}
	return items[m.cursor].Id, true
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = (i + inputCount) % inputCount
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
			m.inputs[j].TextStyle = focusedStyle
			continue
		}
		m.inputs[j].Blur()
		m.inputs[j].TextStyle = itemStyle
	}
	return cmd
}

func (m *Model) loadForm() {
	f := m.ctrl.Form()
	m.inputs[inputService].SetValue(f.Service)
	m.inputs[inputLogin].SetValue(f.Login)
	m.inputs[inputPassword].SetValue(f.Password)
}

func (m *Model) storeForm() {
	m.ctrl.SetForm(view.Form{
		Service:  m.inputs[inputService].Value(),
		Login:    m.inputs[inputLogin].Value(),
		Password: m.inputs[inputPassword].Value(),
	})
}

func (m *Model) openForm() tea.Cmd {
	m.mode = modeForm
	m.loadForm()
	m.syncEchoMode()
	return m.setFocus(inputService)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case flushMsg:
		return m, m.takeNotices()

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeList:
			cmd = m.updateList(msg)
		case modeForm:
			cmd = m.updateForm(msg)
		case modeGenerator:
			cmd = m.updateGenerator(msg)
		case modeConfirm:
			cmd = m.updateConfirm(msg)
		}
		return m, tea.Batch(cmd, m.takeNotices())
	}

	if m.mode == modeForm {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.ctrl.View().Items)-1 {
			m.cursor++
		}

	case "enter", " ":
		if id, ok := m.selectedID(); ok {
			_ = m.ctrl.ToggleExpanded(id)
		}

	case "r":
		if id, ok := m.selectedID(); ok {
			if !m.ctrl.State().Flags[id].Expanded {
				_ = m.ctrl.ToggleExpanded(id)
			}
			_ = m.ctrl.ToggleRevealed(id)
		}

	case "d", "delete":
		if id, ok := m.selectedID(); ok {
			if _, err := m.ctrl.RequestDelete(id); err == nil {
				m.mode = modeConfirm
			}
		}

	case "a":
		return m.openForm()

	case "g":
		m.mode = modeGenerator

	case "v":
		m.ctrl.ToggleInputVisibility()
		m.syncEchoMode()
	}
	return nil
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.storeForm()
		m.mode = modeList
		return nil

	case "ctrl+t":
		m.ctrl.ToggleInputVisibility()
		m.syncEchoMode()
		return nil

	case "tab", "down":
		return m.setFocus(m.focus + 1)

	case "shift+tab", "up":
		return m.setFocus(m.focus - 1)

	case "enter":
		if m.focus < inputPassword {
			return m.setFocus(m.focus + 1)
		}
		m.storeForm()
		if _, err := m.ctrl.SubmitForm(m.ctx); err != nil {
			return nil
		}
		m.loadForm()
		m.mode = modeList
		m.cursor = len(m.ctrl.View().Items) - 1
		return nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

var classKeys = map[string]generator.Class{
	"1": generator.Lowercase,
	"2": generator.Uppercase,
	"3": generator.Digits,
	"4": generator.Symbols,
}

func (m *Model) updateGenerator(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "esc", "q":
		m.mode = modeList

	case "n", " ", "enter":
		_, _ = m.ctrl.Generate()

	case "+", "=", "right":
		_ = m.ctrl.SetLength(m.ctrl.Length() + 1)

	case "-", "left":
		_ = m.ctrl.SetLength(m.ctrl.Length() - 1)

	case "1", "2", "3", "4":
		m.ctrl.ToggleClass(classKeys[key])

	case "u":
		m.ctrl.AdoptGenerated()
		return m.openForm()

	case "c":
		_ = m.ctrl.CopyGenerated()
	}
	return nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	req, ok := m.ctrl.Pending()
	if !ok {
		m.mode = modeList
		return nil
	}

	switch msg.String() {
	case "y", "Y", "enter":
		_ = m.ctrl.ConfirmDelete(m.ctx, req)
		m.mode = modeList
		m.clampCursor()

	case "n", "N", "esc", "q":
		m.ctrl.CancelDelete()
		m.mode = modeList
	}
	return nil
}
