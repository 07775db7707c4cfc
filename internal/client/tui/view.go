package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/passkeeper/internal/client/generator"
	"github.com/dmitrijs2005/passkeeper/internal/client/i18n"
	"github.com/dmitrijs2005/passkeeper/internal/client/view"
)

func (m Model) View() string {
	v := m.ctrl.View()

	var b strings.Builder
	b.WriteString(titleStyle.Render("🔐 " + m.tr.T(i18n.AppTitle)))
	b.WriteString("\n")
	b.WriteString(m.listView(v))

	switch m.mode {
	case modeForm:
		b.WriteString(paneStyle.Render(m.formView()))
	case modeGenerator:
		b.WriteString(paneStyle.Render(m.generatorView(v)))
	case modeConfirm:
		if req, ok := m.ctrl.Pending(); ok {
			b.WriteString("\n\n")
			b.WriteString(specialStyle.Render(m.tr.T(i18n.ConfirmDelete) + " " + req.Service))
		}
	}

	b.WriteString("\n\n")
	if m.notice != nil {
		b.WriteString(noticeStyle(m.notice.Level).Render(m.notice.Text))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.helpText()))

	return docStyle.Render(b.String())
}

func noticeStyle(l view.Level) lipgloss.Style {
	switch l {
	case view.LevelError:
		return errorStyle
	case view.LevelSuccess:
		return successStyle
	}
	return specialStyle
}

func (m Model) helpText() string {
	switch m.mode {
	case modeForm:
		return m.tr.T(i18n.TuiHelpForm)
	case modeGenerator:
		return m.tr.T(i18n.TuiHelpGenerator)
	case modeConfirm:
		return m.tr.T(i18n.TuiHelpConfirm)
	}
	return m.tr.T(i18n.TuiHelpList)
}

func (m Model) listView(v view.View) string {
	if v.Empty {
		return helpStyle.Render(m.tr.T(i18n.EmptyTitle) + "\n" + m.tr.T(i18n.EmptyHint))
	}

	lines := make([]string, 0, len(v.Items))
	for i, it := range v.Items {
		style, cursor := itemStyle, "  "
		if i == m.cursor && (m.mode == modeList || m.mode == modeConfirm) {
			style, cursor = selectedItemStyle, "> "
		}
		arrow := "▶"
		if it.Expanded {
			arrow = "▼"
		}
		lines = append(lines, cursor+iconStyle.Render("["+it.Icon+"]")+" "+style.Render(it.Service)+" "+arrow)

		if it.Expanded {
			action := i18n.ActionShow
			if it.Revealed {
				action = i18n.ActionHide
			}
			lines = append(lines,
				"     "+detailLabelStyle.Render(m.tr.T(i18n.FieldLogin)+":")+" "+it.Login,
				"     "+detailLabelStyle.Render(m.tr.T(i18n.FieldPassword)+":")+" "+it.Password+
					"  "+helpStyle.Render("r "+m.tr.T(action)+" • d "+m.tr.T(i18n.ActionDelete)),
			)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) formView() string {
	rows := make([]string, 0, len(m.inputs))
	for i := range m.inputs {
		rows = append(rows, m.inputs[i].View())
	}
	return strings.Join(rows, "\n")
}

func (m Model) generatorView(v view.View) string {
	classes := []struct {
		key   string
		class generator.Class
		label string
	}{
		{"1", generator.Lowercase, i18n.ClassLowercase},
		{"2", generator.Uppercase, i18n.ClassUppercase},
		{"3", generator.Digits, i18n.ClassDigits},
		{"4", generator.Symbols, i18n.ClassSymbols},
	}

	rows := []string{
		titleStyle.Render(m.tr.T(i18n.GeneratorTitle)),
		fmt.Sprintf("%s: %d", m.tr.T(i18n.FieldLength), v.Length),
	}
	for _, c := range classes {
		box := "[ ]"
		if v.Classes.Has(c.class) {
			box = "[x]"
		}
		rows = append(rows, fmt.Sprintf("%s %s %s", c.key, box, m.tr.T(c.label)))
	}
	rows = append(rows, "", selectedItemStyle.Render(v.Generated))
	return strings.Join(rows, "\n")
}
