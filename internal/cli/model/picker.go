// Package model contains Bubble Tea models for interactive CLI commands.
package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/schemer/internal/application/port"
	"github.com/bnema/schemer/internal/cli/styles"
	"github.com/bnema/schemer/internal/domain/entity"
	"github.com/bnema/schemer/internal/infrastructure/i18n"
	"github.com/bnema/schemer/internal/ui/listmodel"
)

// EffectiveMsg reports a new effective palette.
type EffectiveMsg struct {
	Effective entity.EffectiveScheme
}

// SaveErrMsg reports a failed save.
type SaveErrMsg struct {
	Err error
}

// FallbackMsg reports a configured fallback change (config reload).
type FallbackMsg struct {
	Scheme entity.ColorScheme
}

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Help, k.Quit},
	}
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "enter", "x"),
			key.WithHelp("space", "select"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PickerConfig holds the picker's collaborators.
type PickerConfig struct {
	Model      *listmodel.ColorSchemeModel
	Translator port.Translator
	Effective  entity.EffectiveScheme

	// OnFallback is called on the event loop when a FallbackMsg arrives. It
	// reports the refreshed palette when the selection followed the fallback.
	OnFallback func(entity.ColorScheme) (entity.EffectiveScheme, bool)
}

// PickerModel is an exclusive radio list over a ColorSchemeModel.
// Selections go through SetData like any item-view would.
type PickerModel struct {
	model      *listmodel.ColorSchemeModel
	tr         port.Translator
	onFallback func(entity.ColorScheme) (entity.EffectiveScheme, bool)

	cursor    int
	effective entity.EffectiveScheme
	status    string
	err       error

	theme *styles.Theme
	keys  pickerKeyMap
	help  help.Model
}

// NewPickerModel creates the picker with the cursor on the current row.
func NewPickerModel(cfg PickerConfig) PickerModel {
	tr := cfg.Translator
	if tr == nil {
		tr = port.TranslatorFunc(func(key string) string { return key })
	}
	return PickerModel{
		model:      cfg.Model,
		tr:         tr,
		onFallback: cfg.OnFallback,
		cursor:     cfg.Model.CurrentIndex(),
		effective:  cfg.Effective,
		theme:      styles.NewTheme(cfg.Effective),
		keys:       defaultPickerKeyMap(),
		help:       help.New(),
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case EffectiveMsg:
		m.effective = msg.Effective
		m.theme = styles.NewTheme(msg.Effective)
		m.err = nil
		return m, nil

	case SaveErrMsg:
		m.err = msg.Err
		m.status = ""
		return m, nil

	case FallbackMsg:
		if m.onFallback != nil {
			if effective, ok := m.onFallback(msg.Scheme); ok {
				m.effective = effective
				m.theme = styles.NewTheme(effective)
			}
		}
		m.cursor = m.model.CurrentIndex()
		return m, nil
	}
	return m, nil
}

func (m PickerModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.model.RowCount()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if !m.model.Flags(m.cursor).Has(listmodel.ItemIsUserCheckable) {
			return m, nil
		}
		// A failed save moves the model back, so only report rows that stuck.
		if m.model.SetData(m.cursor, true, listmodel.CheckStateRole) && m.model.CurrentIndex() == m.cursor {
			m.status = m.tr.Tr(i18n.KeySaved)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.tr.Tr(i18n.KeyPickerTitle)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.RenderSchemeList(m.rows()))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s: %s", m.tr.Tr(i18n.KeyEffective), m.theme.EffectiveBadge(m.effective)))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.theme.ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(m.theme.SuccessStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return m.theme.Box.Render(b.String())
}

// Cursor returns the highlighted row.
func (m PickerModel) Cursor() int {
	return m.cursor
}

func (m PickerModel) rows() []styles.SchemeRow {
	rows := make([]styles.SchemeRow, 0, m.model.RowCount())
	for row := 0; row < m.model.RowCount(); row++ {
		label, _ := m.model.Data(row, listmodel.DisplayRole)
		state, _ := m.model.Data(row, listmodel.CheckStateRole)

		text, _ := label.(string)
		rows = append(rows, styles.SchemeRow{
			Label:   text,
			Checked: state == listmodel.Checked,
			Cursor:  row == m.cursor,
		})
	}
	return rows
}
