// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt is the interactive terminal flow: pick a template from a
// list, answer one question per placeholder the template uses, enter the
// authors of a report, and name the output file.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/writer/internal/document"
	"github.com/pdiddy/writer/internal/render"
	"github.com/pdiddy/writer/pkg/types"
)

// EndOfBody is the line that finishes a multi-line answer.
const EndOfBody = "DONE"

// ErrCanceled reports that the user left the prompt before finishing.
var ErrCanceled = errors.New("prompt canceled")

// Field is one question asked of the user.
type Field struct {
	Token string
	Label string
	// Multiline answers are typed line by line until EndOfBody. Non-blank
	// lines become paragraphs.
	Multiline bool
}

var multilineTokens = map[string]bool{
	bodyToken:             true,
	"PlaceHolderAbstract": true,
}

// Fields returns the questions for template: the family's placeholders
// that actually occur in it, in table order. Authors are asked for
// separately.
func Fields(family *render.Family, template string) []Field {
	var fields []Field
	for _, p := range family.Placeholders() {
		if strings.Contains(template, p.Token) {
			fields = append(fields, Field{
				Token:     p.Token,
				Label:     p.Label,
				Multiline: multilineTokens[p.Token],
			})
		}
	}
	return fields
}

// Result is what the user entered.
type Result struct {
	Template string
	Values   map[string]string
	Authors  []types.AuthorEntry
	Output   string
}

type step int

const (
	stepTemplate step = iota
	stepFields
	stepAuthors
	stepOutput
	stepDone
)

func hasAuthors(family *render.Family) bool {
	return family.Name() == render.FamilyReport || family.Name() == render.FamilyReportGrid
}

// LoadFunc reads a template body by name.
type LoadFunc func(name string) (string, error)

type templateItem string

func (i templateItem) Title() string       { return string(i) }
func (i templateItem) Description() string { return "" }
func (i templateItem) FilterValue() string { return string(i) }

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6BCB77")).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	headerTitle = "Select Template"
)

// Model is the bubbletea model of the prompt.
type Model struct {
	family *render.Family
	load   LoadFunc

	list  list.Model
	input textinput.Model

	step     step
	fields   []Field
	idx      int
	lines    []string
	author   []string
	result   Result
	err      error
	canceled bool
	fallback string
}

// New returns a prompt over the template names. defaultOutput is used
// when the user leaves the output name empty.
func New(family *render.Family, names []string, load LoadFunc, defaultOutput string) Model {
	items := make([]list.Item, len(names))
	for i, n := range names {
		items[i] = templateItem(n)
	}
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	l := list.New(items, delegate, 60, len(names)+10)
	l.Title = headerTitle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	in := textinput.New()
	in.CharLimit = 0
	in.Width = 60

	return Model{
		family:   family,
		load:     load,
		list:     l,
		input:    in,
		result:   Result{Values: map[string]string{}},
		fallback: defaultOutput,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width - 2)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.step == stepTemplate {
		m.list, cmd = m.list.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// submit handles enter for the current step.
func (m Model) submit() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepTemplate:
		item, ok := m.list.SelectedItem().(templateItem)
		if !ok {
			return m, nil
		}
		body, err := m.load(string(item))
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.result.Template = string(item)
		m.fields = Fields(m.family, body)
		m.step = stepFields
		if len(m.fields) == 0 {
			m.step = m.afterFields()
		}
		return m, m.resetInput()

	case stepFields:
		f := m.fields[m.idx]
		value := m.input.Value()
		if f.Multiline {
			if !strings.EqualFold(strings.TrimSpace(value), EndOfBody) {
				m.lines = append(m.lines, value)
				m.input.SetValue("")
				return m, nil
			}
			value = document.JoinParagraphs(m.lines)
			m.lines = nil
		}
		m.result.Values[f.Token] = value
		m.idx++
		if m.idx == len(m.fields) {
			m.step = m.afterFields()
		}
		return m, m.resetInput()

	case stepAuthors:
		value := strings.TrimSpace(m.input.Value())
		if len(m.author) == 0 && value == "" {
			m.step = stepOutput
			return m, m.resetInput()
		}
		m.author = append(m.author, value)
		if len(m.author) == len(authorFields) {
			m.result.Authors = append(m.result.Authors, types.AuthorEntry{
				Name:         m.author[0],
				Department:   m.author[1],
				Organization: m.author[2],
				City:         m.author[3],
				Country:      m.author[4],
				Email:        m.author[5],
			})
			m.author = nil
			if len(m.result.Authors) == render.MaxAuthors {
				m.step = stepOutput
			}
		}
		return m, m.resetInput()

	case stepOutput:
		m.result.Output = strings.TrimSpace(m.input.Value())
		if m.result.Output == "" {
			m.result.Output = m.fallback
		}
		m.step = stepDone
		return m, tea.Quit
	}
	return m, nil
}

// authorFields is asked once per author, in AuthorEntry field order.
var authorFields = render.AuthorPlaceholders()

func (m Model) afterFields() step {
	if hasAuthors(m.family) {
		return stepAuthors
	}
	return stepOutput
}

func (m *Model) resetInput() tea.Cmd {
	m.input.SetValue("")
	m.input.Placeholder = ""
	if m.step == stepOutput {
		m.input.Placeholder = m.fallback
	}
	return m.input.Focus()
}

func (m Model) View() string {
	var b strings.Builder
	switch m.step {
	case stepTemplate:
		b.WriteString(m.list.View())
		b.WriteString("\n" + hintStyle.Render("enter to choose, esc to quit"))
	case stepFields:
		f := m.fields[m.idx]
		b.WriteString(titleStyle.Render(m.result.Template))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("[%d/%d] %s", m.idx+1, len(m.fields), f.Label)))
		b.WriteString("\n")
		if f.Multiline {
			for _, l := range m.lines {
				b.WriteString("  " + l + "\n")
			}
			b.WriteString(hintStyle.Render("type "+EndOfBody+" on its own line to finish") + "\n")
		}
		b.WriteString(m.input.View())
	case stepAuthors:
		n := len(m.result.Authors) + 1
		b.WriteString(titleStyle.Render(fmt.Sprintf("Author %d of up to %d", n, render.MaxAuthors)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(authorFields[len(m.author)].Label))
		if len(m.author) == 0 {
			b.WriteString(" " + hintStyle.Render("(leave blank to stop)"))
		}
		b.WriteString("\n" + m.input.View())
	case stepOutput:
		b.WriteString(labelStyle.Render("Output PDF file name (without .pdf)"))
		b.WriteString("\n" + m.input.View())
	case stepDone:
		return ""
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}
	return b.String() + "\n"
}

// Result returns the answers once the prompt has finished.
func (m Model) Result() (Result, error) {
	if m.canceled || m.step != stepDone {
		return Result{}, ErrCanceled
	}
	return m.result, nil
}

// Run shows the prompt on in/out and returns the user's answers.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) (Result, error) {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("running prompt: %w", err)
	}
	return final.(Model).Result()
}
