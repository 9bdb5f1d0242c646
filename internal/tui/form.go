// Package tui is the interactive conversion form: pick a file, say whether
// it has a header line and which columns hold the cue fields, then convert,
// save or reset.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mgpai22/csv2srt/internal/convert"
	"github.com/mgpai22/csv2srt/internal/logging"
	"github.com/mgpai22/csv2srt/internal/session"
)

type control int

const (
	controlFile control = iota
	controlHeaders
	controlStart
	controlEnd
	controlText
	controlConvert
	controlDownload
	controlReset
)

const (
	previewCues  = 3
	previewWidth = 60
)

// FormModel owns one session and mirrors it into the form controls.
type FormModel struct {
	session *session.Session
	logger  *logging.Logger
	theme   Theme
	banner  string
	outDir  string

	fileInput  textinput.Model
	startInput textinput.Model
	endInput   textinput.Model
	textInput  textinput.Model

	focus  control
	status string
	Saved  []string
}

// NewForm builds the form. outDir is where downloads are saved; empty means
// next to the input file.
func NewForm(s *session.Session, outDir string, log *logging.Logger) FormModel {
	if s == nil {
		s = session.New()
	}
	if log == nil {
		log = logging.NewNop()
	}

	m := FormModel{
		session:    s,
		logger:     log,
		theme:      DefaultTheme,
		banner:     "csv2srt",
		outDir:     outDir,
		fileInput:  newInput("path/to/subtitles.csv"),
		startInput: newInput("Enter the header name for startTime"),
		endInput:   newInput("Enter the header name for endTime"),
		textInput:  newInput("Enter the header name for text"),
	}
	m.loadSession()
	m.setFocus(controlFile)
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 512
	ti.Width = 46
	return ti
}

// copies session values into the inputs
func (m *FormModel) loadSession() {
	m.fileInput.SetValue(m.session.File)
	m.startInput.SetValue(m.session.Headers.StartTime)
	m.endInput.SetValue(m.session.Headers.EndTime)
	m.textInput.SetValue(m.session.Headers.Text)
}

// copies input values into the session
func (m *FormModel) storeSession() {
	path := strings.TrimSpace(m.fileInput.Value())
	headers := convert.HeaderMapping{
		StartTime: m.startInput.Value(),
		EndTime:   m.endInput.Value(),
		Text:      m.textInput.Value(),
	}
	if path == m.session.File && headers == m.session.Headers {
		return
	}

	if path == "" {
		m.session.File, m.session.FileName = "", ""
	} else {
		m.session.SelectFile(path)
	}
	m.session.Headers = headers
	m.session.Invalidate()
}

func (m FormModel) Session() *session.Session { return m.session }

func (m FormModel) Init() tea.Cmd { return textinput.Blink }

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		m.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil
	case "enter":
		return m.activate()
	case " ":
		if m.focus == controlHeaders {
			m.toggleHeaders()
			return m, nil
		}
		if m.isButton(m.focus) {
			return m.activate()
		}
	}
	return m.updateInput(msg)
}

func (m FormModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case controlFile:
		m.fileInput, cmd = m.fileInput.Update(msg)
	case controlStart:
		m.startInput, cmd = m.startInput.Update(msg)
	case controlEnd:
		m.endInput, cmd = m.endInput.Update(msg)
	case controlText:
		m.textInput, cmd = m.textInput.Update(msg)
	}
	m.storeSession()
	return m, cmd
}

func (m FormModel) activate() (tea.Model, tea.Cmd) {
	m.storeSession()
	switch m.focus {
	case controlHeaders:
		m.toggleHeaders()
	case controlConvert:
		m.convert()
	case controlDownload:
		m.download()
	case controlReset:
		m.reset()
	default:
		m.moveFocus(1)
	}
	return m, nil
}

func (m *FormModel) toggleHeaders() {
	m.session.HasHeaders = !m.session.HasHeaders
	m.session.Invalidate()
	m.status = ""
}

func (m *FormModel) convert() {
	m.status = ""
	if err := m.session.Convert(); err != nil {
		m.logger.Debugw("Conversion failed", "file", m.session.File, "error", err)
		return
	}
	m.logger.Debugw("Converted table",
		"file", m.session.File,
		"cues", m.session.Result.Len(),
	)
}

func (m *FormModel) download() {
	dir := m.outDir
	if dir == "" {
		dir = filepath.Dir(m.session.File)
	}
	path, err := m.session.Download(dir)
	if err != nil {
		m.session.Err = err
		return
	}
	m.Saved = append(m.Saved, path)
	m.status = fmt.Sprintf("Saved %s", path)
	m.loadSession()
	m.setFocus(controlFile)
}

func (m *FormModel) reset() {
	m.session.Reset()
	m.status = ""
	m.loadSession()
	m.setFocus(controlFile)
}

// visible controls in tab order
func (m FormModel) controls() []control {
	out := []control{controlFile, controlHeaders}
	if m.session.HasHeaders {
		out = append(out, controlStart, controlEnd, controlText)
	}
	out = append(out, controlConvert)
	if m.session.SRT() != "" {
		out = append(out, controlDownload)
	}
	return append(out, controlReset)
}

func (m *FormModel) moveFocus(delta int) {
	controls := m.controls()
	idx := 0
	for i, c := range controls {
		if c == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(controls)) % len(controls)
	m.setFocus(controls[idx])
}

func (m *FormModel) setFocus(c control) {
	m.focus = c
	inputs := map[control]*textinput.Model{
		controlFile:  &m.fileInput,
		controlStart: &m.startInput,
		controlEnd:   &m.endInput,
		controlText:  &m.textInput,
	}
	for key, input := range inputs {
		if key == c {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

func (m FormModel) isButton(c control) bool {
	return c == controlConvert || c == controlDownload || c == controlReset
}

func (m FormModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Banner.Render(m.banner))
	b.WriteString("\n")
	b.WriteString(t.Title.Render("CSV to SRT Converter"))
	b.WriteString("\n")

	b.WriteString(m.field("Upload CSV File", m.fileInput, controlFile))

	check := "[ ]"
	if m.session.HasHeaders {
		check = "[x]"
	}
	checkStyle := t.Label
	if m.focus == controlHeaders {
		checkStyle = t.Active
	}
	b.WriteString(checkStyle.Render(check + " CSV has headers"))
	b.WriteString("\n\n")

	if m.session.HasHeaders {
		b.WriteString(m.field("StartTime Header", m.startInput, controlStart))
		b.WriteString(m.field("EndTime Header", m.endInput, controlEnd))
		b.WriteString(m.field("Text Header", m.textInput, controlText))
	}

	if msg := m.session.Message(); msg != "" {
		style := t.Success
		if m.session.Err != nil {
			style = t.Error
		}
		b.WriteString(style.Render(msg))
		b.WriteString("\n\n")
		if preview := m.preview(); preview != "" {
			b.WriteString(t.Help.Render(preview))
			b.WriteString("\n\n")
		}
	} else if m.status != "" {
		b.WriteString(t.Success.Render(m.status))
		b.WriteString("\n\n")
	}

	var buttons []string
	for _, c := range m.controls() {
		if !m.isButton(c) {
			continue
		}
		style := t.Button
		if c == m.focus {
			style = t.Active
		}
		buttons = append(buttons, style.Render(buttonLabel(c)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	b.WriteString("\n\n")
	b.WriteString(t.Help.Render("tab/↑/↓: Move • space: Toggle • enter: Select • esc: Quit"))

	return t.Base.Render(b.String())
}

// first few converted cues, one line each
func (m FormModel) preview() string {
	doc := m.session.Result
	if doc.Len() == 0 {
		return ""
	}
	var lines []string
	for i, cue := range doc.Cues {
		if i == previewCues {
			lines = append(lines, fmt.Sprintf("… %d more", doc.Len()-previewCues))
			break
		}
		text := strings.ReplaceAll(cue.Text, "\n", " / ")
		line := fmt.Sprintf("%d  %s --> %s  %s", cue.Index, cue.Start, cue.End, text)
		if ansi.StringWidth(line) > previewWidth {
			line = ansi.Truncate(line, previewWidth, "…")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m FormModel) field(label string, input textinput.Model, c control) string {
	style := m.theme.Input
	if m.focus == c {
		style = m.theme.Focused
	}
	return m.theme.Label.Render(label) + "\n" + style.Render(input.View()) + "\n"
}

func buttonLabel(c control) string {
	switch c {
	case controlConvert:
		return "Convert to SRT"
	case controlDownload:
		return "Download SRT"
	case controlReset:
		return "Reset"
	default:
		return ""
	}
}

// Run starts the form and blocks until the user quits. It returns the paths
// of the files saved during the session.
func Run(s *session.Session, outDir string, log *logging.Logger) ([]string, error) {
	final, err := tea.NewProgram(NewForm(s, outDir, log)).Run()
	if err != nil {
		return nil, err
	}
	if form, ok := final.(FormModel); ok {
		return form.Saved, nil
	}
	return nil, nil
}
