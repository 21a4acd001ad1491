package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"serpsim/internal/app"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusArea int

const (
	focusTitle focusArea = iota
	focusDescription
	focusURL
)

var schemaCycle = []app.SchemaKind{app.SchemaNone, app.SchemaFAQ, app.SchemaReview}

type MainModel struct {
	app    *app.Application
	device app.DeviceProfile
	schema app.SchemaKind

	theme Theme
	keys  keyMap

	width  int
	height int
	ready  bool

	focus focusArea

	title textinput.Model
	desc  textarea.Model
	url   textinput.Model

	showSnippet bool
	statusText  string
}

func New(application *app.Application, device app.DeviceProfile) *MainModel {
	ti := textinput.New()
	ti.Placeholder = "Enter your page title..."
	ti.CharLimit = 300
	ti.Prompt = ""
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "Enter your meta description..."
	ta.CharLimit = 600
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()

	ui := textinput.New()
	ui.Placeholder = "https://example.com/page"
	ui.CharLimit = 500
	ui.Prompt = ""

	return &MainModel{
		app:        application,
		device:     device,
		schema:     app.SchemaNone,
		theme:      NewTheme(),
		keys:       defaultKeyMap(),
		width:      100,
		height:     30,
		focus:      focusTitle,
		title:      ti,
		desc:       ta,
		url:        ui,
		statusText: "Ready",
	}
}

func (m *MainModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		layout := m.computeLayout()
		m.title.Width = layout.InputW
		m.url.Width = layout.InputW
		m.desc.SetWidth(layout.InputW)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.FocusNext):
			m.setFocus((m.focus + 1) % 3)
			return m, nil

		case key.Matches(msg, m.keys.FocusPrev):
			m.setFocus((m.focus + 2) % 3)
			return m, nil

		case key.Matches(msg, m.keys.ToggleDevice):
			if m.device == app.DeviceDesktop {
				m.device = app.DeviceMobile
			} else {
				m.device = app.DeviceDesktop
			}
			m.statusText = fmt.Sprintf("Device: %s", m.device)
			return m, nil

		case key.Matches(msg, m.keys.CycleSchema):
			for i, s := range schemaCycle {
				if s == m.schema {
					m.schema = schemaCycle[(i+1)%len(schemaCycle)]
					break
				}
			}
			m.statusText = fmt.Sprintf("Schema: %s", m.schema)
			return m, nil

		case key.Matches(msg, m.keys.Export):
			m.exportCurrent()
			return m, nil

		case key.Matches(msg, m.keys.CopySnippet):
			m.showSnippet = !m.showSnippet
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.title.Reset()
			m.desc.Reset()
			m.url.Reset()
			m.statusText = "Cleared"
			return m, nil
		}
	}

	// Recompute the preview on every input change: derived metrics are
	// a pure function of the three fields, nothing to cache.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	cmds = append(cmds, cmd)
	m.desc, cmd = m.desc.Update(msg)
	cmds = append(cmds, cmd)
	m.url, cmd = m.url.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *MainModel) View() string {
	if !m.ready {
		return "…"
	}

	layout := m.computeLayout()
	result := m.currentResult()

	top := m.renderTopBar()
	inputs := m.renderInputPane(layout, result)
	preview := m.renderPreviewPane(layout, result)
	footer := m.renderFooter()

	var main string
	if layout.SideBySide {
		main = lipgloss.JoinHorizontal(lipgloss.Top, inputs, preview)
	} else {
		main = lipgloss.JoinVertical(lipgloss.Left, inputs, preview)
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, main, footer)
}

func (m *MainModel) currentResult() app.RowResult {
	in := app.SnippetInput{
		Title:       m.title.Value(),
		Description: strings.ReplaceAll(m.desc.Value(), "\n", " "),
		URL:         strings.TrimSpace(m.url.Value()),
	}
	return m.app.Estimator.Analyze(in, m.device)
}

func (m *MainModel) setFocus(f focusArea) {
	m.focus = f
	m.title.Blur()
	m.desc.Blur()
	m.url.Blur()
	switch f {
	case focusTitle:
		m.title.Focus()
	case focusDescription:
		m.desc.Focus()
	case focusURL:
		m.url.Focus()
	}
}

func (m *MainModel) exportCurrent() {
	result := m.currentResult()
	name := fmt.Sprintf("serp_analysis_%s.csv", m.device)
	f, err := os.Create(name)
	if err != nil {
		m.statusText = fmt.Sprintf("Export failed: %v", err)
		return
	}
	defer f.Close()
	if err := app.WriteSingle(f, result, m.device); err != nil {
		m.statusText = fmt.Sprintf("Export failed: %v", err)
		return
	}
	m.statusText = fmt.Sprintf("Exported %s", name)
}

type layoutInfo struct {
	SideBySide bool
	LeftW      int
	RightW     int
	InputW     int
}

func (m *MainModel) computeLayout() layoutInfo {
	l := layoutInfo{SideBySide: m.width >= 100}
	if l.SideBySide {
		gap := 1
		l.LeftW = int(float64(m.width-gap) * 0.45)
		if l.LeftW < 44 {
			l.LeftW = 44
		}
		l.RightW = m.width - gap - l.LeftW
	} else {
		l.LeftW = m.width
		l.RightW = m.width
	}
	l.InputW = l.LeftW - 6
	if l.InputW < 20 {
		l.InputW = 20
	}
	return l
}

func (m *MainModel) renderTopBar() string {
	left := m.theme.TopBarTitle.Render("serpsim") + " " + m.theme.TopBarBadge.Render(strings.ToUpper(string(m.device)))
	if m.schema != app.SchemaNone {
		left += " " + m.theme.TopBarMeta.Render(string(m.schema))
	}
	status := m.theme.TopBarMeta.Render(m.statusText)
	right := m.theme.TopBarMeta.Render(time.Now().Format("15:04"))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(status) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	a := gap / 2
	b := gap - a
	return m.theme.TopBar.Render(left + strings.Repeat(" ", a) + status + strings.Repeat(" ", b) + right)
}

func (m *MainModel) renderFooter() string {
	hints := "Tab field  Ctrl+D device  Ctrl+S schema  Ctrl+E export  Ctrl+Y snippet  Ctrl+L clear  Ctrl+C quit"
	if m.width < 100 {
		hints = "Tab field  Ctrl+D device  Ctrl+E export  Ctrl+C quit"
	}
	return m.theme.Footer.Width(m.width).Render(hints)
}

func (m *MainModel) renderInputPane(l layoutInfo, result app.RowResult) string {
	label := func(text string, f focusArea) string {
		if m.focus == f {
			return m.theme.InputLabelF.Render(text)
		}
		return m.theme.InputLabel.Render(text)
	}

	est := m.app.Estimator
	var b strings.Builder
	b.WriteString(label("Title Tag", focusTitle))
	b.WriteString("\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(label("Meta Description", focusDescription))
	b.WriteString("\n")
	b.WriteString(m.desc.View())
	b.WriteString("\n\n")
	b.WriteString(label("URL", focusURL))
	b.WriteString("\n")
	b.WriteString(m.url.View())
	b.WriteString("\n\n")

	b.WriteString(m.theme.PaneTitle.Render("Metrics"))
	b.WriteString("\n")
	b.WriteString(m.styleMetric(metricLine("Title", result.Input.Title, result.Title), result.Title.Truncated))
	b.WriteString("\n")
	b.WriteString(m.theme.Hint.Render(fitCells(est.Suggest(result.Input.Title, m.device, app.FieldTitle), l.InputW)))
	b.WriteString("\n")
	b.WriteString(m.styleMetric(metricLine("Description", result.Input.Description, result.Description), result.Description.Truncated))
	b.WriteString("\n")
	b.WriteString(m.theme.Hint.Render(fitCells(est.Suggest(result.Input.Description, m.device, app.FieldDescription), l.InputW)))

	// Focus always lives in one of the three inputs, so this pane gets
	// the highlighted border.
	return m.theme.PaneFocused.Width(l.LeftW - 2).Render(b.String())
}

func (m *MainModel) styleMetric(line string, over bool) string {
	if over {
		return m.theme.StatusWarn.Render(line)
	}
	return m.theme.StatusOK.Render(line)
}

func (m *MainModel) renderPreviewPane(l layoutInfo, result app.RowResult) string {
	inner := l.RightW - 4
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	b.WriteString(m.theme.PaneTitleF.Render("SERP Preview"))
	b.WriteString("\n\n")
	b.WriteString(renderPreview(m.theme, result, m.schema, inner))

	if m.showSnippet {
		b.WriteString("\n\n")
		b.WriteString(m.theme.PaneTitle.Render("Snippet text"))
		b.WriteString("\n")
		for _, line := range strings.Split(app.SnippetText(result), "\n") {
			b.WriteString(m.theme.MetricLine.Render(fitCells(line, inner)))
			b.WriteString("\n")
		}
	}

	return m.theme.Pane.Width(l.RightW - 2).Render(strings.TrimRight(b.String(), "\n"))
}
