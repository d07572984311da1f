// ============================================================================
// Monkey - Interpreter Front End
// ============================================================================
//
// Package:     tui
// Description: Bubbletea model for exploring tokens and syntax trees
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	mklog "github.com/msto63/monkey/foundation/core/log"
	"github.com/msto63/monkey/foundation/lang"
	"github.com/msto63/monkey/internal/render"
	"github.com/msto63/monkey/pkg/core/version"
)

// View selects the content shown below the input line
type View int

const (
	ViewTokens View = iota
	ViewAST
	ViewJSON
	ViewDiagnostics
)

var viewNames = []string{"Tokens", "AST", "JSON", "Diagnostics"}

func (v View) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return fmt.Sprintf("View(%d)", int(v))
	}
	return viewNames[v]
}

// Model is the main Bubbletea model of the explorer
type Model struct {
	// State
	width  int
	height int
	ready  bool
	view   View
	err    error

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Last analysis
	source string
	result *lang.Result

	engine *lang.Engine
	logger *mklog.Logger
}

// Config holds explorer configuration
type Config struct {
	Engine *lang.Engine
	Logger *mklog.Logger

	// Source is analyzed on start when set
	Source string
}

// New creates a new explorer model
func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = mklog.GetDefault()
	}
	if cfg.Engine == nil {
		cfg.Engine = lang.New(lang.Options{Logger: cfg.Logger})
	}

	in := textinput.New()
	in.Placeholder = "let add = fn(a, b) { a + b };"
	in.Prompt = ">> "
	in.SetValue(cfg.Source)
	in.Focus()

	return Model{
		input:  in,
		engine: cfg.Engine,
		logger: cfg.Logger.WithField("component", "tui"),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if src := m.input.Value(); strings.TrimSpace(src) != "" {
		cmds = append(cmds, m.analyze(src))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if next, cmd, handled := m.handleKeyPress(msg); handled {
			return next, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3 // Title
		inputHeight := 4  // Input panel + tabs
		footerHeight := 4 // Content border + status bar + help
		viewportHeight := msg.Height - headerHeight - inputHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - 10
		m.updateViewportContent()

	case analyzedMsg:
		m.source = msg.source
		m.err = msg.err
		m.result = msg.result
		if msg.err != nil {
			m.logger.WarnWithErr("analysis failed", msg.err)
		}
		m.updateViewportContent()
		m.viewport.GotoTop()

	case clearMsg:
		m.source = ""
		m.result = nil
		m.err = nil
		m.input.Reset()
		m.updateViewportContent()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles the explorer's own keys; everything else goes to
// the input line
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit, true

	case tea.KeyEnter:
		src := m.input.Value()
		if strings.TrimSpace(src) == "" {
			return m, nil, true
		}
		return m, m.analyze(src), true

	case tea.KeyTab:
		m.view = (m.view + 1) % View(len(viewNames))
		m.updateViewportContent()
		return m, nil, true

	case tea.KeyShiftTab:
		m.view = (m.view + View(len(viewNames)) - 1) % View(len(viewNames))
		m.updateViewportContent()
		return m, nil, true

	case tea.KeyCtrlL:
		return m, func() tea.Msg { return clearMsg{} }, true

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil, true

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil, true
	}

	return m, nil, false
}

// analyze runs the engine off the update loop
func (m Model) analyze(src string) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		result, err := engine.Analyze(src)
		return analyzedMsg{source: src, result: result, err: err}
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading explorer..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(InputPanelStyle.Width(m.width - 2).Render(m.input.View()))
	b.WriteString("\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	style := ContentPanelStyle.Width(m.width - 2).Height(m.viewport.Height)
	b.WriteString(style.Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		HelpDescStyle.Render(version.Short()),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(viewNames))
	for i := range viewNames {
		v := View(i)
		label := v.String()
		if v == ViewDiagnostics && m.result != nil && len(m.result.Diagnostics) > 0 {
			label = fmt.Sprintf("%s (%d)", label, len(m.result.Diagnostics))
		}
		tabs[i] = RenderTab(label, v == m.view)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderStatusBar() string {
	var status string
	switch {
	case m.err != nil:
		status = StatusErrorStyle.Render("Error: " + m.err.Error())
	case m.result == nil:
		status = HelpDescStyle.Render("Enter a line of Monkey source")
	case m.result.OK():
		status = StatusOKStyle.Render(fmt.Sprintf("%d tokens, %d statements",
			len(m.result.Tokens), len(m.result.Program.Statements)))
	default:
		status = StatusErrorStyle.Render(fmt.Sprintf("%d tokens, %d syntax errors",
			len(m.result.Tokens), len(m.result.Diagnostics)))
	}
	return StatusBarStyle.Width(m.width - 2).Render(status)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "Analyze"),
		RenderKeyHint("Tab", "View"),
		RenderKeyHint("PgUp/PgDn", "Scroll"),
		RenderKeyHint("Ctrl+L", "Clear"),
		RenderKeyHint("Esc", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent renders the selected view of the last analysis
func (m *Model) updateViewportContent() {
	m.viewport.SetContent(m.content())
}

// content returns the unstyled text of the selected view
func (m Model) content() string {
	if m.err != nil {
		return m.err.Error()
	}
	if m.result == nil {
		return PlaceholderStyle.Render("Nothing analyzed yet")
	}

	var b strings.Builder
	var err error
	switch m.view {
	case ViewTokens:
		err = render.TokensWithPositions(&b, m.result.Tokens)
	case ViewAST:
		err = render.Program(&b, m.result.Program, render.FormatText)
	case ViewJSON:
		err = render.Program(&b, m.result.Program, render.FormatJSON)
	case ViewDiagnostics:
		if m.result.OK() {
			return "No syntax errors"
		}
		err = render.Diagnostics(&b, "", m.result.Diagnostics)
	}
	if err != nil {
		return err.Error()
	}
	return b.String()
}

// Run starts the explorer
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
