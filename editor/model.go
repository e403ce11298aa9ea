package editor

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/apacite/citation"
)

// Model is a Bubble Tea component holding the citation form.
type Model struct {
	cfg   Config
	state State
	inst  *citation.Instance
	types []citation.Type

	result string
	err    error

	viewport viewport.Model
	help     help.Model

	layout contentLayout
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		inst:     citation.New(citation.TypeNone, cfg.Lang),
		types:    citation.Types(),
		viewport: viewport.New(0, 0),
		help:     help.New(),
	}
	if cfg.Type != citation.TypeNone {
		for i, t := range m.types {
			if t == cfg.Type {
				m.state.TypeIndex = i
			}
		}
		m.selectType(cfg.Type)
	}
	m.rebuildContent()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// State returns the current editor position.
func (m Model) State() State { return m.state }

// Instance returns the citation being edited. It is a TypeNone instance until
// a type is chosen.
func (m Model) Instance() *citation.Instance { return m.inst }

// Types returns the selectable citation types.
func (m Model) Types() []citation.Type { return m.types }

// Rendered returns the live rendering of the current instance.
func (m Model) Rendered() string { return m.cfg.Renderer.Render(m.inst) }

// Result returns the finalized citation, or "" before finishing.
func (m Model) Result() string { return m.result }

// Finalized reports whether the form was finished.
func (m Model) Finalized() bool { return m.state.Phase == PhaseFinalized }

// Err returns the error that ended the session, if any.
func (m Model) Err() error { return m.err }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.help.Width = width

	m.rebuildContent()
	m.followFocus()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg, tea.MouseMsg:
		return m.track(msg)
	default:
		return m, nil
	}
}

// View renders the form. Without a size it returns the full content.
func (m Model) View() string {
	if m.viewport.Width == 0 || m.viewport.Height == 0 {
		content, _ := m.renderContent()
		return content
	}
	return m.viewport.View()
}

// track applies an input message and reports effective changes.
func (m Model) track(msg tea.Msg) (Model, tea.Cmd) {
	before := buildChangeEvent(m)

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	m.rebuildContent()

	ev := buildChangeEvent(m)
	if ev.equal(before) {
		return m, cmd
	}
	m.followFocus()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ev)
	}
	return m, cmd
}

func (m *Model) rebuildContent() {
	if m.viewport.Width == 0 || m.viewport.Height == 0 {
		return
	}
	content, layout := m.renderContent()
	m.viewport.SetContent(content)
	m.layout = layout
}

func (m *Model) followFocus() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	if m.layout.focus < y {
		m.viewport.SetYOffset(m.layout.focus)
		return
	}
	if m.layout.focus >= y+h {
		m.viewport.SetYOffset(m.layout.focus - h + 1)
	}
}
