package editor

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/apacite/clipboard"
	"github.com/iw2rmb/apacite/reference"
)

// finalize freezes the form, renders the citation and hands it to the
// clipboard sink. A sink failure ends the session.
func (m Model) finalize() (Model, tea.Cmd) {
	m.result = m.cfg.Renderer.Render(m.inst)
	m.state.Phase = PhaseFinalized

	if err := m.copyResult(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	if m.cfg.OnFinalize != nil {
		m.cfg.OnFinalize(m.result)
	}
	return m, nil
}

func (m Model) copyResult() error {
	if m.cfg.Clipboard == nil {
		return nil
	}
	content := reference.PlainText(m.result)
	if m.cfg.ClipboardMIME != clipboard.MIMEPlain {
		content = clipboard.Document(reference.HTML(m.result))
	}
	if err := m.cfg.Clipboard.Store(m.cfg.ClipboardMIME, content); err != nil {
		return fmt.Errorf("copy citation: %w", err)
	}
	return nil
}
