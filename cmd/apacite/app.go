package main

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/apacite/clipboard"
	"github.com/iw2rmb/apacite/editor"
	"github.com/iw2rmb/apacite/internal/config"
	"github.com/iw2rmb/apacite/reference"
)

// app hosts the citation form as a tea.Model.
type app struct {
	form editor.Model
}

func newApp(cfg config.Config, sink clipboard.Sink, dates reference.DateProvider) app {
	ecfg := editor.Config{
		Type:          cfg.Type,
		Lang:          cfg.Lang,
		Dates:         dates,
		Clipboard:     sink,
		ClipboardMIME: cfg.Clipboard.MIME,
		Style:         editor.DefaultStyle(),
	}
	if cfg.Debug {
		ecfg.OnChange = logChange
		ecfg.OnFinalize = func(c string) { log.Printf("finalized: %s", reference.PlainText(c)) }
	}
	return app{form: editor.New(ecfg)}
}

// sinkFor returns the clipboard the form copies to, or nil when copying is
// disabled so the form does not report a copy.
func sinkFor(c config.Clipboard) clipboard.Sink {
	if !c.Enabled {
		return nil
	}
	return &clipboard.System{}
}

// logChange records transitions on the log installed by tea.LogToFile.
func logChange(ev editor.ChangeEvent) {
	st := ev.State
	log.Printf("phase=%s mode=%s type=%q lang=%s field=%d cursor=%d",
		st.Phase, st.Mode, ev.Type, ev.Lang.Code(), st.Selected, st.Cursor)
}

func (a app) Init() tea.Cmd { return a.form.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.form.View() }

// writeResult echoes the finalized citation in the requested format. Nothing
// is written when the form was quit before finishing.
func writeResult(w io.Writer, mode config.Print, form editor.Model) error {
	if !form.Finalized() {
		return nil
	}
	switch mode {
	case config.PrintText:
		_, err := fmt.Fprintln(w, reference.PlainText(form.Result()))
		return err
	case config.PrintYAML:
		return reference.NewRecord(form.Instance(), form.Result()).WriteYAML(w)
	default:
		return nil
	}
}
