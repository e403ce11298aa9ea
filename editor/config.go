package editor

import (
	"github.com/iw2rmb/apacite/citation"
	"github.com/iw2rmb/apacite/clipboard"
	"github.com/iw2rmb/apacite/reference"
)

// Config configures the editor Model.
type Config struct {
	// Type, when set, skips type selection and starts editing that type.
	Type citation.Type
	// Lang is the initial date-phrase language.
	Lang citation.Lang

	// Renderer produces the preview and the final citation.
	// Nil uses reference.Substitution with Dates.
	Renderer reference.Renderer
	// Dates feeds the default renderer. Nil means the system clock.
	Dates reference.DateProvider

	// Clipboard receives the citation once, on finish. Nil disables copying.
	Clipboard clipboard.Sink
	// ClipboardMIME selects the stored representation: clipboard.MIMEHTML
	// (default) or clipboard.MIMEPlain.
	ClipboardMIME string

	// KeyMap defaults to DefaultKeyMap when empty.
	KeyMap KeyMap
	Style  Style

	// OnChange is called after every update that changed the editor state or
	// a field value.
	OnChange func(ChangeEvent)
	// OnFinalize is called once with the final citation after it was copied.
	OnFinalize func(citation string)
}

func normalizeConfig(cfg Config) Config {
	if len(cfg.KeyMap.Finish.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Renderer == nil {
		cfg.Renderer = reference.Substitution{Dates: cfg.Dates}
	}
	if cfg.ClipboardMIME == "" {
		cfg.ClipboardMIME = clipboard.MIMEHTML
	}
	return cfg
}
