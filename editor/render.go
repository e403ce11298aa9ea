package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	graphemeutil "github.com/iw2rmb/apacite/internal/grapheme"
	"github.com/iw2rmb/apacite/reference"
)

const title = "APA citation"

const (
	fieldMarkerWidth = 2
	fieldGapWidth    = 2
	typeGapWidth     = 2
)

// contentLayout records content line numbers used for scrolling and mouse
// hit testing. Unused entries are -1.
type contentLayout struct {
	focus    int
	typeList int
	fields   int
	// valueCell is the cell offset of field values within a field line.
	valueCell int
}

// renderContent returns the form text and its layout.
func (m Model) renderContent() (string, contentLayout) {
	var lines []string
	layout := contentLayout{typeList: -1, fields: -1}

	lines = append(lines, m.cfg.Style.Title.Render(title), "")

	switch m.state.Phase {
	case PhaseSelectingType:
		lines = append(lines, "Choose a citation type:", "")
		layout.focus = len(lines)
		layout.typeList = len(lines)
		lines = append(lines, m.renderTypeList(), "")
		t := m.types[m.state.TypeIndex]
		lines = append(lines, "More information: "+m.cfg.Style.Link.Render(t.Link()))

	case PhaseEditing:
		lines = append(lines, m.renderStatus(), "")
		labelWidth := m.labelWidth()
		layout.fields = len(lines)
		layout.focus = len(lines) + m.state.Selected
		layout.valueCell = fieldMarkerWidth + labelWidth + fieldGapWidth
		for i := 0; i < m.inst.Len(); i++ {
			lines = append(lines, m.renderField(i, labelWidth))
		}
		lines = append(lines, "", "Preview:", m.renderPreview(m.Rendered()))

	case PhaseFinalized:
		if m.err != nil {
			lines = append(lines, m.cfg.Style.Error.Render(m.err.Error()), "")
		} else if m.cfg.Clipboard != nil {
			lines = append(lines, "Copied to clipboard:", "")
		}
		lines = append(lines, m.renderPreview(m.result), "", "Press any key to exit.")
	}

	if bindings := m.helpBindings(); len(bindings) > 0 {
		lines = append(lines, "", m.help.ShortHelpView(bindings))
	}
	return strings.Join(lines, "\n"), layout
}

func (m Model) renderTypeList() string {
	items := make([]string, 0, len(m.types))
	for i, t := range m.types {
		if i == m.state.TypeIndex {
			items = append(items, m.cfg.Style.TypeItemActive.Render("> "+t.String()))
			continue
		}
		items = append(items, m.cfg.Style.TypeItem.Render("  "+t.String()))
	}
	return strings.Join(items, strings.Repeat(" ", typeGapWidth))
}

func (m Model) renderStatus() string {
	return m.cfg.Style.Status.Render(fmt.Sprintf("%s | %s | %s",
		m.inst.Type(), m.state.Mode, m.inst.Lang()))
}

func (m Model) labelWidth() int {
	w := 0
	for i := 0; i < m.inst.Len(); i++ {
		w = max(w, runewidth.StringWidth(m.inst.Field(i).Label))
	}
	return w
}

func (m Model) renderField(i, labelWidth int) string {
	st := m.cfg.Style
	f := m.inst.Field(i)
	selected := i == m.state.Selected

	marker, labelStyle := "  ", st.Label
	if selected {
		marker, labelStyle = "> ", st.LabelActive
	}

	var sb strings.Builder
	sb.WriteString(marker)
	sb.WriteString(labelStyle.Render(runewidth.FillRight(f.Label, labelWidth)))
	sb.WriteString(strings.Repeat(" ", fieldGapWidth))

	value := m.inst.Value(i)
	switch {
	case selected && m.state.Mode == ModeInsert:
		sb.WriteString(renderWithCursor(st, value, m.state.Cursor))
		if value == "" && f.Placeholder != "" {
			sb.WriteString(st.Placeholder.Render(f.Placeholder))
		}
	case value == "":
		sb.WriteString(st.Placeholder.Render(f.Placeholder))
	default:
		sb.WriteString(st.Value.Render(value))
	}
	return sb.String()
}

// renderWithCursor draws value with the cluster at col in the cursor style.
// A cursor at the end of the text is drawn as a blank cell.
func renderWithCursor(st Style, value string, col int) string {
	clusters := graphemeutil.Split(value)
	col = min(max(col, 0), len(clusters))

	var sb strings.Builder
	sb.WriteString(st.Value.Render(graphemeutil.Join(clusters[:col])))
	if col == len(clusters) {
		sb.WriteString(st.Cursor.Render(" "))
		return sb.String()
	}

	under := clusters[col]
	if graphemeutil.Width(under) == 0 {
		under = " "
	}
	sb.WriteString(st.Cursor.Render(under))
	sb.WriteString(st.Value.Render(graphemeutil.Join(clusters[col+1:])))
	return sb.String()
}

// renderPreview styles the emphasis segments of a rendered citation and
// wraps it to the viewport width.
func (m Model) renderPreview(rendered string) string {
	var sb strings.Builder
	for _, seg := range reference.Segments(rendered) {
		if seg.Italic {
			sb.WriteString(m.cfg.Style.Italic.Render(seg.Text))
			continue
		}
		sb.WriteString(m.cfg.Style.Preview.Render(seg.Text))
	}
	if m.viewport.Width <= 0 {
		return sb.String()
	}
	return lipgloss.NewStyle().Width(m.viewport.Width).Render(sb.String())
}
