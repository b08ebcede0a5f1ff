package tui

import (
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/lamchakchan/envcheck/internal/platform"
)

// minRenderWidth keeps glamour from wrapping every word onto its own line.
const minRenderWidth = 20

// RenderMarkdown renders md for a terminal of the given width.
func RenderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.DarkStyle),
		glamour.WithWordWrap(max(minRenderWidth, width)),
		glamour.WithEmoji(),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	return r.Render(md)
}

// ReportModel shows a markdown report in a viewer, re-rendering it
// whenever the terminal width changes.
type ReportModel struct {
	markdown string
	viewer   *ViewerModel
	width    int
}

// NewReport creates a report view for markdown.
func NewReport(title, markdown string, theme *Theme) *ReportModel {
	v := NewViewer(title, markdown, theme)
	v.SetCopyText(markdown)
	return &ReportModel{markdown: markdown, viewer: v}
}

func (m *ReportModel) Init() tea.Cmd { return m.viewer.Init() }

func (m *ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CloseViewMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		_, cmd := m.viewer.Update(msg)
		if w := m.viewer.ContentWidth(); w != m.width {
			m.width = w
			m.viewer.SetContent(m.rendered(w))
		}
		return m, cmd
	}
	_, cmd := m.viewer.Update(msg)
	return m, cmd
}

func (m *ReportModel) View() tea.View {
	v := m.viewer.View()
	v.AltScreen = true
	return v
}

// rendered falls back to the raw markdown when rendering fails.
func (m *ReportModel) rendered(width int) string {
	out, err := RenderMarkdown(m.markdown, width)
	if err != nil {
		platform.Logger.Warn("rendering report failed", "err", err)
		return m.markdown
	}
	return out
}

// ShowReport opens markdown in the interactive viewer. When stdout is not
// a terminal or accessible output is requested, the markdown is written
// to w instead.
func ShowReport(w io.Writer, title, markdown string) error {
	if IsAccessible() || !platform.IsTerminal(os.Stdout) {
		_, err := io.WriteString(w, markdown)
		return err
	}

	theme := DefaultTheme()
	if _, err := tea.NewProgram(NewReport(title, markdown, &theme)).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
