package tui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// scrollbarWidth is the space reserved for the scrollbar column (space + char).
const scrollbarWidth = 2

const viewerHeaderLines = 3 // blank line + rule + title
const viewerFooterLines = 2 // blank line + help text

// renderScrollbar returns a single-column string (one char per row) showing
// a scrollbar track with a proportional thumb. Returns empty string when
// all content fits on screen.
func renderScrollbar(trackHeight, totalLines, visibleLines int, scrollPercent float64, theme *Theme) string {
	if totalLines <= visibleLines || trackHeight < 1 {
		return ""
	}
	thumbSize := max(1, trackHeight*visibleLines/totalLines)
	thumbStart := int(scrollPercent * float64(trackHeight-thumbSize))
	thumbStart = min(max(0, thumbStart), trackHeight-thumbSize)

	track := lipgloss.NewStyle().Foreground(theme.Muted)
	thumb := lipgloss.NewStyle().Foreground(theme.Secondary)

	lines := make([]string, trackHeight)
	for i := range lines {
		if i >= thumbStart && i < thumbStart+thumbSize {
			lines[i] = thumb.Render("┃")
		} else {
			lines[i] = track.Render("│")
		}
	}
	return strings.Join(lines, "\n")
}

// ViewerModel wraps a bubbles viewport with a title bar, help footer,
// and scroll percentage indicator.
type ViewerModel struct {
	title    string
	content  string
	copyText string // copied by "y"; content when empty
	viewport viewport.Model
	theme    *Theme
	ready    bool
	copied   bool
	width    int
	height   int
}

// NewViewer creates a viewer for content. It is sized on the first
// WindowSizeMsg or by SetSize.
func NewViewer(title, content string, theme *Theme) *ViewerModel {
	return &ViewerModel{
		title:   title,
		content: content,
		theme:   theme,
	}
}

// SetSize initializes or resizes the viewport to the given dimensions.
func (m *ViewerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport = viewport.New(
		viewport.WithWidth(m.ContentWidth()),
		viewport.WithHeight(max(1, height-viewerHeaderLines-viewerFooterLines)),
	)
	m.viewport.SoftWrap = true
	m.viewport.SetContent(m.content)
	m.ready = true
}

// ContentWidth is the number of columns available to the content.
func (m *ViewerModel) ContentWidth() int {
	return max(1, m.width-scrollbarWidth)
}

// SetContent replaces the displayed text, keeping the scroll position
// when the viewport is ready.
func (m *ViewerModel) SetContent(content string) {
	m.content = content
	if m.ready {
		m.viewport.SetContent(content)
	}
}

// SetCopyText sets the text the copy key places on the clipboard.
func (m *ViewerModel) SetCopyText(text string) { m.copyText = text }

// Content returns the text currently displayed.
func (m *ViewerModel) Content() string { return m.content }

func (m *ViewerModel) Init() tea.Cmd { return nil }

func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.SetSize(msg.Width, msg.Height)
			return m, nil
		}
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.SetWidth(m.ContentWidth())
		m.viewport.SetHeight(max(1, msg.Height-viewerHeaderLines-viewerFooterLines))
		return m, nil

	case viewerCopiedMsg:
		m.copied = false
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case IsQuit(msg), IsBack(msg):
			return m, func() tea.Msg { return CloseViewMsg{} }
		case msg.String() == "g":
			m.viewport.GotoTop()
			return m, nil
		case msg.String() == "G":
			m.viewport.GotoBottom()
			return m, nil
		case msg.String() == "y":
			m.copied = true
			text := m.copyText
			if text == "" {
				text = m.content
			}
			return m, tea.Batch(
				tea.SetClipboard(text),
				tea.Tick(2*time.Second, func(time.Time) tea.Msg {
					return viewerCopiedMsg{}
				}),
			)
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ViewerModel) View() tea.View {
	var b strings.Builder

	b.WriteString(m.theme.SectionBanner(m.title))

	if !m.ready {
		b.WriteString("\n  Loading...")
		return tea.NewView(b.String())
	}

	vpContent := m.viewport.View()
	totalLines := strings.Count(m.content, "\n") + 1
	vpHeight := m.viewport.Height()
	bar := renderScrollbar(vpHeight, totalLines, vpHeight, m.viewport.ScrollPercent(), m.theme)
	if bar != "" {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, vpContent, " ", bar))
	} else {
		b.WriteString(vpContent)
	}
	b.WriteString("\n")

	pct := int(m.viewport.ScrollPercent() * 100)
	var trail string
	if m.copied {
		trail = lipgloss.NewStyle().Foreground(m.theme.Success).Bold(true).Render("Copied!")
	} else {
		trail = m.theme.HelpKey.Render(fmt.Sprintf("%d", pct)) + "%"
	}
	help := fmt.Sprintf(
		"%s scroll  %s page  %s/%s top/bottom  %s copy  %s quit  %s",
		m.theme.HelpKey.Render("j/k"),
		m.theme.HelpKey.Render("pgup/pgdn"),
		m.theme.HelpKey.Render("g"),
		m.theme.HelpKey.Render("G"),
		m.theme.HelpKey.Render("y"),
		m.theme.HelpKey.Render("q"),
		trail,
	)
	b.WriteString(help)

	return tea.NewView(b.String())
}
