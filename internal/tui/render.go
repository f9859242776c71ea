package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/sprout/internal/config"
)

func (m MainModel) View() string {
	theme := CurrentTheme
	var body string
	switch m.state {
	case StateInitializing:
		body = fmt.Sprintf(
			"%s\n\n%s\n\n%s\n",
			theme.Header.Render("Welcome to sprout.") + theme.Dim.Render(" v"+VersionLabel()),
			"What should we call you?",
			theme.Input.Render(m.textInput.View()),
		)
		if m.err != nil {
			body += "\n" + theme.Error.Render(m.err.Error()) + "\n"
		}
		return theme.Base.Render(body)
	case StateGarden:
		body = m.renderGarden()
	case StateCatalog:
		body = m.renderCatalog()
	case StateDetail:
		body = m.detail.View(m.width)
	}
	return theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter()))
}

// visibleRange keeps the cursor inside a window of MaxVisibleRows.
func visibleRange(cursor, total int) (int, int) {
	start := 0
	if cursor >= config.MaxVisibleRows {
		start = cursor - config.MaxVisibleRows + 1
	}
	end := start + config.MaxVisibleRows
	if end > total {
		end = total
	}
	return start, end
}

func (m MainModel) rowPrefix(i int) string {
	if i == m.cursor {
		return CurrentTheme.Focused.Render("> ")
	}
	return "  "
}

func (m MainModel) contentWidth() int {
	w := m.width - 4*config.ListIndent
	if w < config.MinContentWidth {
		w = config.MinContentWidth
	}
	return w
}

func (m MainModel) renderGarden() string {
	theme := CurrentTheme
	var b strings.Builder
	b.WriteString(theme.Header.Render(fmt.Sprintf("%s's garden", m.user)))
	b.WriteString("\n\n")
	if len(m.garden) == 0 {
		b.WriteString(theme.Dim.Render("Your garden is empty. Press c to browse the catalog."))
		b.WriteString("\n")
		return b.String()
	}
	width := m.contentWidth()
	start, end := visibleRange(m.cursor, len(m.garden))
	for i := start; i < end; i++ {
		s := m.garden[i]
		name := theme.PlantStyle(s.Plant.Status).Render(truncateLabel(s.Plant.Veggie.Name, width/3))
		state := FormatPlantState(s.Plant, s.Timeline)
		pct := fmt.Sprintf("%3.0f%%", s.Timeline.Progress()*100)
		b.WriteString(m.rowPrefix(i) + name + "  " + theme.Dim.Render(pct+"  "+truncateLabel(state, width/2)))
		b.WriteString("\n")
	}
	if end < len(m.garden) {
		b.WriteString(theme.Dim.Render(fmt.Sprintf("  ... %d more", len(m.garden)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m MainModel) renderCatalog() string {
	theme := CurrentTheme
	var b strings.Builder
	b.WriteString(theme.Header.Render("Catalog"))
	b.WriteString("\n\n")
	if len(m.catalog) == 0 {
		b.WriteString(theme.Dim.Render("The catalog is empty."))
		b.WriteString("\n")
		return b.String()
	}
	width := m.contentWidth()
	start, end := visibleRange(m.cursor, len(m.catalog))
	for i := start; i < end; i++ {
		v := m.catalog[i]
		meta := fmt.Sprintf("%s, %d stages, %s", v.Type, len(v.Stages), FormatDays(v.TotalDays()))
		b.WriteString(m.rowPrefix(i) + theme.Item.Render(v.Name) + "  " + theme.Dim.Render(meta))
		b.WriteString("\n")
		if i == m.cursor && v.Description != "" {
			desc := truncateLabel(v.Description, min(width, config.MaxDescriptionWidth))
			b.WriteString(strings.Repeat(" ", 2*config.ListIndent) + theme.Dim.Render(desc))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m MainModel) renderFooter() string {
	theme := CurrentTheme
	var lines []string
	if m.banner != "" {
		lines = append(lines, theme.Banner.Render(truncateLabel(m.banner, m.contentWidth())))
	}
	if m.err != nil {
		lines = append(lines, theme.Error.Render(m.err.Error()))
	}
	lines = append(lines, theme.Dim.Render(m.keys.HelpFor(m.state)))
	return "\n" + strings.Join(lines, "\n")
}
