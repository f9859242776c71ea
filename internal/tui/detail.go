package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/akyairhashvil/sprout/internal/config"
	"github.com/akyairhashvil/sprout/internal/engine"
	"github.com/akyairhashvil/sprout/internal/models"
	"github.com/akyairhashvil/sprout/internal/reminder"
	"github.com/akyairhashvil/sprout/internal/timeline"
)

// DetailModel is the plant detail screen. Its reminder session lives exactly
// as long as the screen stays open.
type DetailModel struct {
	plantID  int64
	session  *reminder.Session
	eval     engine.Evaluation
	pending  []models.Reminder
	loaded   bool
	progress progress.Model
}

func NewDetailModel(plantID int64, width int) DetailModel {
	p := progress.New(progress.WithDefaultGradient())
	p.Width = progressWidth(width)
	return DetailModel{
		plantID:  plantID,
		session:  reminder.NewSession(),
		progress: p,
	}
}

func progressWidth(width int) int {
	w := config.ProgressBarWidth
	if avail := width - 4*config.ListIndent - 8; width > 0 && avail < w {
		w = avail
	}
	if w < 10 {
		w = 10
	}
	return w
}

func stageMarker(s timeline.Status) string {
	switch s {
	case timeline.Completed:
		return "[x]"
	case timeline.Current:
		return "[>]"
	default:
		return "[ ]"
	}
}

func (d DetailModel) View(width int) string {
	if !d.loaded {
		return "Loading plant..."
	}
	theme := CurrentTheme
	p := d.eval.Plant
	tl := d.eval.Timeline
	indent := strings.Repeat(" ", config.ListIndent)
	contentWidth := width - 2*config.ListIndent
	if contentWidth < config.MinContentWidth {
		contentWidth = config.MinContentWidth
	}

	var b strings.Builder
	b.WriteString(theme.Header.Render(fmt.Sprintf("%s (%s)", p.Veggie.Name, p.Veggie.Type)))
	b.WriteString("\n")
	b.WriteString(theme.Dim.Render("Planted " + FormatDate(p.CreatedAt) + "  "))
	b.WriteString(theme.PlantStyle(p.Status).Render(string(p.Status)))
	b.WriteString("\n\n")

	b.WriteString(d.progress.ViewAs(tl.Progress()))
	b.WriteString(theme.Dim.Render("  " + FormatStageCount(tl)))
	b.WriteString("\n\n")

	if len(tl.Entries) == 0 {
		b.WriteString(indent + theme.Dim.Render("This veggie has no growth stages."))
		b.WriteString("\n")
	}
	for _, e := range tl.Entries {
		style := theme.StageStyle(e.Status)
		line := fmt.Sprintf("%s %d. %s", stageMarker(e.Status), e.Stage.StageNumber, e.Stage.Title)
		var info string
		switch e.Status {
		case timeline.Current:
			info = FormatTimeLeft(tl.Remaining)
		case timeline.Completed:
			info = "ended " + FormatDate(e.End)
		default:
			info = "ends " + FormatDate(e.End)
		}
		b.WriteString(indent + style.Render(truncateLabel(line, contentWidth/2)))
		b.WriteString(theme.Dim.Render(fmt.Sprintf("  %s  %s", FormatDays(e.Stage.StageEndDays), info)))
		b.WriteString("\n")
		if e.Status == timeline.Current && e.Stage.Description != "" {
			b.WriteString(indent + indent + theme.Item.Render(truncateLabel(e.Stage.Description, min(contentWidth, config.MaxDescriptionWidth))))
			b.WriteString("\n")
		}
	}

	if tl.IsLifecycleComplete && p.Status != models.PlantCanceled {
		b.WriteString("\n" + indent + theme.PlantDone.Render("Growth complete. Time to harvest."))
		b.WriteString("\n")
	}

	if len(d.pending) > 0 {
		b.WriteString("\n" + theme.Highlight.Render("Reminders"))
		b.WriteString("\n")
		for _, r := range d.pending {
			b.WriteString(indent + theme.Dim.Render(FormatDateTime(r.FireAt)) + "  " + r.Payload.Title())
			b.WriteString("\n")
		}
	}
	return b.String()
}
