package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/sprout/internal/config"
	"github.com/akyairhashvil/sprout/internal/models"
	"github.com/akyairhashvil/sprout/internal/timeline"
)

// FormatTimeLeft renders the active stage breakdown, e.g. "2d 4h 10m left".
func FormatTimeLeft(r *timeline.TimeRemaining) string {
	if r == nil {
		return ""
	}
	if r.Days == 0 && r.Hours == 0 && r.Minutes == 0 {
		return "less than a minute left"
	}
	var parts []string
	if r.Days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", r.Days))
	}
	if r.Days > 0 || r.Hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", r.Hours))
	}
	parts = append(parts, fmt.Sprintf("%dm", r.Minutes))
	return strings.Join(parts, " ") + " left"
}

// FormatDays formats a stage length: "1 day", "3 days", "1.5 days".
func FormatDays(days float64) string {
	s := strconv.FormatFloat(days, 'f', -1, 64)
	if days == 1 {
		return s + " day"
	}
	return s + " days"
}

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

func FormatDate(t time.Time) string {
	return t.Local().Format("Jan 2, 2006")
}

func FormatDateTime(t time.Time) string {
	return t.Local().Format("Jan 2 15:04")
}

// FormatPlantState is the one-line state of a plant in the garden list.
func FormatPlantState(p models.Plant, tl timeline.StageTimeline) string {
	switch p.Status {
	case models.PlantCanceled:
		return "canceled"
	case models.PlantDone:
		return "harvested"
	}
	if tl.IsLifecycleComplete {
		return "ready to harvest"
	}
	if e, ok := tl.Active(); ok {
		return fmt.Sprintf("%s, %s", e.Stage.Title, FormatTimeLeft(tl.Remaining))
	}
	return "waiting"
}

// FormatStageCount formats completed stages for display.
func FormatStageCount(tl timeline.StageTimeline) string {
	total := len(tl.Entries)
	if total == 0 {
		return "No stages"
	}
	return fmt.Sprintf("%d/%d stages", tl.Count(timeline.Completed), total)
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
