package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/sprout/internal/models"
	"github.com/akyairhashvil/sprout/internal/timeline"
)

type Theme struct {
	Name           string
	Base           lipgloss.Style
	Border         lipgloss.Color
	Header         lipgloss.Style
	Item           lipgloss.Style
	Focused        lipgloss.Style
	Dim            lipgloss.Style
	Highlight      lipgloss.Style
	StageCurrent   lipgloss.Style
	StageCompleted lipgloss.Style
	StageUpcoming  lipgloss.Style
	PlantDone      lipgloss.Style
	PlantCanceled  lipgloss.Style
	Banner         lipgloss.Style
	Error          lipgloss.Style
	Input          lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:           "Default",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Border:         lipgloss.Color("63"),
		Header:         lipgloss.NewStyle().Foreground(lipgloss.Color("70")).Bold(true),
		Item:           lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Focused:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		StageCurrent:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		StageCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("70")),
		StageUpcoming:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		PlantDone:      lipgloss.NewStyle().Foreground(lipgloss.Color("70")).Bold(true),
		PlantCanceled:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Banner:         lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("22")).Padding(0, 1),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("70")).Padding(0, 1).Width(40),
	},
	"dracula": {
		Name:           "Dracula",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Border:         lipgloss.Color("62"),                                            // Purple
		Header:         lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true), // Cyan
		Item:           lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Focused:        lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		StageCurrent:   lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		StageCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("120")),            // Green
		StageUpcoming:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		PlantDone:      lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		PlantCanceled:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Banner:         lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("141")).Padding(0, 1),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(40),
	},
	"meadow": {
		Name:           "Meadow",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Border:         lipgloss.Color("107"),
		Header:         lipgloss.NewStyle().Foreground(lipgloss.Color("149")).Bold(true),
		Item:           lipgloss.NewStyle().Foreground(lipgloss.Color("230")),
		Focused:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("101")),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("107")),
		StageCurrent:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		StageCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("149")),
		StageUpcoming:  lipgloss.NewStyle().Foreground(lipgloss.Color("101")),
		PlantDone:      lipgloss.NewStyle().Foreground(lipgloss.Color("149")).Bold(true),
		PlantCanceled:  lipgloss.NewStyle().Foreground(lipgloss.Color("95")).Strikethrough(true),
		Banner:         lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Background(lipgloss.Color("186")).Padding(0, 1),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("167")).Bold(true),
		Input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("149")).Padding(0, 1).Width(40),
	},
}

// ThemeOrder is the cycle order of the theme key.
var ThemeOrder = []string{"default", "dracula", "meadow"}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}

// NextTheme returns the theme after name in ThemeOrder, wrapping around.
func NextTheme(name string) string {
	for i, n := range ThemeOrder {
		if n == name {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}

func (t Theme) StageStyle(s timeline.Status) lipgloss.Style {
	switch s {
	case timeline.Current:
		return t.StageCurrent
	case timeline.Completed:
		return t.StageCompleted
	default:
		return t.StageUpcoming
	}
}

func (t Theme) PlantStyle(s models.PlantStatus) lipgloss.Style {
	switch s {
	case models.PlantDone:
		return t.PlantDone
	case models.PlantCanceled:
		return t.PlantCanceled
	default:
		return t.Item
	}
}
