package config

// Layout constants.
const (
	// MinContentWidth is the narrowest width the views render for.
	MinContentWidth = 40

	// ProgressBarWidth is the preferred lifecycle progress bar width.
	ProgressBarWidth = 40

	// ListIndent is the left padding for list rows.
	ListIndent = 2
)

// Display limits.
const (
	// MaxVisibleRows limits list rows shown before scrolling.
	MaxVisibleRows = 15

	// MaxDescriptionWidth caps inline descriptions.
	MaxDescriptionWidth = 72

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxGardenerNameLength is the maximum gardener name length.
	MaxGardenerNameLength = 32
)
