package config

import "time"

// Timeline arithmetic uses fixed-length days; calendar and DST shifts are ignored.
const (
	Day    = 24 * time.Hour
	Hour   = time.Hour
	Minute = time.Minute
)

// Reminder timing.
const (
	// MinReminderDelay is the smallest delay a reminder is scheduled with.
	// A stage boundary crossed between calculation and dispatch still notifies.
	MinReminderDelay = 1 * time.Second

	// ReminderPollInterval is how often due reminders are delivered.
	ReminderPollInterval = 15 * time.Second

	// TimelineRefreshInterval re-evaluates an open plant detail view.
	TimelineRefreshInterval = 1 * time.Minute
)

// Plant statuses.
const (
	StatusOngoing  = "ongoing"
	StatusDone     = "done"
	StatusCanceled = "canceled"
)

// Stage statuses as shown to the user.
const (
	StageUpcoming  = "Upcoming"
	StageCurrent   = "Current"
	StageCompleted = "Completed"
)

// Database/application settings.
const (
	AppName         = "sprout"
	DBFileName      = "garden.db"
	DBPathEnv       = "SPROUT_DB_PATH"
	UserEnv         = "SPROUT_USER"
	SettingUserKey  = "gardener"
	SettingThemeKey = "theme"
	DBTimeout       = 5 * time.Second
)
