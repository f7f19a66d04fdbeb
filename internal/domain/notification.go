package domain

// NotificationLevel mirrors the toast levels of the provider UI; API
// responses carry it so the front end can pick the right styling.
type NotificationLevel string

const (
	LevelInfo    NotificationLevel = "info"
	LevelSuccess NotificationLevel = "success"
	LevelWarning NotificationLevel = "warning"
	LevelError   NotificationLevel = "error"
)
