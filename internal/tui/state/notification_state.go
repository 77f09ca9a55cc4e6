package state

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warning notifications
	LevelWarning
	// LevelError represents error notifications
	LevelError
)

// Notification represents a single status message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the one status message shown in the status bar.
// Every Set replaces the previous message; messages never accumulate.
type NotificationState struct {
	current Notification
}

// NewNotificationState creates a NotificationState showing "Ready".
func NewNotificationState() *NotificationState {
	return &NotificationState{
		current: Notification{Level: LevelInfo, Message: "Ready"},
	}
}

// Set replaces the current message.
func (s *NotificationState) Set(level NotificationLevel, message string) {
	s.current = Notification{Level: level, Message: message}
}

// Info replaces the current message with an informational one.
func (s *NotificationState) Info(message string) {
	s.Set(LevelInfo, message)
}

// Error replaces the current message with "Error: <err>".
func (s *NotificationState) Error(err error) {
	s.Set(LevelError, "Error: "+err.Error())
}

// Current returns the message on display.
func (s *NotificationState) Current() Notification {
	return s.current
}
