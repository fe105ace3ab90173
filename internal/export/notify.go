package export

// Level classifies a notification.
type Level int

// Notification levels.
const (
	LevelSuccess Level = iota
	LevelFailure
)

func (l Level) String() string {
	if l == LevelFailure {
		return "error"
	}
	return "success"
}

// Notification is a transient, user-visible message about an export.
type Notification struct {
	Kind    Kind
	Level   Level
	Message string
	Err     error
}

// Notifier shows notifications. Implementations must not block on the
// user dismissing them.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

// Notify calls f.
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}
