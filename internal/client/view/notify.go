package view

import "time"

// Level tells a frontend how to style a Notice.
type Level int

const (
	LevelSuccess Level = iota
	LevelInfo
	LevelError
)

// Notice is a transient message for the user. TTL is how long a frontend
// with a status line should keep it on screen.
type Notice struct {
	Text  string
	Level Level
	TTL   time.Duration
}

// Notifier receives notices from the Controller.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// Inbox buffers notices until Drain is called.
type Inbox struct {
	notices []Notice
}

func (b *Inbox) Notify(n Notice) { b.notices = append(b.notices, n) }

// Drain returns and forgets buffered notices.
func (b *Inbox) Drain() []Notice {
	out := b.notices
	b.notices = nil
	return out
}

// Last returns the most recent buffered notice without draining.
func (b *Inbox) Last() (Notice, bool) {
	if len(b.notices) == 0 {
		return Notice{}, false
	}
	return b.notices[len(b.notices)-1], true
}
