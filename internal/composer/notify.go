package composer

import (
	"sync"
	"time"
)

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

type Notification struct {
	ID      uint64           `json:"id"`
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
	ShownAt time.Time        `json:"shown_at"`
}

// Notifier shows at most one notification at a time. A shown notification
// hides itself after ttl unless it is dismissed or replaced first.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Notification
	timer   *time.Timer
	seq     uint64
}

func NewNotifier(ttl time.Duration) *Notifier {
	return &Notifier{ttl: ttl}
}

func (n *Notifier) Success(message string) Notification {
	return n.Show(NotifySuccess, message)
}

func (n *Notifier) Error(message string) Notification {
	return n.Show(NotifyError, message)
}

// Show replaces whatever is visible and restarts the hide timer.
func (n *Notifier) Show(kind NotificationKind, message string) Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopTimer()
	n.seq++
	note := Notification{
		ID:      n.seq,
		Kind:    kind,
		Message: message,
		ShownAt: time.Now(),
	}
	n.current = &note

	if n.ttl > 0 {
		id := note.ID
		n.timer = time.AfterFunc(n.ttl, func() { n.expire(id) })
	}
	return note
}

// Dismiss hides the current notification, if any.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopTimer()
	n.current = nil
}

// Current returns a copy of the visible notification or nil when idle.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return nil
	}
	note := *n.current
	return &note
}

// Stop releases the pending timer without changing what is shown.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopTimer()
}

// expire only hides the notification it was armed for.
func (n *Notifier) expire(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current != nil && n.current.ID == id {
		n.current = nil
		n.timer = nil
	}
}

func (n *Notifier) stopTimer() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
