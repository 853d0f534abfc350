package notify

import (
	"sync"
	"time"

	"carexpert/utils"

	"go.uber.org/zap"
)

// Level of a transient notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one transient, non-blocking toast. Notifications are
// informational only; nothing in the client blocks on them.
type Notification struct {
	Level   Level
	Message string
	At      time.Time
}

// Notifier is the surface components raise user-visible notifications on.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Center is the default Notifier. It records notifications and fans them out
// to subscribers (a rendering layer, a test, the demo harness).
type Center struct {
	mu    sync.Mutex
	items []Notification
	subs  map[int]func(Notification)
	next  int
}

func NewCenter() *Center {
	return &Center{subs: make(map[int]func(Notification))}
}

func (c *Center) Success(message string) {
	c.push(Notification{Level: LevelSuccess, Message: message, At: time.Now()})
}

func (c *Center) Error(message string) {
	c.push(Notification{Level: LevelError, Message: message, At: time.Now()})
}

func (c *Center) push(n Notification) {
	logger := utils.GetLogger()
	logger.Debug("notification", zap.String("level", string(n.Level)), zap.String("message", n.Message))

	c.mu.Lock()
	c.items = append(c.items, n)
	subs := make([]func(Notification), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	// Notify outside the lock so a subscriber may call back into the center.
	for _, fn := range subs {
		fn(n)
	}
}

// Subscribe registers fn for every future notification and returns an
// unsubscribe func.
func (c *Center) Subscribe(fn func(Notification)) func() {
	c.mu.Lock()
	id := c.next
	c.next++
	c.subs[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// All returns a copy of every notification raised so far, oldest first.
func (c *Center) All() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Last returns the most recent notification, or nil if none was raised.
func (c *Center) Last() *Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return nil
	}
	n := c.items[len(c.items)-1]
	return &n
}
