// Package notify delivers settings changes to subscribers.
//
// Observers subscribe to every change or to a path. A path subscription
// also receives changes below it, so "text_navigation" sees
// "text_navigation.max_line_search". Delivery is synchronous on the
// goroutine that reported the change.
package notify

import (
	"sync"
)

// ChangeType represents the type of configuration change.
type ChangeType int

const (
	// ChangeSet indicates a value was set or updated.
	ChangeSet ChangeType = iota

	// ChangeReset indicates a value went back to its default.
	ChangeReset

	// ChangeReload indicates the settings file was read again.
	ChangeReload
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeReset:
		return "reset"
	case ChangeReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Change represents a configuration change event.
type Change struct {
	// Path is the setting path. Empty for reload events.
	Path string

	// Type is the type of change.
	Type ChangeType

	// OldValue is the previous effective value.
	OldValue any

	// NewValue is the new effective value.
	NewValue any

	// Source identifies where the change came from ("file", "env", "set").
	Source string
}

// Observer is called when configuration changes occur.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

type subscriber struct {
	path     string
	observer Observer
}

// Notifier manages configuration change subscriptions.
type Notifier struct {
	mu     sync.RWMutex
	subs   map[uint64]subscriber
	nextID uint64
	closed bool
}

// New creates a new Notifier.
func New() *Notifier {
	return &Notifier{
		subs: make(map[uint64]subscriber),
	}
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	return n.SubscribePath("", observer)
}

// SubscribePath registers an observer for changes at or below path.
// Reload events reach every observer.
func (n *Notifier) SubscribePath(path string, observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.subs[id] = subscriber{path: path, observer: observer}

	return &Subscription{id: id, notifier: n}
}

// Notify sends a change notification to all matching observers.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()
	if n.closed {
		n.mu.RUnlock()
		return
	}
	var observers []Observer
	for _, s := range n.subs {
		if change.Type == ChangeReload || s.path == "" || matchesPath(s.path, change.Path) {
			observers = append(observers, s.observer)
		}
	}
	n.mu.RUnlock()

	for _, obs := range observers {
		obs(change)
	}
}

// NotifyReload is a convenience method for reload events.
func (n *Notifier) NotifyReload(source string) {
	n.Notify(Change{
		Type:   ChangeReload,
		Source: source,
	})
}

// Close drops all subscriptions. Later notifications are ignored.
// It is safe to call Close multiple times.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	n.subs = make(map[uint64]subscriber)
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.subs, id)
}

// matchesPath reports whether sub equals path or is a parent of it.
func matchesPath(sub, path string) bool {
	if sub == path {
		return true
	}
	return len(path) > len(sub) && path[:len(sub)] == sub && path[len(sub)] == '.'
}
