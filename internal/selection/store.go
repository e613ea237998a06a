// Package selection holds the picker's "currently selected path" and the
// filter hook consulted before a navigation event is recorded.
package selection

// Kind distinguishes directory events from file events.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindFile {
		return "file"
	}
	return "directory"
}

// Event is a navigation event published by one of the tree roots.
type Event struct {
	Root string
	Path string
	Kind Kind
}

// Store is the single authoritative selection cell.
//
// A Store is created once per process and handed by pointer to every picker,
// so sequentially or concurrently presented pickers observe each other's last
// write. It is not safe for concurrent use: every call must come from the
// Bubble Tea update loop that owns it.
type Store struct {
	current     string
	subscribers []subscriber
	nextID      int
}

type subscriber struct {
	id int
	fn func(path string)
}

// NewStore returns a store with the empty selection.
func NewStore() *Store {
	return &Store{}
}

// Record overwrites the selection unconditionally and notifies subscribers
// in subscription order.
func (s *Store) Record(path string) {
	s.current = path
	// Copy so a subscriber may unsubscribe while being notified
	subs := append([]subscriber(nil), s.subscribers...)
	for _, sub := range subs {
		sub.fn(path)
	}
}

// Current returns the last recorded path, or "" if nothing was recorded yet.
func (s *Store) Current() string {
	return s.current
}

// Subscribe registers fn for every subsequent Record. The returned function
// removes the subscription and is safe to call more than once.
func (s *Store) Subscribe(fn func(path string)) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (s *Store) Subscribers() int {
	return len(s.subscribers)
}
