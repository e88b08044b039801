package checklist

// ChangeKind identifies which part of the state a committed transition
// touched.
type ChangeKind int

const (
	ChangeItems ChangeKind = iota
	ChangeTheme
)

// String returns the lowercase name used in logs.
func (k ChangeKind) String() string {
	switch k {
	case ChangeItems:
		return "items"
	case ChangeTheme:
		return "theme"
	default:
		return "unknown"
	}
}

// Change describes one committed transition. Items is a copy of the sequence
// after the transition and is only populated for ChangeItems.
type Change struct {
	Kind     ChangeKind
	Op       string // "toggle", "reset", "complete-all", "theme"
	Items    []bool
	DarkMode bool
}

// Observer is notified after every committed transition, in registration
// order.
type Observer interface {
	Observe(Change)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Change)

// Observe calls f(c).
func (f ObserverFunc) Observe(c Change) { f(c) }

// Outcome is the side-effect summary of an operation.
type Outcome struct {
	Changed   bool
	Celebrate bool
}

// Store owns the checklist and the theme preference. All mutation goes
// through its methods. It is not safe for concurrent use; the board drives
// it from a single event loop.
type Store struct {
	list      *Checklist
	dark      bool
	observers []Observer
}

// NewStore wraps an initial sequence and theme flag.
func NewStore(items []bool, dark bool) *Store {
	return &Store{list: New(items), dark: dark}
}

// Subscribe registers o for all subsequent transitions.
func (s *Store) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Checklist exposes the read side of the sequence.
func (s *Store) Checklist() *Checklist {
	return s.list
}

// DarkMode reports the current theme preference.
func (s *Store) DarkMode() bool {
	return s.dark
}

// Metrics recomputes the aggregate figures from the current sequence.
func (s *Store) Metrics() Metrics {
	return Compute(s.list.items)
}

// Toggle flips the entry at index. Checking an entry celebrates when the new
// completed count is a positive multiple of CelebrationStep. Indices outside
// the list are ignored.
func (s *Store) Toggle(index int) Outcome {
	if index < 0 || index >= s.list.Len() {
		return Outcome{}
	}
	checked := s.list.flip(index)
	out := Outcome{Changed: true}
	if checked {
		done := s.list.Completed()
		out.Celebrate = done > 0 && done%CelebrationStep == 0
	}
	s.notifyItems("toggle")
	return out
}

// Reset clears every entry. It never celebrates.
func (s *Store) Reset() Outcome {
	s.list.fill(false)
	s.notifyItems("reset")
	return Outcome{Changed: true}
}

// CompleteAll checks every entry and always celebrates.
func (s *Store) CompleteAll() Outcome {
	s.list.fill(true)
	s.notifyItems("complete-all")
	return Outcome{Changed: true, Celebrate: true}
}

// ToggleTheme flips the dark-mode preference.
func (s *Store) ToggleTheme() Outcome {
	return s.SetTheme(!s.dark)
}

// SetTheme sets the dark-mode preference. Setting the current value still
// notifies so the stored value is rewritten.
func (s *Store) SetTheme(dark bool) Outcome {
	s.dark = dark
	s.notify(Change{Kind: ChangeTheme, Op: "theme", DarkMode: s.dark})
	return Outcome{Changed: true}
}

func (s *Store) notifyItems(op string) {
	s.notify(Change{Kind: ChangeItems, Op: op, Items: s.list.Items(), DarkMode: s.dark})
}

func (s *Store) notify(c Change) {
	for _, o := range s.observers {
		o.Observe(c)
	}
}
