package dom

// EventKind identifies an event type.
type EventKind int

const (
	// EventClick is a pointer activation. It bubbles to ancestors.
	EventClick EventKind = iota
	// EventTransitionEnd fires on the node whose property finished
	// animating. It does not bubble.
	EventTransitionEnd
)

func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventTransitionEnd:
		return "transitionend"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners.
type Event struct {
	Kind EventKind
	// X and Y are document cell coordinates of a click.
	X, Y int
	// Property names the animated property of a transition end.
	Property Property
	// Target is the node the event was dispatched on.
	Target *Node
	// CurrentTarget is the node whose listener is running.
	CurrentTarget *Node

	stopped bool
}

// Click builds a click event at document cell (x, y).
func Click(x, y int) Event {
	return Event{Kind: EventClick, X: x, Y: y}
}

// TransitionEnd builds a transition end event for p.
func TransitionEnd(p Property) Event {
	return Event{Kind: EventTransitionEnd, Property: p}
}

// StopPropagation prevents the event from reaching further ancestors.
func (e *Event) StopPropagation() {
	e.stopped = true
}

type listener struct {
	fn      func(*Event)
	removed bool
}

// AddEventListener registers fn for kind and returns a function that
// removes it. The returned function may be called more than once.
func (n *Node) AddEventListener(kind EventKind, fn func(*Event)) func() {
	if n.listeners == nil {
		n.listeners = make(map[EventKind][]*listener)
	}
	l := &listener{fn: fn}
	n.listeners[kind] = append(n.listeners[kind], l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		ls := n.listeners[kind]
		for i, cur := range ls {
			if cur == l {
				n.listeners[kind] = append(ls[:i], ls[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers ev to n and, for bubbling kinds, to n's ancestors.
// Listeners added while an event is in flight do not see it.
func (n *Node) Dispatch(ev Event) {
	ev.Target = n
	cur := n
	for cur != nil {
		ev.CurrentTarget = cur
		snapshot := append([]*listener(nil), cur.listeners[ev.Kind]...)
		for _, l := range snapshot {
			if l.removed {
				continue
			}
			l.fn(&ev)
		}
		if ev.stopped || ev.Kind != EventClick {
			return
		}
		cur = cur.parent
	}
}
