package effect

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/jiva/internal/dom"
	"github.com/alexisbeaulieu97/jiva/internal/frame"
	"github.com/alexisbeaulieu97/jiva/internal/logger"
	"github.com/alexisbeaulieu97/jiva/internal/portal"
)

// ErrNoTarget is returned by Trigger when no target node is given.
var ErrNoTarget = errors.New("effect: no target")

// DefaultAccent is used when neither the target nor the options supply one.
const DefaultAccent dom.Color = "#3b82f6"

// HolderName names the overlay holder a session prepends into its target.
const HolderName = "highlight-holder"

// SessionID identifies a session. IDs of finished sessions never match a
// live one.
type SessionID struct {
	index int
	gen   uint32
}

func (id SessionID) String() string {
	return fmt.Sprintf("%d.%d", id.index, id.gen)
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger logs session starts and ends at debug level.
func WithLogger(l *logger.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

// WithAccent sets the fallback accent colour passed to effects.
func WithAccent(c dom.Color) Option {
	return func(s *Scheduler) {
		if !c.IsTransparent() {
			s.accent = c
		}
	}
}

type session struct {
	gen    uint32
	live   bool
	name   string
	target *dom.Node
	holder *dom.Node
	portal *portal.Portal
	// releases the target disconnect subscription
	unobserve func()
}

// Scheduler starts effect sessions and guarantees their cleanup.
type Scheduler struct {
	host   *portal.Host
	frames *frame.Scheduler
	accent dom.Color
	log    *logger.Logger

	slots  []session
	free   []int
	active int
}

// NewScheduler creates a scheduler mounting effects through host and
// animating them on frames.
func NewScheduler(host *portal.Host, frames *frame.Scheduler, opts ...Option) *Scheduler {
	s := &Scheduler{host: host, frames: frames, accent: DefaultAccent}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Active returns the number of sessions that have not been cleaned up.
func (s *Scheduler) Active() int {
	return s.active
}

// Live reports whether id refers to a session that has not been cleaned up.
func (s *Scheduler) Live(id SessionID) bool {
	return s.lookup(id) != nil
}

// Trigger plays eff on target in response to ev. A nil effect plays Halo.
func (s *Scheduler) Trigger(target *dom.Node, eff Effect, ev dom.Event) (SessionID, error) {
	if target == nil {
		return SessionID{}, ErrNoTarget
	}
	if eff == nil {
		eff = Halo{}
	}

	if target.Style.Position == dom.PositionStatic {
		target.Style.Position = dom.PositionRelative
	}
	holder := dom.NewNode(HolderName)
	holder.Style.Position = dom.PositionAbsolute
	holder.Style.PointerEvents = dom.PointerNone
	target.PrependChild(holder)

	id := s.alloc()
	sess := &s.slots[id.index]
	sess.name = nameOf(eff)
	sess.target = target
	sess.holder = holder

	cleanup := func() { s.finish(id) }
	sess.unobserve = target.OnDisconnect(cleanup)

	s.log.Debug("effect session started", "session", id.String(), "effect", sess.name, "target", target.Name)

	props := Props{
		Target:  target,
		Event:   ev,
		Cleanup: cleanup,
		Frames:  s.frames,
		Accent:  s.accent,
	}
	p := s.host.Render(holder, portal.ComponentFunc(func(container *dom.Node) func() {
		props.Container = container
		return eff.Run(props)
	}))

	if cur := s.lookup(id); cur != nil {
		cur.portal = p
	} else {
		// the effect finished while mounting
		p.Unmount()
	}
	return id, nil
}

func (s *Scheduler) finish(id SessionID) {
	sess := s.lookup(id)
	if sess == nil {
		return
	}
	done := *sess
	s.release(id.index)

	if done.unobserve != nil {
		done.unobserve()
	}
	done.portal.Unmount()
	done.holder.Remove()
	s.log.Debug("effect session cleaned up", "session", id.String(), "effect", done.name)
}

func (s *Scheduler) lookup(id SessionID) *session {
	if id.gen == 0 || id.index < 0 || id.index >= len(s.slots) {
		return nil
	}
	sess := &s.slots[id.index]
	if !sess.live || sess.gen != id.gen {
		return nil
	}
	return sess
}

func (s *Scheduler) alloc() SessionID {
	s.active++
	var i int
	if n := len(s.free); n > 0 {
		i = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, session{gen: 1})
		i = len(s.slots) - 1
	}
	s.slots[i].live = true
	return SessionID{index: i, gen: s.slots[i].gen}
}

func (s *Scheduler) release(i int) {
	gen := s.slots[i].gen + 1
	if gen == 0 {
		gen = 1
	}
	s.slots[i] = session{gen: gen}
	s.free = append(s.free, i)
	s.active--
}
