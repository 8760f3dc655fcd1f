// Package effect plays transient click feedback on nodes.
//
// A Scheduler turns a click on a target into a session: it makes the target a
// containing block, prepends an overlay holder into it and mounts an Effect
// into the holder through a portal. The effect owns its animation and calls
// Props.Cleanup once it is finished; cleanup unmounts the portal, removes the
// holder and frees the session slot. Cleanup also runs when the target leaves
// the document, so every session ends exactly once.
package effect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/jiva/internal/dom"
	"github.com/alexisbeaulieu97/jiva/internal/frame"
)

// Props is what an effect receives when it is mounted.
type Props struct {
	// Target is the node that was clicked.
	Target *dom.Node
	// Event is the originating click.
	Event dom.Event
	// Cleanup ends the session. Calls after the first do nothing.
	Cleanup func()
	// Container is the portal container inside the session holder.
	Container *dom.Node
	// Frames drives the effect's animation.
	Frames *frame.Scheduler
	// Accent is the theme colour used when the target has none to offer.
	Accent dom.Color
}

// Effect runs one highlight animation. Run returns a teardown that must
// cancel every frame, transition and observer the effect still holds. The
// teardown runs when the session is cleaned up, whoever triggered it.
type Effect interface {
	Run(p Props) (teardown func())
}

// Func adapts a function to Effect.
type Func func(p Props) func()

// Run calls f.
func (f Func) Run(p Props) func() {
	return f(p)
}

// Namer is implemented by effects that want a readable name in logs.
type Namer interface {
	Name() string
}

func nameOf(e Effect) string {
	if n, ok := e.(Namer); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", e)
}

var builtin = map[string]func() Effect{
	"halo":   func() Effect { return Halo{} },
	"shake":  func() Effect { return Shake{} },
	"ripple": func() Effect { return Ripple{} },
}

// ByName returns a built-in effect. Names are case-insensitive.
func ByName(name string) (Effect, bool) {
	ctor, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Names lists the built-in effect names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
