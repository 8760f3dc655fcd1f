// Package disclosure is the headless engine behind collapse and accordion
// widgets.
//
// A Group owns the set of expanded panel ids and applies its Policy on every
// toggle. Panels, triggers and contents hold explicit handles to their owner;
// constructing one without its owner is a configuration error. A Region adds
// the animated, measured height of a panel's content and decides when the
// content is mounted.
package disclosure
