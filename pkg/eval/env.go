package eval

import (
	"github.com/xiaq/persistent/hash"
	"github.com/xiaq/persistent/hashmap"
)

var emptyMap = hashmap.New(
	func(a, b any) bool { return a == b },
	func(k any) uint32 { return hash.String(k.(string)) })

// Env maps identifier text to runtime values. Exactly one Env is live for a
// whole top-level program; it is passed by reference into every evaluation
// and Set mutates it in place, so definitions are visible to all subsequent
// evaluations sharing the reference.
//
// The backing map is persistent, which makes Clone O(1): the copy shares
// structure with the original, and later Sets on either side are invisible to
// the other. That is exactly the copy-at-call-time semantics closures need.
type Env struct {
	m hashmap.Map
}

// NewEnv returns a new, empty environment.
func NewEnv() *Env {
	return &Env{m: emptyMap}
}

// Get looks up name, returning the bound value and whether it is bound.
func (e *Env) Get(name string) (any, bool) {
	return e.m.Index(name)
}

// Set binds name to v, mutating e in place.
func (e *Env) Set(name string, v any) {
	e.m = e.m.Assoc(name, v)
}

// Clone returns an independent copy of e. The copy is cheap and shares no
// future mutations with the original.
func (e *Env) Clone() *Env {
	return &Env{m: e.m}
}

// Len returns the number of bindings.
func (e *Env) Len() int {
	return e.m.Len()
}
