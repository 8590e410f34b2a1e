// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of event listener functions to receive
// different event types. Listeners are closure methods with all
// context captured, registered on specific objects. Add returns a
// [Handle] that can be passed to Delete to detach the listener,
// which ephemeral clients such as drag sessions use to remove
// themselves on teardown.
type Listeners struct {
	funs   map[Types][]listener
	nextID int
}

type listener struct {
	id  int
	fun func(e Event)
}

// Handle identifies a registered listener for later removal.
// The zero Handle is valid and refers to nothing.
type Handle struct {
	typ Types
	id  int
}

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if ls.funs != nil {
		return
	}
	ls.funs = make(map[Types][]listener)
}

// Add adds a listener function for the given type, returning a
// [Handle] for removal.
func (ls *Listeners) Add(typ Types, fun func(e Event)) Handle {
	ls.Init()
	ls.nextID++
	ls.funs[typ] = append(ls.funs[typ], listener{id: ls.nextID, fun: fun})
	return Handle{typ: typ, id: ls.nextID}
}

// Delete removes the listener registered under the given handle.
// It is a no-op for the zero handle or one already removed.
func (ls *Listeners) Delete(h Handle) {
	if h.id == 0 || ls.funs == nil {
		return
	}
	ets := ls.funs[h.typ]
	for i, l := range ets {
		if l.id == h.id {
			ls.funs[h.typ] = append(ets[:i:i], ets[i+1:]...)
			return
		}
	}
}

// Call calls all functions registered for the given event.
// It goes in _reverse_ order so the last functions added are the
// first called, and it stops when the event is marked as Handled.
// This allows for a natural and optional override behavior.
func (ls *Listeners) Call(ev Event) {
	if ev.IsHandled() {
		return
	}
	ets := ls.funs[ev.Type()]
	for i := len(ets) - 1; i >= 0; i-- {
		ets[i].fun(ev)
		if ev.IsHandled() {
			break
		}
	}
}
