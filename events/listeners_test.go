// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenersOrder(t *testing.T) {
	ls := Listeners{}
	order := []int{}
	ls.Add(PointerMove, func(e Event) {
		order = append(order, 1)
	})
	ls.Add(PointerMove, func(e Event) {
		order = append(order, 2)
	})
	ls.Call(NewPointer(PointerMove, image.Pt(1, 2), 0))
	// last added is called first
	assert.Equal(t, []int{2, 1}, order)
}

func TestListenersHandled(t *testing.T) {
	ls := Listeners{}
	got := []int{}
	ls.Add(PointerUp, func(e Event) {
		got = append(got, 1)
	})
	ls.Add(PointerUp, func(e Event) {
		got = append(got, 2)
		e.SetHandled()
	})
	ls.Call(NewPointer(PointerUp, image.Pt(0, 0), 0))
	assert.Equal(t, []int{2}, got)

	ev := NewPointer(PointerUp, image.Pt(0, 0), 0)
	ev.SetHandled()
	ls.Call(ev)
	assert.Equal(t, []int{2}, got)
}

func TestListenersDelete(t *testing.T) {
	ls := Listeners{}
	n := 0
	h1 := ls.Add(KeyChord, func(e Event) { n++ })
	h2 := ls.Add(KeyChord, func(e Event) { n += 10 })

	ls.Call(NewKey("Escape"))
	assert.Equal(t, 11, n)

	ls.Delete(h1)
	ls.Call(NewKey("Escape"))
	assert.Equal(t, 21, n)

	ls.Delete(h2)
	ls.Call(NewKey("Escape"))
	assert.Equal(t, 21, n)

	// zero handle and double delete are no-ops
	ls.Delete(Handle{})
	ls.Delete(h2)
}
