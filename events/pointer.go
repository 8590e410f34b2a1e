// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
)

// Pointer is a basic pointer event, used for PointerDown, PointerMove,
// and PointerUp. Each physical gesture is identified by a stable
// pointer id, valid from press through release.
type Pointer struct {
	Base
}

func NewPointer(typ Types, where image.Point, pointer int) *Pointer {
	ev := &Pointer{}
	ev.Typ = typ
	ev.Where = where
	ev.Pointer = pointer
	return ev
}

// NewPointerMove returns a new PointerMove event, with the previous
// position recorded for delta computation.
func NewPointerMove(where, prev image.Point, pointer int) *Pointer {
	ev := &Pointer{}
	ev.Typ = PointerMove
	ev.Where = where
	ev.Prev = prev
	ev.Pointer = pointer
	return ev
}

// NewPointerDrag returns a new PointerMove event that is part of a
// press-drag gesture, carrying the starting position of the press.
func NewPointerDrag(where, prev, start image.Point, pointer int) *Pointer {
	ev := &Pointer{}
	ev.Typ = PointerMove
	ev.Where = where
	ev.Prev = prev
	ev.Start = start
	ev.Pointer = pointer
	return ev
}

func (ev Pointer) HasPos() bool {
	return true
}

func (ev *Pointer) String() string {
	return fmt.Sprintf("%v{Pos: %v, Pointer: %v, Time: %v}", ev.Type(), ev.Where, ev.Pointer, ev.Time().Format("04:05"))
}
