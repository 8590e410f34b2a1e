// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
)

// DragDrop adds drag-and-drop protocol data to the basic event.
// It is used for all drag-n-drop notifications: DragStart,
// DragEnter, DragMove, DragLeave, Drop, and DragComplete.
type DragDrop struct {
	Base

	// Data is the drag payload handed to the coordinator by the
	// source. It is passed by reference for the session's duration
	// and is never mutated by the coordinator.
	Data any

	// Dropped reports whether a Drop was delivered to an accepting
	// target. It is only meaningful on DragComplete events.
	Dropped bool
}

func NewDragDrop(typ Types, where image.Point, data any) *DragDrop {
	ev := &DragDrop{}
	ev.Typ = typ
	ev.Where = where
	ev.Data = data
	return ev
}

func (ev DragDrop) HasPos() bool {
	return true
}

func (ev *DragDrop) String() string {
	return fmt.Sprintf("%v{Pos: %v, Dropped: %v, Time: %v}", ev.Type(), ev.Where, ev.Dropped, ev.Time().Format("04:05"))
}
