// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the event structures and types used by the
// cedar scene graph and its drag-and-drop coordination core.
// The event model is retained-mode and cooperative: events are
// delivered synchronously to listeners by the host input-dispatch
// loop, and every handler completes fully before the next runs.
package events

import (
	"fmt"
	"image"
	"time"

	"github.com/cedarui/cedar/events/key"
)

// Event is the interface for all events. Most events use the same
// Base type and only need to set relevant fields and the type.
type Event interface {

	// Type returns the type of event associated with given event
	Type() Types

	// Init sets the time to now, if it was not set already.
	Init()

	// IsHandled returns whether this event has already been processed
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// so no further processing occurs on it.
	SetHandled()

	// ClearHandled marks the event as no longer having been processed
	ClearHandled()

	// HasPos returns true if the event has a position
	HasPos() bool

	// Pos returns the position of the event in the root coordinate
	// space, in raw display dots (pixels).
	Pos() image.Point

	// LocalPos returns the position of the event in the local
	// coordinate space of the receiving element, as Pos minus
	// the local offset set via SetLocalOff.
	LocalPos() image.Point

	// SetLocalOff sets the offset subtracted from the root-space
	// position to compute LocalPos for the current receiver.
	SetLocalOff(off image.Point)

	// StartPos returns the starting position of the gesture
	// (the position of the initial press), in root coordinates.
	StartPos() image.Point

	// StartDelta returns Pos minus StartPos.
	StartDelta() image.Point

	// PrevPos returns the previous position of the pointer, in root
	// coordinates.
	PrevPos() image.Point

	// PrevDelta returns Pos minus PrevPos.
	PrevDelta() image.Point

	// PointerID returns the stable id of the physical gesture
	// (mouse button press, touch) driving this event. It is valid
	// from the press through the corresponding release.
	PointerID() int

	// KeyChord returns the key chord for key events, else "".
	KeyChord() key.Chord

	// Time returns the time at which the event was generated.
	Time() time.Time

	// StartTime returns the time at which the gesture started.
	StartTime() time.Time

	// SinceStart returns Time minus StartTime.
	SinceStart() time.Duration

	// String returns a string representation of the event
	String() string
}

// Base is the base type for events, implementing the [Event]
// interface. Concrete event types embed it and override methods
// as needed.
type Base struct {

	// Typ is the type of the event
	Typ Types

	// Where is the event position in the root coordinate space,
	// in raw display dots.
	Where image.Point

	// Start is the starting position of the gesture, for pointer
	// events that are part of one.
	Start image.Point

	// Prev is the previous position of the pointer.
	Prev image.Point

	// Pointer is the stable id of the gesture driving this event.
	Pointer int

	// Chord is the key chord, for key events.
	Chord key.Chord

	// GenTime is when the event was generated.
	GenTime time.Time

	// StTime is when the gesture driving the event started.
	StTime time.Time

	// LocalOff is the offset subtracted from Where to compute
	// the receiver-local position.
	LocalOff image.Point

	// Handled indicates that the event has been processed.
	Handled bool
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Init() {
	if ev.GenTime.IsZero() {
		ev.GenTime = time.Now()
	}
}

func (ev *Base) IsHandled() bool {
	return ev.Handled
}

func (ev *Base) SetHandled() {
	ev.Handled = true
}

func (ev *Base) ClearHandled() {
	ev.Handled = false
}

func (ev *Base) HasPos() bool {
	return false
}

func (ev *Base) Pos() image.Point {
	return ev.Where
}

func (ev *Base) LocalPos() image.Point {
	return ev.Where.Sub(ev.LocalOff)
}

func (ev *Base) SetLocalOff(off image.Point) {
	ev.LocalOff = off
}

func (ev *Base) StartPos() image.Point {
	return ev.Start
}

func (ev *Base) StartDelta() image.Point {
	return ev.Where.Sub(ev.Start)
}

func (ev *Base) PrevPos() image.Point {
	return ev.Prev
}

func (ev *Base) PrevDelta() image.Point {
	return ev.Where.Sub(ev.Prev)
}

func (ev *Base) PointerID() int {
	return ev.Pointer
}

func (ev *Base) KeyChord() key.Chord {
	return ev.Chord
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) StartTime() time.Time {
	return ev.StTime
}

func (ev *Base) SinceStart() time.Duration {
	return ev.GenTime.Sub(ev.StTime)
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v}", ev.Type(), ev.Time().Format("04:05"))
}
