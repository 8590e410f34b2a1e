// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

//go:generate stringer -type=Types

// Types determines the type of event, and also the level at which
// one can select which events to listen to. The type includes both
// the source / nature of the event and the "action" type of the
// event (e.g., PointerDown and PointerUp are separate event types).
type Types int64

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// PointerDown happens when a pointer (mouse button, touch) is
	// pressed down. Each physical gesture carries a stable pointer id
	// for its whole duration, available via PointerID().
	PointerDown

	// PointerMove is sent when the pointer is moving, regardless of
	// whether a button is down. During an active drag session the
	// coordinator listens to these to drive target updates.
	PointerMove

	// PointerUp happens when a pointer is released, terminating the
	// gesture identified by its pointer id.
	PointerUp

	// KeyChord is generated when a non-modifier key is released, and
	// contains a string representation of the full chord.
	KeyChord

	// DragStart is sent to the source at the start of a drag-n-drop
	// event sequence, after it has handed the payload to the
	// coordinator.
	DragStart

	// DragEnter is sent to a Droppable element when the pointer moves
	// into its bounding box during a drag-n-drop sequence.
	DragEnter

	// DragMove is sent to the current drop target as the pointer moves
	// within its bounding box during a drag-n-drop sequence.
	DragMove

	// DragLeave is sent to the current drop target when the pointer
	// moves out of its bounding box, or when the session ends,
	// during a drag-n-drop sequence.
	DragLeave

	// Drop is the final action of the drag-n-drop sequence, sent to
	// the target when the pointer is released over it after the
	// target accepted the drag. Targets that never accept do not
	// receive Drop.
	Drop

	// DragComplete is always the last event of a drag-n-drop
	// sequence, sent to the source with Dropped reporting whether a
	// Drop was delivered. It is sent on every termination path,
	// including cancellation.
	DragComplete

	TypesN
)
