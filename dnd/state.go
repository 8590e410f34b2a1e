// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dnd

//go:generate stringer -type=State

// State indicates the stage of the drag-and-drop process. The
// explicit enum makes invalid combinations unrepresentable: a drag
// can only be accepted while a target is current.
type State int32

const (
	// Idle means no drag session exists.
	Idle State = iota

	// ActiveNoTarget means a session is active and the pointer is
	// not over any drop target.
	ActiveNoTarget

	// ActiveUnaccepted means the pointer is over a drop target that
	// has received DragEnter but has not accepted the drag.
	ActiveUnaccepted

	// ActiveAccepted means the current drop target has accepted the
	// drag; releasing the pointer over it produces a Drop.
	ActiveAccepted

	StateN
)

// IsActive returns true for any non-Idle state.
func (st State) IsActive() bool {
	return st > Idle && st < StateN
}
