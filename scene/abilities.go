// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Abilities represent abilities of scene nodes to take on different
// functional roles, used to filter event dispatch (e.g., only
// Droppable nodes are considered during drag target hit testing).
type Abilities int64

const (
	// Draggable means the node can be dragged as the start of a
	// drag-and-drop gesture.
	Draggable Abilities = 1 << iota

	// Droppable means the node can receive DragEnter, DragLeave,
	// and Drop events as a drag-and-drop target.
	Droppable
)

// Is returns true if the given flag is set.
func (ab Abilities) Is(flag Abilities) bool {
	return ab&flag != 0
}
