// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dnd

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned by [Coordinator.Start] when
	// called with a nil source or payload.
	ErrInvalidArgument = errors.New("dnd: invalid argument")

	// ErrProtocolViolation is the sentinel wrapped by
	// [ProtocolViolationError]; use [errors.Is] to test for it.
	ErrProtocolViolation = errors.New("dnd: protocol violation")
)

// ProtocolViolationError is returned by [Coordinator.AcceptDrag] when
// a target tries to accept a drag outside its DragEnter / DragLeave
// window, or when it is not the current target at all (e.g., a stale
// reference).
type ProtocolViolationError struct {

	// Attempted is the target that tried to accept.
	Attempted Target

	// Current is the target that was current at the time, or nil.
	Current Target

	// State is the coordinator state at the time of the call.
	State State
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("%v: AcceptDrag from non-current target (state: %v)", ErrProtocolViolation, e.State)
}

func (e *ProtocolViolationError) Unwrap() error {
	return ErrProtocolViolation
}
