// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dnd

import (
	"time"

	"github.com/cedarui/cedar/events"
	"github.com/chewxy/math32"
)

// DragStartCheck returns true if the given pointer event has
// exceeded both the given hold duration since the start of its
// gesture and the given pixel distance from the press position.
// Sources use it on PointerMove events to recognize the
// drag-n-drop gesture before calling [Coordinator.Start].
func DragStartCheck(e events.Event, dur time.Duration, dist int) bool {
	if e.SinceStart() < dur {
		return false
	}
	d := e.StartDelta()
	return int(math32.Hypot(float32(d.X), float32(d.Y))) >= dist
}

// DragStartCheck applies [DragStartCheck] with the settings'
// thresholds.
func (se *Settings) DragStartCheck(e events.Event) bool {
	return DragStartCheck(e, time.Duration(se.DragStartMSec)*time.Millisecond, se.DragStartPix)
}
