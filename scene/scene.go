// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"

	"github.com/cedarui/cedar/events"
)

// Scene is the root of a rendered scene graph. It owns the event
// listeners driven by the host input-dispatch loop and the sprite
// overlay rendered above all scene content.
type Scene struct {

	// Root is the root node of the scene graph.
	Root Node

	// Listeners are called for events fed to [Scene.HandleEvent]
	// by the host input loop.
	Listeners events.Listeners

	// Sprites are named overlay elements rendered above all scene
	// content, in the root coordinate space.
	Sprites Sprites
}

func NewScene(root Node) *Scene {
	return &Scene{Root: root}
}

// HandleEvent dispatches the given event to all listeners for its
// type. It is called synchronously by the host input loop; every
// listener completes before it returns.
func (sc *Scene) HandleEvent(ev events.Event) {
	ev.Init()
	sc.Listeners.Call(ev)
}

// On adds an event listener function for the given event type,
// returning a handle that can be passed to [Scene.Off].
func (sc *Scene) On(typ events.Types, fun func(e events.Event)) events.Handle {
	return sc.Listeners.Add(typ, fun)
}

// Off removes the listener registered under the given handle.
func (sc *Scene) Off(h events.Handle) {
	sc.Listeners.Delete(h)
}

// HitTest returns the deepest enabled node whose bounding box
// contains the given root-space position, or nil if none does.
// Children are tested after their parent, in render order, so the
// last (topmost) rendered node containing the point wins.
func (sc *Scene) HitTest(pos image.Point) Node {
	var deepest Node
	var walk func(n Node)
	walk = func(n Node) {
		if n == nil || n.IsDisabled() || !n.PosInBBox(pos) {
			return
		}
		deepest = n
		for _, k := range n.Children() {
			walk(k)
		}
	}
	walk(sc.Root)
	return deepest
}
