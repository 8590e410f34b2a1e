// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dnd implements the drag-and-drop coordination core of the
// cedar toolkit: a per-scene [Coordinator] that lets an arbitrary
// source component hand a format-keyed [Payload] to an arbitrary
// drop target via pointer gestures, mediated by an accept protocol
// and an optional floating avatar sprite.
//
// The model is single-threaded and cooperative: the coordinator is
// driven entirely by synchronous events from the host input loop,
// and every method completes fully before returning. At most one
// session is active at a time; starting a new drag force-cancels any
// existing one first.
package dnd

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/cedarui/cedar/events"
	"github.com/cedarui/cedar/scene"
)

// Trace can be set to get a log trace of the drag-and-drop process.
var Trace = false

// AvatarSpriteName is the name under which the drag avatar sprite is
// registered in the scene overlay.
const AvatarSpriteName = "dnd.Coordinator:Avatar"

// Source is any component that can initiate a drag. It receives the
// DragStart and DragComplete protocol notifications. Sources need
// not be scene nodes.
type Source interface {

	// HandleEvent is called synchronously with protocol events.
	HandleEvent(e events.Event)
}

// Target is a scene node capable of receiving a dragged payload.
// Nodes are only considered as targets if they also have the
// [scene.Droppable] ability. Targets receive DragEnter, DragMove,
// and DragLeave with positions in their local space, and Drop if
// they accepted the drag.
type Target interface {
	scene.Node

	// HandleEvent is called synchronously with protocol events.
	HandleEvent(e events.Event)
}

// Coordinator manages drag-and-drop sessions for one scene. It owns
// at most one active session, drives hit testing on pointer
// movement, enforces the accept protocol, manages the avatar sprite
// lifecycle, and guarantees cleanup on every termination path.
// Construct one per scene with [NewCoordinator]; there is no
// package-level singleton, so tests can use isolated instances.
type Coordinator struct {

	// Scene is the scene this coordinator hit-tests against and
	// listens to for pointer and key events.
	Scene *scene.Scene

	// Settings are the drag parameters, initialized to defaults.
	Settings Settings

	// session state, valid only while state is active
	state      State
	source     Source
	data       Payload
	pointer    int
	hasPointer bool
	target     Target
	lastPos    image.Point

	// avatar state
	avatar         *scene.Sprite
	avatarOffset   image.Point
	avatarDisabled bool

	// listener handles, detached on teardown
	moveHandle events.Handle
	upHandle   events.Handle
	keyHandle  events.Handle
}

func NewCoordinator(sc *scene.Scene) *Coordinator {
	co := &Coordinator{Scene: sc}
	co.Settings.Defaults()
	return co
}

// IsDragging returns true if a drag session is active.
func (co *Coordinator) IsDragging() bool {
	return co.state.IsActive()
}

// CurrentState returns the current session state.
func (co *Coordinator) CurrentState() State {
	return co.state
}

// CurrentSource returns the source of the active session, or nil.
func (co *Coordinator) CurrentSource() Source {
	return co.source
}

// CurrentPayload returns the payload of the active session, or nil.
func (co *Coordinator) CurrentPayload() Payload {
	return co.data
}

// CurrentPointerID returns the pointer id driving the active
// session, and whether it is still valid. It is invalid when no
// session is active and once a pointer-up has been processed.
func (co *Coordinator) CurrentPointerID() (int, bool) {
	return co.pointer, co.hasPointer
}

// CurrentTarget returns the drop target currently under the pointer,
// or nil.
func (co *Coordinator) CurrentTarget() Target {
	return co.target
}

// Accepted returns true if the current target has accepted the drag.
func (co *Coordinator) Accepted() bool {
	return co.state == ActiveAccepted
}

// Start begins a new drag session for the given source, driven by
// the pointer gesture of the given event, carrying the given
// payload. If avatar is non-nil, it is positioned at the pointer
// location plus offset and attached to the scene overlay above all
// content for the session's duration; a node hosted by the avatar
// sprite has its interactivity disabled until teardown.
//
// If a session is already active it is force-cancelled
// (dropped=false) before the new one begins, so at most one session
// ever exists. Start returns [ErrInvalidArgument] for a nil source,
// event, or payload. It immediately performs one hit-test pass at
// the event position, so a target directly under the starting point
// receives DragEnter without requiring a pointer move.
func (co *Coordinator) Start(src Source, e events.Event, data Payload, avatar *scene.Sprite, offset image.Point) error {
	if src == nil {
		return fmt.Errorf("%w: nil source", ErrInvalidArgument)
	}
	if e == nil {
		return fmt.Errorf("%w: nil event", ErrInvalidArgument)
	}
	if data == nil {
		return fmt.Errorf("%w: nil payload", ErrInvalidArgument)
	}
	if co.state.IsActive() {
		co.CancelDrag()
	}
	pos := e.Pos()
	if Trace {
		slog.Debug("dnd: start", "pointer", e.PointerID(), "pos", pos)
	}
	co.state = ActiveNoTarget
	co.source = src
	co.data = data
	co.pointer = e.PointerID()
	co.hasPointer = true
	co.lastPos = pos

	if avatar != nil {
		co.avatar = avatar
		co.avatarOffset = offset
		avatar.Name = AvatarSpriteName
		avatar.SetPos(pos.Add(offset))
		avatar.On = true
		if avatar.Node != nil {
			co.avatarDisabled = avatar.Node.IsDisabled()
			avatar.Node.SetDisabled(true)
		}
		co.Scene.Sprites.Add(avatar)
	}

	co.moveHandle = co.Scene.On(events.PointerMove, co.pointerMove)
	co.upHandle = co.Scene.On(events.PointerUp, co.pointerUp)
	co.keyHandle = co.Scene.On(events.KeyChord, co.keyChord)

	co.notifySource(events.DragStart, pos, false)
	co.updateTarget(pos)
	return nil
}

// AcceptDrag is called by the current drop target to accept the
// drag, so that a pointer release over it delivers the payload via
// Drop. It must be called after the target received DragEnter and
// before it receives DragLeave; calling it outside that window, or
// from a target that is not current, returns a
// [ProtocolViolationError].
func (co *Coordinator) AcceptDrag(tgt Target) error {
	if tgt == nil || co.target == nil || tgt != co.target {
		return &ProtocolViolationError{Attempted: tgt, Current: co.target, State: co.state}
	}
	co.state = ActiveAccepted
	return nil
}

// CancelDrag cancels the active drag session, if any, completing it
// with dropped=false. It is a no-op when no session is active.
func (co *Coordinator) CancelDrag() {
	if !co.state.IsActive() {
		return
	}
	if Trace {
		slog.Debug("dnd: cancel")
	}
	co.teardown(false)
}

// pointerMove repositions the avatar and updates the current target
// for pointer movements of the session's gesture.
func (co *Coordinator) pointerMove(e events.Event) {
	if !co.state.IsActive() || e.PointerID() != co.pointer {
		return
	}
	pos := e.Pos()
	if co.avatar != nil {
		co.avatar.SetPos(pos.Add(co.avatarOffset))
	}
	co.updateTarget(pos)
}

// pointerUp ends the session: the pointer id is cleared, Drop is
// delivered if the current target accepted, and teardown runs with
// the resulting dropped flag.
func (co *Coordinator) pointerUp(e events.Event) {
	if !co.state.IsActive() || e.PointerID() != co.pointer {
		return
	}
	co.hasPointer = false
	pos := e.Pos()
	dropped := false
	if co.target != nil && co.state == ActiveAccepted {
		if Trace {
			slog.Debug("dnd: drop", "pos", pos)
		}
		co.notifyTarget(co.target, events.Drop, pos)
		dropped = true
	}
	co.lastPos = pos
	co.teardown(dropped)
}

// keyChord cancels the session on the cancel chord, suppressing the
// key's default handling.
func (co *Coordinator) keyChord(e events.Event) {
	if !co.state.IsActive() || e.KeyChord() != co.Settings.CancelChord {
		return
	}
	e.SetHandled()
	co.CancelDrag()
}

// updateTarget performs a hit test at the given root-space point and
// reconciles the current target: DragLeave is dispatched to the old
// target strictly before DragEnter to the new one, acceptance resets
// whenever the target changes, and an unchanged non-nil target
// receives DragMove with updated coordinates.
func (co *Coordinator) updateTarget(pos image.Point) {
	newt := co.targetAt(pos)
	switch {
	case newt != co.target:
		if co.target != nil {
			old := co.target
			co.target = nil
			co.state = ActiveNoTarget
			if Trace {
				slog.Debug("dnd: leave", "target", old.AsNode().Name())
			}
			co.notifyTarget(old, events.DragLeave, co.lastPos)
			if !co.state.IsActive() {
				return // a leave handler ended the session
			}
		}
		co.target = newt
		if newt != nil {
			co.state = ActiveUnaccepted
			if Trace {
				slog.Debug("dnd: enter", "target", newt.AsNode().Name(), "pos", pos)
			}
			co.notifyTarget(newt, events.DragEnter, pos)
		} else {
			co.state = ActiveNoTarget
		}
	case co.target != nil:
		co.notifyTarget(co.target, events.DragMove, pos)
	}
	co.lastPos = pos
}

// targetAt returns the drop target at the given root-space point,
// walking the hit node's ancestor chain until a Droppable Target is
// found.
func (co *Coordinator) targetAt(pos image.Point) Target {
	for n := co.Scene.HitTest(pos); n != nil; n = n.Parent() {
		if !n.AbilityIs(scene.Droppable) {
			continue
		}
		if t, ok := n.(Target); ok {
			return t
		}
	}
	return nil
}

// teardown ends the session unconditionally. All session state is
// snapshotted and cleared before any notification is dispatched, so
// every handler that runs during teardown observes an idle
// coordinator: a CancelDrag made from inside the exit notification
// is a no-op, and a Start made from inside any teardown notification
// begins a fresh session that the remaining cleanup does not touch.
// The notification ordering is fixed: the current target is exited
// first, then the avatar is restored, and only then is DragComplete
// sent to the snapshotted source. The avatar restore runs even if a
// notification handler panics.
func (co *Coordinator) teardown(dropped bool) {
	if !co.state.IsActive() {
		return
	}
	src := co.source
	data := co.data
	pos := co.lastPos
	tgt := co.target
	avatar := co.avatar
	avatarDisabled := co.avatarDisabled
	co.avatar = nil
	co.detachListeners()
	co.clearSession()

	defer func() {
		if Trace {
			slog.Debug("dnd: complete", "dropped", dropped)
		}
		de := events.NewDragDrop(events.DragComplete, pos, data)
		de.Dropped = dropped
		de.Init()
		src.HandleEvent(de)
	}()
	defer co.restoreAvatar(avatar, avatarDisabled)

	if tgt != nil {
		if Trace {
			slog.Debug("dnd: leave", "target", tgt.AsNode().Name())
		}
		de := events.NewDragDrop(events.DragLeave, pos, data)
		de.SetLocalOff(pos.Sub(tgt.PointToLocal(pos)))
		de.Init()
		tgt.HandleEvent(de)
	}
}

// restoreAvatar detaches the given avatar sprite from the overlay
// and restores the recorded interactivity of its hosted node. The
// sprite is only removed if it is still the one registered under
// its name, so an avatar attached by a session started during
// teardown is left alone.
func (co *Coordinator) restoreAvatar(avatar *scene.Sprite, disabled bool) {
	if avatar == nil {
		return
	}
	avatar.On = false
	if sp, ok := co.Scene.Sprites.SpriteByName(avatar.Name); ok && sp == avatar {
		co.Scene.Sprites.DeleteSprite(avatar.Name)
	}
	if avatar.Node != nil {
		avatar.Node.SetDisabled(disabled)
	}
}

func (co *Coordinator) detachListeners() {
	co.Scene.Off(co.moveHandle)
	co.Scene.Off(co.upHandle)
	co.Scene.Off(co.keyHandle)
	co.moveHandle = events.Handle{}
	co.upHandle = events.Handle{}
	co.keyHandle = events.Handle{}
}

func (co *Coordinator) clearSession() {
	co.state = Idle
	co.source = nil
	co.data = nil
	co.pointer = 0
	co.hasPointer = false
	co.target = nil
	co.lastPos = image.Point{}
	co.avatarOffset = image.Point{}
	co.avatarDisabled = false
}

// notifyTarget sends a protocol event to the given target with the
// position converted into its local space.
func (co *Coordinator) notifyTarget(tgt Target, typ events.Types, pos image.Point) {
	de := events.NewDragDrop(typ, pos, co.data)
	de.SetLocalOff(pos.Sub(tgt.PointToLocal(pos)))
	de.Init()
	tgt.HandleEvent(de)
}

// notifySource sends a protocol event to the session source.
func (co *Coordinator) notifySource(typ events.Types, pos image.Point, dropped bool) {
	de := events.NewDragDrop(typ, pos, co.data)
	de.Dropped = dropped
	de.Init()
	co.source.HandleEvent(de)
}
