// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"
	"testing"

	"github.com/cedarui/cedar/events"
	"github.com/stretchr/testify/assert"
)

type testNode struct {
	NodeBase
}

func newTestNode(name string, bbox image.Rectangle) *testNode {
	n := &testNode{}
	n.Nm = name
	n.BBox = bbox
	return n
}

func TestHitTestDeepest(t *testing.T) {
	root := newTestNode("root", image.Rect(0, 0, 100, 100))
	frame := newTestNode("frame", image.Rect(10, 10, 90, 90))
	button := newTestNode("button", image.Rect(20, 20, 40, 40))
	AddChild(root, frame)
	AddChild(frame, button)
	sc := NewScene(root)

	n := sc.HitTest(image.Pt(25, 25))
	assert.Equal(t, "button", n.AsNode().Name())

	n = sc.HitTest(image.Pt(50, 50))
	assert.Equal(t, "frame", n.AsNode().Name())

	n = sc.HitTest(image.Pt(5, 5))
	assert.Equal(t, "root", n.AsNode().Name())

	assert.Nil(t, sc.HitTest(image.Pt(200, 200)))
}

func TestHitTestRenderOrder(t *testing.T) {
	root := newTestNode("root", image.Rect(0, 0, 100, 100))
	under := newTestNode("under", image.Rect(10, 10, 50, 50))
	over := newTestNode("over", image.Rect(30, 30, 70, 70))
	AddChild(root, under)
	AddChild(root, over)
	sc := NewScene(root)

	// later children render above earlier ones
	n := sc.HitTest(image.Pt(40, 40))
	assert.Equal(t, "over", n.AsNode().Name())
}

func TestHitTestDisabled(t *testing.T) {
	root := newTestNode("root", image.Rect(0, 0, 100, 100))
	kid := newTestNode("kid", image.Rect(10, 10, 50, 50))
	AddChild(root, kid)
	sc := NewScene(root)

	kid.SetDisabled(true)
	n := sc.HitTest(image.Pt(20, 20))
	assert.Equal(t, "root", n.AsNode().Name())
}

func TestPointToLocal(t *testing.T) {
	n := newTestNode("n", image.Rect(40, 40, 80, 80))
	assert.Equal(t, image.Pt(10, 20), n.PointToLocal(image.Pt(50, 60)))
}

func TestAbilities(t *testing.T) {
	n := newTestNode("n", image.Rect(0, 0, 10, 10))
	assert.False(t, n.AbilityIs(Droppable))
	n.SetAbilities(true, Draggable, Droppable)
	assert.True(t, n.AbilityIs(Droppable))
	assert.True(t, n.AbilityIs(Draggable))
	n.SetAbilities(false, Draggable)
	assert.False(t, n.AbilityIs(Draggable))
	assert.True(t, n.AbilityIs(Droppable))
}

func TestSceneListeners(t *testing.T) {
	sc := NewScene(newTestNode("root", image.Rect(0, 0, 100, 100)))
	got := 0
	h := sc.On(events.PointerMove, func(e events.Event) {
		got++
	})
	sc.HandleEvent(events.NewPointerMove(image.Pt(1, 1), image.Pt(0, 0), 0))
	assert.Equal(t, 1, got)

	sc.Off(h)
	sc.HandleEvent(events.NewPointerMove(image.Pt(2, 2), image.Pt(1, 1), 0))
	assert.Equal(t, 1, got)
}

func TestSprites(t *testing.T) {
	ss := Sprites{}
	a := NewSprite("a", image.Pt(1, 1))
	b := NewSprite("b", image.Pt(2, 2))
	ss.Add(a)
	ss.Add(b)
	assert.Equal(t, 2, ss.Len())

	got, ok := ss.SpriteByName("a")
	assert.True(t, ok)
	assert.Equal(t, a, got)

	// same-name add replaces in place
	a2 := NewSprite("a", image.Pt(3, 3))
	ss.Add(a2)
	assert.Equal(t, 2, ss.Len())
	got, _ = ss.SpriteByName("a")
	assert.Equal(t, a2, got)

	ss.DeleteSprite("a")
	assert.Equal(t, 1, ss.Len())
	_, ok = ss.SpriteByName("a")
	assert.False(t, ok)
	got, ok = ss.SpriteByName("b")
	assert.True(t, ok)
	assert.Equal(t, b, got)

	ss.DeleteSprite("nosuch")
	assert.Equal(t, 1, ss.Len())

	ss.Reset()
	assert.Equal(t, 0, ss.Len())
}
