// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "image"

// Sprite is a named overlay element rendered above all scene content.
// The drag-and-drop coordinator uses a sprite to host the drag avatar
// that follows the pointer during a session.
type Sprite struct {

	// Name is the unique name of the sprite within its [Sprites] set.
	Name string

	// On, when true, makes the sprite visible and rendered.
	On bool

	// Pos is the position of the sprite in the root coordinate space.
	Pos image.Point

	// Node is the optional scene node that the sprite displays.
	// A node hosted by a sprite takes no part in the regular scene
	// graph while the sprite is on.
	Node Node
}

func NewSprite(name string, pos image.Point) *Sprite {
	return &Sprite{Name: name, Pos: pos}
}

// SetPos sets the position of the sprite in root coordinates.
func (sp *Sprite) SetPos(pos image.Point) {
	sp.Pos = pos
}

// Sprites is an ordered collection of named sprites. Later sprites
// render above earlier ones.
type Sprites struct {
	order []*Sprite
	names map[string]int
}

func (ss *Sprites) init() {
	if ss.names == nil {
		ss.names = make(map[string]int)
	}
}

// Add adds the given sprite, replacing any existing sprite of the
// same name in place.
func (ss *Sprites) Add(sp *Sprite) {
	ss.init()
	if i, ok := ss.names[sp.Name]; ok {
		ss.order[i] = sp
		return
	}
	ss.names[sp.Name] = len(ss.order)
	ss.order = append(ss.order, sp)
}

// SpriteByName returns the sprite of the given name, and whether
// it was found.
func (ss *Sprites) SpriteByName(name string) (*Sprite, bool) {
	i, ok := ss.names[name]
	if !ok {
		return nil, false
	}
	return ss.order[i], true
}

// DeleteSprite deletes the sprite of the given name. It is a no-op
// if no such sprite exists.
func (ss *Sprites) DeleteSprite(name string) {
	i, ok := ss.names[name]
	if !ok {
		return
	}
	ss.order = append(ss.order[:i:i], ss.order[i+1:]...)
	delete(ss.names, name)
	for j := i; j < len(ss.order); j++ {
		ss.names[ss.order[j].Name] = j
	}
}

// Len returns the number of sprites.
func (ss *Sprites) Len() int {
	return len(ss.order)
}

// Reset removes all sprites.
func (ss *Sprites) Reset() {
	ss.order = nil
	ss.names = nil
}
