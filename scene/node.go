// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the retained-mode scene-graph abstractions
// that the cedar toolkit and its drag-and-drop core operate on:
// the [Node] interface, the [Scene] with hit testing and event
// dispatch, and the [Sprites] overlay layer.
package scene

import "image"

// Node is the interface that all scene nodes satisfy. The core
// functionality is defined on [NodeBase], which all higher-level node
// types must embed; call [Node.AsNode] to access it.
type Node interface {

	// AsNode returns the [NodeBase] of this Node.
	AsNode() *NodeBase

	// Parent returns the parent of this node in the scene graph,
	// or nil for the root.
	Parent() Node

	// Children returns the children of this node, in render order
	// (later children render above earlier ones).
	Children() []Node

	// PosInBBox returns true if the given root-space position is
	// within the node's rendered bounding box.
	PosInBBox(pos image.Point) bool

	// PointToLocal converts the given root-space point into this
	// node's local coordinate space.
	PointToLocal(pos image.Point) image.Point

	// AbilityIs returns true if the node has the given ability flag.
	AbilityIs(able Abilities) bool

	// IsDisabled returns true if the node does not respond to
	// interaction. Disabled nodes are skipped during hit testing.
	IsDisabled() bool

	// SetDisabled sets whether the node responds to interaction.
	SetDisabled(disabled bool)
}

// NodeBase implements the core scene node functionality. Higher-level
// node types embed it and are accessed through the [Node] interface.
type NodeBase struct {

	// Nm is the name of the node, used for debugging and sprites.
	Nm string

	// Par is the parent of this node.
	Par Node

	// Kids are the children of this node, in render order.
	Kids []Node

	// BBox is the node's rendered bounding box in the root
	// coordinate space.
	BBox image.Rectangle

	// Able are the capability flags of this node.
	Able Abilities

	// Disabled nodes do not respond to interaction.
	Disabled bool
}

func (nb *NodeBase) AsNode() *NodeBase {
	return nb
}

func (nb *NodeBase) Parent() Node {
	return nb.Par
}

func (nb *NodeBase) Children() []Node {
	return nb.Kids
}

func (nb *NodeBase) PosInBBox(pos image.Point) bool {
	return pos.In(nb.BBox)
}

func (nb *NodeBase) PointToLocal(pos image.Point) image.Point {
	return pos.Sub(nb.BBox.Min)
}

func (nb *NodeBase) AbilityIs(able Abilities) bool {
	return nb.Able.Is(able)
}

// SetAbilities sets or clears the given ability flags.
func (nb *NodeBase) SetAbilities(on bool, able ...Abilities) {
	for _, ab := range able {
		if on {
			nb.Able |= ab
		} else {
			nb.Able &^= ab
		}
	}
}

func (nb *NodeBase) IsDisabled() bool {
	return nb.Disabled
}

func (nb *NodeBase) SetDisabled(disabled bool) {
	nb.Disabled = disabled
}

// Name returns the name of the node.
func (nb *NodeBase) Name() string {
	return nb.Nm
}

// AddChild adds child to parent's children, setting its parent
// reference.
func AddChild(parent, child Node) {
	cb := child.AsNode()
	cb.Par = parent
	pb := parent.AsNode()
	pb.Kids = append(pb.Kids, child)
}
