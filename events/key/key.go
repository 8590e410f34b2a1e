// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the key chord representation used in key events,
// suitable for translation into keyboard commands.
package key

import "strings"

// Chord represents the key chord associated with a given key function,
// as a string, e.g., "Control+Return" or "Escape". Modifiers precede
// the key name, joined with "+", in a fixed canonical order.
type Chord string

func (ch Chord) String() string {
	return string(ch)
}

// IsMulti returns true if the chord represents a multi-key sequence.
func (ch Chord) IsMulti() bool {
	return strings.Contains(string(ch), " ")
}

// HasModifier returns true if the chord includes the given modifier
// name (e.g., "Control", "Shift", "Alt", "Meta").
func (ch Chord) HasModifier(mod string) bool {
	for _, part := range strings.Split(string(ch), "+") {
		if part == mod {
			return true
		}
	}
	return false
}
