// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChordString(t *testing.T) {
	assert.Equal(t, "Control+Return", Chord("Control+Return").String())
	assert.Equal(t, "Escape", Chord("Escape").String())
}

func TestChordHasModifier(t *testing.T) {
	ch := Chord("Control+Shift+S")
	assert.True(t, ch.HasModifier("Control"))
	assert.True(t, ch.HasModifier("Shift"))
	assert.False(t, ch.HasModifier("Alt"))

	// the key name itself is also a chord part
	assert.True(t, ch.HasModifier("S"))
	assert.False(t, Chord("Escape").HasModifier("Control"))
}

func TestChordIsMulti(t *testing.T) {
	assert.False(t, Chord("Control+X").IsMulti())
	assert.True(t, Chord("Control+X Control+S").IsMulti())
}
