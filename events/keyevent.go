// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/cedarui/cedar/events/key"
)

// Key is a KeyChord event, generated when a non-modifier key is
// released, with the full chord in string form.
type Key struct {
	Base
}

func NewKey(chord key.Chord) *Key {
	ev := &Key{}
	ev.Typ = KeyChord
	ev.Chord = chord
	return ev
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Chord: %v, Time: %v}", ev.Type(), ev.Chord, ev.Time().Format("04:05"))
}
