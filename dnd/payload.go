// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dnd

import (
	"fmt"
	"maps"
	"sort"

	"github.com/jinzhu/copier"
)

// Payload is the format-keyed data bag carried by a drag session,
// mapping from format string (MIME-style types are encouraged, e.g.,
// "text/plain") to an arbitrary value. It is created by the source
// before starting a drag, handed to the coordinator by reference for
// the session's duration, read by the target, and never mutated by
// the coordinator.
type Payload map[string]any

func (pl *Payload) init() {
	if *pl == nil {
		*pl = make(map[string]any)
	}
}

// Set sets the value for the given format, ensuring that the map is
// created if not previously.
func (pl *Payload) Set(format string, value any) {
	pl.init()
	(*pl)[format] = value
}

// Get returns the payload value of the given type for the given
// format. It returns an error if the format is not present or holds
// a different type.
func Get[T any](pl Payload, format string) (T, error) {
	var z T
	x, ok := pl[format]
	if !ok {
		return z, fmt.Errorf("format %q not found in payload", format)
	}
	v, ok := x.(T)
	if !ok {
		return z, fmt.Errorf("format %q has a different type than expected %T: is %T", format, z, x)
	}
	return v, nil
}

// Has returns true if the payload has a value for the given format.
func (pl Payload) Has(format string) bool {
	_, ok := pl[format]
	return ok
}

// Delete removes the value for the given format.
func (pl *Payload) Delete(format string) {
	delete(*pl, format)
}

// Clear removes all values.
func (pl *Payload) Clear() {
	clear(*pl)
}

// Formats returns the formats present in the payload, sorted.
func (pl Payload) Formats() []string {
	fs := make([]string, 0, len(pl))
	for f := range pl {
		fs = append(fs, f)
	}
	sort.Strings(fs)
	return fs
}

// Copy does a shallow copy of payload values from the source.
// Pointer-based values still point to the same underlying data,
// but the two maps remain distinct.
func (pl *Payload) Copy(src Payload) {
	if src == nil {
		return
	}
	pl.init()
	maps.Copy(*pl, src)
}

// Clone returns a deep copy of the payload, with no shared
// underlying data.
func (pl Payload) Clone() Payload {
	if pl == nil {
		return nil
	}
	cp := make(Payload, len(pl))
	err := copier.CopyWithOption(&cp, pl, copier.Option{DeepCopy: true})
	if err != nil {
		cp.Copy(pl)
	}
	return cp
}
