// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadSetGet(t *testing.T) {
	pl := Payload{}
	pl.Set("text/plain", "hello")
	pl.Set("x", 42)

	s, err := Get[string](pl, "text/plain")
	assert.NoError(t, err)
	assert.Equal(t, "hello", s)

	n, err := Get[int](pl, "x")
	assert.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = Get[int](pl, "nosuch")
	assert.Error(t, err)

	_, err = Get[int](pl, "text/plain")
	assert.Error(t, err)
}

func TestPayloadHasDeleteClear(t *testing.T) {
	pl := Payload{}
	pl.Set("a", 1)
	pl.Set("b", 2)
	assert.True(t, pl.Has("a"))

	pl.Delete("a")
	assert.False(t, pl.Has("a"))
	assert.True(t, pl.Has("b"))

	pl.Clear()
	assert.False(t, pl.Has("b"))
	assert.Empty(t, pl.Formats())
}

func TestPayloadFormats(t *testing.T) {
	pl := Payload{}
	pl.Set("c", 3)
	pl.Set("a", 1)
	pl.Set("b", 2)
	assert.Equal(t, []string{"a", "b", "c"}, pl.Formats())
}

func TestPayloadCopyShallow(t *testing.T) {
	src := Payload{}
	vals := []int{1, 2}
	src.Set("v", vals)

	var dst Payload
	dst.Copy(src)
	assert.True(t, dst.Has("v"))

	// shallow: underlying slice is shared
	vals[0] = 99
	got, err := Get[[]int](dst, "v")
	assert.NoError(t, err)
	assert.Equal(t, 99, got[0])

	// maps remain distinct
	dst.Set("extra", true)
	assert.False(t, src.Has("extra"))
}

func TestPayloadCloneDeep(t *testing.T) {
	src := Payload{}
	vals := []int{1, 2}
	src.Set("v", vals)
	src.Set("s", "str")

	cp := src.Clone()
	vals[0] = 99
	got, err := Get[[]int](cp, "v")
	assert.NoError(t, err)
	assert.Equal(t, 1, got[0])

	s, err := Get[string](cp, "s")
	assert.NoError(t, err)
	assert.Equal(t, "str", s)

	var nilPl Payload
	assert.Nil(t, nilPl.Clone())
}
