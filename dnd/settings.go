// Copyright (c) 2024, The Cedar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dnd

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cedarui/cedar/events/key"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Settings are the user-adjustable drag-and-drop parameters.
// They are stored in TOML under the user config dir; missing files
// leave the defaults in place.
type Settings struct {

	// File is the filename at which the settings are stored,
	// relative to the user config dir. If empty, the standard
	// location is used.
	File string `toml:"-"`

	// DragStartMSec is the number of milliseconds a press must be
	// held before pointer movement can initiate a drag-n-drop
	// gesture.
	DragStartMSec int

	// DragStartPix is the number of pixels the pointer must move
	// from the press before initiating a drag-n-drop gesture.
	DragStartPix int

	// CancelChord is the key chord that cancels an active drag.
	CancelChord key.Chord
}

// Defaults sets the default values for all of the settings.
func (se *Settings) Defaults() {
	se.DragStartMSec = 200
	se.DragStartPix = 20
	se.CancelChord = "Escape"
}

// Apply makes the settings effective, replacing unusable values
// with their defaults: non-positive drag thresholds and an empty
// cancel chord fall back to the [Settings.Defaults] values.
func (se *Settings) Apply() {
	def := Settings{}
	def.Defaults()
	if se.DragStartMSec <= 0 {
		se.DragStartMSec = def.DragStartMSec
	}
	if se.DragStartPix <= 0 {
		se.DragStartPix = def.DragStartPix
	}
	if se.CancelChord == "" {
		se.CancelChord = def.CancelChord
	}
}

// Filename returns the full path at which the settings are stored.
func (se *Settings) Filename() string {
	if filepath.IsAbs(se.File) {
		return se.File
	}
	file := se.File
	if file == "" {
		file = filepath.Join("cedar", "dnd-settings.toml")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		hd, herr := homedir.Dir()
		if herr != nil {
			return file
		}
		dir = filepath.Join(hd, ".config")
	}
	return filepath.Join(dir, file)
}

// Open opens the settings from their [Settings.Filename] and
// applies them. A missing file is not an error: the current values
// are kept.
func (se *Settings) Open() error {
	b, err := os.ReadFile(se.Filename())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := toml.Unmarshal(b, se); err != nil {
		return err
	}
	se.Apply()
	return nil
}

// Save saves the settings to their [Settings.Filename], creating
// the directory if needed.
func (se *Settings) Save() error {
	fnm := se.Filename()
	if err := os.MkdirAll(filepath.Dir(fnm), 0o755); err != nil {
		return err
	}
	b, err := toml.Marshal(se)
	if err != nil {
		return err
	}
	return os.WriteFile(fnm, b, 0o644)
}
