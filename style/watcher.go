// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/Rodrigodd/giui-sub001/base/errors"
)

// LoadFile reads and parses a sheet file, picking the format from
// the extension: .toml, .yaml or .yml.
func LoadFile(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("style: read sheet: %w", err)
	}
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("style: unsupported sheet extension %q", ext)
	}
}

// Watcher reloads a style sheet file whenever it changes on disk,
// bumping a version consumers can poll to rebuild their graphics.
// It watches the file's directory rather than the file itself, so
// editors that save by renaming a temporary file over it keep being
// observed.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}
	once    sync.Once

	mu      sync.Mutex
	sheet   Sheet
	version uint64
}

// WatchSheet parses the sheet file at path and starts watching it.
// A reload that fails to read or parse is logged and the previous
// sheet stays published.
func WatchSheet(path string) (*Watcher, error) {
	sheet, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("style: watch %q: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("style: watch %q: %w", path, err)
	}
	w := &Watcher{
		path:    path,
		watcher: fw,
		done:    make(chan struct{}),
		sheet:   sheet,
		version: 1,
	}
	go w.watch()
	return w, nil
}

// Sheet returns a copy of the current sheet and the version it
// corresponds to. The version starts at 1 and grows with every
// successful reload.
func (w *Watcher) Sheet() (Sheet, uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sheet.Clone(), w.version
}

// Version returns the current sheet version.
func (w *Watcher) Version() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.version
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) watch() {
	base := filepath.Base(w.path)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		}
	}
}

func (w *Watcher) reload() {
	sheet, err := LoadFile(w.path)
	if err != nil {
		errors.Log(err)
		return
	}
	w.mu.Lock()
	w.sheet = sheet
	w.version++
	w.mu.Unlock()
}
