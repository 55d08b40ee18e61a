// Package settings loads the node's server settings from a YAML file and
// reloads them when the file changes.
package settings

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/chainpanel/internal/logging/events"
	"github.com/atomicstack/chainpanel/internal/session"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// File is the on-disk settings document.
//
//	blocktime: 5        # seconds between blocks, 0 or absent for automining
//	network_id: "5777"
type File struct {
	Blocktime float64 `yaml:"blocktime"`
	NetworkID string  `yaml:"network_id"`
}

// Parse decodes a settings document.
func Parse(data []byte) (session.ServerSettings, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return session.ServerSettings{}, fmt.Errorf("decode settings: %w", err)
	}
	return f.ServerSettings()
}

// ServerSettings converts the document into session settings.
func (f File) ServerSettings() (session.ServerSettings, error) {
	blocktime, err := session.BlocktimeFromSeconds(f.Blocktime)
	if err != nil {
		return session.ServerSettings{}, err
	}
	return session.ServerSettings{
		Blocktime: blocktime,
		NetworkID: f.NetworkID,
	}, nil
}

// Load reads and parses the settings file at path.
func Load(path string) (session.ServerSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return session.ServerSettings{}, fmt.Errorf("read settings: %w", err)
	}
	return Parse(data)
}

// Watcher reloads a settings file whenever it is written, created or
// renamed into place, and hands the result to apply. Invalid documents are
// logged and skipped.
type Watcher struct {
	path    string
	apply   func(session.ServerSettings)
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching the directory containing path.
func NewWatcher(path string, apply func(session.ServerSettings)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve settings path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize fsnotify watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch settings directory: %w", err)
	}
	return &Watcher{path: filepath.Clean(abs), apply: apply, watcher: fw}, nil
}

// Run processes file events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			events.Settings.Error(w.path, err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	data, err := os.ReadFile(w.path)
	if err != nil {
		events.Settings.Error(w.path, err)
		return
	}
	// editors truncate before writing; wait for the content to land
	if len(bytes.TrimSpace(data)) == 0 {
		return
	}
	settings, err := Parse(data)
	if err != nil {
		events.Settings.Error(w.path, err)
		return
	}
	events.Settings.Reload(w.path, settings.Blocktime.Seconds(), settings.NetworkID)
	if w.apply != nil {
		w.apply(settings)
	}
}
