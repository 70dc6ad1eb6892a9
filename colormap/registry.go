// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"
	"sort"
)

// A Registry is a set of colormaps indexed by name, plus an optional
// default colormap. A Registry is owned by its caller and is not safe
// for concurrent use.
type Registry struct {
	maps map[string]*Colormap
	def  string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{maps: make(map[string]*Colormap)}
}

// Register adds cm to r under name. A name may be registered only
// once; registering it again returns an error wrapping ErrDuplicate.
//
// The registered colormap is named name; if cm has a different name,
// a renamed copy sharing cm's samples is registered instead.
func (r *Registry) Register(name string, cm *Colormap) error {
	if name == "" {
		return fmt.Errorf("%w: empty colormap name", ErrInvalidInput)
	}
	if _, ok := r.maps[name]; ok {
		return fmt.Errorf("colormap %q: %w", name, ErrDuplicate)
	}
	if cm.Name != name {
		named := *cm
		named.Name = name
		cm = &named
	}
	r.maps[name] = cm
	return nil
}

// Get returns the colormap registered under name.
func (r *Registry) Get(name string) (*Colormap, bool) {
	cm, ok := r.maps[name]
	return cm, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.maps))
	for name := range r.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetDefault makes the colormap registered under name the default.
func (r *Registry) SetDefault(name string) error {
	if _, ok := r.maps[name]; !ok {
		return fmt.Errorf("no colormap %q", name)
	}
	r.def = name
	return nil
}

// Default returns the default colormap, or nil if none is set.
func (r *Registry) Default() *Colormap {
	if r.def == "" {
		return nil
	}
	return r.maps[r.def]
}
