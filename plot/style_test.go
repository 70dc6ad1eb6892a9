// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"github.com/aspenlab/aspen/colormap"
	"github.com/aspenlab/aspen/palettes"
)

func TestDefaultStyle(t *testing.T) {
	st := DefaultStyle()
	if w, h := st.Size(); w != 1125 || h != 750 {
		t.Errorf("Size() = %d, %d; want 1125, 750", w, h)
	}
	if got := st.px(72); got != 150 {
		t.Errorf("px(72) = %g; want 150", got)
	}
	c := st.Cycle()
	if c.Len() != 1 || c.Next() != colormap.Opaque(0, 0, 0) {
		t.Errorf("uninstalled cycle is not black")
	}
}

func TestInstall(t *testing.T) {
	reg := colormap.NewRegistry()
	if err := palettes.Register(reg); err != nil {
		t.Fatal(err)
	}
	st := DefaultStyle()
	st.Colormap = "nu_r"
	if err := st.Install(reg, palettes.UCB); err != nil {
		t.Fatal(err)
	}
	if def := reg.Default(); def == nil || def.Name != "nu_r" {
		t.Errorf("default colormap %v; want nu_r", def)
	}
	if st.Palette != "ucb" {
		t.Errorf("Palette = %q; want ucb", st.Palette)
	}

	c := st.Cycle()
	want := palettes.UCB.RGBA()
	for i := 0; i < 2*len(want); i++ {
		if got := c.Next(); got != want[i%len(want)] {
			t.Fatalf("cycle color %d = %v; want %v", i, got, want[i%len(want)])
		}
	}
	// Cycle restarts.
	if got := st.Cycle().Next(); got != want[0] {
		t.Errorf("restarted cycle begins with %v; want %v", got, want[0])
	}

	st.Colormap = "nonesuch"
	if err := st.Install(reg, palettes.UCB); err == nil {
		t.Errorf("Install with unregistered colormap succeeded")
	}
}
