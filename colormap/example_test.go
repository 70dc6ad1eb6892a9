// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap_test

import (
	"fmt"

	"github.com/aspenlab/aspen/colormap"
)

func ExampleBuild() {
	cm, err := colormap.Build([]string{"#000000", "#ffffff"}, colormap.Options{N: 3})
	if err != nil {
		panic(err)
	}
	for _, c := range cm.Samples {
		fmt.Println(c)
	}
	// Output:
	// (0, 0, 0, 1)
	// (0.5, 0.5, 0.5, 1)
	// (1, 1, 1, 1)
}

func ExampleRegistry() {
	reg := colormap.NewRegistry()
	cm := colormap.MustBuild([]string{"navy", "#f2f2f2", "gold"}, colormap.Options{})
	fmt.Println(reg.Register("diverging", cm))
	fmt.Println(reg.Register("diverging", cm))
	// Output:
	// <nil>
	// colormap "diverging": duplicate registration
}
