// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"errors"
	"reflect"
	"testing"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	a := MustBuild([]string{"red", "blue"}, Options{N: 8})
	b := MustBuild([]string{"white", "black"}, Options{N: 8, Name: "gray"})

	if err := reg.Register("rb", a); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("gray", b); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("rb", b); !errors.Is(err, ErrDuplicate) {
		t.Errorf("second Register(rb): got error %v; want ErrDuplicate", err)
	}
	if err := reg.Register("", b); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Register(\"\"): got error %v; want ErrInvalidInput", err)
	}

	got, ok := reg.Get("rb")
	if !ok || got.Name != "rb" || !reflect.DeepEqual(got.Samples, a.Samples) {
		t.Errorf("Get(rb) = %+v, %v", got, ok)
	}
	if a.Name != "" {
		t.Errorf("Register renamed the caller's colormap to %q", a.Name)
	}
	if got, _ := reg.Get("gray"); got != b {
		t.Errorf("Get(gray) is not the registered colormap")
	}
	if want := []string{"gray", "rb"}; !reflect.DeepEqual(reg.Names(), want) {
		t.Errorf("Names() = %v; want %v", reg.Names(), want)
	}

	if reg.Default() != nil {
		t.Errorf("new registry has a default")
	}
	if err := reg.SetDefault("viridis"); err == nil {
		t.Errorf("SetDefault(viridis) succeeded")
	}
	if err := reg.SetDefault("gray"); err != nil {
		t.Fatal(err)
	}
	if reg.Default() != b {
		t.Errorf("Default() is not gray")
	}

	// Registries are independent.
	if _, ok := NewRegistry().Get("rb"); ok {
		t.Errorf("fresh registry has rb")
	}
}
