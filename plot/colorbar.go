// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/aspenlab/aspen/colormap"
)

// ColorbarImage returns a width x height image of cm running left to
// right. Each sample of cm covers an equal share of the width.
func ColorbarImage(cm *colormap.Colormap, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: colorbar size %dx%d", colormap.ErrInvalidInput, width, height)
	}
	src := image.NewNRGBA(image.Rect(0, 0, cm.Len(), 1))
	for i, c := range cm.Samples {
		src.SetNRGBA(i, 0, c.NRGBA())
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// Colorbar writes a PNG of cm to w. See ColorbarImage.
func Colorbar(w io.Writer, cm *colormap.Colormap, width, height int) error {
	img, err := ColorbarImage(cm, width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
