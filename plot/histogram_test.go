// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aspenlab/aspen/grades"
)

var quizScale = grades.Scale{
	{Name: "A", Min: 9},
	{Name: "B", Min: 8},
	{Name: "C", Min: 7},
	{Name: "D", Min: 6},
	{Name: "F", Min: 0},
}

func quizHistOptions() HistOptions {
	opts := DefaultHistOptions()
	opts.NumPoints = 10
	opts.Letters = quizScale
	opts.Title = "Quiz 1"
	return opts
}

var quizScores = []float64{3, 5, 5, 7, 8, 8, 8, 9, 10, 10}

func TestHistogram(t *testing.T) {
	var buf bytes.Buffer
	scores := append([]float64(nil), quizScores...)
	if err := Histogram(&buf, scores, 10, quizHistOptions(), testColormap(), DefaultStyle()); err != nil {
		t.Fatal(err)
	}
	elems := parseSVG(t, buf.Bytes())

	for _, test := range []struct {
		class string
		want  int
	}{
		{"bar", 11},
		{"letter-bar", 5},
		{"letter-frac", 5},
		{"letter-divider", 4},
		{"letter", 5},
		{"count", 1},
		{"mode", 1},
		{"median", 1},
		{"mean", 1},
		{"title", 1},
		{"cumulative-scores", 1},
		{"cumulative-score-point", len(scores)},
		{"cumulative-bars", 0},
	} {
		if got := len(byClass(elems, test.class)); got != test.want {
			t.Errorf("got %d %q elements; want %d", got, test.class, test.want)
		}
	}

	title := byClass(elems, "title")[0].text
	for _, want := range []string{"Quiz 1", "Mean μ: 7.3", "Median Q₂: 8.0", "Mode M̂: 8", "Max: 10 (2)"} {
		if !strings.Contains(title, want) {
			t.Errorf("title %q does not contain %q", title, want)
		}
	}
	if got := byClass(elems, "count")[0].text; got != "N=10" {
		t.Errorf("count label %q; want N=10", got)
	}
	var letters []string
	for _, e := range byClass(elems, "letter") {
		letters = append(letters, e.text)
	}
	if got, want := strings.Join(letters, ""), "FDCBA"; got != want {
		t.Errorf("letters %q; want %q", got, want)
	}

	// The caller's scores are not reordered.
	for i := range scores {
		if scores[i] != quizScores[i] {
			t.Fatalf("scores modified: %v", scores)
		}
	}
}

func TestHistogramOptional(t *testing.T) {
	opts := quizHistOptions()
	opts.ShowLetters = false
	opts.ShowMean = false
	opts.ShowMode = false
	opts.CumulativeScores = false
	opts.CumulativeBars = true

	var buf bytes.Buffer
	if err := Histogram(&buf, quizScores, 10, opts, testColormap(), DefaultStyle()); err != nil {
		t.Fatal(err)
	}
	elems := parseSVG(t, buf.Bytes())
	for _, test := range []struct {
		class string
		want  int
	}{
		{"letter", 0},
		{"letter-divider", 0},
		{"mean", 0},
		{"mode", 0},
		{"median", 1},
		{"cumulative-bars", 1},
		{"cumulative-bar-point", 11},
		{"cumulative-scores", 0},
	} {
		if got := len(byClass(elems, test.class)); got != test.want {
			t.Errorf("got %d %q elements; want %d", got, test.class, test.want)
		}
	}
	if title := byClass(elems, "title")[0].text; strings.Contains(title, "Mean") {
		t.Errorf("title %q mentions the mean", title)
	}
}

func TestHistogramInvalid(t *testing.T) {
	cm := testColormap()
	for _, test := range []struct {
		name     string
		scores   []float64
		maxScore int
		edit     func(*HistOptions)
		want     error
	}{
		{"max mismatch", quizScores, 20, nil, grades.ErrInvalidInput},
		{"padding", quizScores, 10, func(o *HistOptions) { o.YPadding = 0.9 }, grades.ErrInvalidInput},
		{"bad scale", quizScores, 10, func(o *HistOptions) { o.Letters = grades.Scale{{Name: "A", Min: 5}, {Name: "B", Min: 5}} }, grades.ErrInvalidInput},
		{"bad bins", quizScores, 10, func(o *HistOptions) { o.Bins = []float64{0, 5, 5} }, grades.ErrInvalidInput},
		{"no scores", nil, 10, nil, grades.ErrNoScores},
	} {
		opts := quizHistOptions()
		if test.edit != nil {
			test.edit(&opts)
		}
		var buf bytes.Buffer
		err := Histogram(&buf, test.scores, test.maxScore, opts, cm, DefaultStyle())
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got error %v; want %v", test.name, err, test.want)
		}
	}
}

func TestHistTitle(t *testing.T) {
	sum, err := grades.Summarize([]float64{1, 1, 2, 2, 4})
	if err != nil {
		t.Fatal(err)
	}
	opts := HistOptions{ShowMode: true, ShowMax: true}
	if got, want := histTitle(opts, sum), "Modes M̂: 1, 2 , Max: 4 (1)"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	opts = HistOptions{Title: "T", ShowMean: true, ShowMedian: true}
	if got, want := histTitle(opts, sum), "T , Mean μ: 2.0 , Median Q₂: 2.0"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}
