// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tree

import "testing"

func TestRectSplitExact(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 400, H: 300}
	r1, r2 := r.Split(AxisX, 0.5)
	if r1.W+r2.W != r.W {
		t.Fatalf("split halves don't sum to total: %d + %d != %d", r1.W, r2.W, r.W)
	}
	if r1.X2() != r2.X {
		t.Fatalf("split halves aren't abutting: r1 ends at %d, r2 starts at %d", r1.X2(), r2.X)
	}
}

func TestRectSplitOddRounding(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 201, H: 100}
	r1, r2 := r.Split(AxisX, 0.5)
	if r1.W+r2.W != 201 {
		t.Fatalf("odd split must still sum exactly: got %d + %d", r1.W, r2.W)
	}
}

func TestBoxDerivedRects(t *testing.T) {
	var b Box
	b.SetPrincipalRect(Rect{X: 0, Y: 0, W: 100, H: 50})
	b.SetMargin(Sides{Top: 1, Right: 1, Bottom: 1, Left: 1})
	b.SetBorder(Sides{Top: 1, Right: 1, Bottom: 1, Left: 1})
	b.SetPadding(Sides{Top: 2, Right: 2, Bottom: 2, Left: 2})

	content := b.ContentRect()
	want := Rect{X: 4, Y: 4, W: 100 - 8, H: 50 - 8}
	if content != want {
		t.Fatalf("ContentRect = %+v, want %+v", content, want)
	}
}

func TestDistributeIntExactSum(t *testing.T) {
	portions := distributeInt(101, []int{1, 1, 1})
	sum := 0
	for _, p := range portions {
		sum += p
	}
	if sum != 101 {
		t.Fatalf("portions sum to %d, want 101", sum)
	}
}

func TestDistributeIntZeroWeights(t *testing.T) {
	portions := distributeInt(10, []int{0, 0})
	if portions[0]+portions[1] != 10 {
		t.Fatalf("zero-weight fallback should still sum exactly, got %v", portions)
	}
}
