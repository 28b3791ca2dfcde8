// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tree/layout.go
// Summary: Rect propagation primitives shared by construct/remove/prune/resize.
// Usage: fitRect assigns a brand-new rect to a subtree, preserving each SplitContainer's
// relative child proportions; applyDelta nudges a subtree by a signed delta along one
// axis, the mechanism behind both Resize and the space redistribution after Remove.

package tree

import "math"

// fitRect assigns r as id's new principal rect, recursively laying out
// descendants: a SplitContainer keeps its children's current relative sizes
// along its axis; a TabContainer recomputes its tab bar height from config
// and gives every tab the same inner rect.
func (t *Tree) fitRect(id int, r Rect) {
	nd := t.n(id)
	switch nd.kind {
	case KindPane:
		nd.paneBox.SetPrincipalRect(r)
	case KindSplitContainer:
		t.fitSCChildren(nd, r)
		nd.rect = r
	case KindTab:
		nd.rect = r
		if len(nd.children) > 0 {
			t.fitRect(nd.children[0], r)
		}
	case KindTabContainer:
		bar := t.barHeightFor(id)
		barRect := Rect{X: r.X, Y: r.Y, W: r.W, H: bar}
		inner := Rect{X: r.X, Y: r.Y + bar, W: r.W, H: r.H - bar}
		if inner.H < 0 {
			inner.H = 0
		}
		nd.tabBar.SetPrincipalRect(barRect)
		for _, c := range nd.children {
			t.fitRect(c, inner)
		}
		nd.rect = r
	}
}

func (t *Tree) fitSCChildren(nd *node, r Rect) {
	a := nd.axis
	n := len(nd.children)
	if n == 0 {
		return
	}
	if n == 1 {
		t.fitRect(nd.children[0], r)
		return
	}
	weights := make([]int, n)
	for i, c := range nd.children {
		weights[i] = max(1, t.rectOf(c).Dim(a))
	}
	portions := distributeInt(r.Dim(a), weights)
	pos := r.Coord(a)
	for i, c := range nd.children {
		t.fitRect(c, r.WithCoordDim(a, pos, portions[i]))
		pos += portions[i]
	}
}

// fitSCChildrenEqually assigns r as nd's rect and gives every child an equal
// share of it along nd's axis (the last child takes any remainder).
func (t *Tree) fitSCChildrenEqually(nd *node, r Rect) {
	a := nd.axis
	portions := distributeInt(r.Dim(a), make([]int, len(nd.children)))
	pos := r.Coord(a)
	for i, c := range nd.children {
		t.fitRect(c, r.WithCoordDim(a, pos, portions[i]))
		pos += portions[i]
	}
	nd.rect = r
}

// barHeightFor resolves a TabContainer's tab bar height for its current
// child count and configured hide_when policy.
func (t *Tree) barHeightFor(tcID int) int {
	tc := t.n(tcID)
	level := t.levelOf(tcID)
	hideWhen, _ := t.cfg.GetString("tab_bar.hide_when", level)
	numTabs := len(tc.children)
	hidden := hideWhen == "always" || (hideWhen == "single_tab" && numTabs == 1)
	if hidden {
		return 0
	}
	h, _ := t.cfg.GetInt("tab_bar.height", level)
	return h
}

// innerRectOf returns the rect shared by every tab of a TabContainer: its
// principal rect minus the tab bar strip.
func (t *Tree) innerRectOf(tcID int) Rect {
	nd := t.n(tcID)
	bar := nd.tabBar.PrincipalRect()
	return Rect{X: nd.rect.X, Y: bar.Y2(), W: nd.rect.W, H: nd.rect.H - bar.H}
}

// applyDelta adjusts id's extent along axis a by delta (negative shrinks),
// setting its new coordinate along a to startPos. Containers propagate the
// change to their children: a same-axis SplitContainer distributes delta
// proportionally (by current size when growing, by shrinkability when
// shrinking); a cross-axis SplitContainer and a TabContainer apply the same
// (a, delta, startPos) call to every child, since they all share the full
// extent along that axis. On the y axis a TabContainer keeps its tab bar
// height and starts its tabs at startPos plus that height.
func (t *Tree) applyDelta(id int, a Axis, delta int, startPos int) {
	nd := t.n(id)
	switch nd.kind {
	case KindPane:
		r := nd.paneBox.PrincipalRect()
		newDim := r.Dim(a) + delta
		if m := t.minSize(id, a); newDim < m {
			newDim = m
		}
		nd.paneBox.SetPrincipalRect(r.WithCoordDim(a, startPos, newDim))
	case KindSplitContainer:
		if nd.axis == a {
			t.applyDeltaAlongAxis(nd, a, delta, startPos)
		} else {
			for _, c := range nd.children {
				t.applyDelta(c, a, delta, startPos)
			}
		}
		nd.rect = nd.rect.WithCoordDim(a, startPos, nd.rect.Dim(a)+delta)
	case KindTab:
		if len(nd.children) > 0 {
			t.applyDelta(nd.children[0], a, delta, startPos)
		}
		nd.rect = nd.rect.WithCoordDim(a, startPos, nd.rect.Dim(a)+delta)
	case KindTabContainer:
		if a == AxisY {
			barH := nd.tabBar.PrincipalRect().H
			nd.tabBar.SetPrincipalRect(nd.tabBar.PrincipalRect().WithCoordDim(AxisY, startPos, barH))
			innerStart := startPos + barH
			for _, c := range nd.children {
				t.applyDelta(c, AxisY, delta, innerStart)
			}
		} else {
			br := nd.tabBar.PrincipalRect()
			nd.tabBar.SetPrincipalRect(br.WithCoordDim(AxisX, startPos, br.W+delta))
			for _, c := range nd.children {
				t.applyDelta(c, AxisX, delta, startPos)
			}
		}
		nd.rect = nd.rect.WithCoordDim(a, startPos, nd.rect.Dim(a)+delta)
	}
}

func (t *Tree) applyDeltaAlongAxis(nd *node, a Axis, delta int, startPos int) {
	n := len(nd.children)
	if n == 0 {
		return
	}
	if n == 1 {
		t.applyDelta(nd.children[0], a, delta, startPos)
		return
	}
	weights := make([]int, n)
	if delta >= 0 {
		for i, c := range nd.children {
			weights[i] = max(1, t.rectOf(c).Dim(a))
		}
	} else {
		for i, c := range nd.children {
			weights[i] = t.shrinkability(c, a)
		}
	}
	portions := distributeInt(abs(delta), weights)
	pos := startPos
	for i, c := range nd.children {
		d := portions[i]
		if delta < 0 {
			d = -d
		}
		t.applyDelta(c, a, d, pos)
		pos += t.rectOf(c).Dim(a)
	}
}

// shrinkability is how much a node's extent along a can shrink before
// hitting configured minimums, recursively: a Pane's is dim - min_size; a
// same-axis SplitContainer sums its children's; a cross-axis
// SplitContainer, a Tab, and a TabContainer take the minimum across their
// children (the whole container can only shrink as far as its tightest
// child allows).
func (t *Tree) shrinkability(id int, a Axis) int {
	nd := t.n(id)
	switch nd.kind {
	case KindPane:
		d := nd.paneBox.PrincipalRect().Dim(a) - t.minSize(id, a)
		if d < 0 {
			d = 0
		}
		return d
	case KindSplitContainer:
		if nd.axis == a {
			sum := 0
			for _, c := range nd.children {
				sum += t.shrinkability(c, a)
			}
			return sum
		}
		return t.minAcrossChildren(nd.children, a)
	case KindTab:
		if len(nd.children) == 0 {
			return 0
		}
		return t.shrinkability(nd.children[0], a)
	case KindTabContainer:
		return t.minAcrossChildren(nd.children, a)
	}
	return 0
}

func (t *Tree) minAcrossChildren(ids []int, a Axis) int {
	m := -1
	for _, c := range ids {
		s := t.shrinkability(c, a)
		if m == -1 || s < m {
			m = s
		}
	}
	if m == -1 {
		return 0
	}
	return m
}

func (t *Tree) minSize(id int, a Axis) int {
	level := t.levelOf(id)
	if a == AxisX {
		v, _ := t.cfg.GetInt("window.min_size_x", level)
		return v
	}
	v, _ := t.cfg.GetInt("window.min_size_y", level)
	return v
}

// distributeInt splits total across weighted buckets, rounding each to the
// nearest integer and assigning the last bucket whatever remains so the sum
// always equals total exactly. Zero total weight falls back to an equal split.
func distributeInt(total int, weights []int) []int {
	n := len(weights)
	out := make([]int, n)
	if n == 0 || total == 0 {
		return out
	}
	sum := 0
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		base := total / n
		for i := range out {
			out[i] = base
		}
		out[n-1] += total - base*n
		return out
	}
	assigned := 0
	for i := 0; i < n-1; i++ {
		v := int(math.Round(float64(total) * float64(weights[i]) / float64(sum)))
		out[i] = v
		assigned += v
	}
	out[n-1] = total - assigned
	return out
}
