// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tree/resize.go
// Summary: Resize and ResetDimensions, built on the applyDelta grow/shrink engine.
// Usage: Resize grows or shrinks one pane along an axis by trading space with its
// operational sibling under the nearest matching-axis super-node; ResetDimensions
// replays the same mechanism at the root when the outer screen changes size.

package tree

import "log"

// Resize grows (amount > 0) or shrinks (amount < 0) pane along axis by
// amount pixels, taking the space from (or giving it to) the pane's
// operational sibling under the nearest ancestor whose parent
// SplitContainer shares the same axis. If no such ancestor exists, or the
// shrinking side has no room left, Resize is a no-op.
func (t *Tree) Resize(pane *Pane, axis Axis, amount int) {
	if pane == nil || amount == 0 {
		return
	}
	N, ok := t.superNodeForResize(pane.id, axis)
	if !ok {
		log.Printf("Tree.Resize: pane %d has no ancestor matching axis %v, no-op", pane.id, axis)
		return
	}
	parent := t.n(t.n(N).parent)
	idx := indexOf(parent.children, N)

	var Nprime int
	switch {
	case idx+1 < len(parent.children):
		Nprime = parent.children[idx+1]
	case idx-1 >= 0:
		Nprime = parent.children[idx-1]
	default:
		return
	}

	shrinking := Nprime
	if amount < 0 {
		shrinking = N
	}
	actual := min(abs(amount), t.shrinkability(shrinking, axis))
	if actual == 0 {
		log.Printf("Tree.Resize: node %d has no room to shrink along axis %v, no-op", shrinking, axis)
		return
	}
	log.Printf("Tree.Resize: node %d growing by %d along axis %v at the expense of %d", N, actual, axis, Nprime)

	r := t.rectOf(N)
	s, e := r.Coord(axis), r.Coord2(axis)
	if amount > 0 {
		t.applyDelta(N, axis, actual, s)
		t.applyDelta(Nprime, axis, -actual, e+actual)
	} else {
		t.applyDelta(N, axis, -actual, s)
		t.applyDelta(Nprime, axis, actual, e-actual)
	}
}

// ResetDimensions changes the screen size, growing or shrinking the root
// tab container along each changed axis using the same proportional
// distribution rules Resize uses for an ordinary sibling pair.
func (t *Tree) ResetDimensions(w, h int) {
	if t.rootID == 0 {
		t.width, t.height = w, h
		return
	}
	dw, dh := w-t.width, h-t.height
	log.Printf("Tree.ResetDimensions: %dx%d -> %dx%d", t.width, t.height, w, h)
	if dw != 0 {
		t.applyDelta(t.rootID, AxisX, dw, 0)
	}
	if dh != 0 {
		t.applyDelta(t.rootID, AxisY, dh, 0)
	}
	t.width, t.height = w, h
}

// superNodeForResize walks up from start to the first ancestor N whose
// parent is a SplitContainer sharing axis a. A candidate is skipped — and
// the walk continues past the whole enclosing SplitContainer and Tab,
// resuming from the enclosing TabContainer — whenever that candidate is the
// sole child of the SplitContainer directly under a Tab whose TabContainer
// is itself nested (non-root): in
// that shape the nested TabContainer, not the lone child inside it, is the
// unit resizing should operate on.
func (t *Tree) superNodeForResize(start int, a Axis) (int, bool) {
	cur := start
	for {
		nd := t.n(cur)
		pid := nd.parent
		if pid == 0 {
			return 0, false
		}
		p := t.n(pid)
		switch p.kind {
		case KindSplitContainer:
			if p.axis == a && !t.isExcludedNestedSole(cur) {
				return cur, true
			}
			cur = pid
		case KindTab:
			cur = p.parent // jump to the enclosing TabContainer
		case KindTabContainer:
			cur = p.parent // node was a Tab; jump past the TabContainer
		default:
			return 0, false
		}
	}
}

func (t *Tree) isExcludedNestedSole(id int) bool {
	nd := t.n(id)
	if nd.parent == 0 {
		return false
	}
	p := t.n(nd.parent)
	if p.parent == 0 || len(p.children) != 1 {
		return false
	}
	gp := t.n(p.parent)
	if gp.kind != KindTab {
		return false
	}
	tc := t.n(gp.parent)
	return tc != nil && tc.parent != 0
}
