// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tree/navigate.go
// Summary: Spatial navigation (Left/Right/Up/Down), tab navigation, and focus/MRU.
// Usage: Directional moves walk up to an oriented super-node, pick the operational
// sibling, sweep its border for leaf candidates, filter by cross-axis adjacency, and
// break ties by most-recently-used; Focus sets every traversed TabContainer's active
// tab and bumps the pane's MRU counter.

package tree

// Left, Right, Up, and Down return the spatial neighbour of pane in that
// direction; they do not change focus themselves. If wrap is true and pane
// sits at the edge of its enclosing split in that direction, navigation
// wraps to the opposite edge; otherwise moving off an edge is a no-op and
// the original pane is returned.
func (t *Tree) Left(pane *Pane, wrap bool) *Pane  { return t.navigate(pane, DirLeft, wrap) }
func (t *Tree) Right(pane *Pane, wrap bool) *Pane { return t.navigate(pane, DirRight, wrap) }
func (t *Tree) Up(pane *Pane, wrap bool) *Pane    { return t.navigate(pane, DirUp, wrap) }
func (t *Tree) Down(pane *Pane, wrap bool) *Pane  { return t.navigate(pane, DirDown, wrap) }

func (t *Tree) navigate(pane *Pane, dir Direction, wrap bool) *Pane {
	if pane == nil {
		return pane
	}
	a := dir.Axis()
	unit := dir.AxisUnit()

	N, ok := t.orientedSuperNode(pane.id, a, unit)
	if !ok {
		return pane
	}
	parent := t.n(t.n(N).parent)
	idx := indexOf(parent.children, N)
	isEdge := (unit < 0 && idx == 0) || (unit > 0 && idx == len(parent.children)-1)

	var sIdx int
	if isEdge {
		if !wrap {
			return pane
		}
		if unit < 0 {
			sIdx = len(parent.children) - 1
		} else {
			sIdx = 0
		}
	} else {
		sIdx = idx + unit
	}
	S := parent.children[sIdx]

	candidates := t.adjacencyFilter(t.borderSweep(S, dir), pane.id, a)
	if len(candidates) == 0 {
		return pane
	}
	best, bestMRU := -1, -1
	for _, c := range candidates {
		if m := t.n(c).mru; m > bestMRU {
			bestMRU, best = m, c
		}
	}
	return &Pane{t.wrap(best)}
}

// orientedSuperNode walks up from start looking for the first ancestor N
// whose parent SplitContainer shares axis a. Edge-child candidates (those
// with no room to move further in the direction of travel within their own
// parent) are remembered but skipped in favor of a non-edge ancestor higher
// up; if none is found, the innermost edge candidate is returned so the
// caller can wrap within it.
func (t *Tree) orientedSuperNode(start int, a Axis, unit int) (int, bool) {
	cur := start
	edgeCandidate := 0
	for {
		nd := t.n(cur)
		pid := nd.parent
		if pid == 0 {
			break
		}
		p := t.n(pid)
		if p.kind == KindSplitContainer && p.axis == a {
			idx := indexOf(p.children, cur)
			isEdge := (unit < 0 && idx == 0) || (unit > 0 && idx == len(p.children)-1)
			if !isEdge {
				return cur, true
			}
			if edgeCandidate == 0 {
				edgeCandidate = cur
			}
			cur = pid
			continue
		}
		switch p.kind {
		case KindTab:
			cur = p.parent
		case KindTabContainer:
			cur = p.parent
		default:
			cur = pid
		}
	}
	if edgeCandidate != 0 {
		return edgeCandidate, true
	}
	return 0, false
}

// borderSweep collects every visible leaf pane along the border of sID that
// faces back toward the direction of travel.
func (t *Tree) borderSweep(sID int, dir Direction) []int {
	nd := t.n(sID)
	a := dir.Axis()
	switch nd.kind {
	case KindPane:
		return []int{sID}
	case KindTabContainer:
		if nd.activeChild == 0 {
			return nil
		}
		tNode := t.n(nd.activeChild)
		if len(tNode.children) == 0 {
			return nil
		}
		return t.borderSweep(tNode.children[0], dir)
	case KindTab:
		if len(nd.children) == 0 {
			return nil
		}
		return t.borderSweep(nd.children[0], dir)
	case KindSplitContainer:
		if nd.axis == a {
			idx := 0
			if dir.AxisUnit() < 0 {
				idx = len(nd.children) - 1
			}
			return t.borderSweep(nd.children[idx], dir)
		}
		var out []int
		for _, c := range nd.children {
			out = append(out, t.borderSweep(c, dir)...)
		}
		return out
	}
	return nil
}

// adjacencyFilter keeps only the candidates that strictly overlap pane's
// extent along the cross axis (share at least one pixel of border).
func (t *Tree) adjacencyFilter(candidates []int, paneID int, a Axis) []int {
	pr := t.rectOf(paneID)
	inv := a.Inv()
	lo1, hi1 := pr.Coord(inv), pr.Coord2(inv)
	var out []int
	for _, c := range candidates {
		cr := t.rectOf(c)
		lo2, hi2 := cr.Coord(inv), cr.Coord2(inv)
		if lo2 < hi1 && lo1 < hi2 {
			out = append(out, c)
		}
	}
	return out
}

// NextTab and PrevTab return the MRU-highest visible pane of the next/previous
// tab within from's nearest enclosing tab container; they do not change focus.
func (t *Tree) NextTab(from Node, wrap bool) (*Pane, bool) { return t.tabStep(from, 1, wrap) }
func (t *Tree) PrevTab(from Node, wrap bool) (*Pane, bool) { return t.tabStep(from, -1, wrap) }

func (t *Tree) tabStep(from Node, dir int, wrap bool) (*Pane, bool) {
	tID, ok := t.firstAncestorOfKind(from.id, KindTab)
	if !ok {
		return nil, false
	}
	tc := t.n(t.n(tID).parent)
	idx := indexOf(tc.children, tID)
	ni := idx + dir
	if ni < 0 || ni >= len(tc.children) {
		if !wrap {
			return nil, false
		}
		ni = ((ni % len(tc.children)) + len(tc.children)) % len(tc.children)
	}
	best := t.walkMRUHighest(tc.children[ni])
	if best == 0 {
		return nil, false
	}
	return &Pane{t.wrap(best)}, true
}

// Focus makes pane the visible leaf: every ancestor Tab is set as its
// parent TabContainer's active child, and the pane's MRU counter is bumped
// to the current maximum.
func (t *Tree) Focus(pane *Pane) {
	if pane == nil {
		return
	}
	cur := pane.id
	for cur != 0 {
		nd := t.n(cur)
		if nd.parent != 0 {
			if p := t.n(nd.parent); p.kind == KindTabContainer {
				p.activeChild = cur
			}
		}
		cur = nd.parent
	}
	t.n(pane.id).mru = t.newMRU()
}
