// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tree/remove.go
// Summary: Remove, the tree-shrinking operation.
// Usage: Deletes a pane and whatever sole-child chain of ancestors it was the only
// content of, redistributes the freed space to the operational sibling, prunes the
// result, and returns the next pane to focus (the MRU-highest visible one).

package tree

import (
	"fmt"
	"log"
)

// Remove deletes pane from the tree. If pane was the last content in the
// whole tree, the tree becomes empty and Remove returns (nil, nil). If
// normalize is true, the operational sibling's SplitContainer redistributes
// space equally among all its children instead of simply absorbing the
// freed extent.
func (t *Tree) Remove(pane *Pane, normalize bool) (*Pane, error) {
	if pane == nil {
		return nil, fmt.Errorf("tree: Remove: %w: pane is nil", ErrInvalidArgument)
	}
	if _, ok := t.nodes[pane.id]; !ok {
		return nil, fmt.Errorf("tree: Remove: %w: unknown pane", ErrInvalidTreeStructure)
	}

	chain, branchRoot, C, rootCase := t.walkRemovalChain(pane.id)
	removedNodes := make([]Node, len(chain))
	for i, id := range chain {
		removedNodes[i] = t.wrap(id)
	}
	log.Printf("Tree.Remove: pane %d, removal chain %v, rootCase=%v", pane.id, chain, rootCase)

	if rootCase {
		log.Printf("Tree.Remove: chain reaches the root, tree becomes empty")
		for _, id := range chain {
			t.free(id)
		}
		t.rootID = 0
		t.emit(NodeRemoved, removedNodes)
		return nil, nil
	}

	idx := indexOf(C.children, branchRoot)
	freedRect := t.rectOf(branchRoot)
	C.children = removeAt(C.children, idx)

	var focusSeed int

	switch C.kind {
	case KindSplitContainer:
		var sID int
		if idx < len(C.children) {
			sID = C.children[idx]
		} else {
			sID = C.children[idx-1]
		}
		doNormalize := normalize
		if !doNormalize {
			v, _ := t.cfg.GetBool("window.normalize_on_remove", t.levelOf(C.id))
			doNormalize = v
		}
		if doNormalize {
			t.fitSCChildrenEqually(C, C.rect)
		} else {
			start := min(freedRect.Coord(C.axis), t.rectOf(sID).Coord(C.axis))
			t.applyDelta(sID, C.axis, freedRect.Dim(C.axis), start)
		}
		focusSeed = sID
		if len(C.children) == 1 {
			log.Printf("Tree.Remove: split container %d left with sole child %d, pruning", C.id, sID)
			survivor, pruned := t.pruneAfterRemoval(sID)
			focusSeed = survivor
			removedNodes = append(removedNodes, pruned...)
		}

	case KindTabContainer:
		log.Printf("Tree.Remove: removing tab %d from tab container %d", branchRoot, C.id)
		if C.activeChild == branchRoot && len(C.children) > 0 {
			ni := idx
			if ni >= len(C.children) {
				ni = 0
			}
			C.activeChild = C.children[ni]
		}
		if len(C.children) > 0 {
			var sID int
			if idx < len(C.children) {
				sID = C.children[idx]
			} else {
				sID = C.children[idx-1]
			}
			focusSeed = sID
		}
		t.recomputeHideMode(C.id)
	}

	for _, id := range chain {
		t.free(id)
	}
	t.emit(NodeRemoved, removedNodes)

	next := t.walkMRUHighest(focusSeed)
	if next == 0 {
		return nil, nil
	}
	return &Pane{t.wrap(next)}, nil
}

// walkRemovalChain climbs from a removal target through every ancestor that
// is the sole child of its own parent, collecting the whole chain (bottom
// up) for deletion. It stops at the first node with siblings (the branch
// root to detach, under C) or at the root (rootCase).
func (t *Tree) walkRemovalChain(start int) (chain []int, branchRoot int, C *node, rootCase bool) {
	cur := start
	for {
		chain = append(chain, cur)
		nd := t.n(cur)
		if nd.parent == 0 {
			return chain, cur, nil, true
		}
		p := t.n(nd.parent)
		if len(p.children) > 1 {
			return chain, cur, p, false
		}
		cur = nd.parent
	}
}

// walkMRUHighest returns the MRU-highest pane visible from id, walking into
// every TabContainer's active tab only (inactive tabs are not visible).
func (t *Tree) walkMRUHighest(id int) int {
	if id == 0 {
		return 0
	}
	panes := t.collectVisiblePanes(id, nil)
	best, bestMRU := 0, -1
	for _, p := range panes {
		if m := t.n(p).mru; m > bestMRU {
			bestMRU, best = m, p
		}
	}
	return best
}

func (t *Tree) collectVisiblePanes(id int, out []int) []int {
	nd := t.n(id)
	switch nd.kind {
	case KindPane:
		return append(out, id)
	case KindSplitContainer, KindTab:
		for _, c := range nd.children {
			out = t.collectVisiblePanes(c, out)
		}
		return out
	case KindTabContainer:
		if nd.activeChild != 0 {
			return t.collectVisiblePanes(nd.activeChild, out)
		}
	}
	return out
}
