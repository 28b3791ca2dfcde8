// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tree/prune.go
// Summary: Post-removal canonicalization and the distinct tab-bar-hide merge.
// Usage: pruneAfterRemoval runs after every Remove whose surviving sibling became a
// sole child; recomputeHideMode/mergeHiddenSoleTab run when config changes and after
// Remove takes a tab out of a tab container. The two never call each other.

package tree

import "log"

// pruneAfterRemoval collapses redundant single-child SplitContainer chains
// left behind once s becomes the sole child of its parent. Only three shapes
// (n1/n2/s kinds, where n2 is always the SplitContainer that now holds only
// s) are canonical prune targets:
//
//	SC  SC  Pane  -> splice s into n1 in n2's place; delete n2
//	T   SC  SC    -> splice s into n1 (the Tab) in n2's place; delete n2
//	SC  SC  SC    -> splice s's own children into n1 in n2's place; delete n2 and s
//
// The fourth shape the pruning table might suggest, T SC TabContainer, is
// deliberately excluded here: collapsing a tab container into its parent Tab
// would leave the Tab without the tab-bar wrapper invariant 2 requires. That
// shape is handled separately, and only under the hide_when=="always" policy,
// by mergeHiddenSoleTab below.
func (t *Tree) pruneAfterRemoval(sID int) (int, []Node) {
	s := t.n(sID)
	if s.parent == 0 {
		return sID, nil
	}
	n2 := t.n(s.parent)
	if n2.kind != KindSplitContainer || len(n2.children) != 1 {
		return sID, nil
	}
	if n2.parent == 0 {
		return sID, nil
	}
	n1 := t.n(n2.parent)

	switch {
	case n1.kind == KindSplitContainer && s.kind == KindPane:
		log.Printf("Tree.pruneAfterRemoval: SC-SC-Pane, splicing pane %d into split container %d", sID, n1.id)
		t.spliceUp(n1, n2.id, sID)
		removed := []Node{t.wrap(n2.id)}
		t.free(n2.id)
		return sID, removed

	case n1.kind == KindTab && s.kind == KindSplitContainer:
		log.Printf("Tree.pruneAfterRemoval: Tab-SC-SC, splicing split container %d into tab %d", sID, n1.id)
		t.spliceUp(n1, n2.id, sID)
		removed := []Node{t.wrap(n2.id)}
		t.free(n2.id)
		return sID, removed

	case n1.kind == KindSplitContainer && s.kind == KindSplitContainer:
		log.Printf("Tree.pruneAfterRemoval: SC-SC-SC, flattening split container %d's children into %d", sID, n1.id)
		idx := indexOf(n1.children, n2.id)
		grandchildren := append([]int{}, s.children...)
		for _, c := range grandchildren {
			t.n(c).parent = n1.id
		}
		n1.children = append(append(append([]int{}, n1.children[:idx]...), grandchildren...), n1.children[idx+1:]...)
		removed := []Node{t.wrap(sID), t.wrap(n2.id)}
		t.free(n2.id)
		t.free(sID)
		if len(grandchildren) > 0 {
			return grandchildren[0], removed
		}
		return n1.id, removed

	default:
		return sID, nil
	}
}

// spliceUp replaces oldID in parent.children with newID and reparents newID.
func (t *Tree) spliceUp(parent *node, oldID, newID int) {
	idx := indexOf(parent.children, oldID)
	parent.children[idx] = newID
	t.n(newID).parent = parent.id
}

// recomputeHideMode re-evaluates whether a tab container with exactly one
// tab should structurally merge away, per tab_bar.hide_when == "always".
// This is distinct from pruneAfterRemoval: it is driven by the hide_when
// policy (SetConfig re-evaluates every tab container, Remove re-evaluates
// the tab container it took a tab from), and its target shape (Tab -> SplitContainer ->
// TabContainer, all collapsing into the grandparent Tab) is the one shape
// the ordinary prune table excludes.
func (t *Tree) recomputeHideMode(tcID int) {
	tc := t.n(tcID)
	if tc == nil || tc.parent == 0 || len(tc.children) != 1 {
		return
	}
	hideWhen, _ := t.cfg.GetString("tab_bar.hide_when", t.levelOf(tcID))
	if hideWhen != "always" {
		return
	}
	n2 := t.n(tc.parent)
	if n2.kind != KindSplitContainer || len(n2.children) != 1 {
		return
	}
	if n2.parent == 0 {
		return
	}
	n1 := t.n(n2.parent)
	if n1.kind != KindTab {
		return
	}
	log.Printf("Tree.recomputeHideMode: tab_bar.hide_when=always, merging sole tab of container %d", tcID)
	t.mergeHiddenSoleTab(tcID)
}

// mergeHiddenSoleTab unwraps a lone-tab, bar-hidden TabContainer entirely:
// its sole Tab's SplitContainer replaces the chain of (n2 SplitContainer,
// the TabContainer itself, its sole Tab) directly under n1 (the enclosing
// Tab), preserving invariant 2 (every Tab's only child is a SplitContainer).
func (t *Tree) mergeHiddenSoleTab(tcID int) []Node {
	tc := t.n(tcID)
	n2id := tc.parent
	n2 := t.n(n2id)
	n1id := n2.parent
	n1 := t.n(n1id)

	soleTabID := tc.children[0]
	soleTab := t.n(soleTabID)
	innerSC := soleTab.children[0]

	n1.children = []int{innerSC}
	t.n(innerSC).parent = n1id

	removed := []Node{t.wrap(soleTabID), t.wrap(tcID), t.wrap(n2id)}
	t.free(n2id)
	t.free(tcID)
	t.free(soleTabID)

	t.fitRect(innerSC, n1.rect)
	t.emit(NodeRemoved, removed)
	return removed
}
