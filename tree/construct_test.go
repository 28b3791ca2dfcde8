// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tree

import "testing"

func TestTab_EmptyTreeRequiresNilAtPane(t *testing.T) {
	tr := newTestTree(t, 100, 50)
	p := &Pane{tr.wrap(999)}
	if _, err := tr.Tab(p, false, 0); err == nil {
		t.Fatalf("expected error passing atPane on empty tree")
	}
}

func TestTab_AppendSiblingAtRoot(t *testing.T) {
	tr := newTestTree(t, 100, 50)
	p1 := mustTab(t, tr, nil, false, 0)
	p2 := mustTab(t, tr, p1, false, 0)

	tcID, ok := tr.firstAncestorOfKind(p2.id, KindTabContainer)
	if !ok {
		t.Fatalf("p2 has no tab container ancestor")
	}
	tc := tr.n(tcID)
	if len(tc.children) != 2 {
		t.Fatalf("expected 2 tabs, got %d", len(tc.children))
	}
	p2TabID := tr.n(tr.n(p2.id).parent).parent
	if tc.activeChild != p2TabID {
		t.Fatalf("appending a tab should make it the active child")
	}
}

func TestTab_NewLevelWrapsPane(t *testing.T) {
	tr := newTestTree(t, 100, 50)
	p1 := mustTab(t, tr, nil, false, 0)
	p2 := mustTab(t, tr, p1, true, 0)

	tcs := tr.ancestorTCsInOrder(p2.id)
	if len(tcs) != 2 {
		t.Fatalf("expected p2 nested 2 deep, got %d", len(tcs))
	}
	tcsP1 := tr.ancestorTCsInOrder(p1.id)
	if len(tcsP1) != 2 {
		t.Fatalf("expected p1 now also nested 2 deep, got %d", len(tcsP1))
	}
	if tcs[0] != tcsP1[0] {
		t.Fatalf("p1 and p2 should share the outer tab container")
	}
}

func TestTab_LevelAddressesAncestorByDepth(t *testing.T) {
	tr := newTestTree(t, 100, 50)
	p1 := mustTab(t, tr, nil, false, 0)
	p2 := mustTab(t, tr, p1, true, 0) // now 2 levels deep

	p3, err := tr.Tab(p2, false, 1)
	if err != nil {
		t.Fatalf("Tab at level 1: %v", err)
	}
	tcsP3 := tr.ancestorTCsInOrder(p3.id)
	tcsP1 := tr.ancestorTCsInOrder(p1.id)
	if len(tcsP3) != 1 || tcsP3[0] != tcsP1[0] {
		t.Fatalf("level-1 tab should attach to the outer tab container")
	}
}

func TestTab_LevelOutOfRangeErrors(t *testing.T) {
	tr := newTestTree(t, 100, 50)
	p1 := mustTab(t, tr, nil, false, 0)
	if _, err := tr.Tab(p1, false, 5); err == nil {
		t.Fatalf("expected error for out-of-range level")
	}
}

func TestSplit_SameAxisInsertsSibling(t *testing.T) {
	tr := newTestTree(t, 200, 100)
	p1 := mustTab(t, tr, nil, false, 0)
	scID := tr.n(p1.id).parent
	p2 := mustSplit(t, tr, p1, AxisX, 0.5, false)

	sc := tr.n(scID)
	if len(sc.children) != 2 {
		t.Fatalf("expected 2 children in same-axis split, got %d", len(sc.children))
	}
	if sc.children[1] != p2.id {
		t.Fatalf("new pane should be inserted right after the original")
	}
}

func TestSplit_NewAxisInsertsSplitContainer(t *testing.T) {
	tr := newTestTree(t, 200, 100)
	p1 := mustTab(t, tr, nil, false, 0)
	// Give the split container a second child first, so the cross-axis split
	// below does not take the sole-child axis morph instead.
	mustSplit(t, tr, p1, AxisX, 0.5, false)
	oldSCID := tr.n(p1.id).parent

	p2 := mustSplit(t, tr, p1, AxisY, 0.5, false)

	newSCID := tr.n(p1.id).parent
	if newSCID == oldSCID {
		t.Fatalf("cross-axis split should wrap the pane in a new split container")
	}
	newSC := tr.n(newSCID)
	if newSC.axis != AxisY {
		t.Fatalf("new split container should use the requested axis")
	}
	if len(newSC.children) != 2 || newSC.children[1] != p2.id {
		t.Fatalf("new split container should hold [p1, p2]")
	}
	if newSC.rect.W == 0 && newSC.rect.H == 0 {
		t.Fatalf("new split container's rect should be populated immediately")
	}
}

func TestSplit_RejectsOutOfRangeRatio(t *testing.T) {
	tr := newTestTree(t, 200, 100)
	p1 := mustTab(t, tr, nil, false, 0)
	if _, err := tr.Split(p1, AxisX, 1.5, false); err == nil {
		t.Fatalf("expected error for ratio > 1")
	}
	if _, err := tr.Split(p1, AxisX, -0.1, false); err == nil {
		t.Fatalf("expected error for ratio < 0")
	}
}

func TestSplit_SoleChildMorphsAxis(t *testing.T) {
	tr := newTestTree(t, 200, 100)
	p1 := mustTab(t, tr, nil, false, 0)
	scID := tr.n(p1.id).parent
	if tr.n(scID).axis != AxisX {
		t.Fatalf("fresh split container should start on AxisX")
	}
	mustSplit(t, tr, p1, AxisY, 0.5, false)
	if tr.n(scID).axis != AxisY {
		t.Fatalf("splitting the sole child on a new axis should morph the split container's axis in place")
	}
}

func TestSplit_NormalizeKeepsChildrenFillingTheRect(t *testing.T) {
	tr := newTestTree(t, 300, 100)
	p1 := mustTab(t, tr, nil, false, 0)
	scID := tr.n(p1.id).parent
	mustSplit(t, tr, p1, AxisX, 0.9, true)

	sc := tr.n(scID)
	w0 := tr.rectOf(sc.children[0]).W
	w1 := tr.rectOf(sc.children[1]).W
	if w0+w1 != sc.rect.W {
		t.Fatalf("children should exactly fill the split container's width, got %d + %d != %d", w0, w1, sc.rect.W)
	}
}
