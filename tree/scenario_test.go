// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tree

import "testing"

// TestScenario_SplitLadder reproduces the worked split example: a single
// pane on a 400x300 screen (20px tab bar), split x, then the right half
// split y, then the lower-right quarter split x again. Ids and rects are
// asserted exactly, since they are part of the tree's documented contract.
func TestScenario_SplitLadder(t *testing.T) {
	tr := newTestTree(t, 400, 300)

	p1 := mustTab(t, tr, nil, false, 0)
	if p1.ID() != 4 {
		t.Fatalf("p1 id = %d, want 4", p1.ID())
	}
	if got, want := p1.Box().PrincipalRect(), (Rect{0, 20, 400, 280}); got != want {
		t.Fatalf("p1 rect = %+v, want %+v", got, want)
	}

	p2 := mustSplit(t, tr, p1, AxisX, 0.5, false)
	if p2.ID() != 5 {
		t.Fatalf("p2 id = %d, want 5", p2.ID())
	}
	if got, want := p1.Box().PrincipalRect(), (Rect{0, 20, 200, 280}); got != want {
		t.Fatalf("p1 rect after split = %+v, want %+v", got, want)
	}
	if got, want := p2.Box().PrincipalRect(), (Rect{200, 20, 200, 280}); got != want {
		t.Fatalf("p2 rect = %+v, want %+v", got, want)
	}

	p3 := mustSplit(t, tr, p2, AxisY, 0.5, false)
	if p3.ID() != 7 {
		t.Fatalf("p3 id = %d, want 7", p3.ID())
	}
	if got, want := p2.Box().PrincipalRect(), (Rect{200, 20, 200, 140}); got != want {
		t.Fatalf("p2 rect after split = %+v, want %+v", got, want)
	}
	if got, want := p3.Box().PrincipalRect(), (Rect{200, 160, 200, 140}); got != want {
		t.Fatalf("p3 rect = %+v, want %+v", got, want)
	}

	p4 := mustSplit(t, tr, p3, AxisX, 0.5, false)
	if p4.ID() != 9 {
		t.Fatalf("p4 id = %d, want 9", p4.ID())
	}
	if got, want := p3.Box().PrincipalRect(), (Rect{200, 160, 100, 140}); got != want {
		t.Fatalf("p3 rect after split = %+v, want %+v", got, want)
	}
	if got, want := p4.Box().PrincipalRect(), (Rect{300, 160, 100, 140}); got != want {
		t.Fatalf("p4 rect = %+v, want %+v", got, want)
	}

	want := `- tc:1
    - t:2
        - sc.x:3
            - p:4 | {x: 0, y: 20, w: 200, h: 280}
            - sc.y:6
                - p:5 | {x: 200, y: 20, w: 200, h: 140}
                - sc.x:8
                    - p:7 | {x: 200, y: 160, w: 100, h: 140}
                    - p:9 | {x: 300, y: 160, w: 100, h: 140}`
	if got := tr.Repr(); got != want {
		t.Fatalf("Repr() =\n%s\nwant:\n%s", got, want)
	}
}

// TestScenario_TabAndRemove checks that appending a sibling tab, then
// removing the original pane, leaves a single-tab tree with no dangling
// structure.
func TestScenario_TabAndRemove(t *testing.T) {
	tr := newTestTree(t, 200, 100)
	p1 := mustTab(t, tr, nil, false, 0)
	p2 := mustTab(t, tr, p1, false, 0)

	if len(tr.Panes(false, Node{})) != 2 {
		t.Fatalf("expected 2 panes before remove")
	}

	next, err := tr.Remove(p1, false)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if next == nil || next.ID() != p2.ID() {
		t.Fatalf("Remove should focus the remaining pane, got %v", next)
	}
	if len(tr.Panes(false, Node{})) != 1 {
		t.Fatalf("expected 1 pane after remove")
	}

	next2, err := tr.Remove(p2, false)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if next2 != nil {
		t.Fatalf("removing the last pane should empty the tree, got %v", next2)
	}
	if _, ok := tr.Root(); ok {
		t.Fatalf("tree should be empty")
	}
}

// TestScenario_NewLevelRemoveKeepsNestedTC exercises tab(new_level=true)
// followed by removing one of the two nested tabs. The nested tab container
// is left with one tab under Tab -> SplitContainer, a chain the post-removal
// prune never collapses, and the hide-mode merge does not run because
// hide_when defaults to "never", so p1 stays nested two deep.
func TestScenario_NewLevelRemoveKeepsNestedTC(t *testing.T) {
	tr := newTestTree(t, 200, 100)
	p1 := mustTab(t, tr, nil, false, 0)
	p2 := mustTab(t, tr, p1, true, 0)

	if len(tr.ancestorTCsInOrder(p2.id)) != 2 {
		t.Fatalf("expected p2 to be nested under 2 tab containers, got %d", len(tr.ancestorTCsInOrder(p2.id)))
	}

	if _, err := tr.Remove(p2, false); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(tr.ancestorTCsInOrder(p1.id)) != 2 {
		t.Fatalf("removing the new tab should leave the nested tab container in place")
	}
}
