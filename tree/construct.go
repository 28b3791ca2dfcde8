// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tree/construct.go
// Summary: Tab and Split, the two tree-growing operations.
// Usage: Tab adds a new tab (at the root, beside an existing pane, or wrapping one
// in a fresh nested tab container); Split divides an existing pane in two.

package tree

import (
	"fmt"
	"log"
	"strconv"
)

// Tab creates a new pane inside a tab.
//
//   - atPane == nil: on an empty tree a root TabContainer is created holding
//     a single tab with the new pane; otherwise a tab is appended to the
//     root TabContainer.
//   - atPane != nil, newLevel == false, level == 0: a sibling tab is appended
//     to atPane's nearest enclosing tab container.
//   - atPane != nil, newLevel == false, level > 0: a sibling tab is appended
//     to the level'th tab container counting from the root.
//   - atPane != nil, newLevel == true: atPane's slot in its parent split
//     container is replaced with a brand new tab container holding two tabs,
//     one wrapping atPane and one wrapping the new pane.
func (t *Tree) Tab(atPane *Pane, newLevel bool, level int) (*Pane, error) {
	if level < 0 {
		return nil, fmt.Errorf("tree: Tab: %w: level must be >= 0", ErrInvalidArgument)
	}
	if t.rootID == 0 {
		if atPane != nil {
			return nil, fmt.Errorf("tree: Tab: %w: atPane given on an empty tree", ErrInvalidArgument)
		}
		if newLevel || level > 0 {
			return nil, fmt.Errorf("tree: Tab: %w: newLevel/level require atPane", ErrInvalidArgument)
		}
		return t.createInitialTab()
	}
	if atPane == nil {
		if newLevel || level > 0 {
			return nil, fmt.Errorf("tree: Tab: %w: newLevel/level require atPane", ErrInvalidArgument)
		}
		return t.appendTabAt(t.rootID)
	}
	if _, ok := t.nodes[atPane.id]; !ok {
		return nil, fmt.Errorf("tree: Tab: %w: unknown pane", ErrInvalidTreeStructure)
	}
	if newLevel {
		return t.wrapInNewLevel(atPane)
	}
	if level > 0 {
		tcs := t.ancestorTCsInOrder(atPane.id)
		if level > len(tcs) {
			return nil, fmt.Errorf("tree: Tab: %w: level %d exceeds ancestor tab container count %d", ErrInvalidArgument, level, len(tcs))
		}
		return t.appendTabAt(tcs[level-1])
	}
	tcID, ok := t.firstAncestorOfKind(atPane.id, KindTabContainer)
	if !ok {
		return nil, fmt.Errorf("tree: Tab: %w: pane has no ancestor tab container", ErrInvalidTreeStructure)
	}
	return t.appendTabAt(tcID)
}

func (t *Tree) createInitialTab() (*Pane, error) {
	log.Printf("Tree.Tab: creating root tab container on empty tree (%dx%d)", t.width, t.height)
	tc := t.alloc(KindTabContainer)
	t.rootID = tc.id
	tab := t.alloc(KindTab)
	sc := t.alloc(KindSplitContainer)
	sc.axis = AxisX
	pane := t.alloc(KindPane)

	tc.children = []int{tab.id}
	tc.activeChild = tab.id
	tab.parent = tc.id
	tab.children = []int{sc.id}
	tab.title = "1"
	sc.parent = tab.id
	sc.children = []int{pane.id}
	pane.parent = sc.id

	t.fitRect(tc.id, Rect{0, 0, t.width, t.height})
	t.emit(NodeAdded, []Node{t.wrap(tc.id), t.wrap(tab.id), t.wrap(sc.id), t.wrap(pane.id)})
	return &Pane{t.wrap(pane.id)}, nil
}

func (t *Tree) appendTabAt(tcID int) (*Pane, error) {
	tc := t.n(tcID)
	log.Printf("Tree.Tab: appending tab %d to tab container %d (%d existing tabs)", t.nextID, tcID, len(tc.children))
	tab := t.alloc(KindTab)
	sc := t.alloc(KindSplitContainer)
	sc.axis = AxisX
	pane := t.alloc(KindPane)

	tab.parent = tcID
	tab.children = []int{sc.id}
	tab.title = strconv.Itoa(len(tc.children) + 1)
	sc.parent = tab.id
	sc.children = []int{pane.id}
	pane.parent = sc.id

	tc.children = append(tc.children, tab.id)
	tc.activeChild = tab.id
	t.fitRect(tcID, tc.rect)

	t.emit(NodeAdded, []Node{t.wrap(tab.id), t.wrap(sc.id), t.wrap(pane.id)})
	return &Pane{t.wrap(pane.id)}, nil
}

func (t *Tree) wrapInNewLevel(atPane *Pane) (*Pane, error) {
	paneID := atPane.id
	log.Printf("Tree.Tab: wrapping pane %d in a new nested tab container level", paneID)
	oldSC := t.n(t.n(paneID).parent)
	idx := indexOf(oldSC.children, paneID)
	oldRect := t.n(paneID).paneBox.PrincipalRect()

	newTC := t.alloc(KindTabContainer)
	t1 := t.alloc(KindTab)
	scA := t.alloc(KindSplitContainer)
	scA.axis = AxisX
	t2 := t.alloc(KindTab)
	scB := t.alloc(KindSplitContainer)
	scB.axis = AxisX
	newPane := t.alloc(KindPane)

	t.n(paneID).parent = scA.id
	scA.parent = t1.id
	scA.children = []int{paneID}
	t1.parent = newTC.id
	t1.children = []int{scA.id}
	t1.title = "1"

	scB.parent = t2.id
	scB.children = []int{newPane.id}
	newPane.parent = scB.id
	t2.parent = newTC.id
	t2.children = []int{scB.id}
	t2.title = "2"

	newTC.children = []int{t1.id, t2.id}
	newTC.activeChild = t2.id
	newTC.parent = oldSC.id
	oldSC.children[idx] = newTC.id

	t.fitRect(newTC.id, oldRect)

	t.emit(NodeAdded, []Node{
		t.wrap(newTC.id), t.wrap(t1.id), t.wrap(scA.id),
		t.wrap(t2.id), t.wrap(scB.id), t.wrap(newPane.id),
	})
	return &Pane{t.wrap(newPane.id)}, nil
}

// Split divides pane in two along axis, at ratio (0 selects the default of
// 0.5). If normalize is true, every child of the resulting split container
// is resized to an equal share instead of preserving the split ratio.
func (t *Tree) Split(pane *Pane, axis Axis, ratio float64, normalize bool) (*Pane, error) {
	if pane == nil {
		return nil, fmt.Errorf("tree: Split: %w: pane is nil", ErrInvalidArgument)
	}
	if _, ok := t.nodes[pane.id]; !ok {
		return nil, fmt.Errorf("tree: Split: %w: unknown pane", ErrInvalidTreeStructure)
	}
	if ratio < 0 || ratio > 1 {
		return nil, fmt.Errorf("tree: Split: %w: ratio %.3f out of [0,1]", ErrInvalidArgument, ratio)
	}
	if ratio == 0 {
		ratio = 0.5
	}

	scID := t.n(pane.id).parent
	sc := t.n(scID)
	if t.isNearestUnderTC(scID) && len(sc.children) == 1 {
		log.Printf("Tree.Split: morphing sole-child split container %d to axis %v", scID, axis)
		sc.axis = axis
	}
	if sc.axis == axis {
		log.Printf("Tree.Split: pane %d, axis %v matches split container %d, inserting sibling", pane.id, axis, scID)
		return t.splitSameAxis(pane.id, scID, axis, ratio, normalize)
	}
	log.Printf("Tree.Split: pane %d, axis %v differs from split container %d, nesting new axis", pane.id, axis, scID)
	return t.splitNewAxis(pane.id, scID, axis, ratio, normalize)
}

func (t *Tree) isNearestUnderTC(scID int) bool {
	p := t.n(scID).parent
	return p != 0 && t.n(p).kind == KindTab
}

func (t *Tree) splitSameAxis(paneID, scID int, a Axis, ratio float64, normalize bool) (*Pane, error) {
	sc := t.n(scID)
	pr := t.n(paneID).paneBox.PrincipalRect()
	r1, r2 := pr.Split(a, ratio)
	t.n(paneID).paneBox.SetPrincipalRect(r1)

	newPane := t.alloc(KindPane)
	newPane.parent = scID
	newPane.paneBox.SetPrincipalRect(r2)

	idx := indexOf(sc.children, paneID)
	sc.children = insertAt(sc.children, idx+1, newPane.id)
	if normalize {
		t.fitSCChildrenEqually(sc, sc.rect)
	}
	t.emit(NodeAdded, []Node{t.wrap(newPane.id)})
	return &Pane{t.wrap(newPane.id)}, nil
}

func (t *Tree) splitNewAxis(paneID, scID int, a Axis, ratio float64, normalize bool) (*Pane, error) {
	sc := t.n(scID)
	pr := t.n(paneID).paneBox.PrincipalRect()
	idx := indexOf(sc.children, paneID)

	newSC := t.alloc(KindSplitContainer)
	newSC.axis = a
	newSC.parent = scID
	newSC.rect = pr
	sc.children[idx] = newSC.id
	t.n(paneID).parent = newSC.id

	r1, r2 := pr.Split(a, ratio)
	t.n(paneID).paneBox.SetPrincipalRect(r1)

	newPane := t.alloc(KindPane)
	newPane.parent = newSC.id
	newPane.paneBox.SetPrincipalRect(r2)

	newSC.children = []int{paneID, newPane.id}
	if normalize {
		t.fitSCChildrenEqually(newSC, pr)
	}
	t.emit(NodeAdded, []Node{t.wrap(newSC.id), t.wrap(newPane.id)})
	return &Pane{t.wrap(newPane.id)}, nil
}
