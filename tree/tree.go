// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tree/tree.go
// Summary: Whole-tree iteration helpers layered over the node handle types.
// Usage: Walk/Panes are the read side of the API; mutation lives in construct.go,
// remove.go, prune.go, resize.go, navigate.go.

package tree

// Walk returns start and every descendant reachable from it, depth first,
// in child order. If start is the zero Node, the walk begins at the tree's
// root. If onlyVisible is true, a TabContainer's walk descends only into
// its active tab; otherwise every tab is included.
func (t *Tree) Walk(start Node, onlyVisible bool) []Node {
	startID := t.rootID
	if start.t != nil {
		startID = start.id
	}
	if startID == 0 {
		return nil
	}
	var out []Node
	var rec func(id int)
	rec = func(id int) {
		nd := t.n(id)
		out = append(out, t.wrap(id))
		if onlyVisible && nd.kind == KindTabContainer {
			if nd.activeChild != 0 {
				rec(nd.activeChild)
			}
			return
		}
		for _, c := range nd.children {
			rec(c)
		}
	}
	rec(startID)
	return out
}

// Panes returns every Pane reachable from start (or the root, if start is
// the zero Node), in walk order.
func (t *Tree) Panes(visible bool, start Node) []*Pane {
	var out []*Pane
	for _, n := range t.Walk(start, visible) {
		if p, ok := n.AsPane(); ok {
			out = append(out, &p)
		}
	}
	return out
}
