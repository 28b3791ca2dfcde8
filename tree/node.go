// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tree/node.go
// Summary: Public handle types over arena ids: Node, Pane, Tab, SplitContainer, TabContainer.
// Usage: Operations return these handles; callers never see raw ids or the internal node struct.

package tree

// Node is a lightweight handle to any node in a tree, identified by id.
// It is comparable and safe to pass by value.
type Node struct {
	t  *Tree
	id int
}

// ID returns the node's stable integer identifier.
func (n Node) ID() int { return n.id }

// Valid reports whether the handle still refers to a live node.
func (n Node) Valid() bool {
	if n.t == nil {
		return false
	}
	_, ok := n.t.nodes[n.id]
	return ok
}

// Kind reports which of the four shapes this node is.
func (n Node) Kind() NodeKind { return n.t.n(n.id).kind }

// Rect returns the node's own principal rect.
func (n Node) Rect() Rect { return n.t.rectOf(n.id) }

// Parent returns the node's parent, if any.
func (n Node) Parent() (Node, bool) {
	p := n.t.n(n.id).parent
	if p == 0 {
		return Node{}, false
	}
	return n.t.wrap(p), true
}

// Children returns the node's direct children in order.
func (n Node) Children() []Node {
	ids := n.t.n(n.id).children
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = n.t.wrap(id)
	}
	return out
}

// AsPane narrows n to a Pane handle, if it is one.
func (n Node) AsPane() (Pane, bool) {
	if n.Kind() == KindPane {
		return Pane{n}, true
	}
	return Pane{}, false
}

// AsTab narrows n to a Tab handle, if it is one.
func (n Node) AsTab() (Tab, bool) {
	if n.Kind() == KindTab {
		return Tab{n}, true
	}
	return Tab{}, false
}

// AsSplitContainer narrows n to a SplitContainer handle, if it is one.
func (n Node) AsSplitContainer() (SplitContainer, bool) {
	if n.Kind() == KindSplitContainer {
		return SplitContainer{n}, true
	}
	return SplitContainer{}, false
}

// AsTabContainer narrows n to a TabContainer handle, if it is one.
func (n Node) AsTabContainer() (TabContainer, bool) {
	if n.Kind() == KindTabContainer {
		return TabContainer{n}, true
	}
	return TabContainer{}, false
}

// Pane is a leaf node holding actual content.
type Pane struct{ Node }

func (p Pane) Box() Box { return p.t.n(p.id).paneBox }

// MRU is the monotonic counter bumped every time the pane is focused; higher
// means more recently used.
func (p Pane) MRU() int { return p.t.n(p.id).mru }

// Tab is a single labelled tab inside a TabContainer. It always has exactly
// one child, a SplitContainer.
type Tab struct{ Node }

func (tb Tab) Title() string { return tb.t.n(tb.id).title }

func (tb Tab) SetTitle(title string) { tb.t.n(tb.id).title = title }

// SplitContainer lays its children out side by side along Axis.
type SplitContainer struct{ Node }

func (s SplitContainer) Axis() Axis { return s.t.n(s.id).axis }

// TabContainer shows exactly one of its Tab children at a time, chosen by
// the most recent Focus call that passed through it.
type TabContainer struct{ Node }

func (c TabContainer) TabBar() Box { return c.t.n(c.id).tabBar }

func (c TabContainer) ActiveTab() (Tab, bool) {
	a := c.t.n(c.id).activeChild
	if a == 0 {
		return Tab{}, false
	}
	return Tab{c.t.wrap(a)}, true
}

func (c TabContainer) Tabs() []Tab {
	ids := c.t.n(c.id).children
	out := make([]Tab, len(ids))
	for i, id := range ids {
		out[i] = Tab{c.t.wrap(id)}
	}
	return out
}

// Ancestors returns every ancestor of n with the given kind, nearest first.
func Ancestors(n Node, kind NodeKind) []Node {
	var out []Node
	cur := n
	for {
		p, ok := cur.Parent()
		if !ok {
			return out
		}
		if p.Kind() == kind {
			out = append(out, p)
		}
		cur = p
	}
}

// FirstAncestor returns the nearest ancestor of n with the given kind.
func FirstAncestor(n Node, kind NodeKind) (Node, bool) {
	cur := n
	for {
		p, ok := cur.Parent()
		if !ok {
			return Node{}, false
		}
		if p.Kind() == kind {
			return p, true
		}
		cur = p
	}
}

func (t *Tree) firstAncestorOfKind(id int, kind NodeKind) (int, bool) {
	n, ok := FirstAncestor(t.wrap(id), kind)
	if !ok {
		return 0, false
	}
	return n.id, true
}

// ancestorTCsInOrder returns the ids of every TabContainer ancestor of id,
// ordered from the root inward.
func (t *Tree) ancestorTCsInOrder(id int) []int {
	var out []int
	cur := t.n(id).parent
	for cur != 0 {
		nd := t.n(cur)
		if nd.kind == KindTabContainer {
			out = append(out, cur)
		}
		cur = nd.parent
	}
	// reverse: we walked inner-to-outer, want outer-to-inner
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// levelOf returns the 1-based nesting depth of the nearest enclosing tab
// container, counted from the root. Querying a TabContainer itself counts
// its own nesting depth.
func (t *Tree) levelOf(id int) int {
	level := 0
	cur := id
	for cur != 0 {
		nd := t.n(cur)
		if nd.kind == KindTabContainer {
			level++
		}
		cur = nd.parent
	}
	return level
}

// Root returns the tree's root node if the tree is non-empty.
func (t *Tree) Root() (Node, bool) {
	if t.rootID == 0 {
		return Node{}, false
	}
	return t.wrap(t.rootID), true
}

// ActivePane walks the tree's active-tab chain from the root down to the
// currently visible leaf pane.
func (t *Tree) ActivePane() (*Pane, bool) {
	if t.rootID == 0 {
		return nil, false
	}
	cur := t.rootID
	for {
		nd := t.n(cur)
		switch nd.kind {
		case KindPane:
			return &Pane{t.wrap(cur)}, true
		case KindTabContainer:
			if nd.activeChild == 0 {
				return nil, false
			}
			cur = nd.activeChild
		case KindTab, KindSplitContainer:
			if len(nd.children) == 0 {
				return nil, false
			}
			cur = nd.children[0]
		}
	}
}
