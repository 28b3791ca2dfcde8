// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tree/serialize.go
// Summary: Exact round-trip state capture and restoration.
// Usage: MarshalState captures id/mru counters and every node's geometry; UnmarshalState
// rebuilds a tree that continues allocating ids and MRU stamps exactly where the
// original left off.

package tree

import "fmt"

// BoxState is the JSON-friendly shape of a Box.
type BoxState struct {
	PrincipalRect Rect  `json:"principal_rect"`
	Margin        Sides `json:"margin"`
	Border        Sides `json:"border"`
	Padding       Sides `json:"padding"`
}

// StateNode is the JSON-friendly shape of one tree node, used by both
// MarshalState and UnmarshalState.
type StateNode struct {
	Type          string      `json:"type"` // "tc", "t", "sc", "p"
	ID            int         `json:"id"`
	Rect          Rect        `json:"rect"`
	Children      []StateNode `json:"children,omitempty"`
	Axis          string      `json:"axis,omitempty"`            // sc only
	ActiveChildID int         `json:"active_child_id,omitempty"` // tc only
	Title         string      `json:"title,omitempty"`           // t only
	TabBar        *BoxState   `json:"tab_bar,omitempty"`         // tc only
	Box           *BoxState   `json:"box,omitempty"`             // pane only
	MRU           int         `json:"mru,omitempty"`             // pane only
}

// TreeState is the JSON-friendly shape of a whole Tree.
type TreeState struct {
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	NextID  int        `json:"next_id"`
	NextMRU int        `json:"next_mru"`
	Root    *StateNode `json:"root,omitempty"`
}

// MarshalState captures the tree's full structure and geometry, including
// its id and MRU counters, so UnmarshalState can reconstruct an identical tree.
func (t *Tree) MarshalState() TreeState {
	ts := TreeState{Width: t.width, Height: t.height, NextID: t.nextID, NextMRU: t.nextMRU}
	if t.rootID != 0 {
		r := t.buildStateNode(t.rootID)
		ts.Root = &r
	}
	return ts
}

func (t *Tree) buildStateNode(id int) StateNode {
	nd := t.n(id)
	sn := StateNode{ID: id, Rect: t.rectOf(id)}
	switch nd.kind {
	case KindTabContainer:
		sn.Type = "tc"
		sn.ActiveChildID = nd.activeChild
		sn.TabBar = boxState(nd.tabBar)
	case KindTab:
		sn.Type = "t"
		sn.Title = nd.title
	case KindSplitContainer:
		sn.Type = "sc"
		sn.Axis = nd.axis.String()
	case KindPane:
		sn.Type = "p"
		sn.Box = boxState(nd.paneBox)
		sn.MRU = nd.mru
	}
	for _, c := range nd.children {
		sn.Children = append(sn.Children, t.buildStateNode(c))
	}
	return sn
}

func boxState(b Box) *BoxState {
	return &BoxState{PrincipalRect: b.PrincipalRect(), Margin: b.Margin(), Border: b.Border(), Padding: b.Padding()}
}

// UnmarshalState rebuilds a tree from a previously captured TreeState.
func UnmarshalState(ts TreeState) (*Tree, error) {
	t := &Tree{
		nodes:   map[int]*node{},
		cfg:     NewDefaultConfig(),
		width:   ts.Width,
		height:  ts.Height,
		nextID:  ts.NextID,
		nextMRU: ts.NextMRU,
		subs:    map[EventType][]subscriber{},
	}
	if ts.Root != nil {
		id, err := t.rebuildNode(*ts.Root, 0)
		if err != nil {
			return nil, err
		}
		t.rootID = id
	}
	return t, nil
}

func (t *Tree) rebuildNode(sn StateNode, parent int) (int, error) {
	nd := &node{id: sn.ID, parent: parent, rect: sn.Rect}
	switch sn.Type {
	case "tc":
		nd.kind = KindTabContainer
		nd.activeChild = sn.ActiveChildID
		if sn.TabBar != nil {
			applyBoxState(&nd.tabBar, sn.TabBar)
		}
	case "t":
		nd.kind = KindTab
		nd.title = sn.Title
	case "sc":
		nd.kind = KindSplitContainer
		nd.axis = axisFromName(sn.Axis)
	case "p":
		nd.kind = KindPane
		if sn.Box != nil {
			applyBoxState(&nd.paneBox, sn.Box)
		}
		nd.mru = sn.MRU
	default:
		return 0, fmt.Errorf("tree: UnmarshalState: %w: unknown node type %q", ErrInvalidArgument, sn.Type)
	}
	t.nodes[sn.ID] = nd
	for _, c := range sn.Children {
		cid, err := t.rebuildNode(c, sn.ID)
		if err != nil {
			return 0, err
		}
		nd.children = append(nd.children, cid)
	}
	return nd.id, nil
}

func applyBoxState(b *Box, bs *BoxState) {
	b.SetPrincipalRect(bs.PrincipalRect)
	b.SetMargin(bs.Margin)
	b.SetBorder(bs.Border)
	b.SetPadding(bs.Padding)
}

func axisFromName(s string) Axis {
	if s == "y" {
		return AxisY
	}
	return AxisX
}
