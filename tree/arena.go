// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tree/arena.go
// Summary: Id-addressed node storage and the Tree type's internal state.
// Usage: Every package-internal algorithm (construct/remove/prune/resize/navigate)
// operates on *node values fetched through Tree.n(id); links between nodes and the
// public handles hold node ids, never pointers, so the tree can be serialized and
// rebuilt exactly.

package tree

import (
	"fmt"
	"log"
)

// NodeKind identifies which of the four node shapes a node is.
type NodeKind int

const (
	KindTabContainer NodeKind = iota
	KindTab
	KindSplitContainer
	KindPane
)

func (k NodeKind) shortName() string {
	switch k {
	case KindTabContainer:
		return "tc"
	case KindTab:
		return "t"
	case KindSplitContainer:
		return "sc"
	case KindPane:
		return "p"
	}
	return "?"
}

// node is the arena's internal representation of one tree element. Fields
// not relevant to a given kind are left zero; callers switch on kind rather
// than relying on zero values meaning anything.
type node struct {
	id     int
	kind   NodeKind
	parent int // 0 means no parent (root)
	children []int

	axis        Axis // SplitContainer
	activeChild int  // TabContainer: id of the active Tab, 0 if none
	title       string // Tab
	rect        Rect   // TabContainer/Tab/SplitContainer principal rect cache
	tabBar      Box    // TabContainer
	paneBox     Box    // Pane
	mru         int    // Pane
}

// Tree is the arena-backed layout tree. The zero value is not usable; build
// one with New or UnmarshalState.
type Tree struct {
	nodes   map[int]*node
	rootID  int
	nextID  int
	nextMRU int

	width, height int
	cfg           *Config

	subs      map[EventType][]subscriber
	nextSubID SubscriptionID
}

// New creates an empty tree occupying a width x height screen.
func New(width, height int, cfg *Config) (*Tree, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tree: New: %w: width and height must be positive", ErrInvalidArgument)
	}
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	return &Tree{
		nodes:   map[int]*node{},
		nextID:  1,
		nextMRU: 1,
		width:   width,
		height:  height,
		cfg:     cfg,
		subs:    map[EventType][]subscriber{},
	}, nil
}

func (t *Tree) n(id int) *node { return t.nodes[id] }

func (t *Tree) alloc(kind NodeKind) *node {
	id := t.nextID
	t.nextID++
	nd := &node{id: id, kind: kind}
	t.nodes[id] = nd
	return nd
}

func (t *Tree) free(id int) { delete(t.nodes, id) }

func (t *Tree) newMRU() int {
	m := t.nextMRU
	t.nextMRU++
	return m
}

// Width and Height report the tree's current screen dimensions.
func (t *Tree) Width() int  { return t.width }
func (t *Tree) Height() int { return t.height }

// SetConfig stores a config value and re-fits every tab container so the
// change (tab bar height, hide mode, ...) is reflected immediately.
func (t *Tree) SetConfig(key string, value any, level int) error {
	if err := t.cfg.Set(key, value, level); err != nil {
		log.Printf("Tree.SetConfig: rejecting %s=%v at level %d: %v", key, value, level, err)
		return err
	}
	log.Printf("Tree.SetConfig: %s=%v at level %d, refitting tab containers", key, value, level)
	t.refitAllTabContainers()
	return nil
}

// GetConfig reads a config value back.
func (t *Tree) GetConfig(key string, level int) (any, bool) {
	return t.cfg.Get(key, level)
}

func (t *Tree) refitAllTabContainers() {
	for id, nd := range t.nodes {
		if nd.kind == KindTabContainer {
			t.fitRect(id, nd.rect)
			t.recomputeHideMode(id)
		}
	}
}

// rectOf returns a node's own principal rect regardless of kind.
func (t *Tree) rectOf(id int) Rect {
	nd := t.n(id)
	if nd.kind == KindPane {
		return nd.paneBox.PrincipalRect()
	}
	return nd.rect
}

func (t *Tree) wrap(id int) Node { return Node{t: t, id: id} }

func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func insertAt(ids []int, idx int, v int) []int {
	out := make([]int, 0, len(ids)+1)
	out = append(out, ids[:idx]...)
	out = append(out, v)
	out = append(out, ids[idx:]...)
	return out
}

func removeAt(ids []int, idx int) []int {
	out := make([]int, 0, len(ids)-1)
	out = append(out, ids[:idx]...)
	out = append(out, ids[idx+1:]...)
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
