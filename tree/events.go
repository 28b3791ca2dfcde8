// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tree/events.go
// Summary: Synchronous, in-order event subscription over tree mutations.
// Usage: Subscribe(NodeAdded, cb) to react to structural changes; callbacks run
// on the calling goroutine inside the mutating operation, in subscription order.

package tree

// EventType identifies the kind of structural change being reported.
type EventType int

const (
	NodeAdded EventType = iota
	NodeRemoved
)

// Event carries the nodes affected by one structural change. Nodes are
// listed bottom-up for NodeRemoved (the leaf first, ancestors after) and in
// creation order for NodeAdded.
type Event struct {
	Type  EventType
	Nodes []Node
}

// SubscriptionID identifies a registered callback so it can be removed later.
type SubscriptionID int

type subscriber struct {
	id SubscriptionID
	cb func(Event)
}

// Subscribe registers cb to run, synchronously and in order, every time evt
// fires. Panics inside cb are not recovered — they propagate to the caller
// of the mutating operation.
func (t *Tree) Subscribe(evt EventType, cb func(Event)) SubscriptionID {
	t.nextSubID++
	id := t.nextSubID
	t.subs[evt] = append(t.subs[evt], subscriber{id: id, cb: cb})
	return id
}

// Unsubscribe removes a previously registered callback. Unknown ids are a no-op.
func (t *Tree) Unsubscribe(id SubscriptionID) {
	for evt, list := range t.subs {
		for i, s := range list {
			if s.id == id {
				t.subs[evt] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

func (t *Tree) emit(evt EventType, nodes []Node) {
	if len(nodes) == 0 {
		return
	}
	for _, s := range t.subs[evt] {
		s.cb(Event{Type: evt, Nodes: nodes})
	}
}
