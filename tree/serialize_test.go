// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tree

import (
	"encoding/json"
	"testing"
)

func TestMarshalUnmarshalState_RoundTripsRepr(t *testing.T) {
	tr := newTestTree(t, 400, 300)
	p1 := mustTab(t, tr, nil, false, 0)
	p2 := mustSplit(t, tr, p1, AxisX, 0.5, false)
	mustSplit(t, tr, p2, AxisY, 0.5, false)

	wantRepr := tr.Repr()
	state := tr.MarshalState()

	restored, err := UnmarshalState(state)
	if err != nil {
		t.Fatalf("UnmarshalState: %v", err)
	}
	if got := restored.Repr(); got != wantRepr {
		t.Fatalf("Repr() after round trip =\n%s\nwant:\n%s", got, wantRepr)
	}
}

func TestMarshalUnmarshalState_CountersContinueSeamlessly(t *testing.T) {
	tr := newTestTree(t, 200, 100)
	p1 := mustTab(t, tr, nil, false, 0)
	tr.Focus(p1)

	state := tr.MarshalState()
	restored, err := UnmarshalState(state)
	if err != nil {
		t.Fatalf("UnmarshalState: %v", err)
	}

	p2 := mustTab(t, restored, nil, false, 0)
	if p2.ID() <= p1.ID() {
		t.Fatalf("restored tree should continue allocating fresh ids, got %d after %d", p2.ID(), p1.ID())
	}
}

func TestMarshalState_SurvivesJSONRoundTrip(t *testing.T) {
	tr := newTestTree(t, 400, 300)
	p1 := mustTab(t, tr, nil, false, 0)
	mustSplit(t, tr, p1, AxisX, 0.5, false)

	state := tr.MarshalState()
	data, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	var roundTripped TreeState
	if err := json.Unmarshal(data, &roundTripped); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	restored, err := UnmarshalState(roundTripped)
	if err != nil {
		t.Fatalf("UnmarshalState: %v", err)
	}
	if got, want := restored.Repr(), tr.Repr(); got != want {
		t.Fatalf("Repr() after JSON round trip =\n%s\nwant:\n%s", got, want)
	}
}

func TestUnmarshalState_RejectsUnknownNodeType(t *testing.T) {
	ts := TreeState{
		Width: 10, Height: 10, NextID: 2, NextMRU: 1,
		Root: &StateNode{Type: "bogus", ID: 1, Rect: Rect{W: 10, H: 10}},
	}
	if _, err := UnmarshalState(ts); err == nil {
		t.Fatalf("expected an error for an unknown node type")
	}
}

func TestMarshalState_EmptyTree(t *testing.T) {
	tr := newTestTree(t, 200, 100)
	state := tr.MarshalState()
	if state.Root != nil {
		t.Fatalf("empty tree should marshal a nil root")
	}
	restored, err := UnmarshalState(state)
	if err != nil {
		t.Fatalf("UnmarshalState: %v", err)
	}
	if _, ok := restored.Root(); ok {
		t.Fatalf("restoring an empty state should produce an empty tree")
	}
}
