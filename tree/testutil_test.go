// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tree

import "testing"

func newTestTree(t *testing.T, w, h int) *Tree {
	t.Helper()
	tr, err := New(w, h, nil)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", w, h, err)
	}
	return tr
}

func mustTab(t *testing.T, tr *Tree, at *Pane, newLevel bool, level int) *Pane {
	t.Helper()
	p, err := tr.Tab(at, newLevel, level)
	if err != nil {
		t.Fatalf("Tab: %v", err)
	}
	return p
}

func mustSplit(t *testing.T, tr *Tree, p *Pane, axis Axis, ratio float64, normalize bool) *Pane {
	t.Helper()
	np, err := tr.Split(p, axis, ratio, normalize)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	return np
}
