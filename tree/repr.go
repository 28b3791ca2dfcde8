// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tree/repr.go
// Summary: Stable, human-readable tree dump used as a test oracle.
// Usage: Repr() renders one line per node, 4-space indented per depth, in the exact
// format tree/scenario_test.go compares against.

package tree

import (
	"fmt"
	"strings"
)

// Repr renders the whole tree as a stable multi-line string: one
// "- <kind-short>:<id>" line per node, indented 4 spaces per depth, with
// panes additionally showing their principal rect.
func (t *Tree) Repr() string {
	if t.rootID == 0 {
		return "<empty>"
	}
	var b strings.Builder
	t.reprNode(&b, t.rootID, 0)
	return strings.TrimRight(b.String(), "\n")
}

func (t *Tree) reprNode(b *strings.Builder, id int, depth int) {
	nd := t.n(id)
	b.WriteString(strings.Repeat("    ", depth))
	b.WriteString("- ")
	switch nd.kind {
	case KindTabContainer:
		fmt.Fprintf(b, "tc:%d\n", id)
	case KindTab:
		fmt.Fprintf(b, "t:%d\n", id)
	case KindSplitContainer:
		fmt.Fprintf(b, "sc.%s:%d\n", nd.axis, id)
	case KindPane:
		r := nd.paneBox.PrincipalRect()
		fmt.Fprintf(b, "p:%d | {x: %d, y: %d, w: %d, h: %d}\n", id, r.X, r.Y, r.W, r.H)
	}
	for _, c := range nd.children {
		t.reprNode(b, c, depth+1)
	}
}
