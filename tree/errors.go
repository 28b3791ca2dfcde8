// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tree/errors.go
// Summary: Sentinel errors returned by tree operations.
// Usage: Wrap with fmt.Errorf("...: %w", ErrInvalidArgument) and match with errors.Is.

package tree

import "errors"

var (
	// ErrInvalidArgument marks a caller-supplied value that is out of range
	// or otherwise malformed (a negative level, a ratio outside [0,1], a
	// level deeper than the tab container nesting, ...).
	ErrInvalidArgument = errors.New("tree: invalid argument")

	// ErrInvalidTreeStructure marks an operation that cannot be satisfied
	// given the current shape of the tree (an unknown pane, a pane with no
	// enclosing tab container, ...).
	ErrInvalidTreeStructure = errors.New("tree: invalid tree structure")
)
