// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/bonsaiterm/title.go
// Summary: Display-width-aware tab title rendering.

package main

import "github.com/mattn/go-runewidth"

// truncateTitle fits title into width display cells, appending an ellipsis
// when it doesn't, using rune display width rather than byte or rune count
// so wide (e.g. CJK) characters don't overrun the tab.
func truncateTitle(title string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(title) <= width {
		return title
	}
	if width == 1 {
		return "…"
	}
	out := []rune{}
	w := 0
	for _, r := range title {
		rw := runewidth.RuneWidth(r)
		if w+rw > width-1 {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + "…"
}
