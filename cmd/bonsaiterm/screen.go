// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/bonsaiterm/screen.go
// Summary: Thin tcell.Screen wrapper used by the render loop.
// Usage: mirrors texel's TcellScreenDriver, trimmed to the calls bonsaiterm needs.

package main

import "github.com/gdamore/tcell/v2"

// tcellScreen adapts a tcell.Screen to the narrow surface the render loop
// and pane renderers need.
type tcellScreen struct {
	screen tcell.Screen
}

func newTcellScreen() (*tcellScreen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &tcellScreen{screen: s}, nil
}

func (d *tcellScreen) Init() error {
	if err := d.screen.Init(); err != nil {
		return err
	}
	d.screen.SetStyle(tcell.StyleDefault)
	d.screen.HideCursor()
	return nil
}

func (d *tcellScreen) Fini() { d.screen.Fini() }

func (d *tcellScreen) Size() (int, int) { return d.screen.Size() }

func (d *tcellScreen) Show() { d.screen.Show() }

func (d *tcellScreen) Clear() { d.screen.Clear() }

func (d *tcellScreen) PollEvent() tcell.Event { return d.screen.PollEvent() }

func (d *tcellScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	d.screen.SetContent(x, y, mainc, combc, style)
}

// Underlying exposes the wrapped tcell.Screen for callers that need it
// directly (resize notifications, terminal queries).
func (d *tcellScreen) Underlying() tcell.Screen { return d.screen }
