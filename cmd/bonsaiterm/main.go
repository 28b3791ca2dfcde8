// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/bonsaiterm/main.go
// Summary: Terminal multiplexer entry point wiring tree's layout engine to
// a tcell screen and one creack/pty-backed shell per pane.
// Usage: go run ./cmd/bonsaiterm

package main

import (
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/bonsai/config"
	"github.com/framegrace/bonsai/tree"
)

// prefixKey enters command mode; the next key is interpreted as a layout
// command instead of being forwarded to the focused pane's shell.
const prefixKey = tcell.KeyCtrlA

type app struct {
	cfg    *config.Config
	screen *tcellScreen
	tr     *tree.Tree
	panes  map[int]*ptyPane

	inCommand bool
}

func main() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatalf("bonsaiterm: stdin is not a terminal")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("bonsaiterm: loading config: %v", err)
	}

	scr, err := newTcellScreen()
	if err != nil {
		log.Fatalf("bonsaiterm: creating screen: %v", err)
	}
	if err := scr.Init(); err != nil {
		log.Fatalf("bonsaiterm: initializing screen: %v", err)
	}
	defer scr.Fini()

	w, h := scr.Size()
	a := &app{
		cfg:    cfg,
		screen: scr,
		panes:  map[int]*ptyPane{},
	}
	tr, err := tree.New(w, h, nil)
	if err != nil {
		log.Fatalf("bonsaiterm: creating layout tree: %v", err)
	}
	a.tr = tr
	if err := tr.SetConfig("tab_bar.height", cfg.TabBarHeight, 0); err != nil {
		log.Printf("bonsaiterm: setting tab_bar.height: %v", err)
	}
	if err := tr.SetConfig("window.min_size_x", cfg.MinPaneSize, 0); err != nil {
		log.Printf("bonsaiterm: setting window.min_size_x: %v", err)
	}
	if err := tr.SetConfig("window.min_size_y", cfg.MinPaneSize, 0); err != nil {
		log.Printf("bonsaiterm: setting window.min_size_y: %v", err)
	}

	if _, err := tr.Tab(nil, false, 0); err != nil {
		log.Fatalf("bonsaiterm: creating initial tab: %v", err)
	}
	a.relayout()
	a.render()

	defer a.closeAll()

	for {
		ev := scr.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			a.tr.ResetDimensions(w, h)
			a.relayout()
			a.render()
		case *tcell.EventKey:
			if !a.handleKey(ev) {
				return
			}
			a.render()
		}
	}
}

// focused returns the currently active pane, if any.
func (a *app) focused() *tree.Pane {
	p, ok := a.tr.ActivePane()
	if !ok {
		return nil
	}
	return p
}

// handleKey processes one key event. It returns false when the
// multiplexer should exit.
func (a *app) handleKey(ev *tcell.EventKey) bool {
	if !a.inCommand {
		if ev.Key() == prefixKey {
			a.inCommand = true
			return true
		}
		a.forwardKey(ev)
		return true
	}
	a.inCommand = false

	fp := a.focused()
	if fp == nil {
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'c':
		np, err := a.tr.Tab(fp, false, 0)
		if err != nil {
			log.Printf("bonsaiterm: Tab: %v", err)
			break
		}
		a.tr.Focus(np)
		a.relayout()
	case '%':
		np, err := a.tr.Split(fp, tree.AxisX, 0.5, false)
		if err != nil {
			log.Printf("bonsaiterm: Split x: %v", err)
			break
		}
		a.tr.Focus(np)
		a.relayout()
	case '"':
		np, err := a.tr.Split(fp, tree.AxisY, 0.5, false)
		if err != nil {
			log.Printf("bonsaiterm: Split y: %v", err)
			break
		}
		a.tr.Focus(np)
		a.relayout()
	case 'x':
		next, err := a.tr.Remove(fp, false)
		if err != nil {
			log.Printf("bonsaiterm: Remove: %v", err)
			break
		}
		a.closePane(fp.ID())
		if next != nil {
			a.tr.Focus(next)
		}
		a.relayout()
	case 'h':
		if np := a.tr.Left(fp, true); np != nil {
			a.tr.Focus(np)
		}
	case 'l':
		if np := a.tr.Right(fp, true); np != nil {
			a.tr.Focus(np)
		}
	case 'k':
		if np := a.tr.Up(fp, true); np != nil {
			a.tr.Focus(np)
		}
	case 'j':
		if np := a.tr.Down(fp, true); np != nil {
			a.tr.Focus(np)
		}
	case 'n':
		if np, ok := a.tr.NextTab(fp.Node, true); ok {
			a.tr.Focus(np)
		}
	case 'p':
		if np, ok := a.tr.PrevTab(fp.Node, true); ok {
			a.tr.Focus(np)
		}
	case 'H':
		a.tr.Resize(fp, tree.AxisX, -2)
		a.relayout()
	case 'L':
		a.tr.Resize(fp, tree.AxisX, 2)
		a.relayout()
	case 'K':
		a.tr.Resize(fp, tree.AxisY, -1)
		a.relayout()
	case 'J':
		a.tr.Resize(fp, tree.AxisY, 1)
		a.relayout()
	}
	return true
}

func (a *app) forwardKey(ev *tcell.EventKey) {
	fp := a.focused()
	if fp == nil {
		return
	}
	pp := a.panes[fp.ID()]
	if pp == nil {
		return
	}
	if ev.Key() == tcell.KeyEnter {
		pp.Write([]byte("\r"))
		return
	}
	if r := ev.Rune(); r != 0 {
		pp.Write([]byte(string(r)))
	}
}

// relayout ensures every pane in the tree, including those in inactive tabs,
// has a running shell sized to its current rect, and tears down shells for
// panes no longer in the tree.
func (a *app) relayout() {
	live := map[int]bool{}
	for _, p := range a.tr.Panes(false, tree.Node{}) {
		live[p.ID()] = true
		pp := a.panes[p.ID()]
		if pp == nil {
			pp = newPTYPane(a.cfg.Shell, "shell")
			a.panes[p.ID()] = pp
		}
		r := p.Box().ContentRect()
		if err := pp.Resize(r.W, r.H); err != nil {
			log.Printf("bonsaiterm: resizing pane %d: %v", p.ID(), err)
		}
	}
	for id := range a.panes {
		if !live[id] {
			a.closePane(id)
		}
	}
}

func (a *app) closePane(id int) {
	if pp, ok := a.panes[id]; ok {
		pp.Close()
		delete(a.panes, id)
	}
}

func (a *app) closeAll() {
	for id := range a.panes {
		a.closePane(id)
	}
}

// render draws every visible tab bar and pane onto the screen.
func (a *app) render() {
	a.screen.Clear()
	root, ok := a.tr.Root()
	if ok {
		a.renderNode(root)
	}
	a.screen.Show()
}

func (a *app) renderNode(n tree.Node) {
	switch n.Kind() {
	case tree.KindTabContainer:
		tc, _ := n.AsTabContainer()
		a.renderTabBar(tc)
		if active, ok := tc.ActiveTab(); ok {
			a.renderNode(active.Node)
		}
	case tree.KindTab, tree.KindSplitContainer:
		for _, c := range n.Children() {
			a.renderNode(c)
		}
	case tree.KindPane:
		p, _ := n.AsPane()
		a.renderPane(p)
	}
}

func (a *app) renderTabBar(tc tree.TabContainer) {
	bar := tc.TabBar().PrincipalRect()
	if bar.H == 0 {
		return
	}
	x := bar.X
	for _, tb := range tc.Tabs() {
		title := truncateTitle(tb.Title(), 12)
		style := tcell.StyleDefault
		if active, ok := tc.ActiveTab(); ok && active.ID() == tb.ID() {
			style = style.Reverse(true)
		}
		for _, r := range " " + title + " " {
			if x >= bar.X2() {
				break
			}
			a.screen.SetContent(x, bar.Y, r, nil, style)
			x++
		}
	}
}

func (a *app) renderPane(p tree.Pane) {
	pp := a.panes[p.ID()]
	if pp == nil {
		return
	}
	r := p.Box().ContentRect()
	grid := pp.Snapshot()
	for y := 0; y < len(grid) && y < r.H; y++ {
		row := grid[y]
		for x := 0; x < len(row) && x < r.W; x++ {
			c := row[x]
			if c.ch == 0 {
				c.ch = ' '
			}
			a.screen.SetContent(r.X+x, r.Y+y, c.ch, nil, c.style)
		}
	}
}
