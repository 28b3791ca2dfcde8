// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/bonsaiterm/ptypane.go
// Summary: One pane's PTY-backed shell process and its screen-cell buffer.
// Usage: mirrors tui/PTYApp's shape (spawn-on-first-resize, background reader
// goroutine, mutex-guarded render snapshot) but keeps only a plain character
// grid instead of a full VT100 parser: escape sequences are stripped rather
// than interpreted, so color and cursor-addressing codes don't render. A
// real parser is the natural next step if bonsaiterm needs to host full-
// screen programs.

package main

import (
	"os"
	"os/exec"
	"strconv"
	"sync"

	"github.com/creack/pty"
	"github.com/gdamore/tcell/v2"
)

type cell struct {
	ch    rune
	style tcell.Style
}

// ptyPane owns one shell process and the character grid its output is
// written into.
type ptyPane struct {
	command string

	mu     sync.Mutex
	cols   int
	rows   int
	grid   [][]cell
	curX   int
	curY   int
	title  string
	inCSI  bool
	csiBuf []byte

	cmd  *exec.Cmd
	pty  *os.File
	stop chan struct{}
}

func newPTYPane(command, title string) *ptyPane {
	return &ptyPane{
		command: command,
		title:   title,
		stop:    make(chan struct{}),
	}
}

// Resize creates the PTY on first call (sized to cols x rows) and resizes
// both the PTY and the backing grid on every subsequent call.
func (p *ptyPane) Resize(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.resizeGridLocked(cols, rows)

	if p.pty == nil {
		cmd := exec.Command(p.command)
		cmd.Env = append(os.Environ(),
			"TERM=xterm-256color",
			"COLUMNS="+strconv.Itoa(cols),
			"LINES="+strconv.Itoa(rows),
		)
		p.cmd = cmd

		f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
		if err != nil {
			return err
		}
		p.pty = f
		go p.readLoop()
		return nil
	}

	return pty.Setsize(p.pty, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

func (p *ptyPane) resizeGridLocked(cols, rows int) {
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			grid[y][x] = cell{ch: ' '}
		}
		if y < len(p.grid) {
			copy(grid[y], p.grid[y])
		}
	}
	p.grid = grid
	p.cols, p.rows = cols, rows
	if p.curX >= cols {
		p.curX = cols - 1
	}
	if p.curY >= rows {
		p.curY = rows - 1
	}
}

func (p *ptyPane) readLoop() {
	buf := make([]byte, 4096)
	for {
		select {
		case <-p.stop:
			return
		default:
		}
		n, err := p.pty.Read(buf)
		if n > 0 {
			p.mu.Lock()
			p.feed(buf[:n])
			p.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// feed writes raw PTY output into the grid. CSI/OSC escape sequences are
// recognized and consumed so their bytes never print as cells, but they are
// not otherwise interpreted.
func (p *ptyPane) feed(b []byte) {
	for _, c := range b {
		if p.inCSI {
			p.csiBuf = append(p.csiBuf, c)
			intro := p.csiBuf[0]
			done := false
			switch {
			case len(p.csiBuf) == 1:
				// '[' opens a CSI and ']' an OSC; any other byte is a
				// two-byte escape and ends here.
				done = intro != '[' && intro != ']'
			case intro == '[':
				done = c >= 0x40 && c <= 0x7e
			default: // OSC ends at BEL or ST (ESC \)
				done = c == 0x07 || (c == '\\' && p.csiBuf[len(p.csiBuf)-2] == 0x1b)
			}
			if done {
				p.inCSI = false
				p.csiBuf = nil
			}
			continue
		}
		switch c {
		case 0x1b: // ESC: start of an escape sequence we don't render
			p.inCSI = true
		case '\r':
			p.curX = 0
		case '\n':
			p.curX = 0
			p.advanceLine()
		case '\b':
			if p.curX > 0 {
				p.curX--
			}
		case '\t':
			p.curX = (p.curX/8 + 1) * 8
		default:
			if c < 0x20 {
				continue
			}
			p.putLocked(rune(c))
		}
	}
}

func (p *ptyPane) putLocked(r rune) {
	if p.rows == 0 || p.cols == 0 {
		return
	}
	if p.curX >= p.cols {
		p.curX = 0
		p.advanceLine()
	}
	p.grid[p.curY][p.curX] = cell{ch: r, style: tcell.StyleDefault}
	p.curX++
}

func (p *ptyPane) advanceLine() {
	p.curY++
	if p.curY >= p.rows {
		copy(p.grid, p.grid[1:])
		last := make([]cell, p.cols)
		for x := range last {
			last[x] = cell{ch: ' '}
		}
		p.grid[p.rows-1] = last
		p.curY = p.rows - 1
	}
}

// Snapshot returns a copy of the current grid, safe to render without
// holding the pane's lock.
func (p *ptyPane) Snapshot() [][]cell {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][]cell, len(p.grid))
	for y, row := range p.grid {
		out[y] = append([]cell(nil), row...)
	}
	return out
}

// Write sends key input to the shell.
func (p *ptyPane) Write(b []byte) {
	p.mu.Lock()
	f := p.pty
	p.mu.Unlock()
	if f != nil {
		f.Write(b)
	}
}

func (p *ptyPane) Title() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title
}

func (p *ptyPane) Close() {
	close(p.stop)
	if p.pty != nil {
		p.pty.Close()
	}
	if p.cmd != nil && p.cmd.Process != nil {
		p.cmd.Process.Kill()
	}
}
