// Copyright © 2026 Bonsai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tree

import "testing"

func TestConfig_DefaultFallback(t *testing.T) {
	c := NewDefaultConfig()
	h, ok := c.GetInt("tab_bar.height", 0)
	if !ok || h != 20 {
		t.Fatalf("tab_bar.height default = %d, ok=%v, want 20", h, ok)
	}
}

func TestConfig_OverrideWinsOverDefault(t *testing.T) {
	c := NewDefaultConfig()
	if err := c.Set("tab_bar.height", 30, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	h, _ := c.GetInt("tab_bar.height", 0)
	if h != 30 {
		t.Fatalf("override should win, got %d", h)
	}
}

func TestConfig_LevelScopedWinsOverOverride(t *testing.T) {
	c := NewDefaultConfig()
	if err := c.Set("tab_bar.height", 30, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Set("tab_bar.height", 5, 2); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if h, _ := c.GetInt("tab_bar.height", 2); h != 5 {
		t.Fatalf("level-scoped value should win at that level, got %d", h)
	}
	if h, _ := c.GetInt("tab_bar.height", 1); h != 30 {
		t.Fatalf("an unrelated level should still see the tree-wide override, got %d", h)
	}
}

func TestConfig_UnknownKeyRejected(t *testing.T) {
	c := NewDefaultConfig()
	if err := c.Set("not.a.real.key", 1, 0); err == nil {
		t.Fatalf("expected an error setting an unknown key")
	}
}

func TestConfig_NegativeLevelRejected(t *testing.T) {
	c := NewDefaultConfig()
	if err := c.Set("tab_bar.height", 10, -1); err == nil {
		t.Fatalf("expected an error for a negative level")
	}
}

func TestConfig_TypedGettersMismatchReturnsFalse(t *testing.T) {
	c := NewDefaultConfig()
	if _, ok := c.GetString("tab_bar.height", 0); ok {
		t.Fatalf("GetString on an int-valued key should report ok=false")
	}
}

func TestTree_SetConfigRefitsTabBars(t *testing.T) {
	tr := newTestTree(t, 200, 100)
	p1 := mustTab(t, tr, nil, false, 0)
	if got, want := p1.Box().PrincipalRect().H, 80; got != want {
		t.Fatalf("pane height before config change = %d, want %d", got, want)
	}
	if err := tr.SetConfig("tab_bar.height", 10, 0); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if got, want := p1.Box().PrincipalRect().H, 90; got != want {
		t.Fatalf("pane height after shrinking the tab bar = %d, want %d", got, want)
	}
}

func TestTree_SetConfigHideAlwaysZeroesBar(t *testing.T) {
	tr := newTestTree(t, 200, 100)
	p1 := mustTab(t, tr, nil, false, 0)
	if err := tr.SetConfig("tab_bar.hide_when", "always", 0); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if got, want := p1.Box().PrincipalRect().H, 100; got != want {
		t.Fatalf("pane should fill the full height once the tab bar is hidden, got %d want %d", got, want)
	}
}
