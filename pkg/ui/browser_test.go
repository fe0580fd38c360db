package ui

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/ray-d-song/golist/pkg/list"
)

func newTestBrowser(t *testing.T, mode list.Mode, texts ...string) *Browser {
	t.Helper()
	head, err := list.MakeListFrom(texts, list.WithMode(mode))
	if err != nil {
		t.Fatalf("MakeListFrom(%q): %v", texts, err)
	}
	return NewBrowser(head, mode)
}

func TestBrowserItems(t *testing.T) {
	b := newTestBrowser(t, list.Bidirectional, "A", "B", "C")
	defer b.Close()

	if got, expected := b.Items(), []string{"1. A", "2. B", "3. C"}; !slices.Equal(got, expected) {
		t.Errorf("Items() = %q, expected %q", got, expected)
	}

	b.ToggleReverse()
	if got, expected := b.Items(), []string{"3. C", "2. B", "1. A"}; !slices.Equal(got, expected) {
		t.Errorf("reversed Items() = %q, expected %q", got, expected)
	}
	if b.Current.Text() != "A" || b.Index() != 2 {
		t.Errorf("cursor after reverse = %q at %d, expected %q at 2", b.Current.Text(), b.Index(), "A")
	}
}

func TestBrowserMovement(t *testing.T) {
	b := newTestBrowser(t, list.Bidirectional, "A", "B", "C")
	defer b.Close()

	tests := []struct {
		move     func()
		expected string
	}{
		{b.Next, "B"},
		{b.Next, "C"},
		{b.Next, "C"},
		{b.Prev, "B"},
		{b.Home, "A"},
		{b.Prev, "A"},
		{b.End, "C"},
	}
	for i, test := range tests {
		test.move()
		if got := b.Current.Text(); got != test.expected {
			t.Errorf("step %d: Current = %q, expected %q", i, got, test.expected)
		}
	}
}

func TestBrowserEdits(t *testing.T) {
	for _, mode := range []list.Mode{list.Bidirectional, list.ForwardOnly} {
		b := newTestBrowser(t, mode, "A", "B", "C")

		b.Next() // B
		if err := b.InsertBefore("X"); err != nil {
			t.Fatalf("%s: InsertBefore: %v", mode, err)
		}
		b.Home()
		if err := b.InsertBefore("Z"); err != nil {
			t.Fatalf("%s: InsertBefore head: %v", mode, err)
		}
		if err := b.Append("D"); err != nil {
			t.Fatalf("%s: Append: %v", mode, err)
		}
		if got, expected := list.Texts(b.Head), []string{"Z", "A", "X", "B", "C", "D"}; !slices.Equal(got, expected) {
			t.Errorf("%s: Texts() = %q, expected %q", mode, got, expected)
		}

		if err := b.Search("X"); err != nil {
			t.Fatalf("%s: Search: %v", mode, err)
		}
		text, err := b.RemoveCurrent()
		if err != nil || text != "X" {
			t.Fatalf("%s: RemoveCurrent = %q, %v", mode, text, err)
		}
		if b.Current.Text() != "B" {
			t.Errorf("%s: cursor after remove = %q, expected %q", mode, b.Current.Text(), "B")
		}
		if err := list.Check(b.Head); err != nil {
			t.Errorf("%s: Check: %v", mode, err)
		}

		if err := b.Search("missing"); !errors.Is(err, list.ErrNotFound) {
			t.Errorf("%s: Search(missing) error = %v, expected %v", mode, err, list.ErrNotFound)
		}
		if err := b.InsertBefore(""); !errors.Is(err, list.ErrInvalidArgument) {
			t.Errorf("%s: InsertBefore(\"\") error = %v, expected %v", mode, err, list.ErrInvalidArgument)
		}
		b.Close()
	}
}

func TestBrowserEmptyAndRefill(t *testing.T) {
	b := newTestBrowser(t, list.ForwardOnly, "A")

	if _, err := b.RemoveCurrent(); err != nil {
		t.Fatalf("RemoveCurrent: %v", err)
	}
	if b.Head != nil || b.Current != nil {
		t.Fatalf("browser not empty after removing the last node")
	}
	if _, err := b.RemoveCurrent(); !errors.Is(err, list.ErrEmptyList) {
		t.Errorf("RemoveCurrent on empty = %v, expected %v", err, list.ErrEmptyList)
	}
	if !strings.HasPrefix(b.Status(), "empty forward-only") {
		t.Errorf("Status() = %q", b.Status())
	}

	if err := b.Append("B"); err != nil {
		t.Fatalf("Append to empty browser: %v", err)
	}
	if b.Head.Mode() != list.ForwardOnly {
		t.Errorf("refilled list mode = %s, expected %s", b.Head.Mode(), list.ForwardOnly)
	}
	if b.Close() != nil {
		t.Errorf("Close() returned a non-empty head")
	}
}

func TestBrowserStatus(t *testing.T) {
	b := newTestBrowser(t, list.Bidirectional, "A", "B", "C")
	defer b.Close()

	b.Next()
	if got, expected := b.Status(), "2/3 B | prev: A | next: C | bidirectional, forward"; got != expected {
		t.Errorf("Status() = %q, expected %q", got, expected)
	}
	b.ToggleReverse()
	b.Home()
	if got, expected := b.Status(), "3/3 C | prev: B | next: - | bidirectional, reverse"; got != expected {
		t.Errorf("Status() = %q, expected %q", got, expected)
	}
}
