package ui

import (
	"fmt"

	"github.com/ray-d-song/golist/pkg/list"
	"github.com/ray-d-song/golist/pkg/utils"
)

// Browser is a cursor over a list. It holds everything the UI shows and
// performs every edit, so the interface itself only renders.
type Browser struct {
	Head    *list.Node
	Current *list.Node
	Reverse bool
	Mode    list.Mode
}

// NewBrowser creates a browser positioned on the head of the list
func NewBrowser(head *list.Node, mode list.Mode) *Browser {
	if head != nil {
		mode = head.Mode()
	}
	return &Browser{
		Head:    head,
		Current: head,
		Mode:    mode,
	}
}

// Nodes returns the nodes in display order
func (b *Browser) Nodes() []*list.Node {
	seq := list.Forward(b.Head)
	if b.Reverse {
		seq = list.Backward(b.Head)
	}
	var nodes []*list.Node
	for n := range seq {
		nodes = append(nodes, n)
	}
	return nodes
}

// Items returns "position. text" for every node in display order.
// Positions are always counted from the head.
func (b *Browser) Items() []string {
	nodes := b.Nodes()
	items := make([]string, len(nodes))
	for i, n := range nodes {
		pos := i + 1
		if b.Reverse {
			pos = len(nodes) - i
		}
		items[i] = fmt.Sprintf("%d. %s", pos, n.Text())
	}
	return items
}

// Index returns the display index of the current node, -1 for an empty list
func (b *Browser) Index() int {
	for i, n := range b.Nodes() {
		if n == b.Current {
			return i
		}
	}
	return -1
}

// Select moves the cursor to display index i, clamped to the list
func (b *Browser) Select(i int) {
	nodes := b.Nodes()
	if len(nodes) == 0 {
		b.Current = nil
		return
	}
	i = max(0, min(i, len(nodes)-1))
	b.Current = nodes[i]
}

// Next moves the cursor one step down the display
func (b *Browser) Next() {
	b.Select(b.Index() + 1)
}

// Prev moves the cursor one step up the display
func (b *Browser) Prev() {
	b.Select(b.Index() - 1)
}

// Home moves the cursor to the top of the display
func (b *Browser) Home() {
	b.Select(0)
}

// End moves the cursor to the bottom of the display
func (b *Browser) End() {
	b.Select(list.Size(b.Head) - 1)
}

// ToggleReverse flips the display order, keeping the cursor on the same node
func (b *Browser) ToggleReverse() {
	b.Reverse = !b.Reverse
}

// InsertBefore inserts text in front of the current node
func (b *Browser) InsertBefore(text string) error {
	if b.Head == nil {
		return b.start(text)
	}
	n, err := list.NewTextNode(text)
	if err != nil {
		return err
	}
	head, err := list.InsertBefore(b.Head, b.Current, n)
	if err != nil {
		list.DestroyNode(n)
		return err
	}
	b.Head = head
	b.Current = n
	return nil
}

// Append adds text after the last node
func (b *Browser) Append(text string) error {
	if b.Head == nil {
		return b.start(text)
	}
	n, err := list.NewTextNode(text)
	if err != nil {
		return err
	}
	head, err := list.Append(b.Head, n)
	if err != nil {
		list.DestroyNode(n)
		return err
	}
	b.Head = head
	b.Current = n
	return nil
}

// start makes a new list when the browser is empty
func (b *Browser) start(text string) error {
	c, err := list.NewContent(text)
	if err != nil {
		return err
	}
	head, err := list.MakeList(c, list.WithMode(b.Mode))
	if err != nil {
		return err
	}
	b.Head = head
	b.Current = head
	return nil
}

// RemoveCurrent unlinks and destroys the current node. The cursor moves to
// the node that took its place in the display, or the one before it.
func (b *Browser) RemoveCurrent() (string, error) {
	if b.Current == nil {
		return "", fmt.Errorf("nothing to remove: %w", list.ErrEmptyList)
	}
	idx := b.Index()
	at := b.Current
	head, err := list.Remove(b.Head, at)
	if err != nil {
		return "", err
	}
	text := at.Text()
	list.DestroyNode(at)
	utils.DebugLog("browser: removed %q", text)

	b.Head = head
	b.Select(idx)
	return text, nil
}

// Search moves the cursor to the first node holding text
func (b *Browser) Search(text string) error {
	n, err := list.SearchText(b.Head, text)
	if err != nil {
		return err
	}
	b.Current = n
	return nil
}

// Status describes the current node and its neighbours
func (b *Browser) Status() string {
	size := list.Size(b.Head)
	if b.Current == nil {
		return fmt.Sprintf("empty %s list", b.Mode)
	}
	prev, next := "-", "-"
	if p := b.Current.Prev(); p != nil {
		prev = p.Text()
	}
	if n := b.Current.Next(); n != nil {
		next = n.Text()
	}
	order := "forward"
	if b.Reverse {
		order = "reverse"
	}
	pos := b.Index() + 1
	if b.Reverse {
		pos = size - b.Index()
	}
	return fmt.Sprintf("%d/%d %s | prev: %s | next: %s | %s, %s", pos, size, b.Current.Text(), prev, next, b.Mode, order)
}

// Close destroys the list and returns the empty head
func (b *Browser) Close() *list.Node {
	b.Head = list.DestroyList(b.Head)
	b.Current = nil
	return b.Head
}
