package list

import (
	"fmt"

	"github.com/ray-d-song/golist/pkg/utils"
)

// A list is identified by its head node; a nil head is the empty list.
// Every mutating operation takes the current head and returns the new one.
// On error the returned head is the head that was passed in and the list
// is left untouched.

// Option configures a list built by MakeList
type Option func(*chain)

// WithMode sets the list mode. The default is Bidirectional.
func WithMode(m Mode) Option {
	return func(c *chain) {
		c.mode = m
	}
}

// MakeList makes a one-node list holding c
func MakeList(c *Content, opts ...Option) (*Node, error) {
	if c == nil {
		utils.DebugLog("list: content is nil")
		return nil, fmt.Errorf("list content is nil: %w", ErrInvalidArgument)
	}
	head, err := NewNode(c)
	if err != nil {
		return nil, err
	}
	ch := &chain{mode: Bidirectional, head: head}
	for _, opt := range opts {
		opt(ch)
	}
	head.link(ch)
	return head, nil
}

// MakeListFrom makes a list holding texts in order
func MakeListFrom(texts []string, opts ...Option) (*Node, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts to build a list from: %w", ErrInvalidArgument)
	}
	first, err := NewContent(texts[0])
	if err != nil {
		return nil, err
	}
	head, err := MakeList(first, opts...)
	if err != nil {
		return nil, err
	}
	// Keep a tail cursor so building is linear.
	tail := head
	for _, text := range texts[1:] {
		n, err := NewTextNode(text)
		if err != nil {
			DestroyList(head)
			return nil, err
		}
		linkAfter(tail, n)
		tail = n
	}
	return head, nil
}

// checkHead verifies that head may be used as the head of a list. A node
// that was never linked counts as a one-node list.
func checkHead(head *Node) error {
	switch {
	case head.state == Destroyed:
		return fmt.Errorf("head is destroyed: %w", ErrInvalidArgument)
	case head.chain == nil:
		return nil
	case head.chain.head != head:
		return fmt.Errorf("node %q is not the head of its list: %w", head.content.Text(), ErrPrecondition)
	}
	return nil
}

// member reports whether at is linked into head's list
func member(head, at *Node) bool {
	if head.chain == nil {
		return at == head
	}
	return at.chain == head.chain
}

// adopt turns a detached head into a linked one-node list
func adopt(head *Node) *chain {
	if head.chain == nil {
		head.link(&chain{mode: Bidirectional, head: head})
	}
	return head.chain
}

// linkAfter places n directly after p
func linkAfter(p, n *Node) {
	n.next = p.next
	if p.chain.mode == Bidirectional {
		n.prev = p
		if p.next != nil {
			p.next.prev = n
		}
	}
	p.next = n
	n.link(p.chain)
}

// predecessor finds the node before at by scanning from head
func predecessor(head, at *Node) *Node {
	for cur := head; cur != nil; cur = cur.next {
		if cur.next == at {
			return cur
		}
	}
	return nil
}

// Append adds n after the last node of the list. Appending to an empty
// list is an error; use MakeList for the first node.
func Append(head, n *Node) (*Node, error) {
	if n == nil {
		utils.DebugLog("append: node is nil")
		return head, fmt.Errorf("append: node is nil: %w", ErrInvalidArgument)
	}
	if head == nil {
		utils.DebugLog("append: list is empty")
		return head, fmt.Errorf("append to an empty list: %w", ErrPrecondition)
	}
	if err := checkHead(head); err != nil {
		utils.DebugLog("append: %v", err)
		return head, fmt.Errorf("append: %w", err)
	}
	if err := n.linkable(); err != nil {
		utils.DebugLog("append: %v", err)
		return head, fmt.Errorf("append: %w", err)
	}
	if n == head {
		utils.DebugLog("append: node is the head")
		return head, fmt.Errorf("append: node is already the head: %w", ErrPrecondition)
	}

	adopt(head)
	linkAfter(Last(head), n)
	return head, nil
}

// InsertBefore places n in front of at, which must be linked into head's
// list. Inserting before the head makes n the new head.
func InsertBefore(head, at, n *Node) (*Node, error) {
	if head == nil || at == nil || n == nil {
		utils.DebugLog("insert: list is empty or at is nil or node is nil")
		return head, fmt.Errorf("insert: missing head, position or node: %w", ErrInvalidArgument)
	}
	if err := checkHead(head); err != nil {
		utils.DebugLog("insert: %v", err)
		return head, fmt.Errorf("insert: %w", err)
	}
	if !member(head, at) {
		utils.DebugLog("insert: %q is not in the list", at.content.Text())
		return head, fmt.Errorf("insert: position %q is not in the list: %w", at.content.Text(), ErrPrecondition)
	}
	if err := n.linkable(); err != nil {
		utils.DebugLog("insert: %v", err)
		return head, fmt.Errorf("insert: %w", err)
	}
	if n == head {
		utils.DebugLog("insert: node is the head")
		return head, fmt.Errorf("insert: node is already the head: %w", ErrPrecondition)
	}

	ch := adopt(head)
	if at == head {
		n.prev = nil
		n.next = head
		if ch.mode == Bidirectional {
			head.prev = n
		}
		n.link(ch)
		ch.head = n
		return n, nil
	}

	var p *Node
	if ch.mode == Bidirectional {
		p = at.prev
	} else {
		p = predecessor(head, at)
	}
	linkAfter(p, n)
	return head, nil
}

// Remove unlinks at from head's list and returns the new head, which is nil
// once the last node is gone. The node is not destroyed: the caller owns it
// again and must relink it or pass it to DestroyNode.
func Remove(head, at *Node) (*Node, error) {
	if head == nil || at == nil {
		utils.DebugLog("remove: head and/or at is nil")
		return head, fmt.Errorf("remove: missing head or position: %w", ErrInvalidArgument)
	}
	if err := checkHead(head); err != nil {
		utils.DebugLog("remove: %v", err)
		return head, fmt.Errorf("remove: %w", err)
	}
	if !member(head, at) {
		utils.DebugLog("remove: %q is not in the list", at.content.Text())
		return head, fmt.Errorf("remove: %q is not in the list: %w", at.content.Text(), ErrPrecondition)
	}

	if at == head {
		head = at.next
		if head != nil {
			head.prev = nil
			head.chain.head = head
		}
		at.unlink()
		return head, nil
	}

	if at.chain.mode == Bidirectional {
		at.prev.next = at.next
		if at.next != nil {
			at.next.prev = at.prev
		}
	} else {
		predecessor(head, at).next = at.next
	}
	at.unlink()
	return head, nil
}

// Search returns the first node whose content equals c
func Search(head *Node, c *Content) (*Node, error) {
	if c == nil {
		utils.DebugLog("search: content is nil")
		return nil, fmt.Errorf("search: content is nil: %w", ErrInvalidArgument)
	}
	if head == nil {
		utils.DebugLog("search: list is empty")
		return nil, ErrEmptyList
	}
	for n := range Forward(head) {
		if ContentEquals(n.content, c) {
			return n, nil
		}
	}
	return nil, fmt.Errorf("search %q: %w", c.Text(), ErrNotFound)
}

// SearchText is Search with a throwaway content built from text
func SearchText(head *Node, text string) (*Node, error) {
	c, err := NewContent(text)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer c.Release()
	return Search(head, c)
}

// Size counts the nodes reachable from head
func Size(head *Node) int {
	count := 0
	for cur := head; cur != nil; cur = cur.next {
		count++
	}
	return count
}

// Last returns the tail of the list, nil for the empty list
func Last(head *Node) *Node {
	if head == nil {
		return nil
	}
	last := head
	for last.next != nil {
		last = last.next
	}
	return last
}

// Texts returns the content texts in list order
func Texts(head *Node) []string {
	texts := make([]string, 0, Size(head))
	for n := range Forward(head) {
		texts = append(texts, n.Text())
	}
	return texts
}

// DestroyList destroys every node of the list and returns the empty list.
// A head that is not the first node of its list is left alone.
func DestroyList(head *Node) *Node {
	if head == nil {
		return nil
	}
	if err := checkHead(head); err != nil {
		utils.DebugLog("destroy list: %v", err)
		return nil
	}
	for head != nil {
		cur := head
		head = head.next
		cur.unlink()
		DestroyNode(cur)
	}
	return nil
}
