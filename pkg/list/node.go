package list

import (
	"fmt"
	"strings"

	"github.com/ray-d-song/golist/pkg/utils"
)

// Mode selects which links a list maintains
type Mode int

const (
	// Bidirectional lists keep both next and prev links
	Bidirectional Mode = iota
	// ForwardOnly lists keep next links only
	ForwardOnly
)

func (m Mode) String() string {
	switch m {
	case Bidirectional:
		return "bidirectional"
	case ForwardOnly:
		return "forward-only"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses the names printed by Mode.String, plus the short forms
// "doubly" and "singly".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bidirectional", "doubly", "double":
		return Bidirectional, nil
	case "forward-only", "forward", "singly", "single":
		return ForwardOnly, nil
	}
	return Bidirectional, fmt.Errorf("unknown list mode %q: %w", s, ErrInvalidArgument)
}

// State describes a node's relationship to a list
type State int

const (
	// Detached nodes were never linked
	Detached State = iota
	// Linked nodes are reachable from a list head
	Linked
	// Unlinked nodes were removed from a list but not destroyed
	Unlinked
	// Destroyed nodes have released their content
	Destroyed
)

func (s State) String() string {
	switch s {
	case Detached:
		return "detached"
	case Linked:
		return "linked"
	case Unlinked:
		return "unlinked"
	case Destroyed:
		return "destroyed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// chain is shared by every node linked into the same list
type chain struct {
	mode Mode
	head *Node
}

// Node is a list element. The zero value is not usable; use NewNode.
type Node struct {
	content *Content
	prev    *Node
	next    *Node
	chain   *chain
	state   State
}

// NewNode wraps c in a detached node
func NewNode(c *Content) (*Node, error) {
	if c == nil {
		utils.DebugLog("node: content is nil")
		return nil, fmt.Errorf("node content is nil: %w", ErrInvalidArgument)
	}
	if c.Released() {
		utils.DebugLog("node: content already released")
		return nil, fmt.Errorf("node content is released: %w", ErrInvalidArgument)
	}
	if c.owned {
		utils.DebugLog("node: content %q already belongs to a node", c.text)
		return nil, fmt.Errorf("content %q already belongs to a node: %w", c.text, ErrPrecondition)
	}
	c.owned = true
	return &Node{content: c}, nil
}

// NewTextNode makes the content and the node in one step
func NewTextNode(text string) (*Node, error) {
	c, err := NewContent(text)
	if err != nil {
		return nil, err
	}
	return NewNode(c)
}

// DestroyNode releases the node's content. Linked nodes must be removed
// first and are refused with ErrPrecondition. A nil or already destroyed
// node is left alone.
func DestroyNode(n *Node) error {
	if n == nil {
		utils.DebugLog("node: destroy of nil node")
		return nil
	}
	switch n.state {
	case Destroyed:
		utils.DebugLog("node: %p already destroyed", n)
		return nil
	case Linked:
		utils.DebugLog("node: refusing to destroy linked node %q", n.content.Text())
		return fmt.Errorf("destroy: node %q is still linked: %w", n.content.Text(), ErrPrecondition)
	}
	n.content.Release()
	n.content = nil
	n.prev, n.next = nil, nil
	n.state = Destroyed
	return nil
}

// Content returns the owned content, nil once destroyed
func (n *Node) Content() *Content {
	if n == nil {
		return nil
	}
	return n.content
}

// Text returns the content text
func (n *Node) Text() string {
	return n.Content().Text()
}

// Next returns the successor, nil for the tail or a node outside a list
func (n *Node) Next() *Node {
	if n == nil || n.state != Linked {
		return nil
	}
	return n.next
}

// Prev returns the predecessor. Forward-only lists never have one.
func (n *Node) Prev() *Node {
	if n == nil || n.state != Linked {
		return nil
	}
	return n.prev
}

// State returns the node's current state
func (n *Node) State() State {
	if n == nil {
		return Destroyed
	}
	return n.state
}

// Mode returns the mode of the list holding n. Nodes outside a list report Bidirectional.
func (n *Node) Mode() Mode {
	if n == nil || n.chain == nil {
		return Bidirectional
	}
	return n.chain.mode
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (%s)", n.content, n.state)
}

// linkable reports whether n may be placed into a list
func (n *Node) linkable() error {
	switch n.state {
	case Destroyed:
		return fmt.Errorf("node is destroyed: %w", ErrInvalidArgument)
	case Linked:
		return fmt.Errorf("node %q is already linked: %w", n.content.Text(), ErrPrecondition)
	}
	return nil
}

func (n *Node) link(c *chain) {
	n.chain = c
	n.state = Linked
}

func (n *Node) unlink() {
	n.prev, n.next = nil, nil
	n.chain = nil
	n.state = Unlinked
}
