package list

import "fmt"

// Check walks the list and verifies its structural invariants: the head has
// no predecessor, the chain is acyclic and ends in a single tail, every prev
// link mirrors the next link before it, and every node is linked into the
// same list with live content. It returns nil for the empty list.
func Check(head *Node) error {
	if head == nil {
		return nil
	}
	if head.prev != nil {
		return fmt.Errorf("head %q has a predecessor: %w", head.Text(), ErrCorrupt)
	}
	if head.chain != nil && head.chain.head != head {
		return fmt.Errorf("%q is not the recorded head: %w", head.Text(), ErrCorrupt)
	}

	mode := head.Mode()
	seen := make(map[*Node]int)
	pos := 1
	for n := head; n != nil; n = n.next {
		if at, ok := seen[n]; ok {
			return fmt.Errorf("node %q at %d appears again at %d: %w", n.Text(), at, pos, ErrCorrupt)
		}
		seen[n] = pos

		if n.content == nil || n.content.Released() {
			return fmt.Errorf("node %d has no content: %w", pos, ErrCorrupt)
		}
		if n.chain != head.chain {
			return fmt.Errorf("node %q at %d belongs to another list: %w", n.Text(), pos, ErrCorrupt)
		}
		if head.chain != nil && n.state != Linked {
			return fmt.Errorf("node %q at %d is %s: %w", n.Text(), pos, n.state, ErrCorrupt)
		}
		if n.next != nil {
			if mode == Bidirectional && n.next.prev != n {
				return fmt.Errorf("node %q at %d does not point back to %q: %w", n.next.Text(), pos+1, n.Text(), ErrCorrupt)
			}
			if mode == ForwardOnly && n.next.prev != nil {
				return fmt.Errorf("forward-only node %q at %d has a prev link: %w", n.next.Text(), pos+1, ErrCorrupt)
			}
		}
		pos++
	}
	return nil
}
