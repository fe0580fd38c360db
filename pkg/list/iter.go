package list

import "iter"

// Forward yields the nodes from head to tail. The successor is read before
// each node is yielded, so the consumer may remove the node it was given.
func Forward(head *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n := head; n != nil; {
			next := n.next
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

// Backward yields the nodes from tail to head. There is no tail pointer, so
// each run first walks forward to find it. Forward-only lists have no prev
// links; their nodes are collected and yielded in reverse.
func Backward(head *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if head == nil {
			return
		}
		if head.Mode() == ForwardOnly {
			nodes := make([]*Node, 0, Size(head))
			for n := head; n != nil; n = n.next {
				nodes = append(nodes, n)
			}
			for i := len(nodes) - 1; i >= 0; i-- {
				if !yield(nodes[i]) {
					return
				}
			}
			return
		}
		for n := Last(head); n != nil; {
			prev := n.prev
			if !yield(n) {
				return
			}
			n = prev
		}
	}
}
