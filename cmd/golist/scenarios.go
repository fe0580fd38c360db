package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/ray-d-song/golist/pkg/list"
	"github.com/ray-d-song/golist/pkg/listing"
)

const delim = "&-=-&"

// scenarioRunner walks one list through the scenarios, printing as it goes
type scenarioRunner struct {
	w    io.Writer
	mode list.Mode
	head *list.Node
}

type scenario struct {
	name string
	run  func(r *scenarioRunner) error
}

var scenarios = []scenario{
	{"make-list", (*scenarioRunner).makeList},
	{"append", (*scenarioRunner).appendNodes},
	{"insert-before", (*scenarioRunner).insertBefore},
	{"remove", (*scenarioRunner).remove},
	{"insert-at-head", (*scenarioRunner).insertAtHead},
	{"reverse-and-destroy", (*scenarioRunner).reverseAndDestroy},
}

// runScenarios runs every scenario in order and stops at the first failure
func runScenarios(w io.Writer, mode list.Mode) error {
	r := &scenarioRunner{w: w, mode: mode}
	defer func() {
		r.head = list.DestroyList(r.head)
	}()

	fmt.Fprintf(w, "%s scenarios (%s)\n", delim, mode)
	for i, s := range scenarios {
		fmt.Fprintf(w, "%s %d. %s\n", delim, i+1, s.name)
		if err := s.run(r); err != nil {
			fmt.Fprintf(w, "FAIL %s: %v\n", s.name, err)
			return fmt.Errorf("scenario %s: %w", s.name, err)
		}
		fmt.Fprintf(w, "ok %s\n", s.name)
	}
	fmt.Fprintf(w, "%s all %d scenarios passed\n", delim, len(scenarios))
	return nil
}

func (r *scenarioRunner) print() {
	listing.Fprint(r.w, r.head)
}

func (r *scenarioRunner) printReverse() {
	listing.FprintReverse(r.w, r.head)
}

// expectOrder checks the forward order, the size and the structure
func (r *scenarioRunner) expectOrder(expected ...string) error {
	if got := list.Texts(r.head); !slices.Equal(got, expected) {
		return fmt.Errorf("order is %q, expected %q", got, expected)
	}
	if got := list.Size(r.head); got != len(expected) {
		return fmt.Errorf("size is %d, expected %d", got, len(expected))
	}
	return list.Check(r.head)
}

func (r *scenarioRunner) makeList() error {
	c, err := list.NewContent("A")
	if err != nil {
		return err
	}
	if r.head, err = list.MakeList(c, list.WithMode(r.mode)); err != nil {
		return err
	}
	r.print()
	return r.expectOrder("A")
}

func (r *scenarioRunner) appendNodes() error {
	for _, text := range []string{"B", "C"} {
		n, err := list.NewTextNode(text)
		if err != nil {
			return err
		}
		if r.head, err = list.Append(r.head, n); err != nil {
			return err
		}
	}
	r.print()
	if err := r.expectOrder("A", "B", "C"); err != nil {
		return err
	}

	b, err := list.SearchText(r.head, "B")
	if err != nil {
		return err
	}
	if b != r.head.Next() {
		return fmt.Errorf("search B found %v, expected the 2nd node", b)
	}
	if last := list.Last(r.head).Text(); last != "C" {
		return fmt.Errorf("last is %q, expected %q", last, "C")
	}
	return nil
}

func (r *scenarioRunner) insertBefore() error {
	at, err := list.SearchText(r.head, "B")
	if err != nil {
		return err
	}
	x, err := list.NewTextNode("X")
	if err != nil {
		return err
	}
	if r.head, err = list.InsertBefore(r.head, at, x); err != nil {
		return err
	}
	r.print()
	if err := r.expectOrder("A", "X", "B", "C"); err != nil {
		return err
	}
	if next := x.Next().Text(); next != "B" {
		return fmt.Errorf("X.next is %q, expected %q", next, "B")
	}
	if r.mode == list.Bidirectional {
		if prev := x.Prev().Text(); prev != "A" {
			return fmt.Errorf("X.prev is %q, expected %q", prev, "A")
		}
	}
	return nil
}

func (r *scenarioRunner) remove() error {
	x, err := list.SearchText(r.head, "X")
	if err != nil {
		return err
	}
	if r.head, err = list.Remove(r.head, x); err != nil {
		return err
	}
	if err := list.DestroyNode(x); err != nil {
		return err
	}
	r.print()
	return r.expectOrder("A", "B", "C")
}

func (r *scenarioRunner) insertAtHead() error {
	z, err := list.NewTextNode("Z")
	if err != nil {
		return err
	}
	if r.head, err = list.InsertBefore(r.head, r.head, z); err != nil {
		return err
	}
	r.print()
	if r.head != z {
		return fmt.Errorf("head is %v, expected Z", r.head)
	}
	if z.Prev() != nil {
		return fmt.Errorf("Z.prev is %v, expected none", z.Prev())
	}
	if next := z.Next().Text(); next != "A" {
		return fmt.Errorf("Z.next is %q, expected %q", next, "A")
	}
	if err := r.expectOrder("Z", "A", "B", "C"); err != nil {
		return err
	}

	// put the list back to A, B, C for the last scenario
	if r.head, err = list.Remove(r.head, z); err != nil {
		return err
	}
	if err := list.DestroyNode(z); err != nil {
		return err
	}
	return nil
}

func (r *scenarioRunner) reverseAndDestroy() error {
	r.printReverse()
	var got []string
	for n := range list.Backward(r.head) {
		got = append(got, n.Text())
	}
	if expected := []string{"C", "B", "A"}; !slices.Equal(got, expected) {
		return fmt.Errorf("reverse order is %q, expected %q", got, expected)
	}

	nodes := slices.Collect(list.Forward(r.head))
	r.head = list.DestroyList(r.head)
	r.print()
	if r.head != nil {
		return fmt.Errorf("destroy left head %v", r.head)
	}
	for _, n := range nodes {
		if n.State() != list.Destroyed {
			return fmt.Errorf("node %v survived destroy", n)
		}
	}
	return nil
}
