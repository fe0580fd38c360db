package list

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"
)

// countBackward follows prev links from the tail to the head
func countBackward(head *Node) int {
	count := 0
	for n := Last(head); n != nil; n = n.Prev() {
		count++
	}
	return count
}

// TestRandomOperationsKeepInvariants drives a list through random appends,
// inserts and removes and mirrors every step on a slice.
func TestRandomOperationsKeepInvariants(t *testing.T) {
	for _, m := range modes {
		t.Run(m.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			head := build(t, m, "n0")
			model := []string{"n0"}
			seq := 1

			for step := 0; step < 2000; step++ {
				var err error
				text := fmt.Sprintf("n%d", seq)
				switch op := rng.Intn(3); {
				case op == 0 || head == nil:
					if head == nil {
						head, err = MakeList(MustContent(text), WithMode(m))
					} else {
						head, err = Append(head, mustNode(t, text))
					}
					model = append(model, text)
					seq++
				case op == 1:
					i := rng.Intn(len(model))
					at := mustFind(t, head, model[i])
					head, err = InsertBefore(head, at, mustNode(t, text))
					model = slices.Insert(model, i, text)
					seq++
				default:
					i := rng.Intn(len(model))
					at := mustFind(t, head, model[i])
					head, err = Remove(head, at)
					DestroyNode(at)
					model = slices.Delete(model, i, i+1)
				}
				if err != nil {
					t.Fatalf("step %d: %v", step, err)
				}

				if err := Check(head); err != nil {
					t.Fatalf("step %d: %v", step, err)
				}
				if got := Texts(head); !slices.Equal(got, model) {
					t.Fatalf("step %d: Texts() = %q, expected %q", step, got, model)
				}
				if m == Bidirectional && countBackward(head) != Size(head) {
					t.Fatalf("step %d: backward count %d != size %d", step, countBackward(head), Size(head))
				}
				if got := backwardTexts(head); !slices.Equal(got, reversed(model)) {
					t.Fatalf("step %d: Backward = %q", step, got)
				}
			}
			DestroyList(head)
		})
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(head *Node)
	}{
		{"head with predecessor", func(head *Node) { head.prev = head.next }},
		{"broken back link", func(head *Node) { head.next.next.prev = head }},
		{"cycle", func(head *Node) { Last(head).next = head.next }},
		{"released content", func(head *Node) { head.next.content.Release() }},
	}

	for _, test := range tests {
		head := build(t, Bidirectional, "A", "B", "C")
		test.corrupt(head)
		if err := Check(head); err == nil {
			t.Errorf("%s: Check() = nil, expected an error", test.name)
		}
	}
}
