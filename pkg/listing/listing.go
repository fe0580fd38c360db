// Package listing renders a list as numbered lines for diagnostics.
package listing

import (
	"fmt"
	"io"

	"github.com/ray-d-song/golist/pkg/list"
)

// EmptyLine is printed in place of a listing for the empty list
const EmptyLine = "list is empty"

// Lines returns "1. text" for every node in list order followed by the size line
func Lines(head *list.Node) []string {
	if head == nil {
		return []string{EmptyLine}
	}
	var lines []string
	i := 0
	for n := range list.Forward(head) {
		i++
		lines = append(lines, fmt.Sprintf("%d. %s", i, n.Text()))
	}
	return append(lines, SizeLine(i))
}

// ReverseLines lists the nodes tail first. Each node keeps its forward position.
func ReverseLines(head *list.Node) []string {
	if head == nil {
		return []string{EmptyLine}
	}
	size := list.Size(head)
	lines := make([]string, 0, size+1)
	pos := size
	for n := range list.Backward(head) {
		lines = append(lines, fmt.Sprintf("%d. %s", pos, n.Text()))
		pos--
	}
	return append(lines, SizeLine(size))
}

// SizeLine formats the trailing size line
func SizeLine(n int) string {
	return fmt.Sprintf("list size: %d", n)
}

// Fprint writes the forward listing to w
func Fprint(w io.Writer, head *list.Node) error {
	return writeLines(w, Lines(head))
}

// FprintReverse writes the reverse listing to w
func FprintReverse(w io.Writer, head *list.Node) error {
	return writeLines(w, ReverseLines(head))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
