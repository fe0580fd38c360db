// Package seed reads the initial contents of a list from a file.
package seed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ray-d-song/golist/pkg/utils"
	"golang.org/x/net/html"
)

// ErrNoEntries is returned when a seed source holds nothing to list
var ErrNoEntries = errors.New("seed has no entries")

// Load reads entries from path. HTML files contribute the text of every
// <li> element, anything else one entry per non-blank line.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		entries, err = ParseHTML(f)
	default:
		entries, err = ParseText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	utils.DebugLog("seed: loaded %d entries from %s", len(entries), path)
	return entries, nil
}

// ParseText returns the trimmed non-blank lines of r
func ParseText(r io.Reader) ([]string, error) {
	var entries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	return entries, nil
}

// ParseHTML returns the text of every <li> element of r in document order
func ParseHTML(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	p := &itemParser{}
	p.parseNode(doc)
	if len(p.items) == 0 {
		return nil, ErrNoEntries
	}
	return p.items, nil
}

// itemParser collects list items from an HTML tree
type itemParser struct {
	items []string
}

// parseNode walks n looking for list items
func (p *itemParser) parseNode(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "head":
			return
		case "li":
			var buf strings.Builder
			collectText(n, &buf)
			// Collapse whitespace the way a browser renders it
			if text := strings.Join(strings.Fields(buf.String()), " "); text != "" {
				p.items = append(p.items, text)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.parseNode(c)
	}
}

// collectText appends the text under n, skipping nested lists which are
// reported as items of their own
func collectText(n *html.Node, buf *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			buf.WriteString(c.Data)
			buf.WriteByte(' ')
		case c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol" || c.Data == "script" || c.Data == "style"):
			continue
		case c.Type == html.ElementNode:
			collectText(c, buf)
		}
	}
}
